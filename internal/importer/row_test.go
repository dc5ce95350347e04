package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanRow(t *testing.T) {
	row := CleanRow(map[string]string{
		"name":          "  Widget  ",
		"sku":           "",
		"description":   "   ",
		"weight":        "N/A",
		"length":        "nan",
		"width":         "na",
		"regular_price": "19.99",
	})

	assert.Equal(t, Row{"name": "Widget", "regular_price": "19.99"}, row)
	assert.False(t, row.Has("sku"))
	assert.False(t, row.Has("weight"))
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"Yes", true},
		{"1", true},
		{"t", true},
		{"y", true},
		{" y ", true},
		{"false", false},
		{"no", false},
		{"0", false},
		{"", false},
		{"enabled", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseBool(tt.value), "ParseBool(%q)", tt.value)
	}
}

func TestLineNumberAccountsForHeader(t *testing.T) {
	assert.Equal(t, 2, lineNumber(0))
	assert.Equal(t, 5, lineNumber(3))
}
