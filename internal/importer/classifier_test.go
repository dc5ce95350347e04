package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPartitionsRows(t *testing.T) {
	rows := []Row{
		{"type": "simple", "name": "Mug"},
		{"type": "variable", "name": "Shirt"},
		{"type": "variation", "sku": "SHIRT-S"},
		{"type": "variation", "sku": "SHIRT-M"},
		{"type": "variable", "name": "Hat"},
		{"type": "variation", "sku": "HAT-RED"},
		{"type": "simple", "name": "Poster"},
	}

	cl := classify(rows)

	require.Len(t, cl.simple, 2)
	assert.Equal(t, "Mug", cl.simple[0].Row.Value("name"))
	assert.Equal(t, "Poster", cl.simple[1].Row.Value("name"))

	require.Len(t, cl.groups, 2)
	assert.Equal(t, "Shirt", cl.groups[0].Parent.Row.Value("name"))
	require.Len(t, cl.groups[0].Variations, 2)
	assert.Equal(t, "Hat", cl.groups[1].Parent.Row.Value("name"))
	require.Len(t, cl.groups[1].Variations, 1)
	assert.Equal(t, "HAT-RED", cl.groups[1].Variations[0].Row.Value("sku"))

	assert.Empty(t, cl.failed)
}

func TestClassifyVariationBindsToMostRecentParent(t *testing.T) {
	rows := []Row{
		{"type": "variable", "name": "First"},
		{"type": "variable", "name": "Second"},
		{"type": "variation", "sku": "V-1"},
	}

	cl := classify(rows)

	require.Len(t, cl.groups, 2)
	assert.Empty(t, cl.groups[0].Variations)
	require.Len(t, cl.groups[1].Variations, 1)
}

func TestClassifyOrphanVariation(t *testing.T) {
	rows := []Row{
		{"type": "variation", "sku": "ORPHAN"},
		{"type": "simple", "name": "Mug"},
	}

	cl := classify(rows)

	require.Len(t, cl.failed, 1)
	assert.Equal(t, 2, cl.failed[0].Row)
	assert.Equal(t, "Variation found without a parent variable product", cl.failed[0].Error)
	assert.Equal(t, rows[0], cl.failed[0].Data)
	assert.Len(t, cl.simple, 1)
}

func TestClassifyUnsupportedType(t *testing.T) {
	rows := []Row{
		{"type": "grouped", "name": "Bundle"},
		{"name": "Typeless"},
	}

	cl := classify(rows)

	require.Len(t, cl.failed, 2)
	assert.Equal(t, "Unsupported product type: grouped", cl.failed[0].Error)
	assert.Equal(t, "Unsupported product type: ", cl.failed[1].Error)
	assert.Equal(t, 3, cl.failed[1].Row)
}

func TestClassifyTypeIsCaseInsensitive(t *testing.T) {
	cl := classify([]Row{{"type": "Simple"}, {"type": "VARIABLE"}})

	assert.Len(t, cl.simple, 1)
	assert.Len(t, cl.groups, 1)
	assert.Empty(t, cl.failed)
}
