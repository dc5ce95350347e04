package importer

import (
	"context"
	"errors"
	"testing"

	"wooflow/internal/logger"
	"wooflow/internal/woo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver(gateway Gateway) *attributeResolver {
	return &attributeResolver{gateway: gateway, logger: logger.New("error")}
}

func variableGroup(parent Row, variations ...Row) *VariableGroup {
	group := &VariableGroup{
		Key:    "variable_1",
		Parent: IndexedRow{Index: 0, Row: parent},
	}
	for i, row := range variations {
		group.Variations = append(group.Variations, IndexedRow{Index: i + 1, Row: row})
	}
	return group
}

func TestResolveGroupDeduplicatesOptionsInFirstSeenOrder(t *testing.T) {
	group := variableGroup(
		Row{"type": "variable", "attr_name_1": "Color", "attr_value_1": "Red, Red, Blue"},
		Row{"type": "variation", "attr_value_1": "Green"},
		Row{"type": "variation", "attr_value_1": "Red"},
	)

	resolved, err := testResolver(newFakeGateway()).resolveGroup(context.Background(), group)
	require.NoError(t, err)
	require.Len(t, resolved, 1)

	assert.Equal(t, "Color", resolved[0].Name)
	assert.Equal(t, []string{"Red", "Blue", "Green"}, resolved[0].Options)
	assert.True(t, resolved[0].Variation)
	assert.False(t, resolved[0].Global)
}

func TestResolveGroupKeepsColumnOrderAcrossAttributes(t *testing.T) {
	group := variableGroup(
		Row{
			"type":         "variable",
			"attr_name_1":  "Size",
			"attr_value_1": "S,M",
			"attr_name_2":  "Color",
			"attr_value_2": "Red",
		},
		Row{"type": "variation", "attr_value_1": "S", "attr_value_2": "Red"},
	)

	resolved, err := testResolver(newFakeGateway()).resolveGroup(context.Background(), group)
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	assert.Equal(t, "Size", resolved[0].Name)
	assert.Equal(t, "Color", resolved[1].Name)
	assert.True(t, resolved[0].Variation)
	assert.True(t, resolved[1].Variation)
}

func TestResolveGroupPositionalNameFallback(t *testing.T) {
	// Variation rows without attr_name_i borrow the parent's name at the same
	// column position.
	group := variableGroup(
		Row{"type": "variable", "attr_name_1": "Size", "attr_value_1": "S"},
		Row{"type": "variation", "attr_value_1": "XL"},
	)

	resolved, err := testResolver(newFakeGateway()).resolveGroup(context.Background(), group)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, []string{"S", "XL"}, resolved[0].Options)
}

func TestResolveGroupNoAttributes(t *testing.T) {
	group := variableGroup(Row{"type": "variable", "name": "Bare"})

	_, err := testResolver(newFakeGateway()).resolveGroup(context.Background(), group)
	require.Error(t, err)
	assert.Equal(t, "no attributes found for variable product", err.Error())
}

func TestResolveGroupGlobalAttribute(t *testing.T) {
	gateway := newFakeGateway()
	gateway.attributes["color"] = &woo.Attribute{ID: 7, Name: "Color", Slug: "pa_color"}

	group := variableGroup(
		Row{"type": "variable", "attr_name_1": "pa_color", "attr_value_1": "Red"},
		Row{"type": "variation", "attr_value_1": "Red"},
	)

	resolved, err := testResolver(gateway).resolveGroup(context.Background(), group)
	require.NoError(t, err)
	require.Len(t, resolved, 1)

	assert.True(t, resolved[0].Global)
	assert.Equal(t, 7, resolved[0].RemoteID)
}

func TestResolveGroupGlobalLookupFailureDegradesToLocal(t *testing.T) {
	gateway := newFakeGateway()
	gateway.attributeErr = errors.New("store unreachable")

	group := variableGroup(
		Row{"type": "variable", "attr_name_1": "pa_color", "attr_value_1": "Red"},
		Row{"type": "variation", "attr_value_1": "Red"},
	)

	resolved, err := testResolver(gateway).resolveGroup(context.Background(), group)
	require.NoError(t, err)
	require.Len(t, resolved, 1)

	assert.True(t, resolved[0].Global)
	assert.Zero(t, resolved[0].RemoteID)
}

func TestProductAttributesPreserveOrderAndPosition(t *testing.T) {
	resolved := []*resolvedAttribute{
		{Name: "Size", Options: []string{"S", "M"}, Variation: true},
		{Name: "pa_color", Options: []string{"Red"}, Global: true, RemoteID: 3, Variation: true},
	}

	attributes := productAttributes(resolved)
	require.Len(t, attributes, 2)

	assert.Equal(t, woo.ProductAttribute{
		Name:      "Size",
		Position:  0,
		Visible:   true,
		Variation: true,
		Options:   []string{"S", "M"},
	}, attributes[0])
	assert.Equal(t, 3, attributes[1].ID)
	assert.Equal(t, 1, attributes[1].Position)
}

func TestVariationAttributes(t *testing.T) {
	resolved := []*resolvedAttribute{
		{Name: "Size", Variation: true},
		{Name: "pa_color", Global: true, RemoteID: 9, Variation: true},
	}
	parentNames := []string{"Size", "pa_color"}

	row := Row{"attr_value_1": "M", "attr_value_2": "Red"}
	attributes := variationAttributes(row, parentNames, resolved)
	require.Len(t, attributes, 2)

	assert.Equal(t, woo.VariationAttribute{Name: "Size", Option: "M"}, attributes[0])
	assert.Equal(t, woo.VariationAttribute{ID: 9, Name: "pa_color", Option: "Red"}, attributes[1])
}

func TestVariationAttributesExplicitNameWins(t *testing.T) {
	resolved := []*resolvedAttribute{{Name: "Material", Variation: true}}

	row := Row{"attr_name_1": "Material", "attr_value_1": "Wool"}
	attributes := variationAttributes(row, []string{"Size"}, resolved)

	require.Len(t, attributes, 1)
	assert.Equal(t, "Material", attributes[0].Name)
}

func TestSplitOptions(t *testing.T) {
	assert.Nil(t, splitOptions(""))
	assert.Equal(t, []string{"Red", "Blue"}, splitOptions(" Red , Blue ,, "))
	assert.Equal(t, []string{"Solo"}, splitOptions("Solo"))
}
