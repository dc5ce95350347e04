package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wooflow/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImporter(gateway Gateway) *Importer {
	return New(gateway, logger.New("error"))
}

func TestImportFromListSimpleProducts(t *testing.T) {
	gateway := newFakeGateway()
	im := testImporter(gateway)

	result := im.ImportFromList(context.Background(), []Row{
		{"type": "simple", "name": "Mug", "sku": "MUG-1", "regular_price": "12"},
		{"type": "simple", "name": "Poster", "sku": "POST-1"},
	})

	require.Empty(t, result.Failed)
	require.Len(t, result.Created, 2)

	assert.Equal(t, CreatedProduct{Row: 2, ID: 1, Name: "Mug", Type: "simple", SKU: "MUG-1"}, result.Created[0])
	assert.Equal(t, "Poster", result.Created[1].Name)
	assert.Equal(t, "0", gateway.products[1].RegularPrice)
}

func TestImportFromListVariableGroup(t *testing.T) {
	gateway := newFakeGateway()
	im := testImporter(gateway)

	result := im.ImportFromList(context.Background(), []Row{
		{
			"type": "variable", "name": "Shirt", "sku": "SHIRT",
			"regular_price": "25",
			"attr_name_1":   "Size", "attr_value_1": "S,M",
		},
		{"type": "variation", "sku": "SHIRT-S", "attr_value_1": "S"},
		{"type": "variation", "sku": "SHIRT-M", "attr_value_1": "M", "regular_price": "27"},
	})

	require.Empty(t, result.Failed)
	require.Len(t, result.Created, 3)

	assert.Equal(t, "variable", result.Created[0].Type)
	assert.Equal(t, 2, result.Created[0].Row)

	assert.Equal(t, "variation", result.Created[1].Type)
	assert.Equal(t, "Shirt", result.Created[1].Name)
	assert.Equal(t, "SHIRT-S", result.Created[1].SKU)
	assert.Equal(t, 3, result.Created[1].Row)
	assert.Equal(t, 4, result.Created[2].Row)

	parentID := result.Created[0].ID
	variations := gateway.variations[parentID]
	require.Len(t, variations, 2)
	assert.Equal(t, "25", variations[0].RegularPrice)
	assert.Equal(t, "27", variations[1].RegularPrice)
	require.Len(t, variations[0].Attributes, 1)
	assert.Equal(t, "Size", variations[0].Attributes[0].Name)
	assert.Equal(t, "S", variations[0].Attributes[0].Option)
}

func TestImportFromListMixedOutcomes(t *testing.T) {
	im := testImporter(newFakeGateway())

	result := im.ImportFromList(context.Background(), []Row{
		{"type": "variation", "sku": "ORPHAN"},
		{"type": "simple", "name": "Mug"},
		{"type": "bundle", "name": "Kit"},
	})

	require.Len(t, result.Created, 1)
	require.Len(t, result.Failed, 2)

	// Classification failures come first, in discovery order.
	assert.Equal(t, 2, result.Failed[0].Row)
	assert.Equal(t, "Variation found without a parent variable product", result.Failed[0].Error)
	assert.Equal(t, 4, result.Failed[1].Row)
	assert.Equal(t, "Unsupported product type: bundle", result.Failed[1].Error)
}

func TestImportFromListParentFailureSkipsVariations(t *testing.T) {
	gateway := newFakeGateway()
	gateway.productErr = errors.New("store rejected product")
	im := testImporter(gateway)

	result := im.ImportFromList(context.Background(), []Row{
		{"type": "variable", "name": "Shirt", "attr_name_1": "Size", "attr_value_1": "S"},
		{"type": "variation", "sku": "SHIRT-S", "attr_value_1": "S"},
	})

	assert.Empty(t, result.Created)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, 2, result.Failed[0].Row)
	assert.Equal(t, "store rejected product", result.Failed[0].Error)
	assert.Empty(t, gateway.variations)
}

func TestImportFromListGroupWithoutAttributesFails(t *testing.T) {
	im := testImporter(newFakeGateway())

	result := im.ImportFromList(context.Background(), []Row{
		{"type": "variable", "name": "Bare"},
		{"type": "variation", "sku": "V-1"},
	})

	assert.Empty(t, result.Created)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "no attributes found for variable product", result.Failed[0].Error)
}

func TestImportFromListVariationFailureDoesNotBlockSiblings(t *testing.T) {
	gateway := newFakeGateway()
	im := testImporter(gateway)

	result := im.ImportFromList(context.Background(), []Row{
		{"type": "variable", "name": "Shirt", "attr_name_1": "Size", "attr_value_1": "S,M"},
		{"type": "variation", "sku": "SHIRT-S", "attr_value_1": "S", "stock_quantity": "lots"},
		{"type": "variation", "sku": "SHIRT-M", "attr_value_1": "M"},
	})

	require.Len(t, result.Created, 2)
	assert.Equal(t, "variable", result.Created[0].Type)
	assert.Equal(t, "SHIRT-M", result.Created[1].SKU)

	require.Len(t, result.Failed, 1)
	assert.Equal(t, 3, result.Failed[0].Row)
	assert.Equal(t, `Error processing variation: invalid stock_quantity "lots"`, result.Failed[0].Error)
}

func TestImportFromListEmpty(t *testing.T) {
	result := testImporter(newFakeGateway()).ImportFromList(context.Background(), nil)

	assert.NotNil(t, result.Created)
	assert.NotNil(t, result.Failed)
	assert.Empty(t, result.Created)
	assert.Empty(t, result.Failed)
	assert.Empty(t, result.Error)
}

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportFromFile(t *testing.T) {
	gateway := newFakeGateway()
	im := testImporter(gateway)

	path := writeTempCSV(t, "products.csv",
		"type,name,sku,regular_price\n"+
			"simple,Mug,MUG-1,12\n"+
			"simple,Poster,POST-1,8\n")

	result := im.ImportFromFile(context.Background(), path, ',')

	assert.Empty(t, result.Error)
	require.Len(t, result.Created, 2)
	assert.Equal(t, "Mug", result.Created[0].Name)
}

func TestImportFromFileWithBOMAndSemicolons(t *testing.T) {
	gateway := newFakeGateway()
	im := testImporter(gateway)

	// UTF-8 BOM plus semicolon delimiters, detected despite the comma hint.
	path := writeTempCSV(t, "products.csv",
		"\xEF\xBB\xBFtype;name;sku\n"+
			"simple;Mug;MUG-1\n")

	result := im.ImportFromFile(context.Background(), path, ',')

	assert.Empty(t, result.Error)
	require.Len(t, result.Created, 1)
	assert.Equal(t, "Mug", result.Created[0].Name)
	assert.Equal(t, "MUG-1", result.Created[0].SKU)
}

func TestImportFromFileRaggedRows(t *testing.T) {
	im := testImporter(newFakeGateway())

	path := writeTempCSV(t, "products.csv",
		"type,name,sku\n"+
			"simple,Mug\n")

	result := im.ImportFromFile(context.Background(), path, ',')

	assert.Empty(t, result.Error)
	require.Len(t, result.Created, 1)
	assert.Empty(t, result.Created[0].SKU)
}

func TestImportFromFileUnreadable(t *testing.T) {
	im := testImporter(newFakeGateway())

	result := im.ImportFromFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), ',')

	require.NotNil(t, result)
	assert.NotEmpty(t, result.Error)
	assert.Contains(t, result.Error, "failed to open CSV file")
	assert.Empty(t, result.Created)
	assert.Empty(t, result.Failed)
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		sample   string
		fallback rune
		want     rune
	}{
		{"a,b,c", ';', ','},
		{"a\tb\tc", ',', '\t'},
		{"a;b;c", ',', ';'},
		{"single", ';', ';'},
		{"single", 0, ','},
		{"a,b\nc;d;e;f", ';', ','},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, detectDelimiter([]byte(tt.sample), tt.fallback), "sample %q", tt.sample)
	}
}
