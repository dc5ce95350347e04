package importer

import (
	"context"
	"fmt"
	"strconv"

	"wooflow/internal/logger"
	"wooflow/internal/woo"
)

const (
	// maxCategoryColumns caps the indexed category_i/include_hierarchy_i pairs
	// scanned per row.
	maxCategoryColumns = 5

	// maxImageColumns caps the indexed image_i columns scanned per row.
	maxImageColumns = 5
)

func categoryColumn(i int) string {
	return fmt.Sprintf("category_%d", i)
}

func includeHierarchyColumn(i int) string {
	return fmt.Sprintf("include_hierarchy_%d", i)
}

func imageColumn(i int) string {
	return fmt.Sprintf("image_%d", i)
}

// assembler builds gateway-ready products and variations from cleaned rows.
// Category and image resolution failures are logged and skipped; only
// malformed fields fail the row.
type assembler struct {
	gateway  Gateway
	resolver *attributeResolver
	logger   *logger.Logger
}

func (a *assembler) buildSimple(ctx context.Context, row Row) (*woo.Product, error) {
	product := &woo.Product{
		Name:             row.Value("name"),
		Type:             typeSimple,
		Description:      row.Value("description"),
		ShortDescription: row.Value("short_description"),
		SKU:              row.Value("sku"),
		Status:           row.Value("status"),
		StockStatus:      row.Value("stock_status"),
		ManageStock:      ParseBool(row.Value("manage_stock")),
	}

	// A simple product always carries a price; absent means free.
	product.RegularPrice = row.Value("regular_price")
	if product.RegularPrice == "" {
		product.RegularPrice = "0"
	}
	if sale, ok := row.Get("sale_price"); ok {
		product.SalePrice = sale
		product.DateOnSaleTo = row.Value("sale_end_date")
	}

	if err := a.applyStockQuantity(row, &product.StockQuantity); err != nil {
		return nil, err
	}
	product.Dimensions, product.Weight = dimensionsFromRow(row)

	product.Categories = a.resolveCategories(ctx, row)
	product.Attributes = a.inlineAttributes(ctx, row)
	product.Images = a.resolveImages(ctx, row)

	return product, nil
}

// buildVariable assembles the parent of a variable group from its row plus the
// group's resolved attributes. At least one attribute must be
// variation-bearing, otherwise the group cannot produce sellable variations.
func (a *assembler) buildVariable(ctx context.Context, row Row, resolved []*resolvedAttribute) (*woo.Product, error) {
	hasVariationAttr := false
	for _, attr := range resolved {
		if attr.Variation {
			hasVariationAttr = true
			break
		}
	}
	if !hasVariationAttr {
		return nil, fmt.Errorf("variable product has no variation attributes")
	}

	product := &woo.Product{
		Name:             row.Value("name"),
		Type:             typeVariable,
		Description:      row.Value("description"),
		ShortDescription: row.Value("short_description"),
		SKU:              row.Value("sku"),
		Status:           row.Value("status"),
		StockStatus:      row.Value("stock_status"),
		ManageStock:      ParseBool(row.Value("manage_stock")),
		RegularPrice:     row.Value("regular_price"),
		Attributes:       productAttributes(resolved),
	}

	if sale, ok := row.Get("sale_price"); ok {
		product.SalePrice = sale
		product.DateOnSaleTo = row.Value("sale_end_date")
	}
	if err := a.applyStockQuantity(row, &product.StockQuantity); err != nil {
		return nil, err
	}
	product.Dimensions, product.Weight = dimensionsFromRow(row)

	product.Categories = a.resolveCategories(ctx, row)
	product.Images = a.resolveImages(ctx, row)

	return product, nil
}

// buildVariation assembles one variation. Pricing falls back from the row's
// regular price to its sale price to the parent's regular price, so variation
// rows may omit pricing identical to the parent.
func (a *assembler) buildVariation(ctx context.Context, row Row, parent *woo.Product, attributes []woo.VariationAttribute) (*woo.Variation, error) {
	variation := &woo.Variation{
		SKU:         row.Value("sku"),
		ManageStock: ParseBool(row.Value("manage_stock")),
		Attributes:  attributes,
	}

	switch {
	case row.Has("regular_price"):
		variation.RegularPrice = row.Value("regular_price")
	case row.Has("sale_price"):
		variation.RegularPrice = row.Value("sale_price")
	default:
		variation.RegularPrice = parent.RegularPrice
		if variation.RegularPrice == "" {
			variation.RegularPrice = "0"
		}
	}
	if sale, ok := row.Get("sale_price"); ok {
		variation.SalePrice = sale
	}

	if err := a.applyStockQuantity(row, &variation.StockQuantity); err != nil {
		return nil, err
	}
	variation.Dimensions, variation.Weight = dimensionsFromRow(row)
	variation.Image = a.resolveVariationImage(ctx, row)

	return variation, nil
}

func (a *assembler) applyStockQuantity(row Row, target **int) error {
	value, ok := row.Get("stock_quantity")
	if !ok {
		return nil
	}
	quantity, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid stock_quantity %q", value)
	}
	*target = &quantity
	return nil
}

// dimensionsFromRow attaches a dimensions object only when at least one of
// length/width/height is present. Values stay strings to match the remote API.
func dimensionsFromRow(row Row) (*woo.Dimensions, string) {
	weight := row.Value("weight")
	if !row.Has("length") && !row.Has("width") && !row.Has("height") {
		return nil, weight
	}
	return &woo.Dimensions{
		Length: row.Value("length"),
		Width:  row.Value("width"),
		Height: row.Value("height"),
	}, weight
}

// resolveCategories resolves category_1..5. With include_hierarchy the whole
// ancestor chain is attached root to leaf, not just the named category. A
// failed resolution skips that category only.
func (a *assembler) resolveCategories(ctx context.Context, row Row) []woo.CategoryRef {
	var refs []woo.CategoryRef
	attached := map[int]bool{}

	attach := func(id int) {
		if !attached[id] {
			attached[id] = true
			refs = append(refs, woo.CategoryRef{ID: id})
		}
	}

	for i := 1; i <= maxCategoryColumns; i++ {
		name, ok := row.Get(categoryColumn(i))
		if !ok {
			continue
		}

		category, err := a.gateway.GetOrCreateCategory(ctx, name, 0)
		if err != nil {
			a.logger.Warn("Could not add category %q: %v", name, err)
			continue
		}

		if !ParseBool(row.Value(includeHierarchyColumn(i))) {
			attach(category.ID)
			continue
		}

		chain, err := a.gateway.GetCategoryHierarchy(ctx, category.ID)
		if err != nil {
			a.logger.Warn("Could not resolve hierarchy for category %q: %v", name, err)
			attach(category.ID)
			continue
		}
		for _, ancestor := range chain {
			attach(ancestor.ID)
		}
	}

	return refs
}

// inlineAttributes builds a simple product's attribute list from its own
// attr_name_i/attr_value_i columns. An attribute is taken to be
// variation-bearing unless attr_var_i says otherwise, and variation-bearing
// attributes have no place on a simple product, so only explicitly
// non-variation columns are kept.
func (a *assembler) inlineAttributes(ctx context.Context, row Row) []woo.ProductAttribute {
	var attributes []woo.ProductAttribute

	for i := 1; i <= maxAttributeColumns; i++ {
		name, ok := row.Get(attrNameColumn(i))
		if !ok {
			continue
		}
		options := splitOptions(row.Value(attrValueColumn(i)))
		if len(options) == 0 {
			continue
		}

		isVariation := true
		if flag, ok := row.Get(attrVariationColumn(i)); ok {
			isVariation = ParseBool(flag)
		}
		if isVariation {
			continue
		}

		attr := &resolvedAttribute{Name: name, Options: options}
		a.resolver.resolveGlobal(ctx, attr)

		attributes = append(attributes, woo.ProductAttribute{
			ID:      attr.RemoteID,
			Name:    attr.Name,
			Visible: true,
			Options: attr.Options,
		})
	}

	return attributes
}

// resolveImages uploads image_1..5 and keeps the resulting media ids. An
// upload failure skips that image only.
func (a *assembler) resolveImages(ctx context.Context, row Row) []woo.Image {
	var images []woo.Image
	name := row.Value("name")
	if name == "" {
		name = "product"
	}

	for i := 1; i <= maxImageColumns; i++ {
		source, ok := row.Get(imageColumn(i))
		if !ok {
			continue
		}
		mediaID, err := a.gateway.UploadMedia(ctx, source, fmt.Sprintf("Image %d for %s", i, name), "")
		if err != nil {
			a.logger.Warn("Could not add image %s: %v", source, err)
			continue
		}
		images = append(images, woo.Image{ID: mediaID})
	}

	return images
}

// resolveVariationImage keeps at most the first successfully uploaded image;
// later image columns are ignored once one succeeds.
func (a *assembler) resolveVariationImage(ctx context.Context, row Row) *woo.Image {
	sku := row.Value("sku")
	if sku == "" {
		sku = "variation"
	}

	for i := 1; i <= maxImageColumns; i++ {
		source, ok := row.Get(imageColumn(i))
		if !ok {
			continue
		}
		mediaID, err := a.gateway.UploadMedia(ctx, source, fmt.Sprintf("Image %d for %s", i, sku), "")
		if err != nil {
			a.logger.Warn("Could not add image %s: %v", source, err)
			continue
		}
		return &woo.Image{ID: mediaID}
	}

	return nil
}
