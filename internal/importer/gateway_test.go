package importer

import (
	"context"

	"wooflow/internal/woo"
)

// fakeGateway is an in-memory stand-in for the store. IDs are assigned from a
// single counter so tests can assert creation order.
type fakeGateway struct {
	nextID int

	products   []*woo.Product
	variations map[int][]*woo.Variation
	categories map[string]*woo.Category
	hierarchy  map[int][]woo.Category
	attributes map[string]*woo.Attribute
	uploads    []string

	productErr   error
	variationErr error
	categoryErr  error
	attributeErr error
	mediaErr     error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		variations: map[int][]*woo.Variation{},
		categories: map[string]*woo.Category{},
		hierarchy:  map[int][]woo.Category{},
		attributes: map[string]*woo.Attribute{},
	}
}

func (g *fakeGateway) CreateProduct(ctx context.Context, product *woo.Product) (*woo.Product, error) {
	if g.productErr != nil {
		return nil, g.productErr
	}
	g.nextID++
	created := *product
	created.ID = g.nextID
	g.products = append(g.products, &created)
	return &created, nil
}

func (g *fakeGateway) UpdateProduct(ctx context.Context, productID int, product *woo.Product) (*woo.Product, error) {
	if g.productErr != nil {
		return nil, g.productErr
	}
	updated := *product
	updated.ID = productID
	return &updated, nil
}

func (g *fakeGateway) CreateVariation(ctx context.Context, parentID int, variation *woo.Variation) (*woo.Variation, error) {
	if g.variationErr != nil {
		return nil, g.variationErr
	}
	g.nextID++
	created := *variation
	created.ID = g.nextID
	g.variations[parentID] = append(g.variations[parentID], &created)
	return &created, nil
}

func (g *fakeGateway) GetOrCreateCategory(ctx context.Context, name string, parent int) (*woo.Category, error) {
	if g.categoryErr != nil {
		return nil, g.categoryErr
	}
	if category, ok := g.categories[name]; ok {
		return category, nil
	}
	g.nextID++
	category := &woo.Category{ID: g.nextID, Name: name, Slug: woo.Slugify(name), Parent: parent}
	g.categories[name] = category
	return category, nil
}

func (g *fakeGateway) GetCategoryHierarchy(ctx context.Context, categoryID int) ([]woo.Category, error) {
	if chain, ok := g.hierarchy[categoryID]; ok {
		return chain, nil
	}
	return []woo.Category{{ID: categoryID}}, nil
}

func (g *fakeGateway) GetAttributeBySlug(ctx context.Context, slug string) (*woo.Attribute, error) {
	if g.attributeErr != nil {
		return nil, g.attributeErr
	}
	return g.attributes[slug], nil
}

func (g *fakeGateway) UploadMedia(ctx context.Context, source, alt, title string) (int, error) {
	if g.mediaErr != nil {
		return 0, g.mediaErr
	}
	g.nextID++
	g.uploads = append(g.uploads, source)
	return g.nextID, nil
}
