// Package importer turns loosely structured CSV rows into WooCommerce
// products. Rows are classified into simple products and variable-product
// groups, group attributes are resolved against the store, and every row is
// created independently so one bad row never aborts the batch.
package importer

import (
	"context"

	"wooflow/internal/woo"
)

// Gateway is the remote store surface the importer depends on. *woo.Client
// satisfies it; tests substitute an in-memory fake.
type Gateway interface {
	CreateProduct(ctx context.Context, product *woo.Product) (*woo.Product, error)
	UpdateProduct(ctx context.Context, productID int, product *woo.Product) (*woo.Product, error)
	CreateVariation(ctx context.Context, parentID int, variation *woo.Variation) (*woo.Variation, error)
	GetOrCreateCategory(ctx context.Context, name string, parent int) (*woo.Category, error)
	GetCategoryHierarchy(ctx context.Context, categoryID int) ([]woo.Category, error)
	GetAttributeBySlug(ctx context.Context, slug string) (*woo.Attribute, error)
	UploadMedia(ctx context.Context, source, alt, title string) (int, error)
}
