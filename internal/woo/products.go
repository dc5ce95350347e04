package woo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ProductListOptions are the supported filters for ListProducts.
type ProductListOptions struct {
	PerPage  int
	Page     int
	Search   string
	Status   string
	Category int
}

func (o ProductListOptions) values() url.Values {
	q := url.Values{}
	if o.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(o.PerPage))
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if o.Category > 0 {
		q.Set("category", strconv.Itoa(o.Category))
	}
	return q
}

func (c *Client) ListProducts(ctx context.Context, opts ProductListOptions) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", opts.values(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, productID int) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", productID), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, product *Product) (*Product, error) {
	var created Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, productID int, product *Product) (*Product, error) {
	var updated Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", productID), nil, product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, productID int, force bool) (*Product, error) {
	q := url.Values{"force": {strconv.FormatBool(force)}}
	var deleted Product
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", productID), q, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

func (c *Client) ListVariations(ctx context.Context, parentID, perPage, page int) ([]Variation, error) {
	q := url.Values{}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	var variations []Variation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d/variations", parentID), q, nil, &variations); err != nil {
		return nil, err
	}
	return variations, nil
}

func (c *Client) GetVariation(ctx context.Context, parentID, variationID int) (*Variation, error) {
	var variation Variation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d/variations/%d", parentID, variationID), nil, nil, &variation); err != nil {
		return nil, err
	}
	return &variation, nil
}

func (c *Client) CreateVariation(ctx context.Context, parentID int, variation *Variation) (*Variation, error) {
	var created Variation
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/products/%d/variations", parentID), nil, variation, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateVariation(ctx context.Context, parentID, variationID int, variation *Variation) (*Variation, error) {
	var updated Variation
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d/variations/%d", parentID, variationID), nil, variation, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteVariation(ctx context.Context, parentID, variationID int, force bool) (*Variation, error) {
	q := url.Values{"force": {strconv.FormatBool(force)}}
	var deleted Variation
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d/variations/%d", parentID, variationID), q, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
