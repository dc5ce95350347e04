package woo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

func (c *Client) ListAttributes(ctx context.Context, perPage int) ([]Attribute, error) {
	q := url.Values{}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	var attributes []Attribute
	if err := c.do(ctx, http.MethodGet, "/products/attributes", q, nil, &attributes); err != nil {
		return nil, err
	}
	return attributes, nil
}

func (c *Client) GetAttribute(ctx context.Context, attributeID int) (*Attribute, error) {
	var attribute Attribute
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/attributes/%d", attributeID), nil, nil, &attribute); err != nil {
		return nil, err
	}
	return &attribute, nil
}

func (c *Client) CreateAttribute(ctx context.Context, name, slug string) (*Attribute, error) {
	if slug == "" {
		slug = "pa_" + strings.ReplaceAll(strings.ToLower(name), " ", "_")
	}
	var created Attribute
	if err := c.do(ctx, http.MethodPost, "/products/attributes", nil, &Attribute{Name: name, Slug: slug}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteAttribute(ctx context.Context, attributeID int, force bool) (*Attribute, error) {
	q := url.Values{"force": {strconv.FormatBool(force)}}
	var deleted Attribute
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/attributes/%d", attributeID), q, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

// GetAttributeBySlug finds a global attribute by slug, returning nil when the
// store has no match. Stores register global attribute slugs both with and
// without the pa_ prefix, so both forms are accepted.
func (c *Client) GetAttributeBySlug(ctx context.Context, slug string) (*Attribute, error) {
	attributes, err := c.ListAttributes(ctx, 100)
	if err != nil {
		return nil, err
	}
	for i := range attributes {
		if attributes[i].Slug == slug || attributes[i].Slug == "pa_"+slug {
			return &attributes[i], nil
		}
	}
	return nil, nil
}

func (c *Client) ListAttributeTerms(ctx context.Context, attributeID, perPage int) ([]AttributeTerm, error) {
	q := url.Values{}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	var terms []AttributeTerm
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/attributes/%d/terms", attributeID), q, nil, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

func (c *Client) CreateAttributeTerm(ctx context.Context, attributeID int, name, slug string) (*AttributeTerm, error) {
	if slug == "" {
		slug = Slugify(name)
	}
	var created AttributeTerm
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/products/attributes/%d/terms", attributeID), nil, &AttributeTerm{Name: name, Slug: slug}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
