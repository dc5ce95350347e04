package woo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

func (c *Client) ListCategories(ctx context.Context, perPage int) ([]Category, error) {
	q := url.Values{}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/products/categories", q, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) GetCategory(ctx context.Context, categoryID int) (*Category, error) {
	var category Category
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/categories/%d", categoryID), nil, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategoryBySlug returns the category with the given slug, or nil when the
// store has none.
func (c *Client) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	q := url.Values{"slug": {slug}}
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/products/categories", q, nil, &categories); err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, nil
	}
	return &categories[0], nil
}

func (c *Client) CreateCategory(ctx context.Context, category *Category) (*Category, error) {
	var created Category
	if err := c.do(ctx, http.MethodPost, "/products/categories", nil, category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCategory(ctx context.Context, categoryID int, category *Category) (*Category, error) {
	var updated Category
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/categories/%d", categoryID), nil, category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCategory(ctx context.Context, categoryID int, force bool) (*Category, error) {
	q := url.Values{"force": {strconv.FormatBool(force)}}
	var deleted Category
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/categories/%d", categoryID), q, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

// GetOrCreateCategory finds a category by the slug derived from name, creating
// it under parent (0 for top level) when it does not exist yet.
func (c *Client) GetOrCreateCategory(ctx context.Context, name string, parent int) (*Category, error) {
	slug := Slugify(name)

	existing, err := c.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return c.CreateCategory(ctx, &Category{Name: name, Slug: slug, Parent: parent})
}

// GetCategoryHierarchy returns the ancestors of a category plus the category
// itself, ordered root first.
func (c *Client) GetCategoryHierarchy(ctx context.Context, categoryID int) ([]Category, error) {
	var chain []Category
	id := categoryID
	for id != 0 {
		category, err := c.GetCategory(ctx, id)
		if err != nil {
			return nil, err
		}
		chain = append([]Category{*category}, chain...)
		id = category.Parent
	}
	return chain, nil
}

// GetOrCreateCategoryTree resolves a "Parent/Child/Leaf" path, creating any
// missing level, and returns the leaf category.
func (c *Client) GetOrCreateCategoryTree(ctx context.Context, path string) (*Category, error) {
	var current *Category
	parent := 0

	for _, part := range strings.Split(path, "/") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		category, err := c.GetOrCreateCategory(ctx, part, parent)
		if err != nil {
			return nil, err
		}
		current = category
		parent = category.ID
	}

	if current == nil {
		return nil, fmt.Errorf("category path is empty")
	}
	return current, nil
}

// Slugify derives a WooCommerce-style slug from a category or attribute name.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
