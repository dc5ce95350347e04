package woo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type OrderListOptions struct {
	PerPage  int
	Page     int
	Status   string
	Customer int
}

func (c *Client) ListOrders(ctx context.Context, opts OrderListOptions) ([]Order, error) {
	q := url.Values{}
	if opts.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.Customer > 0 {
		q.Set("customer", strconv.Itoa(opts.Customer))
	}

	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders", q, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
