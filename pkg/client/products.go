package client

import (
	"context"
	"fmt"
)

// GetClient retrieves information about the logged-in account holder.
func (c *Client) GetClient(ctx context.Context) (any, error) {
	holder, err := c.get(ctx, "/client", nil)
	if err != nil {
		return nil, fmt.Errorf("getting client: %w", err)
	}
	return holder, nil
}

// ListProducts retrieves the financial products (accounts, cards, ...) of the client.
func (c *Client) ListProducts(ctx context.Context) (any, error) {
	products, err := c.get(ctx, "/products", nil)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}
