package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
)

// DefaultMovementsLimit is the page size used when MovementsOptions.Limit is zero.
const DefaultMovementsLimit = 25

// MovementsOptions selects a page of movements within a date range.
type MovementsOptions struct {
	// From is the first day of the range. Required.
	From time.Time
	// To is the last day of the range. Zero means today, evaluated when the
	// request is made.
	To time.Time
	// Limit is the number of movements to return (default DefaultMovementsLimit).
	Limit int
	// Offset is the number of movements to skip.
	Offset int
}

// movementsQuery is the wire form of MovementsOptions.
type movementsQuery struct {
	FromDate string `url:"fromDate"`
	ToDate   string `url:"toDate"`
	Limit    int    `url:"limit"`
	Offset   int    `url:"offset"`
}

// buildMovementsQuery resolves defaults against the client's clock.
func (c *Client) buildMovementsQuery(opts *MovementsOptions) (url.Values, error) {
	if opts == nil || opts.From.IsZero() {
		return nil, fmt.Errorf("from date is required")
	}
	if opts.Limit < 0 || opts.Offset < 0 {
		return nil, fmt.Errorf("limit and offset must be non-negative (limit=%d, offset=%d)", opts.Limit, opts.Offset)
	}

	to := opts.To
	if to.IsZero() {
		to = c.now()
	}
	limit := opts.Limit
	if limit == 0 {
		limit = DefaultMovementsLimit
	}

	return query.Values(movementsQuery{
		FromDate: FormatDate(opts.From),
		ToDate:   FormatDate(to),
		Limit:    limit,
		Offset:   opts.Offset,
	})
}

// ListMovements retrieves a page of movements (transactions) of a product.
func (c *Client) ListMovements(ctx context.Context, productID string, opts *MovementsOptions) (any, error) {
	q, err := c.buildMovementsQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("listing movements for product %q: %w", productID, err)
	}

	path := "/products/" + url.PathEscape(productID) + "/movements"
	movements, err := c.get(ctx, path, q)
	if err != nil {
		return nil, fmt.Errorf("listing movements for product %q: %w", productID, err)
	}
	return movements, nil
}

// GetMovement retrieves the detail of a single movement.
func (c *Client) GetMovement(ctx context.Context, movementID string) (any, error) {
	path := "/movements/" + url.PathEscape(movementID)
	movement, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting movement %q: %w", movementID, err)
	}
	return movement, nil
}
