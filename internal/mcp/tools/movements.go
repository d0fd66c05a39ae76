package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/ing-mcp/pkg/client"
	"github.com/usestring/ing-mcp/pkg/jsoncompact"
	"github.com/usestring/ing-mcp/pkg/types"
)

// MovementsInput is the input for ing_movements.
type MovementsInput struct {
	ProductID string `json:"product_id" jsonschema:"required,Product UUID (from ing_products)"`
	FromDate  string `json:"from_date" jsonschema:"required,First day of the range (YYYY-MM-DD)"`
	ToDate    string `json:"to_date,omitempty" jsonschema:"Last day of the range (YYYY-MM-DD, default: today)"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Page size (default: 25)"`
	Offset    int    `json:"offset,omitempty" jsonschema:"Number of movements to skip (default: 0)"`
	Full      bool   `json:"full,omitempty" jsonschema:"Return the payload untrimmed (default: compact)"`
}

// MovementsOutput is the output for ing_movements.
type MovementsOutput struct {
	ProductID  string             `json:"product_id"`
	Movements  any                `json:"movements"`
	Compaction *jsoncompact.Stats `json:"compaction,omitempty"`
}

// MovementInput is the input for ing_movement.
type MovementInput struct {
	MovementID string `json:"movement_id" jsonschema:"required,Movement UUID"`
}

// MovementOutput is the output for ing_movement.
type MovementOutput struct {
	Movement any               `json:"movement"`
	Resource types.ResourceRef `json:"resource"`
}

// MovementDetailsInput is the input for ing_movement_details.
type MovementDetailsInput struct {
	MovementIDs []string `json:"movement_ids" jsonschema:"required,Movement UUIDs to fetch"`
}

// MovementDetailsOutput is the output for ing_movement_details.
type MovementDetailsOutput struct {
	Movements   []MovementDetail `json:"movements,omitzero"`
	FailedCount int              `json:"failed_count"`
}

// MovementDetail is one movement of a batch fetch.
type MovementDetail struct {
	MovementID string `json:"movement_id"`
	Movement   any    `json:"movement,omitempty"`
	Error      string `json:"error,omitempty"`
}

// MovementsOptions converts tool date strings into client options.
func MovementsOptions(fromDate, toDate string, limit, offset int) (*client.MovementsOptions, error) {
	if strings.TrimSpace(fromDate) == "" {
		return nil, ErrInvalidInput("from_date is required")
	}
	from, err := ParseDate("from_date", fromDate)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate("to_date", toDate)
	if err != nil {
		return nil, err
	}
	if !to.IsZero() && to.Before(from) {
		return nil, ErrInvalidInput("to_date is before from_date")
	}
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidInput("limit and offset must be non-negative")
	}
	return &client.MovementsOptions{From: from, To: to, Limit: limit, Offset: offset}, nil
}

// ToolMovements lists movements of a product within a date range.
func ToolMovements(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input MovementsInput) (*sdkmcp.CallToolResult, MovementsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input MovementsInput) (*sdkmcp.CallToolResult, MovementsOutput, error) {
		if input.ProductID == "" {
			return nil, MovementsOutput{}, ErrInvalidInput("product_id is required")
		}
		opts, err := MovementsOptions(input.FromDate, input.ToDate, input.Limit, input.Offset)
		if err != nil {
			return nil, MovementsOutput{}, err
		}

		movements, err := d.Client.ListMovements(ctx, input.ProductID, opts)
		if err != nil {
			return nil, MovementsOutput{}, WrapBankError(err)
		}

		out, stats := d.compact(movements, input.Full)
		return nil, MovementsOutput{
			ProductID:  input.ProductID,
			Movements:  out,
			Compaction: stats,
		}, nil
	}
}

// ToolMovement returns the detail of one movement, served from cache when possible.
func ToolMovement(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input MovementInput) (*sdkmcp.CallToolResult, MovementOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input MovementInput) (*sdkmcp.CallToolResult, MovementOutput, error) {
		if input.MovementID == "" {
			return nil, MovementOutput{}, ErrInvalidInput("movement_id is required")
		}

		movement, err := d.Movements.Fetch(ctx, input.MovementID)
		if err != nil {
			return nil, MovementOutput{}, WrapBankError(err)
		}
		return nil, MovementOutput{
			Movement: movement,
			Resource: types.ResourceRef{
				URI:  MovementURI(input.MovementID),
				MIME: MimeJSON,
				Hint: "Cached movement detail, readable without another bank call",
			},
		}, nil
	}
}

// ToolMovementDetails fetches several movement details at once.
func ToolMovementDetails(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input MovementDetailsInput) (*sdkmcp.CallToolResult, MovementDetailsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input MovementDetailsInput) (*sdkmcp.CallToolResult, MovementDetailsOutput, error) {
		if len(input.MovementIDs) == 0 {
			return nil, MovementDetailsOutput{}, ErrInvalidInput("movement_ids is required")
		}
		if limit := d.Config.MaxBatchMovements; limit > 0 && len(input.MovementIDs) > limit {
			return nil, MovementDetailsOutput{}, ErrInvalidInput(fmt.Sprintf("at most %d movement_ids per call", limit))
		}

		results := d.Movements.FetchMany(ctx, input.MovementIDs)

		output := MovementDetailsOutput{Movements: make([]MovementDetail, len(results))}
		for i, r := range results {
			output.Movements[i] = MovementDetail{MovementID: r.MovementID, Movement: r.Movement}
			if r.Err != nil {
				output.Movements[i].Error = WrapBankError(r.Err).Error()
				output.FailedCount++
			}
		}
		return nil, output, nil
	}
}
