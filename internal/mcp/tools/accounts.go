package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/ing-mcp/pkg/jsoncompact"
)

// ClientInput is the input for ing_client.
type ClientInput struct{}

// ClientOutput is the output for ing_client.
type ClientOutput struct {
	Client any `json:"client"`
}

// ProductsInput is the input for ing_products.
type ProductsInput struct {
	Full bool `json:"full,omitempty" jsonschema:"Return the payload untrimmed (default: compact)"`
}

// ProductsOutput is the output for ing_products.
type ProductsOutput struct {
	Products   any                `json:"products"`
	Compaction *jsoncompact.Stats `json:"compaction,omitempty"`
}

// ToolClient returns information about the logged-in account holder.
func ToolClient(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ClientInput) (*sdkmcp.CallToolResult, ClientOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ClientInput) (*sdkmcp.CallToolResult, ClientOutput, error) {
		holder, err := d.Client.GetClient(ctx)
		if err != nil {
			return nil, ClientOutput{}, WrapBankError(err)
		}
		return nil, ClientOutput{Client: holder}, nil
	}
}

// ToolProducts lists the client's financial products.
func ToolProducts(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ProductsInput) (*sdkmcp.CallToolResult, ProductsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ProductsInput) (*sdkmcp.CallToolResult, ProductsOutput, error) {
		products, err := d.Client.ListProducts(ctx)
		if err != nil {
			return nil, ProductsOutput{}, WrapBankError(err)
		}

		out, stats := d.compact(products, input.Full)
		return nil, ProductsOutput{Products: out, Compaction: stats}, nil
	}
}
