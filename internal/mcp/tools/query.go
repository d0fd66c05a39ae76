package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// QueryInput is the input for ing_query.
type QueryInput struct {
	Source
	Expression  string `json:"expression" jsonschema:"required,JQ expression, e.g. .movements[] | select(.amount < 0) | .amount"`
	Deduplicate bool   `json:"deduplicate,omitempty" jsonschema:"Drop repeated values"`
	MaxResults  int    `json:"max_results,omitempty" jsonschema:"Max values to return (default: 50)"`
}

// QueryOutput is the output for ing_query.
type QueryOutput struct {
	Values    []any    `json:"values,omitzero"`
	Errors    []string `json:"errors,omitempty"`
	RawCount  int      `json:"raw_count"`
	Truncated bool     `json:"truncated,omitempty"`
}

// ToolQuery runs a JQ expression against one API payload.
func ToolQuery(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input QueryInput) (*sdkmcp.CallToolResult, QueryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input QueryInput) (*sdkmcp.CallToolResult, QueryOutput, error) {
		if input.Expression == "" {
			return nil, QueryOutput{}, ErrInvalidInput("expression is required")
		}
		// Fail fast on a bad expression before hitting the bank.
		if _, err := d.Query.Compile(input.Expression); err != nil {
			return nil, QueryOutput{}, ErrInvalidInput(err.Error())
		}

		payload, err := d.Load(ctx, input.Source)
		if err != nil {
			return nil, QueryOutput{}, err
		}

		maxResults := input.MaxResults
		if maxResults <= 0 {
			maxResults = d.Config.DefaultQueryLimit
		}

		result, err := d.Query.Query(payload, input.Expression, input.Deduplicate, maxResults)
		if err != nil {
			return nil, QueryOutput{}, ErrInvalidInput(err.Error())
		}

		return nil, QueryOutput{
			Values:    result.Values,
			Errors:    result.Errors,
			RawCount:  result.RawCount,
			Truncated: result.Truncated,
		}, nil
	}
}
