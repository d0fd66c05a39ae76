package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/ing-mcp/internal/schema"
	"github.com/usestring/ing-mcp/pkg/types"
)

// InferSchemaInput is the input for ing_infer_schema.
type InferSchemaInput struct {
	Source
}

// InferSchemaOutput is the output for ing_infer_schema.
type InferSchemaOutput struct {
	Schema      any `json:"schema"`
	SampleCount int `json:"sample_count"`
}

// ValidateSchemaInput is the input for ing_validate_schema.
type ValidateSchemaInput struct {
	Source
	Schema string `json:"schema" jsonschema:"required,JSON Schema document"`
}

// ValidateSchemaOutput is the output for ing_validate_schema.
type ValidateSchemaOutput struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ToolInferSchema infers a JSON Schema from one API payload.
func ToolInferSchema(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferSchemaInput) (*sdkmcp.CallToolResult, InferSchemaOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferSchemaInput) (*sdkmcp.CallToolResult, InferSchemaOutput, error) {
		payload, err := d.Load(ctx, input.Source)
		if err != nil {
			return nil, InferSchemaOutput{}, err
		}

		inferred := schema.Infer(payload)
		// The invopop schema type marshals as JSON but is not a plain map.
		s, err := types.ToAny(inferred.Schema)
		if err != nil {
			return nil, InferSchemaOutput{}, err
		}
		return nil, InferSchemaOutput{Schema: s, SampleCount: inferred.SampleCount}, nil
	}
}

// ToolValidateSchema validates one API payload against a JSON Schema.
func ToolValidateSchema(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateSchemaInput) (*sdkmcp.CallToolResult, ValidateSchemaOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateSchemaInput) (*sdkmcp.CallToolResult, ValidateSchemaOutput, error) {
		if input.Schema == "" {
			return nil, ValidateSchemaOutput{}, ErrInvalidInput("schema is required")
		}
		validator, err := schema.NewValidator(input.Schema)
		if err != nil {
			return nil, ValidateSchemaOutput{}, ErrInvalidInput(err.Error())
		}

		payload, err := d.Load(ctx, input.Source)
		if err != nil {
			return nil, ValidateSchemaOutput{}, err
		}

		result := validator.Validate(payload)
		return nil, ValidateSchemaOutput{Valid: result.Valid, Errors: result.Errors}, nil
	}
}
