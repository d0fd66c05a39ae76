// Package types provides shared types for ing-mcp tool outputs.
package types

import "encoding/json"

// ToAny round-trips a typed value through JSON to produce an untyped any.
// Tool output fields holding library-specific types (such as an inferred
// schema) are declared as any and filled through this.
func ToAny(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResourceRef points to an MCP resource.
type ResourceRef struct {
	URI  string `json:"uri"`
	MIME string `json:"mime"`
	Hint string `json:"hint,omitempty"`
}
