// Package prompts contains MCP prompt implementations for the ING banking tools.
package prompts

// Config holds configuration needed by prompts.
type Config struct {
	DefaultPageSize int // movements returned per ing_movements call without limit
	MaxBatch        int // movement_ids accepted by ing_movement_details
}
