// Package query provides JQ-based querying of banking API payloads.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/itchyny/gojq"
)

// Engine executes JQ queries against decoded API payloads.
type Engine struct{}

// NewEngine creates a new query engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Result contains the values produced by a JQ query.
type Result struct {
	Values    []any    `json:"values"`           // Extracted values
	Errors    []string `json:"errors,omitempty"` // Runtime errors (e.g., type mismatch)
	RawCount  int      `json:"raw_count"`        // Count before deduplication and truncation
	Truncated bool     `json:"truncated,omitempty"`
}

// Compile parses and compiles a JQ expression.
func (e *Engine) Compile(expression string) (*gojq.Code, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		var parseErr *gojq.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("invalid jq expression at position %d: %w", parseErr.Offset, err)
		}
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}
	return code, nil
}

// Query runs a JQ expression against a payload as returned by the client.
// Nil outputs are skipped. maxResults <= 0 means no limit.
func (e *Engine) Query(input any, expression string, deduplicate bool, maxResults int) (*Result, error) {
	code, err := e.Compile(expression)
	if err != nil {
		return nil, err
	}

	result := &Result{Values: make([]any, 0)}
	seen := make(map[string]bool)
	seenErrors := make(map[string]bool)

	iter := code.Run(Normalize(input))
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}

		if err, isErr := v.(error); isErr {
			msg := formatJQError(err)
			if !seenErrors[msg] {
				seenErrors[msg] = true
				result.Errors = append(result.Errors, msg)
			}
			// gojq stops the stream after a runtime error
			continue
		}

		if v == nil {
			continue
		}
		result.RawCount++

		if deduplicate {
			key := valueKey(v)
			if seen[key] {
				continue
			}
			seen[key] = true
		}

		if maxResults > 0 && len(result.Values) >= maxResults {
			result.Truncated = true
			continue
		}
		result.Values = append(result.Values, v)
	}

	return result, nil
}

// Normalize converts json.Number values, which gojq cannot handle, into int,
// *big.Int or float64. Other values are returned as-is; maps and slices are
// copied so the input is left untouched.
func Normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return int(i)
		}
		if bi, ok := new(big.Int).SetString(val.String(), 10); ok {
			return bi
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	default:
		return v
	}
}

// formatJQError adds hints for common runtime errors. gojq returns plain
// errors for these, so the hints are matched on the message text.
func formatJQError(err error) string {
	var haltErr *gojq.HaltError
	if errors.As(err, &haltErr) {
		if haltErr.Value() == nil {
			return "query halted"
		}
		return fmt.Sprintf("query halted with: %v", haltErr.Value())
	}

	errStr := err.Error()
	var hint string
	switch {
	case strings.Contains(errStr, "cannot iterate over: null"):
		hint = " (the path may not exist in this response)"
	case strings.Contains(errStr, "object") && strings.Contains(errStr, "cannot be iterated"):
		hint = " (expected array but got object, try removing '[]')"
	case strings.Contains(errStr, "array") && strings.Contains(errStr, "cannot be indexed"):
		hint = " (expected object but got array, try adding '[]')"
	case strings.Contains(errStr, "cannot index"):
		hint = " (field not found or wrong type)"
	}
	return errStr + hint
}

// valueKey creates a string key for deduplication.
func valueKey(v any) string {
	switch val := v.(type) {
	case string:
		return "s:" + val
	case bool:
		return fmt.Sprintf("b:%v", val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("?:%v", val)
		}
		return "j:" + string(b)
	}
}
