// Package jsoncompact shrinks decoded JSON payloads before they are handed to
// an assistant, trimming long arrays and strings while keeping the shape.
package jsoncompact

import (
	"fmt"
	"unicode/utf8"
)

// Options controls JSON compaction behavior.
type Options struct {
	MaxArrayItems int // Trim arrays to N items (0 = no limit)
	MaxStringLen  int // Truncate strings longer than N runes (0 = no limit)
	MaxDepth      int // Replace values nested deeper than N (0 = unlimited)
}

// Default values for compaction options.
const (
	DefaultMaxArrayItems = 50
	DefaultMaxStringLen  = 500
	DefaultMaxDepth      = 0 // unlimited
)

// DefaultOptions returns the default compaction settings.
func DefaultOptions() *Options {
	return &Options{
		MaxArrayItems: DefaultMaxArrayItems,
		MaxStringLen:  DefaultMaxStringLen,
		MaxDepth:      DefaultMaxDepth,
	}
}

// Stats reports what compaction removed.
type Stats struct {
	TrimmedArrays   int `json:"trimmed_arrays"`
	DroppedItems    int `json:"dropped_items"`
	TruncatedString int `json:"truncated_strings"`
}

// Changed reports whether anything was removed.
func (s Stats) Changed() bool {
	return s.TrimmedArrays > 0 || s.TruncatedString > 0
}

// CompactValue returns a trimmed copy of a decoded JSON value; v itself is
// not modified. If opts is nil, DefaultOptions() is used.
func CompactValue(v any, opts *Options) (any, Stats) {
	if opts == nil {
		opts = DefaultOptions()
	}
	c := compactor{opts: opts}
	return c.walk(v, 0), c.stats
}

type compactor struct {
	opts  *Options
	stats Stats
}

func (c *compactor) walk(v any, depth int) any {
	if c.opts.MaxDepth > 0 && depth >= c.opts.MaxDepth {
		switch v.(type) {
		case []any, map[string]any:
			return "[max depth]"
		}
	}

	switch val := v.(type) {
	case []any:
		keep := len(val)
		if c.opts.MaxArrayItems > 0 && keep > c.opts.MaxArrayItems {
			keep = c.opts.MaxArrayItems
		}
		out := make([]any, 0, keep+1)
		for _, item := range val[:keep] {
			out = append(out, c.walk(item, depth+1))
		}
		if dropped := len(val) - keep; dropped > 0 {
			c.stats.TrimmedArrays++
			c.stats.DroppedItems += dropped
			out = append(out, fmt.Sprintf("... (%d more items)", dropped))
		}
		return out

	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = c.walk(item, depth+1)
		}
		return out

	case string:
		return c.truncate(val)

	default:
		return v
	}
}

func (c *compactor) truncate(s string) string {
	limit := c.opts.MaxStringLen
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	c.stats.TruncatedString++

	// cut on a rune boundary; descriptions are often Czech
	cut, n := 0, 0
	for i := range s {
		if n == limit {
			cut = i
			break
		}
		n++
	}
	remaining := utf8.RuneCountInString(s[cut:])
	return s[:cut] + fmt.Sprintf("... (%d more chars)", remaining)
}
