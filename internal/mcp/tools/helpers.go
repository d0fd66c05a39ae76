// Package tools contains MCP tool implementations for the ING banking API.
package tools

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/usestring/ing-mcp/pkg/client"
	"github.com/usestring/ing-mcp/pkg/jsoncompact"
)

// MIME type constant.
const MimeJSON = "application/json"

// MovementURIPrefix is the resource URI prefix for cached movement details.
const MovementURIPrefix = "ing://movement/"

// MovementURI returns the resource URI of a movement.
func MovementURI(movementID string) string {
	return MovementURIPrefix + url.PathEscape(movementID)
}

// inputDateLayouts are the date formats accepted from tool callers.
var inputDateLayouts = []string{time.DateOnly, client.DateLayout}

// ParseDate parses a calendar date given as YYYY-MM-DD or DD/MM/YYYY in the
// local time zone. An empty string yields the zero time.
func ParseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range inputDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidInput(fmt.Sprintf("%s: expected YYYY-MM-DD or DD/MM/YYYY, got %q", field, s))
}

// compact trims a payload with the configured limits unless full output was requested.
func (d *Deps) compact(v any, full bool) (any, *jsoncompact.Stats) {
	if full {
		return v, nil
	}
	out, stats := jsoncompact.CompactValue(v, d.Config.CompactOptions())
	if !stats.Changed() {
		return out, nil
	}
	return out, &stats
}
