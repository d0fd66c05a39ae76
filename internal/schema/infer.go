// Package schema infers and validates JSON Schemas for banking API payloads.
// The bank publishes no schema, so shapes are learned from observed responses.
package schema

import (
	"encoding/json"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
)

// Inferred is a JSON Schema (Draft 2020-12) learned from sample payloads.
type Inferred struct {
	Schema      *jsonschema.Schema `json:"schema"`
	SampleCount int                `json:"sample_count"`
}

// Infer merges the shapes of all samples into one schema. An object property
// is required only when present and non-null in every object observed at
// that position. Mixed integer/number observations collapse to number.
func Infer(samples ...any) *Inferred {
	root := newNode()
	for _, s := range samples {
		root.observe(s)
	}
	return &Inferred{Schema: root.schema(), SampleCount: len(samples)}
}

var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// node accumulates observations of the values found at one position.
type node struct {
	types   map[string]int
	formats map[string]int
	props   map[string]*node
	nulls   map[string]bool
	items   *node
}

func newNode() *node {
	return &node{types: make(map[string]int)}
}

func (n *node) observe(v any) {
	switch val := v.(type) {
	case nil:
		n.types["null"]++
	case bool:
		n.types["boolean"]++
	case json.Number:
		if isIntegerLiteral(val.String()) {
			n.types["integer"]++
		} else {
			n.types["number"]++
		}
	case float64:
		if math.Trunc(val) == val && !math.IsInf(val, 0) {
			n.types["integer"]++
		} else {
			n.types["number"]++
		}
	case int, int64:
		n.types["integer"]++
	case string:
		n.types["string"]++
		if f := detectFormat(val); f != "" {
			if n.formats == nil {
				n.formats = make(map[string]int)
			}
			n.formats[f]++
		}
	case []any:
		n.types["array"]++
		if len(val) > 0 && n.items == nil {
			n.items = newNode()
		}
		for _, item := range val {
			n.items.observe(item)
		}
	case map[string]any:
		n.types["object"]++
		if n.props == nil {
			n.props = make(map[string]*node)
			n.nulls = make(map[string]bool)
		}
		for k, item := range val {
			child, ok := n.props[k]
			if !ok {
				child = newNode()
				n.props[k] = child
			}
			child.observe(item)
			if item == nil {
				n.nulls[k] = true
			}
		}
	}
}

func (n *node) schema() *jsonschema.Schema {
	if n.types["integer"] > 0 && n.types["number"] > 0 {
		n.types["number"] += n.types["integer"]
		delete(n.types, "integer")
	}

	kinds := make([]string, 0, len(n.types))
	for t := range n.types {
		kinds = append(kinds, t)
	}
	sort.Strings(kinds)

	switch len(kinds) {
	case 0:
		return &jsonschema.Schema{}
	case 1:
		return n.schemaFor(kinds[0])
	}

	anyOf := make([]*jsonschema.Schema, 0, len(kinds))
	for _, t := range kinds {
		anyOf = append(anyOf, n.schemaFor(t))
	}
	return &jsonschema.Schema{AnyOf: anyOf}
}

func (n *node) schemaFor(t string) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: t}

	switch t {
	case "string":
		for f, count := range n.formats {
			if count == n.types["string"] {
				s.Format = f
			}
		}

	case "array":
		if n.items != nil {
			s.Items = n.items.schema()
		}

	case "object":
		s.Properties = jsonschema.NewProperties()
		keys := make([]string, 0, len(n.props))
		for k := range n.props {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			child := n.props[k]
			s.Properties.Set(k, child.schema())
			if child.observations() == n.types["object"] && !n.nulls[k] {
				s.Required = append(s.Required, k)
			}
		}
	}
	return s
}

func (n *node) observations() int {
	total := 0
	for _, c := range n.types {
		total += c
	}
	return total
}

func isIntegerLiteral(s string) bool {
	return !strings.ContainsAny(s, ".eE")
}

func detectFormat(s string) string {
	switch {
	case uuidPattern.MatchString(s):
		return "uuid"
	case len(s) == 10 && isDate(s, time.DateOnly):
		return "date"
	case isDate(s, time.RFC3339):
		return "date-time"
	}
	return ""
}

func isDate(s, layout string) bool {
	_, err := time.Parse(layout, s)
	return err == nil
}
