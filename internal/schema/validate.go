package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValidationResult contains the result of validating a single payload.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validator validates decoded payloads against a compiled JSON Schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles a JSON Schema document.
func NewValidator(schemaJSON string) (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON Schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// Validate checks a payload as returned by the client (json.Number numbers).
func (v *Validator) Validate(value any) *ValidationResult {
	err := v.schema.Validate(value)
	if err == nil {
		return &ValidationResult{Valid: true}
	}
	return &ValidationResult{Errors: extractValidationErrors(err)}
}

// printer is a default English printer for localized error messages.
var printer = message.NewPrinter(language.English)

// extractValidationErrors flattens a validation error into "path: message"
// lines, leaf causes only, deduplicated and sorted.
func extractValidationErrors(err error) []string {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return []string{err.Error()}
	}

	seen := make(map[string]bool)
	var result []string
	collectErrors(validationErr, func(line string) {
		if !seen[line] {
			seen[line] = true
			result = append(result, line)
		}
	})
	sort.Strings(result)
	return result
}

func collectErrors(err *jsonschema.ValidationError, emit func(string)) {
	if err.ErrorKind != nil && len(err.Causes) == 0 {
		msg := err.ErrorKind.LocalizedString(printer)
		// $ref hops carry no information of their own
		if !strings.HasPrefix(msg, "$ref ") && !strings.HasPrefix(msg, "doesn't validate with") {
			path := "/" + strings.Join(err.InstanceLocation, "/")
			emit(path + ": " + msg)
		}
	}
	for _, cause := range err.Causes {
		collectErrors(cause, emit)
	}
}
