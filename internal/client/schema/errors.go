package schema

import (
	"fmt"
	"strings"
)

// FieldError names one field that failed its rule.
type FieldError struct {
	// Path is the dotted path to the field, e.g. "profile.userId" or "[2].createdAt".
	// It is empty when the payload as a whole is wrong.
	Path string

	// Rule is the validator tag that failed, or "json"/"type"/"object"/"array"
	// for structural failures. "duplicate" marks a key that repeats a declared
	// key in different case.
	Rule string

	// Value is the offending value as decoded from JSON, nil when missing.
	Value any
}

func (f FieldError) String() string {
	path := f.Path
	if path == "" {
		path = "<root>"
	}
	return fmt.Sprintf("%s: %s", path, f.Rule)
}

// ValidationError is returned when a payload does not conform to a shape.
type ValidationError struct {
	Shape  string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("invalid %s: %s", e.Shape, strings.Join(parts, "; "))
}

// Paths returns the failing field paths in report order.
func (e *ValidationError) Paths() []string {
	out := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		out[i] = f.Path
	}
	return out
}
