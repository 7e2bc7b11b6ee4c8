package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Object describes the fields of one JSON object.
type Object struct {
	// Fields maps a JSON key to its validator rule.
	Fields map[string]string

	// Nested maps a JSON key to a nested object (or array of objects).
	Nested map[string]Nested
}

// Nested is an object-valued or array-of-objects field.
type Nested struct {
	Object   Object
	List     bool
	Optional bool
}

// Shape binds an Object description to the Go type the payload decodes into.
// When List is set the payload must be a JSON array whose every element
// matches Object.
type Shape[T any] struct {
	Name   string
	Object Object
	List   bool

	// Untyped accepts any body, including an empty one, and decodes nothing.
	Untyped bool
}

// Empty accepts any success body. Used for endpoints such as DELETE that
// answer with no content.
var Empty = Shape[struct{}]{Name: "Empty", Untyped: true}

// Decode validates body against the shape and, on success, decodes it into T.
func (s Shape[T]) Decode(body []byte) (T, error) {
	var out T
	if s.Untyped {
		return out, nil
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return out, &ValidationError{Shape: s.Name, Fields: []FieldError{{Rule: "json"}}}
	}

	if fields := s.Check(raw); len(fields) > 0 {
		return out, &ValidationError{Shape: s.Name, Fields: fields}
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, &ValidationError{Shape: s.Name, Fields: []FieldError{decodeFieldError(err)}}
	}
	return out, nil
}

// Check validates an already decoded JSON value and returns every failing
// field. A nil result means the value conforms.
func (s Shape[T]) Check(raw any) []FieldError {
	if !s.List {
		return checkObject(raw, s.Object, "")
	}

	items, ok := raw.([]any)
	if !ok {
		return []FieldError{{Rule: "array", Value: raw}}
	}

	var errs []FieldError
	for i, item := range items {
		errs = append(errs, checkObject(item, s.Object, fmt.Sprintf("[%d]", i))...)
	}
	return errs
}

func checkObject(raw any, obj Object, prefix string) []FieldError {
	data, ok := raw.(map[string]any)
	if !ok {
		return []FieldError{{Path: prefix, Rule: "object", Value: raw}}
	}

	errs := caseCollisions(data, obj, prefix)

	for _, key := range sortedKeys(obj.Fields) {
		value := data[key]
		if err := validate.VarCtx(context.Background(), value, obj.Fields[key]); err != nil {
			rule := failedTag(err)
			if value == nil {
				rule = "required"
			}
			errs = append(errs, FieldError{Path: join(prefix, key), Rule: rule, Value: value})
		}
	}

	for _, key := range sortedKeys(obj.Nested) {
		errs = append(errs, checkNested(data[key], obj.Nested[key], join(prefix, key))...)
	}

	return errs
}

// caseCollisions reports keys that equal a declared key only when case is
// ignored. encoding/json matches keys case-insensitively, so such a key
// would overwrite the checked value when the body is decoded into T.
func caseCollisions(data map[string]any, obj Object, prefix string) []FieldError {
	declared := make([]string, 0, len(obj.Fields)+len(obj.Nested))
	declared = append(declared, sortedKeys(obj.Fields)...)
	declared = append(declared, sortedKeys(obj.Nested)...)

	var errs []FieldError
	for _, key := range sortedKeys(data) {
		for _, d := range declared {
			if key != d && strings.EqualFold(key, d) {
				errs = append(errs, FieldError{Path: join(prefix, key), Rule: "duplicate", Value: data[key]})
				break
			}
		}
	}
	return errs
}

func checkNested(value any, n Nested, path string) []FieldError {
	if value == nil {
		if n.Optional {
			return nil
		}
		return []FieldError{{Path: path, Rule: "required"}}
	}

	if !n.List {
		return checkObject(value, n.Object, path)
	}

	items, ok := value.([]any)
	if !ok {
		return []FieldError{{Path: path, Rule: "array", Value: value}}
	}

	var errs []FieldError
	for i, item := range items {
		errs = append(errs, checkObject(item, n.Object, fmt.Sprintf("%s[%d]", path, i))...)
	}
	return errs
}

func failedTag(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return err.Error()
}

func decodeFieldError(err error) FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return FieldError{Path: typeErr.Field, Rule: "type", Value: typeErr.Value}
	}
	return FieldError{Rule: "decode", Value: err.Error()}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
