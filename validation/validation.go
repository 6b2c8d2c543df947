// Package validation provides the error types reported when an analytics
// payload fails construction: shape errors for missing or mistyped fields,
// enum errors for values outside an allowed set, and parse errors for
// malformed JSON text. All three are distinguishable with errors.As.
package validation

import (
	"fmt"
	"strings"
)

// FieldError reports a field that is missing, empty, or of the wrong type.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// EnumError reports a value outside a field's allowed set.
type EnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("%s: must be one of: %s (got %q)", e.Field, strings.Join(e.Allowed, ", "), e.Value)
}

// ParseError reports JSON text that could not be decoded. It wraps the
// underlying decoding error.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse event payload: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Required reports a missing required field.
func Required(field string) error {
	return &FieldError{Field: field, Message: "is required"}
}

// WrongType reports a field whose value has the wrong type.
func WrongType(field, want string, got any) error {
	return &FieldError{Field: field, Message: fmt.Sprintf("must be a %s, got %T", want, got)}
}

// OutOfRange reports a numeric field whose value does not fit the target
// type.
func OutOfRange(field string) error {
	return &FieldError{Field: field, Message: "is out of range"}
}

// InvalidEnum reports a value outside a field's allowed set.
func InvalidEnum(field, value string, allowed ...string) error {
	return &EnumError{Field: field, Value: value, Allowed: allowed}
}

// Parse wraps a JSON decoding failure. A nil error passes through.
func Parse(err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Err: err}
}

// InField prefixes an error with the name of the enclosing field while
// preserving the wrapped error for errors.As dispatch. A nil error passes
// through.
func InField(field string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", field, err)
}

// Validator is an interface for types that can validate themselves.
type Validator interface {
	Validate() error
}
