// Package optional provides a tri-state field representation for payloads
// that distinguish an absent field from one explicitly set to null.
//
// A Field is in exactly one of three states: unset (never supplied, kept
// off the wire), null (supplied as an explicit JSON null), or holding a
// value. The zero value of a Field is unset.
package optional

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Field holds a value that may be unset, explicitly null, or present.
type Field[T any] struct {
	value *T
	set   bool
}

// Set returns a Field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{value: &v, set: true}
}

// Null returns a Field that is explicitly null.
func Null[T any]() Field[T] {
	return Field[T]{set: true}
}

// Unset returns a Field that was never supplied. It is the zero value,
// spelled out for readability at construction sites.
func Unset[T any]() Field[T] {
	return Field[T]{}
}

// IsSet reports whether the field was supplied at all, either as a value
// or as an explicit null.
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the field was supplied as an explicit null.
func (f Field[T]) IsNull() bool {
	return f.set && f.value == nil
}

// IsUnset reports whether the field was never supplied.
func (f Field[T]) IsUnset() bool {
	return !f.set
}

// Get returns the held value and true when one is present.
func (f Field[T]) Get() (T, bool) {
	if f.value == nil {
		var zero T
		return zero, false
	}
	return *f.value, true
}

// Ptr returns a pointer to a copy of the held value, or nil when the
// field is null or unset.
func (f Field[T]) Ptr() *T {
	if f.value == nil {
		return nil
	}
	v := *f.value
	return &v
}

// SetValue stores v in the field.
func (f *Field[T]) SetValue(v T) {
	f.value = &v
	f.set = true
}

// SetNull marks the field as explicitly null.
func (f *Field[T]) SetNull() {
	f.value = nil
	f.set = true
}

// Clear returns the field to the unset state.
func (f *Field[T]) Clear() {
	f.value = nil
	f.set = false
}

// MarshalJSON encodes the held value, or a JSON null when the field is
// null or unset. encoding/json cannot conditionally omit non-pointer
// struct fields, so keeping unset fields off the wire entirely is the
// enclosing type's responsibility.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.value == nil {
		return jsonNull, nil
	}
	return json.Marshal(*f.value)
}

// UnmarshalJSON decodes a value, treating a JSON null as an explicit
// null. Absent fields never reach UnmarshalJSON and stay unset.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		f.SetNull()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.value = &v
	f.set = true
	return nil
}
