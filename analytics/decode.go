package analytics

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/zobeirhamid/trieve/optional"
	"github.com/zobeirhamid/trieve/validation"
)

var errTrailingData = errors.New("unexpected data after top-level value")

// decodeJSON parses JSON text into the generic map form shared by the
// FromMap constructors. A JSON null yields ok=false and no error, so
// callers treat "null" as the absence of a value. Numbers decode as
// json.Number to keep integer fields exact.
func decodeJSON(data []byte) (map[string]any, bool, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, false, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, false, validation.Parse(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, false, validation.Parse(errTrailingData)
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, false, validation.WrongType("payload", "JSON object", raw)
	}
	return m, true, nil
}

// stringField extracts a required string value. Empty strings count as
// absent, matching the rule that a field at its zero value was not
// supplied.
func stringField(m map[string]any, field string) (string, error) {
	raw, ok := m[field]
	if !ok || raw == nil {
		return "", validation.Required(field)
	}
	s, isString := raw.(string)
	if !isString {
		return "", validation.WrongType(field, "string", raw)
	}
	if s == "" {
		return "", validation.Required(field)
	}
	return s, nil
}

// intField extracts a required integer value, accepting the numeric
// representations a generic JSON map may carry. Floats with a fractional
// part and numbers beyond the int range are rejected.
func intField(m map[string]any, field string) (int, error) {
	raw, ok := m[field]
	if !ok || raw == nil {
		return 0, validation.Required(field)
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return intFromInt64(field, v)
	case float64:
		if v != math.Trunc(v) {
			return 0, validation.WrongType(field, "integer", raw)
		}
		// math.MaxInt64 rounds up to 1<<63 as a float64, so the overflow
		// test on the high side is >=.
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, validation.OutOfRange(field)
		}
		return intFromInt64(field, int64(v))
	case json.Number:
		n, err := v.Int64()
		if errors.Is(err, strconv.ErrRange) {
			return 0, validation.OutOfRange(field)
		}
		if err != nil {
			return 0, validation.WrongType(field, "integer", raw)
		}
		return intFromInt64(field, n)
	default:
		return 0, validation.WrongType(field, "integer", raw)
	}
}

// intFromInt64 narrows an int64 to int, which can lose range on 32-bit
// platforms.
func intFromInt64(field string, n int64) (int, error) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, validation.OutOfRange(field)
	}
	return int(n), nil
}

// uuidField extracts a required UUID, accepting the canonical string form
// or an already-parsed uuid.UUID. The nil UUID counts as absent.
func uuidField(m map[string]any, field string) (uuid.UUID, error) {
	raw, ok := m[field]
	if !ok || raw == nil {
		return uuid.Nil, validation.Required(field)
	}

	switch v := raw.(type) {
	case uuid.UUID:
		if v == uuid.Nil {
			return uuid.Nil, validation.Required(field)
		}
		return v, nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, &validation.FieldError{Field: field, Message: "must be a valid UUID"}
		}
		if id == uuid.Nil {
			return uuid.Nil, validation.Required(field)
		}
		return id, nil
	default:
		return uuid.Nil, validation.WrongType(field, "UUID string", raw)
	}
}

// optionalBool extracts a tri-state boolean value: a missing key stays
// unset, an explicit null is preserved, and anything but a bool is
// rejected.
func optionalBool(m map[string]any, field string) (optional.Field[bool], error) {
	raw, ok := m[field]
	if !ok {
		return optional.Unset[bool](), nil
	}
	if raw == nil {
		return optional.Null[bool](), nil
	}

	b, isBool := raw.(bool)
	if !isBool {
		return optional.Field[bool]{}, validation.WrongType(field, "boolean", raw)
	}
	return optional.Set(b), nil
}

// optionalString extracts a tri-state string value. Unlike required
// string fields, an empty string is a legitimate supplied value here.
func optionalString(m map[string]any, field string) (optional.Field[string], error) {
	raw, ok := m[field]
	if !ok {
		return optional.Unset[string](), nil
	}
	if raw == nil {
		return optional.Null[string](), nil
	}

	s, isString := raw.(string)
	if !isString {
		return optional.Field[string]{}, validation.WrongType(field, "string", raw)
	}
	return optional.Set(s), nil
}
