// Package optional_test provides tests for the tri-state field
// representation.
package optional_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zobeirhamid/trieve/optional"
)

func TestField_States(t *testing.T) {
	t.Helper()

	tests := []struct {
		name    string
		field   optional.Field[string]
		isSet   bool
		isNull  bool
		isUnset bool
	}{
		{"zero value", optional.Field[string]{}, false, false, true},
		{"unset", optional.Unset[string](), false, false, true},
		{"null", optional.Null[string](), true, true, false},
		{"value", optional.Set("user-321"), true, false, false},
		{"empty string value", optional.Set(""), true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.IsSet() != tt.isSet {
				t.Errorf("IsSet: got %v, want %v", tt.field.IsSet(), tt.isSet)
			}
			if tt.field.IsNull() != tt.isNull {
				t.Errorf("IsNull: got %v, want %v", tt.field.IsNull(), tt.isNull)
			}
			if tt.field.IsUnset() != tt.isUnset {
				t.Errorf("IsUnset: got %v, want %v", tt.field.IsUnset(), tt.isUnset)
			}
		})
	}
}

func TestField_Get(t *testing.T) {
	t.Helper()

	v, ok := optional.Set(true).Get()
	assert.True(t, ok)
	assert.True(t, v)

	_, ok = optional.Null[bool]().Get()
	assert.False(t, ok)

	_, ok = optional.Unset[bool]().Get()
	assert.False(t, ok)
}

func TestField_Ptr(t *testing.T) {
	t.Helper()

	f := optional.Set(7)
	p := f.Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 7, *p)

	// The pointer addresses a copy; writing through it must not change
	// the field.
	*p = 8
	v, ok := f.Get()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	assert.Nil(t, optional.Null[int]().Ptr())
	assert.Nil(t, optional.Unset[int]().Ptr())
}

func TestField_Mutators(t *testing.T) {
	t.Helper()

	var f optional.Field[string]
	assert.True(t, f.IsUnset())

	f.SetValue("user-321")
	v, ok := f.Get()
	require.True(t, ok)
	assert.Equal(t, "user-321", v)

	f.SetNull()
	assert.True(t, f.IsNull())
	_, ok = f.Get()
	assert.False(t, ok)

	f.Clear()
	assert.True(t, f.IsUnset())
	assert.False(t, f.IsNull())
}

func TestField_MarshalJSON(t *testing.T) {
	t.Helper()

	tests := []struct {
		name     string
		field    optional.Field[int]
		expected string
	}{
		{"value", optional.Set(3), "3"},
		{"null", optional.Null[int](), "null"},
		{"unset", optional.Unset[int](), "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestField_UnmarshalJSON(t *testing.T) {
	t.Helper()

	var value optional.Field[bool]
	require.NoError(t, json.Unmarshal([]byte("true"), &value))
	v, ok := value.Get()
	require.True(t, ok)
	assert.True(t, v)

	var null optional.Field[bool]
	require.NoError(t, json.Unmarshal([]byte("null"), &null))
	assert.True(t, null.IsNull())

	var wrong optional.Field[bool]
	assert.Error(t, json.Unmarshal([]byte(`"yes"`), &wrong))
}

func TestField_StructRoundTrip(t *testing.T) {
	t.Helper()

	type payload struct {
		Name   string                 `json:"name"`
		UserID optional.Field[string] `json:"user_id"`
	}

	src := payload{Name: "signup-click", UserID: optional.Set("user-321")}
	data, err := json.Marshal(src)
	require.NoError(t, err)

	var decoded payload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, src, decoded)
}
