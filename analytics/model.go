// Package analytics provides the payload models for Trieve analytics
// events: validated construction, generic map and JSON round-tripping,
// and structured-logging support.
//
// Optional fields are tri-state. A field that was never supplied stays
// off the wire entirely, a field supplied as an explicit null is emitted
// as JSON null, and a supplied value is emitted as-is. The distinction
// survives a full serialize/deserialize round trip. See the optional
// package.
package analytics

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Model is the contract shared by every analytics payload model.
type Model interface {
	json.Marshaler
	fmt.Stringer
	zapcore.ObjectMarshaler

	// Validate checks the construction invariants of the model.
	Validate() error
	// ToMap returns the wire representation as a generic map. Unset
	// optional fields are omitted; explicit nulls are emitted as nil
	// values under their key.
	ToMap() map[string]any
}

// marshalModel renders a model's wire map as compact JSON.
func marshalModel(m Model) ([]byte, error) {
	return json.Marshal(m.ToMap())
}

// modelString renders a model's wire map as indented JSON for debugging
// and log output.
func modelString(m Model) string {
	data, err := json.MarshalIndent(m.ToMap(), "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
