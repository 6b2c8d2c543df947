package analytics

import (
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"

	"github.com/zobeirhamid/trieve/validation"
)

// Wire keys for RequestInfo payloads.
const (
	requestIDField   = "request_id"
	requestTypeField = "request_type"
)

// RequestInfo ties an analytics event to the request that produced the
// results the user interacted with.
type RequestInfo struct {
	RequestID   uuid.UUID
	RequestType RequestType
}

var _ Model = (*RequestInfo)(nil)

// NewRequestInfo constructs a validated RequestInfo.
func NewRequestInfo(requestID uuid.UUID, requestType RequestType) (*RequestInfo, error) {
	r := &RequestInfo{RequestID: requestID, RequestType: requestType}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// RequestInfoFromMap builds a RequestInfo from its generic map form. A
// nil map yields no value and no error. Unknown keys are ignored.
func RequestInfoFromMap(m map[string]any) (*RequestInfo, error) {
	if m == nil {
		return nil, nil
	}

	requestID, err := uuidField(m, requestIDField)
	if err != nil {
		return nil, err
	}
	requestType, err := requestTypeValue(m)
	if err != nil {
		return nil, err
	}

	return &RequestInfo{RequestID: requestID, RequestType: requestType}, nil
}

// requestTypeValue extracts and validates the request_type value,
// accepting the wire string or an already-typed RequestType.
func requestTypeValue(m map[string]any) (RequestType, error) {
	raw, ok := m[requestTypeField]
	if !ok || raw == nil {
		return "", validation.Required(requestTypeField)
	}

	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case RequestType:
		s = string(v)
	default:
		return "", validation.WrongType(requestTypeField, "string", raw)
	}
	return ParseRequestType(s)
}

// ParseRequestInfo builds a RequestInfo from JSON text. A JSON null
// yields no value and no error.
func ParseRequestInfo(data []byte) (*RequestInfo, error) {
	m, ok, err := decodeJSON(data)
	if err != nil || !ok {
		return nil, err
	}
	return RequestInfoFromMap(m)
}

// Validate checks the construction invariants.
func (r *RequestInfo) Validate() error {
	if r.RequestID == uuid.Nil {
		return validation.Required(requestIDField)
	}
	return r.RequestType.Validate()
}

// ToMap returns the wire representation as a generic map.
func (r *RequestInfo) ToMap() map[string]any {
	return map[string]any{
		requestIDField:   r.RequestID.String(),
		requestTypeField: string(r.RequestType),
	}
}

// MarshalJSON encodes the wire representation.
func (r *RequestInfo) MarshalJSON() ([]byte, error) {
	return marshalModel(r)
}

// UnmarshalJSON decodes and validates the wire representation. A JSON
// null leaves the receiver unchanged.
func (r *RequestInfo) UnmarshalJSON(data []byte) error {
	decoded, err := ParseRequestInfo(data)
	if err != nil {
		return err
	}
	if decoded == nil {
		return nil
	}
	*r = *decoded
	return nil
}

// String returns an indented JSON rendering for debugging.
func (r *RequestInfo) String() string {
	return modelString(r)
}

// MarshalLogObject writes the wire fields to a structured log encoder.
func (r *RequestInfo) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString(requestIDField, r.RequestID.String())
	enc.AddString(requestTypeField, string(r.RequestType))
	return nil
}
