package analytics

import (
	"encoding/json"

	"github.com/zobeirhamid/trieve/validation"
)

// RequestType identifies the kind of request an analytics event is tied
// to.
type RequestType string

const (
	// RequestTypeSearch marks events produced by a search request.
	RequestTypeSearch RequestType = "search"
	// RequestTypeRAG marks events produced by a RAG request.
	RequestTypeRAG RequestType = "rag"
	// RequestTypeRecommendation marks events produced by a recommendation
	// request.
	RequestTypeRecommendation RequestType = "recommendation"
)

// requestTypes lists the allowed wire values in message order.
var requestTypes = []string{
	string(RequestTypeSearch),
	string(RequestTypeRAG),
	string(RequestTypeRecommendation),
}

// ParseRequestType converts a wire value into a RequestType.
func ParseRequestType(s string) (RequestType, error) {
	switch RequestType(s) {
	case RequestTypeSearch, RequestTypeRAG, RequestTypeRecommendation:
		return RequestType(s), nil
	default:
		return "", validation.InvalidEnum(requestTypeField, s, requestTypes...)
	}
}

// String returns the wire form.
func (t RequestType) String() string {
	return string(t)
}

// Validate checks membership in the allowed set.
func (t RequestType) Validate() error {
	_, err := ParseRequestType(string(t))
	return err
}

// MarshalJSON encodes the wire form.
func (t RequestType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON decodes the wire form, rejecting values outside the
// allowed set.
func (t *RequestType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseRequestType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
