package analytics

import (
	"go.uber.org/zap/zapcore"

	"github.com/zobeirhamid/trieve/optional"
	"github.com/zobeirhamid/trieve/validation"
)

// Wire keys for ClickEvent payloads.
const (
	clickedItemsField = "clicked_items"
	eventNameField    = "event_name"
	eventTypeField    = "event_type"
	isConversionField = "is_conversion"
	requestField      = "request"
	userIDField       = "user_id"
)

// ClickEvent reports that a user clicked a chunk served for a request.
//
// ClickedItems, EventName and EventType are always present on a valid
// event, and EventType is always "click". IsConversion, Request and
// UserID are tri-state: unset fields stay off the wire, null fields are
// emitted as JSON null.
type ClickEvent struct {
	ClickedItems ChunkWithPosition
	EventName    string
	EventType    EventType
	IsConversion optional.Field[bool]
	Request      optional.Field[RequestInfo]
	UserID       optional.Field[string]
}

var _ Model = (*ClickEvent)(nil)

// NewClickEvent constructs a validated ClickEvent from the three required
// fields. Optional fields start unset and may be assigned on the returned
// value.
func NewClickEvent(clickedItems ChunkWithPosition, eventName string, eventType EventType) (*ClickEvent, error) {
	e := &ClickEvent{
		ClickedItems: clickedItems,
		EventName:    eventName,
		EventType:    eventType,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// ClickEventFromMap builds a ClickEvent from its generic map form. A nil
// map yields no value and no error. Unknown keys are ignored.
func ClickEventFromMap(m map[string]any) (*ClickEvent, error) {
	if m == nil {
		return nil, nil
	}

	clickedItems, err := clickedItemsValue(m)
	if err != nil {
		return nil, err
	}
	eventName, err := stringField(m, eventNameField)
	if err != nil {
		return nil, err
	}
	eventType, err := eventTypeValue(m)
	if err != nil {
		return nil, err
	}
	isConversion, err := optionalBool(m, isConversionField)
	if err != nil {
		return nil, err
	}
	request, err := requestValue(m)
	if err != nil {
		return nil, err
	}
	userID, err := optionalString(m, userIDField)
	if err != nil {
		return nil, err
	}

	return &ClickEvent{
		ClickedItems: clickedItems,
		EventName:    eventName,
		EventType:    eventType,
		IsConversion: isConversion,
		Request:      request,
		UserID:       userID,
	}, nil
}

// clickedItemsValue extracts the required clicked_items value, accepting
// a generic map or an already-constructed ChunkWithPosition. A nil map or
// nil pointer counts as missing.
func clickedItemsValue(m map[string]any) (ChunkWithPosition, error) {
	raw, ok := m[clickedItemsField]
	if !ok || raw == nil {
		return ChunkWithPosition{}, validation.Required(clickedItemsField)
	}

	switch v := raw.(type) {
	case map[string]any:
		decoded, err := ChunkWithPositionFromMap(v)
		if err != nil {
			return ChunkWithPosition{}, validation.InField(clickedItemsField, err)
		}
		if decoded == nil {
			return ChunkWithPosition{}, validation.Required(clickedItemsField)
		}
		return *decoded, nil
	case ChunkWithPosition:
		if err := v.Validate(); err != nil {
			return ChunkWithPosition{}, validation.InField(clickedItemsField, err)
		}
		return v, nil
	case *ChunkWithPosition:
		if v == nil {
			return ChunkWithPosition{}, validation.Required(clickedItemsField)
		}
		if err := v.Validate(); err != nil {
			return ChunkWithPosition{}, validation.InField(clickedItemsField, err)
		}
		return *v, nil
	default:
		return ChunkWithPosition{}, validation.WrongType(clickedItemsField, "JSON object", raw)
	}
}

// eventTypeValue extracts and validates the event_type value, accepting
// the wire string or an already-typed EventType.
func eventTypeValue(m map[string]any) (EventType, error) {
	raw, ok := m[eventTypeField]
	if !ok || raw == nil {
		return "", validation.Required(eventTypeField)
	}

	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case EventType:
		s = string(v)
	default:
		return "", validation.WrongType(eventTypeField, "string", raw)
	}
	return ParseEventType(s)
}

// requestValue extracts the tri-state request value, accepting a generic
// map or an already-constructed RequestInfo. A nil map or nil pointer
// reads as an explicit null.
func requestValue(m map[string]any) (optional.Field[RequestInfo], error) {
	raw, ok := m[requestField]
	if !ok {
		return optional.Unset[RequestInfo](), nil
	}
	if raw == nil {
		return optional.Null[RequestInfo](), nil
	}

	switch v := raw.(type) {
	case map[string]any:
		decoded, err := RequestInfoFromMap(v)
		if err != nil {
			return optional.Field[RequestInfo]{}, validation.InField(requestField, err)
		}
		if decoded == nil {
			return optional.Null[RequestInfo](), nil
		}
		return optional.Set(*decoded), nil
	case RequestInfo:
		if err := v.Validate(); err != nil {
			return optional.Field[RequestInfo]{}, validation.InField(requestField, err)
		}
		return optional.Set(v), nil
	case *RequestInfo:
		if v == nil {
			return optional.Null[RequestInfo](), nil
		}
		if err := v.Validate(); err != nil {
			return optional.Field[RequestInfo]{}, validation.InField(requestField, err)
		}
		return optional.Set(*v), nil
	default:
		return optional.Field[RequestInfo]{}, validation.WrongType(requestField, "JSON object", raw)
	}
}

// ParseClickEvent builds a ClickEvent from JSON text. A JSON null yields
// no value and no error; malformed text yields a validation.ParseError.
func ParseClickEvent(data []byte) (*ClickEvent, error) {
	m, ok, err := decodeJSON(data)
	if err != nil || !ok {
		return nil, err
	}
	return ClickEventFromMap(m)
}

// Validate checks the construction invariants.
func (e *ClickEvent) Validate() error {
	if err := validation.InField(clickedItemsField, e.ClickedItems.Validate()); err != nil {
		return err
	}
	if e.EventName == "" {
		return validation.Required(eventNameField)
	}
	if err := e.EventType.Validate(); err != nil {
		return err
	}
	if req, ok := e.Request.Get(); ok {
		if err := validation.InField(requestField, req.Validate()); err != nil {
			return err
		}
	}
	return nil
}

// ToMap returns the wire representation as a generic map. Unset optional
// fields are omitted entirely; explicit nulls are emitted as nil values
// under their key.
func (e *ClickEvent) ToMap() map[string]any {
	m := map[string]any{
		clickedItemsField: e.ClickedItems.ToMap(),
		eventNameField:    e.EventName,
		eventTypeField:    string(e.EventType),
	}

	if e.IsConversion.IsSet() {
		if v, ok := e.IsConversion.Get(); ok {
			m[isConversionField] = v
		} else {
			m[isConversionField] = nil
		}
	}
	if e.Request.IsSet() {
		if v, ok := e.Request.Get(); ok {
			m[requestField] = v.ToMap()
		} else {
			m[requestField] = nil
		}
	}
	if e.UserID.IsSet() {
		if v, ok := e.UserID.Get(); ok {
			m[userIDField] = v
		} else {
			m[userIDField] = nil
		}
	}

	return m
}

// MarshalJSON encodes the wire representation.
func (e *ClickEvent) MarshalJSON() ([]byte, error) {
	return marshalModel(e)
}

// UnmarshalJSON decodes and validates the wire representation. A JSON
// null leaves the receiver unchanged.
func (e *ClickEvent) UnmarshalJSON(data []byte) error {
	decoded, err := ParseClickEvent(data)
	if err != nil {
		return err
	}
	if decoded == nil {
		return nil
	}
	*e = *decoded
	return nil
}

// String returns an indented JSON rendering for debugging.
func (e *ClickEvent) String() string {
	return modelString(e)
}

// MarshalLogObject writes the wire fields to a structured log encoder,
// following the same emission rules as ToMap.
func (e *ClickEvent) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := enc.AddObject(clickedItemsField, &e.ClickedItems); err != nil {
		return err
	}
	enc.AddString(eventNameField, e.EventName)
	enc.AddString(eventTypeField, string(e.EventType))

	if e.IsConversion.IsSet() {
		if v, ok := e.IsConversion.Get(); ok {
			enc.AddBool(isConversionField, v)
		} else if err := enc.AddReflected(isConversionField, nil); err != nil {
			return err
		}
	}
	if e.Request.IsSet() {
		if v, ok := e.Request.Get(); ok {
			if err := enc.AddObject(requestField, &v); err != nil {
				return err
			}
		} else if err := enc.AddReflected(requestField, nil); err != nil {
			return err
		}
	}
	if e.UserID.IsSet() {
		if v, ok := e.UserID.Get(); ok {
			enc.AddString(userIDField, v)
		} else if err := enc.AddReflected(userIDField, nil); err != nil {
			return err
		}
	}

	return nil
}
