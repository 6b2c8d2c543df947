package analytics

import (
	"encoding/json"

	"github.com/zobeirhamid/trieve/validation"
)

// EventType identifies the kind of analytics event a payload describes.
type EventType string

// EventTypeClick is the only event type a click payload accepts.
const EventTypeClick EventType = "click"

// ParseEventType converts a wire value into an EventType.
func ParseEventType(s string) (EventType, error) {
	if s != string(EventTypeClick) {
		return "", validation.InvalidEnum(eventTypeField, s, string(EventTypeClick))
	}
	return EventTypeClick, nil
}

// String returns the wire form.
func (t EventType) String() string {
	return string(t)
}

// Validate checks membership in the allowed set.
func (t EventType) Validate() error {
	_, err := ParseEventType(string(t))
	return err
}

// MarshalJSON encodes the wire form.
func (t EventType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON decodes the wire form, rejecting values outside the
// allowed set.
func (t *EventType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseEventType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
