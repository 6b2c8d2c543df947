package analytics

import (
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"

	"github.com/zobeirhamid/trieve/validation"
)

// Wire keys for ChunkWithPosition payloads.
const (
	chunkIDField  = "chunk_id"
	positionField = "position"
)

// ChunkWithPosition identifies a chunk the user clicked and the rank it
// held in the result list.
type ChunkWithPosition struct {
	ChunkID  uuid.UUID
	Position int
}

var _ Model = (*ChunkWithPosition)(nil)

// NewChunkWithPosition constructs a validated ChunkWithPosition.
func NewChunkWithPosition(chunkID uuid.UUID, position int) (*ChunkWithPosition, error) {
	c := &ChunkWithPosition{ChunkID: chunkID, Position: position}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ChunkWithPositionFromMap builds a ChunkWithPosition from its generic
// map form. A nil map yields no value and no error. Unknown keys are
// ignored.
func ChunkWithPositionFromMap(m map[string]any) (*ChunkWithPosition, error) {
	if m == nil {
		return nil, nil
	}

	chunkID, err := uuidField(m, chunkIDField)
	if err != nil {
		return nil, err
	}
	position, err := intField(m, positionField)
	if err != nil {
		return nil, err
	}

	return &ChunkWithPosition{ChunkID: chunkID, Position: position}, nil
}

// ParseChunkWithPosition builds a ChunkWithPosition from JSON text. A
// JSON null yields no value and no error.
func ParseChunkWithPosition(data []byte) (*ChunkWithPosition, error) {
	m, ok, err := decodeJSON(data)
	if err != nil || !ok {
		return nil, err
	}
	return ChunkWithPositionFromMap(m)
}

// Validate checks the construction invariants.
func (c *ChunkWithPosition) Validate() error {
	if c.ChunkID == uuid.Nil {
		return validation.Required(chunkIDField)
	}
	return nil
}

// ToMap returns the wire representation as a generic map.
func (c *ChunkWithPosition) ToMap() map[string]any {
	return map[string]any{
		chunkIDField:  c.ChunkID.String(),
		positionField: c.Position,
	}
}

// MarshalJSON encodes the wire representation.
func (c *ChunkWithPosition) MarshalJSON() ([]byte, error) {
	return marshalModel(c)
}

// UnmarshalJSON decodes and validates the wire representation. A JSON
// null leaves the receiver unchanged.
func (c *ChunkWithPosition) UnmarshalJSON(data []byte) error {
	decoded, err := ParseChunkWithPosition(data)
	if err != nil {
		return err
	}
	if decoded == nil {
		return nil
	}
	*c = *decoded
	return nil
}

// String returns an indented JSON rendering for debugging.
func (c *ChunkWithPosition) String() string {
	return modelString(c)
}

// MarshalLogObject writes the wire fields to a structured log encoder.
func (c *ChunkWithPosition) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString(chunkIDField, c.ChunkID.String())
	enc.AddInt(positionField, c.Position)
	return nil
}
