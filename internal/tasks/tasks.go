package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task types used in Asynq.
const (
	// TypeStylingApply is the task type for styling a whole deck.
	TypeStylingApply = "styling:apply"
)

// QueueStyling is the queue styling tasks are routed to.
const QueueStyling = "styling"

// StylingApplyPayload is the wire payload of a TypeStylingApply task.
// Restyle re-runs styling on a deck whose status is already complete.
type StylingApplyPayload struct {
	DeckID  uuid.UUID `json:"deck_id"`
	Restyle bool      `json:"restyle"`
}

// NewStylingApplyTask builds the Asynq task for styling one deck.
func NewStylingApplyTask(deckID uuid.UUID, restyle bool) (*asynq.Task, error) {
	if deckID == uuid.Nil {
		return nil, fmt.Errorf("deck ID is required for a styling task")
	}
	payload, err := json.Marshal(StylingApplyPayload{DeckID: deckID, Restyle: restyle})
	if err != nil {
		return nil, fmt.Errorf("marshal styling payload: %w", err)
	}
	return asynq.NewTask(TypeStylingApply, payload), nil
}

// ParseStylingApplyPayload decodes a TypeStylingApply payload.
func ParseStylingApplyPayload(data []byte) (StylingApplyPayload, error) {
	var p StylingApplyPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return StylingApplyPayload{}, fmt.Errorf("unmarshal styling payload: %w", err)
	}
	if p.DeckID == uuid.Nil {
		return StylingApplyPayload{}, fmt.Errorf("styling payload carries no deck ID")
	}
	return p, nil
}
