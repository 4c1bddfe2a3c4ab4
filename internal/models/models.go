package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Deck is the persistence shape of a pitch deck. The wizard owns deck
// creation and editing; the styling engine only reads decks and merges
// styling output back into slide content.
type Deck struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	Slides    []Slide   `db:"-"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Slide content is an opaque JSON document owned by the deck wizard.
// Styling results are merged into it under the Key* reserved keys; every
// other key passes through untouched.
type Slide struct {
	ID        uuid.UUID       `db:"id"`
	DeckID    uuid.UUID       `db:"deck_id"`
	Position  int             `db:"position"`
	Type      SlideType       `db:"slide_type"`
	Content   json.RawMessage `db:"content"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// Clone deep-copies the deck so callers can mutate the copy without
// touching store-held state.
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}
	out := *d
	out.Slides = make([]Slide, len(d.Slides))
	for i, s := range d.Slides {
		out.Slides[i] = s
		if s.Content != nil {
			out.Slides[i].Content = append(json.RawMessage(nil), s.Content...)
		}
	}
	return &out
}

// ClassifierUsage records one classification request for usage accounting.
// Fallback marks results produced by the local heuristic after every remote
// provider failed.
type ClassifierUsage struct {
	ID           int64     `db:"id"`
	Timestamp    time.Time `db:"timestamp"`
	ProviderName string    `db:"provider_name"`
	ModelName    string    `db:"model_name"`
	DeckID       uuid.UUID `db:"deck_id"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	Fallback     bool      `db:"fallback"`
}

// BackgroundJob mirrors the background_jobs table schema.
type BackgroundJob struct {
	ID        int64           `db:"id"`
	JobID     uuid.UUID       `db:"job_id"` // Asynq task ID
	TaskType  string          `db:"task_type"`
	Payload   json.RawMessage `db:"payload"`
	Queue     string          `db:"queue"`
	Status    string          `db:"status"`
	DeckID    *uuid.UUID      `db:"deck_id"` // nullable
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
