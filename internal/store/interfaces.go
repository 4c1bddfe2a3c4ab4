package store

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"bragi/internal/models"
)

// --- Job Client ---

type JobClient interface {
	// Enqueue submits a task and records the event for the deck it styles.
	Enqueue(ctx context.Context, task *asynq.Task, deckID uuid.UUID, opts ...asynq.Option) (*asynq.TaskInfo, error)
	EnqueueStylingJob(ctx context.Context, deckID uuid.UUID, restyle bool) error
	Close() error
}

// --- Deck Store ---

type DeckStore interface {
	CreateDeck(ctx context.Context, deck *models.Deck) error
	GetDeck(ctx context.Context, id uuid.UUID) (*models.Deck, error)
	ListDecks(ctx context.Context, limit, offset int) ([]*models.Deck, error)
	// UpdateSlideContent replaces one slide's content document. The styling
	// engine computes the merged document first; the store never interprets
	// content keys.
	UpdateSlideContent(ctx context.Context, slideID uuid.UUID, content json.RawMessage) error

	Ping(ctx context.Context) error
}

// --- Usage Store ---

type UsageStore interface {
	RecordClassifierUsage(ctx context.Context, usage *models.ClassifierUsage) error
	ListClassifierUsage(ctx context.Context, limit, offset int) ([]*models.ClassifierUsage, error)
	// CountClassifierUsage returns total recorded classifications and how
	// many of them fell back to the local heuristic.
	CountClassifierUsage(ctx context.Context) (total int64, fallback int64, err error)
}

// --- Job Store ---

// JobRecordParams holds parameters for recording a job event.
type JobRecordParams struct {
	JobID    uuid.UUID
	TaskType string
	Payload  []byte
	Queue    string
	Status   string
	DeckID   *uuid.UUID // Optional: the deck the job styles
}

type JobStore interface {
	RecordJobEnqueue(ctx context.Context, params JobRecordParams) error
	UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string) error
	ListJobs(ctx context.Context, limit, offset int) ([]*models.BackgroundJob, error)
}
