package costtracker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bragi/internal/models"
	"bragi/internal/store"
)

// UsageEvent represents a single classification request attributed to a
// provider. Fallback marks verdicts produced by the local heuristic.
type UsageEvent struct {
	Provider     string
	Model        string
	DeckID       uuid.UUID
	InputTokens  int
	OutputTokens int
	Fallback     bool
}

// Tracker records classifier usage so operators can watch remote spend and
// how often decks are styled offline.
type Tracker interface {
	RecordUsage(ctx context.Context, event UsageEvent) error
	TotalRequests(ctx context.Context) (total int64, fallback int64, err error)
}

// New returns a tracker that discards events.
func New() Tracker {
	return &noopTracker{}
}

type noopTracker struct{}

func (n *noopTracker) RecordUsage(ctx context.Context, event UsageEvent) error { return nil }
func (n *noopTracker) TotalRequests(ctx context.Context) (int64, int64, error) {
	return 0, 0, nil
}

// StoreTracker persists usage events through the usage store.
type StoreTracker struct {
	usage store.UsageStore
}

func NewStoreTracker(usage store.UsageStore) *StoreTracker {
	return &StoreTracker{usage: usage}
}

func (t *StoreTracker) RecordUsage(ctx context.Context, event UsageEvent) error {
	return t.usage.RecordClassifierUsage(ctx, &models.ClassifierUsage{
		Timestamp:    time.Now().UTC(),
		ProviderName: event.Provider,
		ModelName:    event.Model,
		DeckID:       event.DeckID,
		InputTokens:  event.InputTokens,
		OutputTokens: event.OutputTokens,
		Fallback:     event.Fallback,
	})
}

func (t *StoreTracker) TotalRequests(ctx context.Context) (int64, int64, error) {
	return t.usage.CountClassifierUsage(ctx)
}

var _ Tracker = (*StoreTracker)(nil)
var _ Tracker = (*noopTracker)(nil)
