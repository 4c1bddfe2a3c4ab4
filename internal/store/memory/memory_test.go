package memory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bragi/internal/models"
	"bragi/internal/store"
)

func newDeck(t *testing.T, s *Store) *models.Deck {
	t.Helper()
	deck := &models.Deck{
		Title: "Quarterly pitch",
		Slides: []models.Slide{
			{Type: models.SlideCover, Content: json.RawMessage(`{"title": "Q3"}`)},
			{Type: models.SlideData, Content: json.RawMessage(`{"title": "Numbers"}`)},
		},
	}
	require.NoError(t, s.CreateDeck(context.Background(), deck))
	return deck
}

func TestCreateDeckAssignsIdentity(t *testing.T) {
	s := NewStore()
	deck := newDeck(t, s)

	assert.NotEqual(t, uuid.Nil, deck.ID)
	for i, slide := range deck.Slides {
		assert.NotEqual(t, uuid.Nil, slide.ID)
		assert.Equal(t, deck.ID, slide.DeckID)
		assert.Equal(t, i, slide.Position)
	}

	err := s.CreateDeck(context.Background(), &models.Deck{ID: deck.ID})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestGetDeckReturnsIsolatedCopy(t *testing.T) {
	s := NewStore()
	deck := newDeck(t, s)

	loaded, err := s.GetDeck(context.Background(), deck.ID)
	require.NoError(t, err)

	// Mutating the loaded copy must not leak into the store.
	loaded.Title = "mutated"
	loaded.Slides[0].Content = json.RawMessage(`{"title": "mutated"}`)

	again, err := s.GetDeck(context.Background(), deck.ID)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly pitch", again.Title)
	assert.JSONEq(t, `{"title": "Q3"}`, string(again.Slides[0].Content))
}

func TestGetDeckNotFound(t *testing.T) {
	s := NewStore()
	_, err := s.GetDeck(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateSlideContent(t *testing.T) {
	s := NewStore()
	deck := newDeck(t, s)

	updated := json.RawMessage(`{"title": "Q3", "css": ":root {}"}`)
	require.NoError(t, s.UpdateSlideContent(context.Background(), deck.Slides[0].ID, updated))

	loaded, err := s.GetDeck(context.Background(), deck.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(updated), string(loaded.Slides[0].Content))
	assert.JSONEq(t, `{"title": "Numbers"}`, string(loaded.Slides[1].Content))

	err = s.UpdateSlideContent(context.Background(), uuid.New(), updated)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestClassifierUsageCounting(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.RecordClassifierUsage(ctx, &models.ClassifierUsage{ProviderName: "openai"}))
	require.NoError(t, s.RecordClassifierUsage(ctx, &models.ClassifierUsage{ProviderName: "heuristic", Fallback: true}))
	require.NoError(t, s.RecordClassifierUsage(ctx, &models.ClassifierUsage{ProviderName: "openai"}))

	total, fallback, err := s.CountClassifierUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(1), fallback)

	entries, err := s.ListClassifierUsage(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "openai", entries[0].ProviderName, "newest entry first")
}

func TestJobRecords(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	jobID := uuid.New()
	deckID := uuid.New()

	params := store.JobRecordParams{
		JobID:    jobID,
		TaskType: "styling:apply",
		Queue:    "styling",
		Status:   "enqueued",
		DeckID:   &deckID,
	}
	require.NoError(t, s.RecordJobEnqueue(ctx, params))
	// Re-recording the same job is a no-op, not an error.
	require.NoError(t, s.RecordJobEnqueue(ctx, params))

	require.NoError(t, s.UpdateJobStatus(ctx, jobID, "completed"))

	jobs, err := s.ListJobs(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "completed", jobs[0].Status)
	require.NotNil(t, jobs[0].DeckID)
	assert.Equal(t, deckID, *jobs[0].DeckID)

	err = s.UpdateJobStatus(ctx, uuid.New(), "failed")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
