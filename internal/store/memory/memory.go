// Package memory implements the stores on process-local maps. It backs
// tests and the demo seed path where no PostgreSQL instance is available.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"bragi/internal/models"
	"bragi/internal/store"
)

// Store holds decks, usage entries and job records in memory. All methods
// deep-copy on the way in and out so callers never alias internal state.
type Store struct {
	mu     sync.RWMutex
	decks  map[uuid.UUID]*models.Deck
	usage  []*models.ClassifierUsage
	jobs   map[uuid.UUID]*models.BackgroundJob
	nextID int64
}

var (
	_ store.DeckStore  = (*Store)(nil)
	_ store.UsageStore = (*Store)(nil)
	_ store.JobStore   = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		decks: make(map[uuid.UUID]*models.Deck),
		jobs:  make(map[uuid.UUID]*models.BackgroundJob),
	}
}

var (
	_ store.DeckStore  = (*Store)(nil)
	_ store.UsageStore = (*Store)(nil)
	_ store.JobStore   = (*Store)(nil)
)

func (s *Store) Ping(ctx context.Context) error { return nil }

// --- Deck Store ---

func (s *Store) CreateDeck(ctx context.Context, deck *models.Deck) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if deck.ID == uuid.Nil {
		deck.ID = uuid.New()
	}
	if _, exists := s.decks[deck.ID]; exists {
		return fmt.Errorf("deck %s already exists: %w", deck.ID, store.ErrDuplicate)
	}

	now := time.Now()
	deck.CreatedAt = now
	deck.UpdatedAt = now
	for i := range deck.Slides {
		slide := &deck.Slides[i]
		if slide.ID == uuid.Nil {
			slide.ID = uuid.New()
		}
		slide.DeckID = deck.ID
		slide.Position = i
		if slide.Content == nil {
			slide.Content = json.RawMessage("{}")
		}
		slide.CreatedAt = now
		slide.UpdatedAt = now
	}

	s.decks[deck.ID] = deck.Clone()
	return nil
}

func (s *Store) GetDeck(ctx context.Context, id uuid.UUID) (*models.Deck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deck, ok := s.decks[id]
	if !ok {
		return nil, fmt.Errorf("deck %s: %w", id, store.ErrNotFound)
	}
	return deck.Clone(), nil
}

func (s *Store) ListDecks(ctx context.Context, limit, offset int) ([]*models.Deck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	decks := make([]*models.Deck, 0, len(s.decks))
	for _, deck := range s.decks {
		decks = append(decks, deck.Clone())
	}
	sort.Slice(decks, func(a, b int) bool {
		if !decks[a].CreatedAt.Equal(decks[b].CreatedAt) {
			return decks[a].CreatedAt.After(decks[b].CreatedAt)
		}
		return decks[a].ID.String() < decks[b].ID.String()
	})

	if offset >= len(decks) {
		return nil, nil
	}
	decks = decks[offset:]
	if limit > 0 && len(decks) > limit {
		decks = decks[:limit]
	}
	return decks, nil
}

func (s *Store) UpdateSlideContent(ctx context.Context, slideID uuid.UUID, content json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, deck := range s.decks {
		for i := range deck.Slides {
			if deck.Slides[i].ID != slideID {
				continue
			}
			if content == nil {
				content = json.RawMessage("{}")
			}
			deck.Slides[i].Content = append(json.RawMessage(nil), content...)
			deck.Slides[i].UpdatedAt = time.Now()
			deck.UpdatedAt = deck.Slides[i].UpdatedAt
			return nil
		}
	}
	return fmt.Errorf("slide %s not found: %w", slideID, store.ErrNotFound)
}

// --- Usage Store ---

func (s *Store) RecordClassifierUsage(ctx context.Context, usage *models.ClassifierUsage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	usage.ID = s.nextID
	if usage.Timestamp.IsZero() {
		usage.Timestamp = time.Now()
	}
	entry := *usage
	s.usage = append(s.usage, &entry)
	return nil
}

func (s *Store) ListClassifierUsage(ctx context.Context, limit, offset int) ([]*models.ClassifierUsage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*models.ClassifierUsage, len(s.usage))
	for i, e := range s.usage {
		entry := *e
		entries[len(s.usage)-1-i] = &entry
	}
	if offset >= len(entries) {
		return nil, nil
	}
	entries = entries[offset:]
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Store) CountClassifierUsage(ctx context.Context) (int64, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var fallback int64
	for _, e := range s.usage {
		if e.Fallback {
			fallback++
		}
	}
	return int64(len(s.usage)), fallback, nil
}

// --- Job Store ---

func (s *Store) RecordJobEnqueue(ctx context.Context, params store.JobRecordParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[params.JobID]; exists {
		return nil
	}
	s.nextID++
	now := time.Now()
	payload := json.RawMessage("{}")
	if params.Payload != nil {
		payload = append(json.RawMessage(nil), params.Payload...)
	}
	s.jobs[params.JobID] = &models.BackgroundJob{
		ID:        s.nextID,
		JobID:     params.JobID,
		TaskType:  params.TaskType,
		Payload:   payload,
		Queue:     params.Queue,
		Status:    params.Status,
		DeckID:    params.DeckID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

func (s *Store) UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return fmt.Errorf("job %s not found to update status: %w", jobID, store.ErrNotFound)
	}
	job.Status = status
	job.UpdatedAt = time.Now()
	return nil
}

func (s *Store) ListJobs(ctx context.Context, limit, offset int) ([]*models.BackgroundJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]*models.BackgroundJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		copied := *job
		jobs = append(jobs, &copied)
	}
	sort.Slice(jobs, func(a, b int) bool {
		if !jobs[a].CreatedAt.Equal(jobs[b].CreatedAt) {
			return jobs[a].CreatedAt.After(jobs[b].CreatedAt)
		}
		return jobs[a].ID > jobs[b].ID
	})

	if offset >= len(jobs) {
		return nil, nil
	}
	jobs = jobs[offset:]
	if limit > 0 && len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}
