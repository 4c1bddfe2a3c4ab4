package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"bragi/internal/extract"
	"bragi/internal/models"
	"bragi/internal/store"
	"bragi/pkg/classifier"
)

// DefaultSlideConcurrency bounds the per-slide resolve/emit/write fan-out.
const DefaultSlideConcurrency = 4

// StylingService orchestrates extraction, classification, per-slide style
// resolution and write-back for whole decks. It owns the per-process
// analysis cache and the per-deck styling status; both reset with the
// process, matching an editing session's lifetime.
type StylingService struct {
	decks       store.DeckStore
	classifier  classifier.ContentClassifier
	concurrency int

	group singleflight.Group

	mu          sync.Mutex
	statuses    map[uuid.UUID]models.StylingStatus
	generations map[uuid.UUID]uint64
	cache       map[uuid.UUID]cachedAnalysis
}

type cachedAnalysis struct {
	analysis   models.ContentAnalysis
	generation uint64
}

type StylingServiceDeps struct {
	DeckStore  store.DeckStore
	Classifier classifier.ContentClassifier
	// SlideConcurrency caps concurrent slide styling; zero means
	// DefaultSlideConcurrency.
	SlideConcurrency int
}

func NewStylingService(deps StylingServiceDeps) *StylingService {
	concurrency := deps.SlideConcurrency
	if concurrency <= 0 {
		concurrency = DefaultSlideConcurrency
	}
	return &StylingService{
		decks:       deps.DeckStore,
		classifier:  deps.Classifier,
		concurrency: concurrency,
		statuses:    make(map[uuid.UUID]models.StylingStatus),
		generations: make(map[uuid.UUID]uint64),
		cache:       make(map[uuid.UUID]cachedAnalysis),
	}
}

// ApplyStyling styles every slide of the deck and persists the merged
// content. Repeated calls for the same deck reuse the cached analysis, so
// only the first call can reach a remote classifier. The returned deck is a
// copy; the store's state is only changed through UpdateSlideContent.
func (s *StylingService) ApplyStyling(ctx context.Context, deckID uuid.UUID) (*models.Deck, error) {
	return s.apply(ctx, deckID, false)
}

// Restyle invalidates the cached analysis for the deck and styles it again.
// This is the only path that moves a complete deck back to in_progress.
func (s *StylingService) Restyle(ctx context.Context, deckID uuid.UUID) (*models.Deck, error) {
	s.invalidate(deckID, false)
	return s.apply(ctx, deckID, true)
}

// Status reports the deck's styling state. Unknown decks are not_started.
func (s *StylingService) Status(deckID uuid.UUID) models.StylingStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status, ok := s.statuses[deckID]; ok {
		return status
	}
	return models.StylingNotStarted
}

// Analysis returns the cached analysis for the deck, if a fresh one exists.
func (s *StylingService) Analysis(deckID uuid.UUID) (models.ContentAnalysis, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cache[deckID]
	if !ok || entry.generation != s.generations[deckID] {
		return models.ContentAnalysis{}, false
	}
	return entry.analysis, true
}

// Invalidate drops the deck's cached analysis and resets its status. Any
// in-flight classification for the deck becomes stale and its result is
// discarded instead of written back. Callers use this when the deck is
// abandoned mid-session.
func (s *StylingService) Invalidate(deckID uuid.UUID) {
	s.invalidate(deckID, true)
}

func (s *StylingService) invalidate(deckID uuid.UUID, resetStatus bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[deckID]++
	delete(s.cache, deckID)
	if resetStatus {
		delete(s.statuses, deckID)
	}
}

func (s *StylingService) apply(ctx context.Context, deckID uuid.UUID, restyle bool) (*models.Deck, error) {
	deck, err := s.decks.GetDeck(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("load deck %s: %w", deckID, err)
	}

	s.markInProgress(deckID, restyle)

	analysis, err := s.analysisFor(ctx, deck)
	if err != nil {
		// Only staleness reaches here: the classifier chain itself cannot
		// fail.
		return nil, err
	}

	styled := deck.Clone()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range styled.Slides {
		slide := &styled.Slides[i]
		g.Go(func() error {
			merged, err := mergeSlideStyling(analysis, *slide)
			if err != nil {
				return fmt.Errorf("style slide %d of deck %s: %w", slide.Position, deckID, err)
			}
			if err := s.decks.UpdateSlideContent(gctx, slide.ID, merged); err != nil {
				return fmt.Errorf("persist styling for deck %s: %w", deckID, err)
			}
			slide.Content = merged
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// The computed styling is kept in cache; only the write failed, so
		// a retry will not re-run classification.
		return nil, err
	}

	s.markComplete(deckID)
	log.Infof("Styled deck %s: %d slides as %s/%s", deckID, len(styled.Slides), analysis.Industry, analysis.RecommendedStyle)
	return styled, nil
}

// analysisFor returns the deck's analysis, classifying at most once per deck
// id no matter how many callers race. A generation check after
// classification discards results for decks invalidated mid-flight.
func (s *StylingService) analysisFor(ctx context.Context, deck *models.Deck) (models.ContentAnalysis, error) {
	if analysis, ok := s.Analysis(deck.ID); ok {
		return analysis, nil
	}

	v, err, shared := s.group.Do(deck.ID.String(), func() (interface{}, error) {
		s.mu.Lock()
		startGen := s.generations[deck.ID]
		if entry, ok := s.cache[deck.ID]; ok && entry.generation == startGen {
			s.mu.Unlock()
			return entry.analysis, nil
		}
		s.mu.Unlock()

		payload := extract.BuildPayload(deck)
		analysis, err := s.classifier.Classify(ctx, deck.ID, payload)
		if err != nil {
			return models.ContentAnalysis{}, err
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generations[deck.ID] != startGen {
			return models.ContentAnalysis{}, fmt.Errorf("deck %s: %w", deck.ID, models.ErrStaleAnalysis)
		}
		s.cache[deck.ID] = cachedAnalysis{analysis: analysis, generation: startGen}
		return analysis, nil
	})
	if err != nil {
		return models.ContentAnalysis{}, err
	}
	if shared {
		log.Debugf("Coalesced concurrent classification for deck %s", deck.ID)
	}
	return v.(models.ContentAnalysis), nil
}

func (s *StylingService) markInProgress(deckID uuid.UUID, restyle bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// A complete deck only re-enters in_progress through Restyle.
	if s.statuses[deckID] == models.StylingComplete && !restyle {
		return
	}
	s.statuses[deckID] = models.StylingInProgress
}

func (s *StylingService) markComplete(deckID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[deckID] = models.StylingComplete
}
