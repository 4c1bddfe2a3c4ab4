package classifier

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bragi/internal/costtracker"
	"bragi/internal/models"
)

// DefaultTimeout bounds each remote classification attempt.
const DefaultTimeout = 12 * time.Second

// slideOverrides is the fixed per-slide-type layout overlay attached after
// classification on both paths. It is never requested from the remote model;
// only this post-step supplies it.
var slideOverrides = map[models.SlideType]models.SlideOverride{
	models.SlideCover:      {Layout: models.LayoutFullWidthImage},
	models.SlideData:       {Layout: models.LayoutGrid},
	models.SlideFinancials: {Layout: models.LayoutGrid},
}

// FallbackClassifier runs an ordered provider chain that always produces a
// verdict: each remote failure falls through to the next provider and
// finally to the local heuristic, which cannot fail. Callers never see a
// classification error.
type FallbackClassifier struct {
	providers []ContentClassifier
	fallback  ContentClassifier
	timeout   time.Duration

	tracker costtracker.Tracker
}

// NewFallbackClassifier builds the chain. Nil providers are skipped; a zero
// timeout gets DefaultTimeout; a nil tracker disables usage recording.
func NewFallbackClassifier(providers []ContentClassifier, timeout time.Duration, tracker costtracker.Tracker) *FallbackClassifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	kept := make([]ContentClassifier, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return &FallbackClassifier{
		providers: kept,
		fallback:  NewHeuristicClassifier(),
		timeout:   timeout,
		tracker:   tracker,
	}
}

func (c *FallbackClassifier) Name() string { return "fallback-chain" }

func (c *FallbackClassifier) Classify(ctx context.Context, deckID uuid.UUID, payload models.ContentPayload) (models.ContentAnalysis, error) {
	for _, provider := range c.providers {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		analysis, err := provider.Classify(attemptCtx, deckID, payload)
		cancel()
		if err != nil {
			log.Warnf("Classifier %s failed for deck %s, falling through: %v", provider.Name(), deckID, err)
			continue
		}
		log.Debugf("Classifier %s resolved deck %s as %s/%s", provider.Name(), deckID, analysis.Industry, analysis.BusinessTone)
		return applySlideOverrides(analysis), nil
	}

	analysis, _ := c.fallback.Classify(ctx, deckID, payload)
	log.Infof("Deck %s classified by local heuristic as %s", deckID, analysis.Industry)

	if c.tracker != nil {
		event := costtracker.UsageEvent{
			Provider: c.fallback.Name(),
			DeckID:   deckID,
			Fallback: true,
		}
		if err := c.tracker.RecordUsage(ctx, event); err != nil {
			log.Debugf("Failed to record heuristic usage for deck %s: %v", deckID, err)
		}
	}

	return applySlideOverrides(analysis), nil
}

// applySlideOverrides attaches the fixed overlay, leaving any other entries
// already present untouched.
func applySlideOverrides(analysis models.ContentAnalysis) models.ContentAnalysis {
	if analysis.SlideStyles == nil {
		analysis.SlideStyles = make(map[models.SlideType]models.SlideOverride, len(slideOverrides))
	}
	for slideType, override := range slideOverrides {
		analysis.SlideStyles[slideType] = override
	}
	return analysis
}

var _ ContentClassifier = (*FallbackClassifier)(nil)
