// Package worker hosts the Asynq task handlers for background styling.
package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"bragi/internal/models"
	"bragi/internal/store"
	"bragi/internal/tasks"
)

// Styler is the slice of the styling service the worker drives.
type Styler interface {
	ApplyStyling(ctx context.Context, deckID uuid.UUID) (*models.Deck, error)
	Restyle(ctx context.Context, deckID uuid.UUID) (*models.Deck, error)
}

// StylingDeps holds the dependencies for the styling handlers.
type StylingDeps struct {
	Styler   Styler
	JobStore store.JobStore
}

// RegisterHandlers attaches all styling handlers to the mux.
func RegisterHandlers(mux *asynq.ServeMux, deps StylingDeps) {
	mux.HandleFunc(tasks.TypeStylingApply, HandleStylingApply(deps))
}

// HandleStylingApply styles one deck. A vanished deck or an analysis made
// stale by invalidation is terminal; persistence failures are left
// retryable because the cached analysis makes a re-run cheap.
func HandleStylingApply(deps StylingDeps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		payload, err := tasks.ParseStylingApplyPayload(t.Payload())
		if err != nil {
			return fmt.Errorf("invalid styling payload: %v: %w", err, asynq.SkipRetry)
		}

		markJob(ctx, deps.JobStore, models.JobStatusRunning)

		styled, err := applyOrRestyle(ctx, deps.Styler, payload)
		if err != nil {
			markJob(ctx, deps.JobStore, models.JobStatusFailed)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("deck %s no longer exists: %v: %w", payload.DeckID, err, asynq.SkipRetry)
			}
			if errors.Is(err, models.ErrStaleAnalysis) {
				return fmt.Errorf("deck %s was invalidated mid-styling: %v: %w", payload.DeckID, err, asynq.SkipRetry)
			}
			return fmt.Errorf("style deck %s: %w", payload.DeckID, err)
		}

		markJob(ctx, deps.JobStore, models.JobStatusCompleted)
		log.Infof("Background styling finished for deck %s (%d slides)", payload.DeckID, len(styled.Slides))
		return nil
	}
}

func applyOrRestyle(ctx context.Context, styler Styler, payload tasks.StylingApplyPayload) (*models.Deck, error) {
	if payload.Restyle {
		return styler.Restyle(ctx, payload.DeckID)
	}
	return styler.ApplyStyling(ctx, payload.DeckID)
}

// markJob records task progress in the job store. Tasks enqueued outside
// the job client have no record; that is logged, never fatal.
func markJob(ctx context.Context, jobs store.JobStore, status string) {
	if jobs == nil {
		return
	}
	taskID, ok := asynq.GetTaskID(ctx)
	if !ok {
		return
	}
	jobUUID, err := uuid.Parse(taskID)
	if err != nil {
		log.Debugf("Task ID %s is not a UUID, skipping job record update", taskID)
		return
	}
	if err := jobs.UpdateJobStatus(ctx, jobUUID, status); err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Errorf("Failed to update job %s to %s: %v", jobUUID, status, err)
	}
}
