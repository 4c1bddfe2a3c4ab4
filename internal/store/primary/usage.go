package primary

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"bragi/internal/models"
)

// --- Classifier Usage ---

// RecordClassifierUsage inserts a new classifier usage entry.
func (s *StoreImpl) RecordClassifierUsage(ctx context.Context, usage *models.ClassifierUsage) error {
	if usage.Timestamp.IsZero() {
		usage.Timestamp = time.Now()
	}
	err := s.db.QueryRow(ctx,
		`INSERT INTO classifier_usage (
			timestamp, provider_name, model_name, deck_id,
			input_tokens, output_tokens, fallback
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		usage.Timestamp,
		usage.ProviderName,
		usage.ModelName,
		usage.DeckID,
		usage.InputTokens,
		usage.OutputTokens,
		usage.Fallback,
	).Scan(&usage.ID)
	if err != nil {
		return fmt.Errorf("failed to insert classifier_usage: %w", err)
	}
	return nil
}

// ListClassifierUsage returns usage entries, newest first.
func (s *StoreImpl) ListClassifierUsage(ctx context.Context, limit, offset int) ([]*models.ClassifierUsage, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(ctx,
		`SELECT id, timestamp, provider_name, model_name, deck_id,
		        input_tokens, output_tokens, fallback
		 FROM classifier_usage
		 ORDER BY timestamp DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query classifier_usage: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.ClassifierUsage, error) {
		var entry models.ClassifierUsage
		err := row.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.ProviderName,
			&entry.ModelName,
			&entry.DeckID,
			&entry.InputTokens,
			&entry.OutputTokens,
			&entry.Fallback,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan classifier_usage: %w", err)
		}
		return &entry, nil
	})
	return entries, err
}

// CountClassifierUsage returns total classifications and how many fell back
// to the local heuristic.
func (s *StoreImpl) CountClassifierUsage(ctx context.Context) (int64, int64, error) {
	var total, fallback int64
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN fallback THEN 1 ELSE 0 END), 0)
		 FROM classifier_usage`,
	).Scan(&total, &fallback)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to summarize classifier_usage: %w", err)
	}
	return total, fallback, nil
}
