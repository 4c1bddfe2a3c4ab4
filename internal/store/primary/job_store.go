package primary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"

	"bragi/internal/models"
	"bragi/internal/store"
)

// --- Job Store Implementation ---

// RecordJobEnqueue inserts a record into the background_jobs table.
func (s *StoreImpl) RecordJobEnqueue(ctx context.Context, params store.JobRecordParams) error {
	payloadJSON := json.RawMessage("{}")
	if params.Payload != nil {
		payloadJSON = json.RawMessage(params.Payload)
	}

	now := time.Now()
	var insertedID int64
	err := s.db.QueryRow(ctx,
		`INSERT INTO background_jobs (job_id, task_type, payload, queue, status, deck_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (job_id) DO NOTHING
		 RETURNING id`,
		params.JobID,
		params.TaskType,
		payloadJSON,
		params.Queue,
		params.Status,
		params.DeckID,
		now,
		now,
	).Scan(&insertedID)
	if err != nil {
		// ON CONFLICT DO NOTHING yields no row when the job was already
		// recorded; that is not a failure.
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debugf("Job %s already recorded, skipping insertion", params.JobID)
			return nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("deck %s does not exist: %w", params.DeckID, store.ErrForeignKeyViolation)
		}
		return fmt.Errorf("failed to record job enqueue event for job %s: %w", params.JobID, err)
	}
	return nil
}

// UpdateJobStatus updates the status of a job given its Asynq task UUID.
func (s *StoreImpl) UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string) error {
	cmdTag, err := s.db.Exec(ctx,
		`UPDATE background_jobs SET status = $1, updated_at = $2 WHERE job_id = $3`,
		status, time.Now(), jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job status for job %s: %w", jobID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("job %s not found to update status: %w", jobID, store.ErrNotFound)
	}
	return nil
}

// ListJobs returns background job records, newest first.
func (s *StoreImpl) ListJobs(ctx context.Context, limit, offset int) ([]*models.BackgroundJob, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(ctx,
		`SELECT id, job_id, task_type, payload, queue, status, deck_id, created_at, updated_at
		 FROM background_jobs
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query background_jobs: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.BackgroundJob, error) {
		var job models.BackgroundJob
		err := row.Scan(
			&job.ID,
			&job.JobID,
			&job.TaskType,
			&job.Payload,
			&job.Queue,
			&job.Status,
			&job.DeckID,
			&job.CreatedAt,
			&job.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan background_job: %w", err)
		}
		return &job, nil
	})
	return jobs, err
}
