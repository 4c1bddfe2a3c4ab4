package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"bragi/internal/tasks"
)

// AsynqJobClient enqueues styling tasks and records them to the JobStore.
type AsynqJobClient struct {
	client   *asynq.Client
	jobStore JobStore
}

var _ JobClient = (*AsynqJobClient)(nil)

func NewAsynqJobClient(redisAddr string, js JobStore) (*AsynqJobClient, error) {
	if js == nil {
		return nil, fmt.Errorf("JobStore cannot be nil for AsynqJobClient")
	}
	cli := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})
	return &AsynqJobClient{client: cli, jobStore: js}, nil
}

func (jc *AsynqJobClient) Close() error {
	return jc.client.Close()
}

// Enqueue enqueues a task and records the event to the JobStore. The job is
// already running once recording starts, so recording failures are logged
// rather than returned.
func (jc *AsynqJobClient) Enqueue(ctx context.Context, task *asynq.Task, deckID uuid.UUID, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if jc.client == nil {
		return nil, fmt.Errorf("AsynqJobClient internal client is not initialized")
	}

	info, err := jc.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return nil, fmt.Errorf("enqueue task %s: %w", task.Type(), err)
	}
	log.Debugf("Enqueued task type '%s' with ID %s on queue %s", task.Type(), info.ID, info.Queue)

	jobUUID, err := uuid.Parse(info.ID)
	if err != nil {
		log.Errorf("Failed to parse Asynq task ID '%s' to UUID: %v. Job record might be incomplete.", info.ID, err)
	}

	recordParams := JobRecordParams{
		JobID:    jobUUID,
		TaskType: task.Type(),
		Payload:  task.Payload(),
		Queue:    info.Queue,
		Status:   "enqueued",
	}
	if deckID != uuid.Nil {
		recordParams.DeckID = &deckID
	}
	if err := jc.jobStore.RecordJobEnqueue(ctx, recordParams); err != nil {
		log.Errorf("Failed to record job enqueue event for task ID %s: %v", info.ID, err)
	}

	return info, nil
}

func (jc *AsynqJobClient) EnqueueStylingJob(ctx context.Context, deckID uuid.UUID, restyle bool) error {
	task, err := tasks.NewStylingApplyTask(deckID, restyle)
	if err != nil {
		return fmt.Errorf("build styling task for deck %s: %w", deckID, err)
	}
	if _, err := jc.Enqueue(ctx, task, deckID, asynq.Queue(tasks.QueueStyling)); err != nil {
		return fmt.Errorf("enqueue styling job for deck %s: %w", deckID, err)
	}
	return nil
}
