package domain

import (
	"context"
	"fmt"
	"time"

	"example.com/tasktracker/internal/observability"
)

// BatchRepository captures the single persistence operation the service
// needs: an unconditional put keyed by (date, timestamp).
type BatchRepository interface {
	Put(ctx context.Context, batch Batch) error
}

// Service assembles and persists task batches.
type Service struct {
	repo BatchRepository
	now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo BatchRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SaveBatchInput carries the validated payload from the API layer.
type SaveBatchInput struct {
	Date      string
	Timestamp string
	Tasks     []Task
}

// SaveBatch derives createdAt, taskCount, and the summary, then writes
// the batch through the repository. The write is not retried; any
// repository failure propagates to the caller.
func (s *Service) SaveBatch(ctx context.Context, input SaveBatchInput) (Batch, error) {
	batch := Batch{
		Date:      input.Date,
		Timestamp: input.Timestamp,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
		Tasks:     input.Tasks,
		TaskCount: len(input.Tasks),
		Summary:   Summarize(input.Tasks),
	}

	if err := s.repo.Put(ctx, batch); err != nil {
		observability.RecordBatchPersistFailure()
		return Batch{}, fmt.Errorf("save batch for %s: %w", input.Date, err)
	}

	observability.RecordBatchPersisted(batch.TaskCount, s.now().UTC())
	return batch, nil
}
