package driven

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/models"
)

type IJobRepo interface {
	Create(ctx context.Context, job models.Job) (int64, error)
	GetById(ctx context.Context, id int64) (models.Job, error)
	List(ctx context.Context) ([]models.Job, error)
	// ListByDriver returns the driver's jobs ordered by scheduled_at with
	// unscheduled jobs last.
	ListByDriver(ctx context.Context, driverId int64) ([]models.Job, error)
	Update(ctx context.Context, job models.Job) error
	// UpdateLocked loads the job under a row lock, runs apply on it, and writes
	// the result back in the same transaction. Apply errors abort the
	// transaction and are returned unchanged.
	UpdateLocked(ctx context.Context, id int64, apply func(job *models.Job) error) (models.Job, error)
	Delete(ctx context.Context, id int64) error
}
