package driver

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/domain/models"
)

type IJobService interface {
	List(ctx context.Context) ([]models.Job, error)
	Create(ctx context.Context, req dto.JobCreateRequest) (models.Job, error)
	Get(ctx context.Context, id int64) (models.Job, error)
	Update(ctx context.Context, id int64, req dto.JobUpdateRequest) (models.Job, error)
	Delete(ctx context.Context, id int64) error
	ListForDriver(ctx context.Context, driverId int64) ([]models.Job, error)
	// PerformAction applies a driver-triggered lifecycle action. Checks run in
	// fixed order: job existence, then ownership, then action validity.
	PerformAction(ctx context.Context, jobId int64, action string, caller models.Driver) (models.Job, error)
}
