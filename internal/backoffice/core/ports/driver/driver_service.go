package driver

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/domain/models"
)

type IDriverService interface {
	List(ctx context.Context) ([]models.Driver, error)
	Create(ctx context.Context, req dto.DriverCreateRequest) (models.Driver, error)
	Get(ctx context.Context, id int64) (models.Driver, error)
	Update(ctx context.Context, id int64, req dto.DriverUpdateRequest) (models.Driver, error)
	Delete(ctx context.Context, id int64) error
}
