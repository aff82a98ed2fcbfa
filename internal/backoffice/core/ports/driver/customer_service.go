package driver

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/domain/models"
)

type ICustomerService interface {
	List(ctx context.Context) ([]models.Customer, error)
	Create(ctx context.Context, req dto.CustomerCreateRequest) (models.Customer, error)
	Get(ctx context.Context, id int64) (models.Customer, error)
	Update(ctx context.Context, id int64, req dto.CustomerUpdateRequest) (models.Customer, error)
	Delete(ctx context.Context, id int64) error
}
