package driven

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/models"
)

type ICustomerRepo interface {
	Create(ctx context.Context, customer models.Customer) (int64, error)
	GetByEmail(ctx context.Context, email string) (models.Customer, error)
	GetById(ctx context.Context, id int64) (models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, customer models.Customer) error
	Delete(ctx context.Context, id int64) error
}
