package driven

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/models"
)

type IDriverRepo interface {
	Create(ctx context.Context, driver models.Driver) (int64, error)
	GetByEmail(ctx context.Context, email string) (models.Driver, error)
	GetById(ctx context.Context, id int64) (models.Driver, error)
	List(ctx context.Context) ([]models.Driver, error)
	Update(ctx context.Context, driver models.Driver) error
	Delete(ctx context.Context, id int64) error
}
