package driven

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/models"
)

type IAdminRepo interface {
	Create(ctx context.Context, admin models.Admin) (int64, error)
	GetByEmail(ctx context.Context, email string) (models.Admin, error)
}
