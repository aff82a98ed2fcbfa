package driven

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/models"
)

type ICreditNoteRepo interface {
	Create(ctx context.Context, note models.CreditNote) (int64, error)
	GetById(ctx context.Context, id int64) (models.CreditNote, error)
	List(ctx context.Context) ([]models.CreditNote, error)
	Update(ctx context.Context, note models.CreditNote) error
	Delete(ctx context.Context, id int64) error
}
