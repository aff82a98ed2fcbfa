package driver

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/domain/models"
)

type ICreditNoteService interface {
	List(ctx context.Context) ([]models.CreditNote, error)
	Create(ctx context.Context, req dto.CreditNoteCreateRequest) (models.CreditNote, error)
	Get(ctx context.Context, id int64) (models.CreditNote, error)
	Update(ctx context.Context, id int64, req dto.CreditNoteUpdateRequest) (models.CreditNote, error)
	Delete(ctx context.Context, id int64) error
}
