package driven

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/models"
)

type IInvoiceRepo interface {
	Create(ctx context.Context, invoice models.Invoice) (int64, error)
	GetById(ctx context.Context, id int64) (models.Invoice, error)
	GetByJobId(ctx context.Context, jobId int64) (models.Invoice, error)
	List(ctx context.Context) ([]models.Invoice, error)
	Update(ctx context.Context, invoice models.Invoice) error
	Delete(ctx context.Context, id int64) error
}
