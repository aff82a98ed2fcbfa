package driver

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/domain/models"
)

type IInvoiceService interface {
	List(ctx context.Context) ([]models.Invoice, error)
	Create(ctx context.Context, req dto.InvoiceCreateRequest) (models.Invoice, error)
	Get(ctx context.Context, id int64) (models.Invoice, error)
	Update(ctx context.Context, id int64, req dto.InvoiceUpdateRequest) (models.Invoice, error)
	Delete(ctx context.Context, id int64) error
}
