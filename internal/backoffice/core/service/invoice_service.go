package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"
	"logistics-backoffice/internal/backoffice/core/ports/driven"
	"logistics-backoffice/internal/mylogger"
)

const defaultInvoiceStatus = "draft"

type InvoiceService struct {
	invoices driven.IInvoiceRepo
	mylog    mylogger.Logger
	now      func() time.Time
}

func NewInvoiceService(invoices driven.IInvoiceRepo, mylog mylogger.Logger) *InvoiceService {
	return &InvoiceService{invoices: invoices, mylog: mylog, now: time.Now}
}

func (is *InvoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	return is.invoices.List(ctx)
}

func (is *InvoiceService) Get(ctx context.Context, id int64) (models.Invoice, error) {
	return is.invoices.GetById(ctx, id)
}

func (is *InvoiceService) Create(ctx context.Context, req dto.InvoiceCreateRequest) (models.Invoice, error) {
	mylog := is.mylog.Action("CreateInvoice")

	// One invoice per job.
	_, err := is.invoices.GetByJobId(ctx, req.JobId)
	if err == nil {
		mylog.Warn("invoice already exists for job", "job_id", req.JobId)
		return models.Invoice{}, myerrors.ErrInvoiceExistsForJob
	}
	if !errors.Is(err, myerrors.ErrInvoiceNotFound) {
		mylog.Error("failed to check for existing invoice", err)
		return models.Invoice{}, fmt.Errorf("check existing invoice: %w", err)
	}

	invoice := models.Invoice{
		JobId:      req.JobId,
		CustomerId: req.CustomerId,
		Amount:     req.Amount,
		Status:     defaultInvoiceStatus,
		IssuedAt:   is.now(),
	}
	if req.Status != nil && *req.Status != "" {
		invoice.Status = *req.Status
	}
	if req.IssuedAt != nil {
		invoice.IssuedAt = *req.IssuedAt
	}

	id, err := is.invoices.Create(ctx, invoice)
	if err != nil {
		mylog.Error("failed to create invoice", err)
		return models.Invoice{}, err
	}
	invoice.Id = id

	mylog.Info("invoice created", "invoice_id", id)
	return invoice, nil
}

func (is *InvoiceService) Update(ctx context.Context, id int64, req dto.InvoiceUpdateRequest) (models.Invoice, error) {
	mylog := is.mylog.Action("UpdateInvoice")

	invoice, err := is.invoices.GetById(ctx, id)
	if err != nil {
		return models.Invoice{}, err
	}

	if req.Amount != nil {
		invoice.Amount = *req.Amount
	}
	if req.Status != nil {
		invoice.Status = *req.Status
	}
	if req.IssuedAt != nil {
		invoice.IssuedAt = *req.IssuedAt
	}

	if err := is.invoices.Update(ctx, invoice); err != nil {
		mylog.Error("failed to update invoice", err)
		return models.Invoice{}, err
	}

	mylog.Info("invoice updated", "invoice_id", id)
	return invoice, nil
}

func (is *InvoiceService) Delete(ctx context.Context, id int64) error {
	return is.invoices.Delete(ctx, id)
}
