package service

import (
	"context"
	"time"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/ports/driven"
	"logistics-backoffice/internal/mylogger"
)

type CreditNoteService struct {
	notes driven.ICreditNoteRepo
	mylog mylogger.Logger
	now   func() time.Time
}

func NewCreditNoteService(notes driven.ICreditNoteRepo, mylog mylogger.Logger) *CreditNoteService {
	return &CreditNoteService{notes: notes, mylog: mylog, now: time.Now}
}

func (cs *CreditNoteService) List(ctx context.Context) ([]models.CreditNote, error) {
	return cs.notes.List(ctx)
}

func (cs *CreditNoteService) Get(ctx context.Context, id int64) (models.CreditNote, error) {
	return cs.notes.GetById(ctx, id)
}

func (cs *CreditNoteService) Create(ctx context.Context, req dto.CreditNoteCreateRequest) (models.CreditNote, error) {
	mylog := cs.mylog.Action("CreateCreditNote")

	note := models.CreditNote{
		JobId:      req.JobId,
		CustomerId: req.CustomerId,
		Amount:     req.Amount,
		Reason:     req.Reason,
		CreatedAt:  cs.now(),
	}

	id, err := cs.notes.Create(ctx, note)
	if err != nil {
		mylog.Error("failed to create credit note", err)
		return models.CreditNote{}, err
	}
	note.Id = id

	mylog.Info("credit note created", "credit_note_id", id)
	return note, nil
}

func (cs *CreditNoteService) Update(ctx context.Context, id int64, req dto.CreditNoteUpdateRequest) (models.CreditNote, error) {
	mylog := cs.mylog.Action("UpdateCreditNote")

	note, err := cs.notes.GetById(ctx, id)
	if err != nil {
		return models.CreditNote{}, err
	}

	if req.Amount != nil {
		note.Amount = *req.Amount
	}
	if req.Reason != nil {
		note.Reason = req.Reason
	}

	if err := cs.notes.Update(ctx, note); err != nil {
		mylog.Error("failed to update credit note", err)
		return models.CreditNote{}, err
	}

	mylog.Info("credit note updated", "credit_note_id", id)
	return note, nil
}

func (cs *CreditNoteService) Delete(ctx context.Context, id int64) error {
	return cs.notes.Delete(ctx, id)
}
