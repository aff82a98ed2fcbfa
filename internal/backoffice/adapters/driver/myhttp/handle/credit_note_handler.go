package handle

import (
	"encoding/json"
	"net/http"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/ports/driver"
	"logistics-backoffice/internal/mylogger"
)

type CreditNoteHandler struct {
	notes driver.ICreditNoteService
	log   mylogger.Logger
}

func NewCreditNoteHandler(notes driver.ICreditNoteService, log mylogger.Logger) *CreditNoteHandler {
	return &CreditNoteHandler{notes: notes, log: log}
}

func (ch *CreditNoteHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes, err := ch.notes.List(r.Context())
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, notes)
	}
}

func (ch *CreditNoteHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.CreditNoteCreateRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		note, err := ch.notes.Create(r.Context(), req)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusCreated, note)
	}
}

func (ch *CreditNoteHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "credit_note_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		note, err := ch.notes.Get(r.Context(), id)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, note)
	}
}

func (ch *CreditNoteHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "credit_note_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		req := dto.CreditNoteUpdateRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		note, err := ch.notes.Update(r.Context(), id, req)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, note)
	}
}

func (ch *CreditNoteHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "credit_note_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		if err := ch.notes.Delete(r.Context(), id); err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
