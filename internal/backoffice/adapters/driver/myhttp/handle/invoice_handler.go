package handle

import (
	"encoding/json"
	"net/http"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/ports/driver"
	"logistics-backoffice/internal/mylogger"
)

type InvoiceHandler struct {
	invoices driver.IInvoiceService
	log      mylogger.Logger
}

func NewInvoiceHandler(invoices driver.IInvoiceService, log mylogger.Logger) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, log: log}
}

func (ih *InvoiceHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invoices, err := ih.invoices.List(r.Context())
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, invoices)
	}
}

func (ih *InvoiceHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.InvoiceCreateRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		invoice, err := ih.invoices.Create(r.Context(), req)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusCreated, invoice)
	}
}

func (ih *InvoiceHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "invoice_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		invoice, err := ih.invoices.Get(r.Context(), id)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, invoice)
	}
}

func (ih *InvoiceHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "invoice_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		req := dto.InvoiceUpdateRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		invoice, err := ih.invoices.Update(r.Context(), id, req)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, invoice)
	}
}

func (ih *InvoiceHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "invoice_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		if err := ih.invoices.Delete(r.Context(), id); err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
