package handle

import (
	"encoding/json"
	"net/http"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/ports/driver"
	"logistics-backoffice/internal/mylogger"
)

type CustomerHandler struct {
	customers driver.ICustomerService
	log       mylogger.Logger
}

func NewCustomerHandler(customers driver.ICustomerService, log mylogger.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, log: log}
}

func (ch *CustomerHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := ch.customers.List(r.Context())
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, customers)
	}
}

func (ch *CustomerHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.CustomerCreateRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		customer, err := ch.customers.Create(r.Context(), req)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusCreated, customer)
	}
}

func (ch *CustomerHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "customer_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		customer, err := ch.customers.Get(r.Context(), id)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, customer)
	}
}

func (ch *CustomerHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "customer_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		req := dto.CustomerUpdateRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		customer, err := ch.customers.Update(r.Context(), id, req)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, customer)
	}
}

func (ch *CustomerHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "customer_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		if err := ch.customers.Delete(r.Context(), id); err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
