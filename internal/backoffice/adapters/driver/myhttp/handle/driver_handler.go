package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/ports/driver"
	"logistics-backoffice/internal/mylogger"
)

type DriverHandler struct {
	drivers driver.IDriverService
	jobs    driver.IJobService
	log     mylogger.Logger
}

func NewDriverHandler(drivers driver.IDriverService, jobs driver.IJobService, log mylogger.Logger) *DriverHandler {
	return &DriverHandler{drivers: drivers, jobs: jobs, log: log}
}

func (dh *DriverHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drivers, err := dh.drivers.List(r.Context())
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, drivers)
	}
}

func (dh *DriverHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.DriverCreateRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		drv, err := dh.drivers.Create(r.Context(), req)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusCreated, drv)
	}
}

func (dh *DriverHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "driver_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		drv, err := dh.drivers.Get(r.Context(), id)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, drv)
	}
}

func (dh *DriverHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "driver_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		req := dto.DriverUpdateRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		drv, err := dh.drivers.Update(r.Context(), id, req)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, drv)
	}
}

func (dh *DriverHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "driver_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		if err := dh.drivers.Delete(r.Context(), id); err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// Me returns the authenticated driver's own record.
func (dh *DriverHandler) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drv, ok := DriverFrom(r.Context())
		if !ok {
			JsonError(w, http.StatusUnauthorized, errors.New("no driver in context"))
			return
		}
		jsonResponse(w, http.StatusOK, drv)
	}
}

// MyJobs returns the authenticated driver's jobs, soonest first, unscheduled
// jobs last.
func (dh *DriverHandler) MyJobs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drv, ok := DriverFrom(r.Context())
		if !ok {
			JsonError(w, http.StatusUnauthorized, errors.New("no driver in context"))
			return
		}

		jobs, err := dh.jobs.ListForDriver(r.Context(), drv.Id)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, jobs)
	}
}
