package handle

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/ports/driver"
	"logistics-backoffice/internal/mylogger"

	"github.com/go-chi/chi/v5"
)

type JobHandler struct {
	jobs driver.IJobService
	log  mylogger.Logger
}

func NewJobHandler(jobs driver.IJobService, log mylogger.Logger) *JobHandler {
	return &JobHandler{jobs: jobs, log: log}
}

func (jh *JobHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := jh.jobs.List(r.Context())
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, jobs)
	}
}

func (jh *JobHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.JobCreateRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		job, err := jh.jobs.Create(r.Context(), req)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusCreated, job)
	}
}

func (jh *JobHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "job_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		job, err := jh.jobs.Get(r.Context(), id)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, job)
	}
}

func (jh *JobHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "job_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		req := dto.JobUpdateRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		job, err := jh.jobs.Update(r.Context(), id, req)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, job)
	}
}

func (jh *JobHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathId(r, "job_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		if err := jh.jobs.Delete(r.Context(), id); err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// Action applies a driver lifecycle action on a job. The acting driver comes
// from the auth middleware.
func (jh *JobHandler) Action() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drv, ok := DriverFrom(r.Context())
		if !ok {
			JsonError(w, http.StatusUnauthorized, errors.New("no driver in context"))
			return
		}

		id, err := pathId(r, "job_id")
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}
		action := chi.URLParam(r, "action")

		job, err := jh.jobs.PerformAction(r.Context(), id, action, drv)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}
		jsonResponse(w, http.StatusOK, job)
	}
}

func pathId(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}
