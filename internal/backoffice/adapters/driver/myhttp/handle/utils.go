package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics-backoffice/internal/backoffice/core/myerrors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func JsonError(w http.ResponseWriter, status int, err error) {
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	jsonResponse(w, status, errorResponse{Error: msg})
}

// StatusFromError maps the core error taxonomy onto HTTP status categories.
// The unauthenticated/forbidden split is part of the contract: invalid-token
// and subject-not-found are 401, while role-mismatch, inactive-account and
// not-job-owner are 403 even though the token itself was valid.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, myerrors.ErrInvalidCredentials),
		errors.Is(err, myerrors.ErrInvalidToken),
		errors.Is(err, myerrors.ErrSubjectNotFound):
		return http.StatusUnauthorized

	case errors.Is(err, myerrors.ErrRoleMismatch),
		errors.Is(err, myerrors.ErrAccountInactive),
		errors.Is(err, myerrors.ErrNotJobOwner):
		return http.StatusForbidden

	case errors.Is(err, myerrors.ErrJobNotFound),
		errors.Is(err, myerrors.ErrDriverNotFound),
		errors.Is(err, myerrors.ErrCustomerNotFound),
		errors.Is(err, myerrors.ErrInvoiceNotFound),
		errors.Is(err, myerrors.ErrCreditNoteNotFound):
		return http.StatusNotFound

	case errors.Is(err, myerrors.ErrUnsupportedAction),
		errors.Is(err, myerrors.ErrInvalidJobStatus),
		errors.Is(err, myerrors.ErrFieldIsEmpty),
		errors.Is(err, myerrors.ErrDriverExists),
		errors.Is(err, myerrors.ErrCustomerExists),
		errors.Is(err, myerrors.ErrInvoiceExistsForJob):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
