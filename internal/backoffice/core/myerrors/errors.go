package myerrors

import "errors"

// Authentication / authorization failures. The split matters to callers:
// invalid-token and subject-not-found surface as unauthenticated, while
// role-mismatch, inactive-account and not-job-owner surface as forbidden.
var (
	ErrInvalidCredentials = errors.New("incorrect credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrRoleMismatch       = errors.New("insufficient permissions")
	ErrSubjectNotFound    = errors.New("user not found")
	ErrAccountInactive    = errors.New("driver inactive")
)

// Job lifecycle failures, in check order: existence, ownership, action.
var (
	ErrJobNotFound       = errors.New("job not found")
	ErrNotJobOwner       = errors.New("job not assigned to driver")
	ErrUnsupportedAction = errors.New("unsupported action")
)

var (
	ErrDriverNotFound     = errors.New("driver not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrCreditNoteNotFound = errors.New("credit note not found")

	ErrDriverExists        = errors.New("driver already exists")
	ErrCustomerExists      = errors.New("customer already exists")
	ErrInvoiceExistsForJob = errors.New("invoice already exists for job")

	ErrInvalidJobStatus = errors.New("invalid job status")
	ErrFieldIsEmpty     = errors.New("field is empty")
)
