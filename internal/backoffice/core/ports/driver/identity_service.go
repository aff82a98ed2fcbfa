package driver

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/models"
)

// IIdentityService turns a bearer token into a persisted principal of the
// expected kind. Read-only: it never touches storage beyond the lookup.
type IIdentityService interface {
	ResolveAdmin(ctx context.Context, token string) (models.Admin, error)
	ResolveDriver(ctx context.Context, token string) (models.Driver, error)
}
