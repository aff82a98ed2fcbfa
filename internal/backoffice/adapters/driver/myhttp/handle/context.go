package handle

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/models"
)

type ctxKey int

const (
	adminKey ctxKey = iota
	driverKey
)

// WithAdmin and WithDriver are called by the auth middleware after resolving
// the bearer token; the From accessors pull the principal back out in handlers.
func WithAdmin(ctx context.Context, admin models.Admin) context.Context {
	return context.WithValue(ctx, adminKey, admin)
}

func WithDriver(ctx context.Context, driver models.Driver) context.Context {
	return context.WithValue(ctx, driverKey, driver)
}

func AdminFrom(ctx context.Context) (models.Admin, bool) {
	admin, ok := ctx.Value(adminKey).(models.Admin)
	return admin, ok
}

func DriverFrom(ctx context.Context) (models.Driver, bool) {
	driver, ok := ctx.Value(driverKey).(models.Driver)
	return driver, ok
}
