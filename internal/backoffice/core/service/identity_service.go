package service

import (
	"context"
	"errors"
	"fmt"

	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"
	"logistics-backoffice/internal/backoffice/core/ports/driven"
	"logistics-backoffice/internal/mylogger"
)

// IdentityService resolves a verified token into a persisted principal.
// Checks run in fixed order, each its own failure mode: token verification,
// role match, subject lookup, and (drivers only) the active flag. The active
// check is what lets an admin cut off a driver's live sessions without a
// revocation list.
type IdentityService struct {
	tokens  *TokenService
	admins  driven.IAdminRepo
	drivers driven.IDriverRepo
	mylog   mylogger.Logger
}

func NewIdentityService(
	tokens *TokenService,
	admins driven.IAdminRepo,
	drivers driven.IDriverRepo,
	mylog mylogger.Logger,
) *IdentityService {
	return &IdentityService{
		tokens:  tokens,
		admins:  admins,
		drivers: drivers,
		mylog:   mylog,
	}
}

func (is *IdentityService) ResolveAdmin(ctx context.Context, token string) (models.Admin, error) {
	mylog := is.mylog.Action("ResolveAdmin")

	claims, err := is.verifyRole(token, models.RoleAdmin)
	if err != nil {
		return models.Admin{}, err
	}

	admin, err := is.admins.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, myerrors.ErrSubjectNotFound) {
			// Principal deleted after the token was issued.
			mylog.Warn("token subject no longer exists", "subject", claims.Subject)
			return models.Admin{}, myerrors.ErrSubjectNotFound
		}
		mylog.Error("failed to load admin", err)
		return models.Admin{}, fmt.Errorf("load admin: %w", err)
	}

	return admin, nil
}

func (is *IdentityService) ResolveDriver(ctx context.Context, token string) (models.Driver, error) {
	mylog := is.mylog.Action("ResolveDriver")

	claims, err := is.verifyRole(token, models.RoleDriver)
	if err != nil {
		return models.Driver{}, err
	}

	driver, err := is.drivers.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, myerrors.ErrSubjectNotFound) {
			mylog.Warn("token subject no longer exists", "subject", claims.Subject)
			return models.Driver{}, myerrors.ErrSubjectNotFound
		}
		mylog.Error("failed to load driver", err)
		return models.Driver{}, fmt.Errorf("load driver: %w", err)
	}

	if !driver.IsActive {
		mylog.Warn("inactive driver presented a valid token", "subject", claims.Subject)
		return models.Driver{}, myerrors.ErrAccountInactive
	}

	return driver, nil
}

func (is *IdentityService) verifyRole(token string, expected models.Role) (Claims, error) {
	claims, err := is.tokens.Verify(token)
	if err != nil {
		return Claims{}, myerrors.ErrInvalidToken
	}

	// Hard boundary: an admin token must never resolve a driver identity and
	// vice versa, even if emails collided across the two stores.
	if claims.Role != expected {
		return Claims{}, myerrors.ErrRoleMismatch
	}

	return claims, nil
}
