package middleware

import (
	"errors"
	"net/http"
	"strings"

	"logistics-backoffice/internal/backoffice/adapters/driver/myhttp/handle"
	"logistics-backoffice/internal/backoffice/core/myerrors"
	"logistics-backoffice/internal/backoffice/core/ports/driver"
)

type AuthMiddleware struct {
	identity driver.IIdentityService
}

func NewAuthMiddleware(identity driver.IIdentityService) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Admin resolves the bearer token to an admin principal and injects it into
// the request context.
func (am *AuthMiddleware) Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			handle.JsonError(w, http.StatusUnauthorized, err)
			return
		}

		admin, err := am.identity.ResolveAdmin(r.Context(), token)
		if err != nil {
			handle.JsonError(w, handle.StatusFromError(err), err)
			return
		}

		next.ServeHTTP(w, r.WithContext(handle.WithAdmin(r.Context(), admin)))
	})
}

// Driver resolves the bearer token to an active driver principal.
func (am *AuthMiddleware) Driver(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			handle.JsonError(w, http.StatusUnauthorized, err)
			return
		}

		drv, err := am.identity.ResolveDriver(r.Context(), token)
		if err != nil {
			handle.JsonError(w, handle.StatusFromError(err), err)
			return
		}

		next.ServeHTTP(w, r.WithContext(handle.WithDriver(r.Context(), drv)))
	})
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing authorization header")
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return "", myerrors.ErrInvalidToken
	}
	return token, nil
}
