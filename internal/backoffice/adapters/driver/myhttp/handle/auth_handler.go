package handle

import (
	"net/http"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/ports/driver"
	"logistics-backoffice/internal/mylogger"
)

type AuthHandler struct {
	auth driver.IAuthService
	log  mylogger.Logger
}

func NewAuthHandler(auth driver.IAuthService, log mylogger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// AdminLogin accepts username/password form data and returns a bearer token.
func (ah *AuthHandler) AdminLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := loginRequest(r)
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		res, err := ah.auth.AdminLogin(r.Context(), req)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, res)
	}
}

func (ah *AuthHandler) DriverLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := loginRequest(r)
		if err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		res, err := ah.auth.DriverLogin(r.Context(), req)
		if err != nil {
			JsonError(w, StatusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, res)
	}
}

func loginRequest(r *http.Request) (dto.LoginRequest, error) {
	if err := r.ParseForm(); err != nil {
		return dto.LoginRequest{}, err
	}
	return dto.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, nil
}
