package service

import (
	"context"
	"errors"
	"fmt"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"
	"logistics-backoffice/internal/backoffice/core/ports/driven"
	"logistics-backoffice/internal/mylogger"
)

const tokenType = "bearer"

type AuthService struct {
	tokens  *TokenService
	admins  driven.IAdminRepo
	drivers driven.IDriverRepo
	mylog   mylogger.Logger
}

func NewAuthService(
	tokens *TokenService,
	admins driven.IAdminRepo,
	drivers driven.IDriverRepo,
	mylog mylogger.Logger,
) *AuthService {
	return &AuthService{
		tokens:  tokens,
		admins:  admins,
		drivers: drivers,
		mylog:   mylog,
	}
}

func (as *AuthService) AdminLogin(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error) {
	mylog := as.mylog.Action("AdminLogin")

	if err := validateLogin(req.Username, req.Password); err != nil {
		return dto.TokenResponse{}, err
	}

	admin, err := as.admins.GetByEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, myerrors.ErrSubjectNotFound) {
			mylog.Warn("login with unknown email")
			return dto.TokenResponse{}, myerrors.ErrInvalidCredentials
		}
		mylog.Error("failed to load admin", err)
		return dto.TokenResponse{}, fmt.Errorf("load admin: %w", err)
	}

	if !CheckPassword(admin.PasswordHash, req.Password) {
		mylog.Warn("login with wrong password")
		return dto.TokenResponse{}, myerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := as.tokens.Issue(admin.Email, models.RoleAdmin, admin.Id)
	if err != nil {
		mylog.Error("failed to issue token", err)
		return dto.TokenResponse{}, err
	}

	mylog.Info("admin logged in")
	return dto.TokenResponse{AccessToken: token, TokenType: tokenType, ExpiresAt: expiresAt}, nil
}

func (as *AuthService) DriverLogin(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error) {
	mylog := as.mylog.Action("DriverLogin")

	if err := validateLogin(req.Username, req.Password); err != nil {
		return dto.TokenResponse{}, err
	}

	driver, err := as.drivers.GetByEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, myerrors.ErrSubjectNotFound) {
			mylog.Warn("login with unknown email")
			return dto.TokenResponse{}, myerrors.ErrInvalidCredentials
		}
		mylog.Error("failed to load driver", err)
		return dto.TokenResponse{}, fmt.Errorf("load driver: %w", err)
	}

	if !CheckPassword(driver.PasswordHash, req.Password) {
		mylog.Warn("login with wrong password")
		return dto.TokenResponse{}, myerrors.ErrInvalidCredentials
	}

	// Active flag is only checked once credentials pass.
	if !driver.IsActive {
		mylog.Warn("inactive driver tried to log in")
		return dto.TokenResponse{}, myerrors.ErrAccountInactive
	}

	token, expiresAt, err := as.tokens.Issue(driver.Email, models.RoleDriver, driver.Id)
	if err != nil {
		mylog.Error("failed to issue token", err)
		return dto.TokenResponse{}, err
	}

	mylog.Info("driver logged in")
	return dto.TokenResponse{AccessToken: token, TokenType: tokenType, ExpiresAt: expiresAt}, nil
}
