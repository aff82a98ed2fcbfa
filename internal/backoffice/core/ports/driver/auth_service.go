package driver

import (
	"context"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
)

type IAuthService interface {
	AdminLogin(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
	DriverLogin(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
}
