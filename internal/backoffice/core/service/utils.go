package service

import (
	"fmt"

	"logistics-backoffice/internal/backoffice/core/myerrors"
)

func validateLogin(username, password string) error {
	if username == "" {
		return fmt.Errorf("invalid username: %w", myerrors.ErrFieldIsEmpty)
	}
	if password == "" {
		return fmt.Errorf("invalid password: %w", myerrors.ErrFieldIsEmpty)
	}
	return nil
}
