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

type DriverService struct {
	drivers driven.IDriverRepo
	mylog   mylogger.Logger
}

func NewDriverService(drivers driven.IDriverRepo, mylog mylogger.Logger) *DriverService {
	return &DriverService{drivers: drivers, mylog: mylog}
}

func (ds *DriverService) List(ctx context.Context) ([]models.Driver, error) {
	return ds.drivers.List(ctx)
}

func (ds *DriverService) Get(ctx context.Context, id int64) (models.Driver, error) {
	return ds.drivers.GetById(ctx, id)
}

func (ds *DriverService) Create(ctx context.Context, req dto.DriverCreateRequest) (models.Driver, error) {
	mylog := ds.mylog.Action("CreateDriver")

	if req.Email == "" {
		return models.Driver{}, fmt.Errorf("invalid email: %w", myerrors.ErrFieldIsEmpty)
	}
	if req.Password == "" {
		return models.Driver{}, fmt.Errorf("invalid password: %w", myerrors.ErrFieldIsEmpty)
	}

	_, err := ds.drivers.GetByEmail(ctx, req.Email)
	if err == nil {
		mylog.Warn("email already registered", "email", req.Email)
		return models.Driver{}, myerrors.ErrDriverExists
	}
	if !errors.Is(err, myerrors.ErrSubjectNotFound) {
		mylog.Error("failed to check for existing driver", err)
		return models.Driver{}, fmt.Errorf("check existing driver: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		mylog.Error("failed to hash password", err)
		return models.Driver{}, fmt.Errorf("hash password: %w", err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	driver := models.Driver{
		Email:        req.Email,
		FullName:     req.FullName,
		Phone:        req.Phone,
		PasswordHash: hash,
		IsActive:     isActive,
	}

	id, err := ds.drivers.Create(ctx, driver)
	if err != nil {
		mylog.Error("failed to create driver", err)
		return models.Driver{}, err
	}
	driver.Id = id

	mylog.Info("driver created", "driver_id", id)
	return driver, nil
}

func (ds *DriverService) Update(ctx context.Context, id int64, req dto.DriverUpdateRequest) (models.Driver, error) {
	mylog := ds.mylog.Action("UpdateDriver")

	driver, err := ds.drivers.GetById(ctx, id)
	if err != nil {
		return models.Driver{}, err
	}

	if req.FullName != nil {
		driver.FullName = *req.FullName
	}
	if req.Phone != nil {
		driver.Phone = req.Phone
	}
	if req.IsActive != nil {
		driver.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := HashPassword(*req.Password)
		if err != nil {
			mylog.Error("failed to hash password", err)
			return models.Driver{}, fmt.Errorf("hash password: %w", err)
		}
		driver.PasswordHash = hash
	}

	if err := ds.drivers.Update(ctx, driver); err != nil {
		mylog.Error("failed to update driver", err)
		return models.Driver{}, err
	}

	mylog.Info("driver updated", "driver_id", id)
	return driver, nil
}

func (ds *DriverService) Delete(ctx context.Context, id int64) error {
	return ds.drivers.Delete(ctx, id)
}
