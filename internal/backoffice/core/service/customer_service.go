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

type CustomerService struct {
	customers driven.ICustomerRepo
	mylog     mylogger.Logger
}

func NewCustomerService(customers driven.ICustomerRepo, mylog mylogger.Logger) *CustomerService {
	return &CustomerService{customers: customers, mylog: mylog}
}

func (cs *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return cs.customers.List(ctx)
}

func (cs *CustomerService) Get(ctx context.Context, id int64) (models.Customer, error) {
	return cs.customers.GetById(ctx, id)
}

func (cs *CustomerService) Create(ctx context.Context, req dto.CustomerCreateRequest) (models.Customer, error) {
	mylog := cs.mylog.Action("CreateCustomer")

	if req.Email == "" {
		return models.Customer{}, fmt.Errorf("invalid email: %w", myerrors.ErrFieldIsEmpty)
	}

	_, err := cs.customers.GetByEmail(ctx, req.Email)
	if err == nil {
		mylog.Warn("email already registered", "email", req.Email)
		return models.Customer{}, myerrors.ErrCustomerExists
	}
	if !errors.Is(err, myerrors.ErrCustomerNotFound) {
		mylog.Error("failed to check for existing customer", err)
		return models.Customer{}, fmt.Errorf("check existing customer: %w", err)
	}

	customer := models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
	}

	id, err := cs.customers.Create(ctx, customer)
	if err != nil {
		mylog.Error("failed to create customer", err)
		return models.Customer{}, err
	}
	customer.Id = id

	mylog.Info("customer created", "customer_id", id)
	return customer, nil
}

func (cs *CustomerService) Update(ctx context.Context, id int64, req dto.CustomerUpdateRequest) (models.Customer, error) {
	mylog := cs.mylog.Action("UpdateCustomer")

	customer, err := cs.customers.GetById(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Address != nil {
		customer.Address = req.Address
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}

	if err := cs.customers.Update(ctx, customer); err != nil {
		mylog.Error("failed to update customer", err)
		return models.Customer{}, err
	}

	mylog.Info("customer updated", "customer_id", id)
	return customer, nil
}

func (cs *CustomerService) Delete(ctx context.Context, id int64) error {
	return cs.customers.Delete(ctx, id)
}
