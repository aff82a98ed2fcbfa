package db

import (
	"context"
	"errors"

	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"

	"github.com/jackc/pgx/v5"
)

type CustomerRepo struct {
	db *DB
}

func NewCustomerRepo(db *DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (cr *CustomerRepo) Create(ctx context.Context, customer models.Customer) (int64, error) {
	q := `
		INSERT INTO customers (name, email, address, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	row := cr.db.conn.QueryRow(ctx, q, customer.Name, customer.Email, customer.Address, customer.Phone)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (cr *CustomerRepo) GetByEmail(ctx context.Context, email string) (models.Customer, error) {
	q := customerSelect + ` WHERE email = $1`

	c, err := scanCustomer(cr.db.conn.QueryRow(ctx, q, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Customer{}, myerrors.ErrCustomerNotFound
		}
		return models.Customer{}, err
	}
	return c, nil
}

func (cr *CustomerRepo) GetById(ctx context.Context, id int64) (models.Customer, error) {
	q := customerSelect + ` WHERE id = $1`

	c, err := scanCustomer(cr.db.conn.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Customer{}, myerrors.ErrCustomerNotFound
		}
		return models.Customer{}, err
	}
	return c, nil
}

func (cr *CustomerRepo) List(ctx context.Context) ([]models.Customer, error) {
	q := customerSelect + ` ORDER BY id`

	rows, err := cr.db.conn.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (cr *CustomerRepo) Update(ctx context.Context, customer models.Customer) error {
	q := `
		UPDATE customers
		SET name = $2, email = $3, address = $4, phone = $5
		WHERE id = $1
	`

	tag, err := cr.db.conn.Exec(ctx, q, customer.Id, customer.Name, customer.Email, customer.Address, customer.Phone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrCustomerNotFound
	}
	return nil
}

func (cr *CustomerRepo) Delete(ctx context.Context, id int64) error {
	tag, err := cr.db.conn.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrCustomerNotFound
	}
	return nil
}

const customerSelect = `
	SELECT
		id,
		name,
		email,
		address,
		phone
	FROM
		customers`

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(
		&c.Id,
		&c.Name,
		&c.Email,
		&c.Address,
		&c.Phone,
	)
	return c, err
}
