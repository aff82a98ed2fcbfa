package db

import (
	"context"
	"errors"

	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"

	"github.com/jackc/pgx/v5"
)

type DriverRepo struct {
	db *DB
}

func NewDriverRepo(db *DB) *DriverRepo {
	return &DriverRepo{db: db}
}

func (dr *DriverRepo) Create(ctx context.Context, driver models.Driver) (int64, error) {
	q := `
		INSERT INTO drivers (email, full_name, phone, password_hash, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	row := dr.db.conn.QueryRow(ctx, q, driver.Email, driver.FullName, driver.Phone, driver.PasswordHash, driver.IsActive)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (dr *DriverRepo) GetByEmail(ctx context.Context, email string) (models.Driver, error) {
	q := driverSelect + ` WHERE email = $1`

	d, err := scanDriver(dr.db.conn.QueryRow(ctx, q, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Driver{}, myerrors.ErrSubjectNotFound
		}
		return models.Driver{}, err
	}
	return d, nil
}

func (dr *DriverRepo) GetById(ctx context.Context, id int64) (models.Driver, error) {
	q := driverSelect + ` WHERE id = $1`

	d, err := scanDriver(dr.db.conn.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Driver{}, myerrors.ErrDriverNotFound
		}
		return models.Driver{}, err
	}
	return d, nil
}

func (dr *DriverRepo) List(ctx context.Context) ([]models.Driver, error) {
	q := driverSelect + ` ORDER BY id`

	rows, err := dr.db.conn.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := []models.Driver{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func (dr *DriverRepo) Update(ctx context.Context, driver models.Driver) error {
	q := `
		UPDATE drivers
		SET full_name = $2, phone = $3, password_hash = $4, is_active = $5
		WHERE id = $1
	`

	tag, err := dr.db.conn.Exec(ctx, q, driver.Id, driver.FullName, driver.Phone, driver.PasswordHash, driver.IsActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrDriverNotFound
	}
	return nil
}

func (dr *DriverRepo) Delete(ctx context.Context, id int64) error {
	tag, err := dr.db.conn.Exec(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrDriverNotFound
	}
	return nil
}

const driverSelect = `
	SELECT
		id,
		email,
		full_name,
		phone,
		password_hash,
		is_active
	FROM
		drivers`

func scanDriver(row pgx.Row) (models.Driver, error) {
	var d models.Driver
	err := row.Scan(
		&d.Id,
		&d.Email,
		&d.FullName,
		&d.Phone,
		&d.PasswordHash,
		&d.IsActive,
	)
	return d, err
}
