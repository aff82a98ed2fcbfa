package db

import (
	"context"
	"errors"

	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"

	"github.com/jackc/pgx/v5"
)

type AdminRepo struct {
	db *DB
}

func NewAdminRepo(db *DB) *AdminRepo {
	return &AdminRepo{db: db}
}

func (ar *AdminRepo) Create(ctx context.Context, admin models.Admin) (int64, error) {
	q := `INSERT INTO admins (email, full_name, password_hash) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	row := ar.db.conn.QueryRow(ctx, q, admin.Email, admin.FullName, admin.PasswordHash)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (ar *AdminRepo) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	q := `
		SELECT
			id,
			email,
			full_name,
			password_hash
		FROM
			admins
		WHERE
			email = $1
	`

	var a models.Admin
	err := ar.db.conn.QueryRow(ctx, q, email).Scan(
		&a.Id,
		&a.Email,
		&a.FullName,
		&a.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, myerrors.ErrSubjectNotFound
		}
		return models.Admin{}, err
	}

	return a, nil
}
