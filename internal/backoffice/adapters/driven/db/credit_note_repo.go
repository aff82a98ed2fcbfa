package db

import (
	"context"
	"errors"

	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"

	"github.com/jackc/pgx/v5"
)

type CreditNoteRepo struct {
	db *DB
}

func NewCreditNoteRepo(db *DB) *CreditNoteRepo {
	return &CreditNoteRepo{db: db}
}

func (cr *CreditNoteRepo) Create(ctx context.Context, note models.CreditNote) (int64, error) {
	q := `
		INSERT INTO credit_notes (job_id, customer_id, amount, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	row := cr.db.conn.QueryRow(ctx, q, note.JobId, note.CustomerId, note.Amount, note.Reason, note.CreatedAt)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (cr *CreditNoteRepo) GetById(ctx context.Context, id int64) (models.CreditNote, error) {
	q := creditNoteSelect + ` WHERE id = $1`

	n, err := scanCreditNote(cr.db.conn.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.CreditNote{}, myerrors.ErrCreditNoteNotFound
		}
		return models.CreditNote{}, err
	}
	return n, nil
}

func (cr *CreditNoteRepo) List(ctx context.Context) ([]models.CreditNote, error) {
	q := creditNoteSelect + ` ORDER BY id`

	rows, err := cr.db.conn.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []models.CreditNote{}
	for rows.Next() {
		n, err := scanCreditNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (cr *CreditNoteRepo) Update(ctx context.Context, note models.CreditNote) error {
	q := `
		UPDATE credit_notes
		SET amount = $2, reason = $3
		WHERE id = $1
	`

	tag, err := cr.db.conn.Exec(ctx, q, note.Id, note.Amount, note.Reason)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrCreditNoteNotFound
	}
	return nil
}

func (cr *CreditNoteRepo) Delete(ctx context.Context, id int64) error {
	tag, err := cr.db.conn.Exec(ctx, `DELETE FROM credit_notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrCreditNoteNotFound
	}
	return nil
}

const creditNoteSelect = `
	SELECT
		id,
		job_id,
		customer_id,
		amount,
		reason,
		created_at
	FROM
		credit_notes`

func scanCreditNote(row pgx.Row) (models.CreditNote, error) {
	var n models.CreditNote
	err := row.Scan(
		&n.Id,
		&n.JobId,
		&n.CustomerId,
		&n.Amount,
		&n.Reason,
		&n.CreatedAt,
	)
	return n, err
}
