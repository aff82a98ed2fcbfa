package db

import (
	"context"
	"errors"

	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"

	"github.com/jackc/pgx/v5"
)

type InvoiceRepo struct {
	db *DB
}

func NewInvoiceRepo(db *DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

func (ir *InvoiceRepo) Create(ctx context.Context, invoice models.Invoice) (int64, error) {
	q := `
		INSERT INTO invoices (job_id, customer_id, amount, status, issued_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	row := ir.db.conn.QueryRow(ctx, q, invoice.JobId, invoice.CustomerId, invoice.Amount, invoice.Status, invoice.IssuedAt)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (ir *InvoiceRepo) GetById(ctx context.Context, id int64) (models.Invoice, error) {
	q := invoiceSelect + ` WHERE id = $1`
	return ir.getOne(ctx, q, id)
}

func (ir *InvoiceRepo) GetByJobId(ctx context.Context, jobId int64) (models.Invoice, error) {
	q := invoiceSelect + ` WHERE job_id = $1`
	return ir.getOne(ctx, q, jobId)
}

func (ir *InvoiceRepo) List(ctx context.Context) ([]models.Invoice, error) {
	q := invoiceSelect + ` ORDER BY id`

	rows, err := ir.db.conn.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, i)
	}
	return invoices, rows.Err()
}

func (ir *InvoiceRepo) Update(ctx context.Context, invoice models.Invoice) error {
	q := `
		UPDATE invoices
		SET amount = $2, status = $3, issued_at = $4
		WHERE id = $1
	`

	tag, err := ir.db.conn.Exec(ctx, q, invoice.Id, invoice.Amount, invoice.Status, invoice.IssuedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrInvoiceNotFound
	}
	return nil
}

func (ir *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	tag, err := ir.db.conn.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrInvoiceNotFound
	}
	return nil
}

func (ir *InvoiceRepo) getOne(ctx context.Context, q string, arg any) (models.Invoice, error) {
	i, err := scanInvoice(ir.db.conn.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Invoice{}, myerrors.ErrInvoiceNotFound
		}
		return models.Invoice{}, err
	}
	return i, nil
}

const invoiceSelect = `
	SELECT
		id,
		job_id,
		customer_id,
		amount,
		status,
		issued_at
	FROM
		invoices`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var i models.Invoice
	err := row.Scan(
		&i.Id,
		&i.JobId,
		&i.CustomerId,
		&i.Amount,
		&i.Status,
		&i.IssuedAt,
	)
	return i, err
}
