package db

import (
	"context"
	"errors"

	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/backoffice/core/myerrors"

	"github.com/jackc/pgx/v5"
)

type JobRepo struct {
	db *DB
}

func NewJobRepo(db *DB) *JobRepo {
	return &JobRepo{db: db}
}

func (jr *JobRepo) Create(ctx context.Context, job models.Job) (int64, error) {
	q := `
		INSERT INTO jobs (title, description, status, scheduled_at, completed_at, driver_id, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	row := jr.db.conn.QueryRow(ctx, q,
		job.Title,
		job.Description,
		job.Status,
		job.ScheduledAt,
		job.CompletedAt,
		job.DriverId,
		job.CustomerId,
	)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (jr *JobRepo) GetById(ctx context.Context, id int64) (models.Job, error) {
	q := jobSelect + ` WHERE id = $1`

	j, err := scanJob(jr.db.conn.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Job{}, myerrors.ErrJobNotFound
		}
		return models.Job{}, err
	}
	return j, nil
}

func (jr *JobRepo) List(ctx context.Context) ([]models.Job, error) {
	return jr.queryJobs(ctx, jobSelect+` ORDER BY id`)
}

func (jr *JobRepo) ListByDriver(ctx context.Context, driverId int64) ([]models.Job, error) {
	q := jobSelect + ` WHERE driver_id = $1 ORDER BY scheduled_at IS NULL, scheduled_at`
	return jr.queryJobs(ctx, q, driverId)
}

func (jr *JobRepo) Update(ctx context.Context, job models.Job) error {
	q := `
		UPDATE jobs
		SET title = $2, description = $3, status = $4, scheduled_at = $5,
			completed_at = $6, driver_id = $7, customer_id = $8
		WHERE id = $1
	`

	tag, err := jr.db.conn.Exec(ctx, q,
		job.Id,
		job.Title,
		job.Description,
		job.Status,
		job.ScheduledAt,
		job.CompletedAt,
		job.DriverId,
		job.CustomerId,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrJobNotFound
	}
	return nil
}

// UpdateLocked loads the job under FOR UPDATE, runs apply, and writes the
// result back in the same transaction. Concurrent actions on the same job row
// serialize on the lock, so no update is lost.
func (jr *JobRepo) UpdateLocked(ctx context.Context, id int64, apply func(job *models.Job) error) (models.Job, error) {
	tx, err := jr.db.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return models.Job{}, err
	}
	defer tx.Rollback(ctx) // Safe rollback if not committed

	q := jobSelect + ` WHERE id = $1 FOR UPDATE`
	job, err := scanJob(tx.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Job{}, myerrors.ErrJobNotFound
		}
		return models.Job{}, err
	}

	if err := apply(&job); err != nil {
		return models.Job{}, err
	}

	uq := `
		UPDATE jobs
		SET status = $2, scheduled_at = $3, completed_at = $4
		WHERE id = $1
	`
	if _, err := tx.Exec(ctx, uq, job.Id, job.Status, job.ScheduledAt, job.CompletedAt); err != nil {
		return models.Job{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Job{}, err
	}

	return job, nil
}

func (jr *JobRepo) Delete(ctx context.Context, id int64) error {
	tag, err := jr.db.conn.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrJobNotFound
	}
	return nil
}

func (jr *JobRepo) queryJobs(ctx context.Context, q string, args ...any) ([]models.Job, error) {
	rows, err := jr.db.conn.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

const jobSelect = `
	SELECT
		id,
		title,
		description,
		status,
		scheduled_at,
		completed_at,
		driver_id,
		customer_id
	FROM
		jobs`

func scanJob(row pgx.Row) (models.Job, error) {
	var j models.Job
	err := row.Scan(
		&j.Id,
		&j.Title,
		&j.Description,
		&j.Status,
		&j.ScheduledAt,
		&j.CompletedAt,
		&j.DriverId,
		&j.CustomerId,
	)
	return j, err
}
