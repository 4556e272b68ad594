package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/apperrors"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	portsrepo "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/repositories"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/models"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/utils/mapping"
)

// PgxDeniedJobRepository is the permanent blacklist of job numbers. Rows
// are insert-only; no unlock operation exists.
type PgxDeniedJobRepository struct {
	pool *pgxpool.Pool
}

func newPgxDeniedJobRepository(pool *pgxpool.Pool) portsrepo.DeniedJobNumberRepository {
	return &PgxDeniedJobRepository{pool: pool}
}

var _ portsrepo.DeniedJobNumberRepository = (*PgxDeniedJobRepository)(nil)

// LockJobNumberInTx inserts the denial lock inside the given transaction.
// The unique constraint on job_number makes a second denial a no-op; that
// is reported via alreadyLocked so denial stays idempotent.
func (r *PgxDeniedJobRepository) LockJobNumberInTx(ctx context.Context, tx pgx.Tx, lock domain.DeniedJobNumber) (bool, error) {
	query := `
		INSERT INTO denied_job_numbers (job_number, commission_id, denied_by, denied_at, denial_reason)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (job_number) DO NOTHING;
	`
	ct, err := tx.Exec(ctx, query,
		lock.JobNumber, lock.CommissionID, lock.DeniedBy, lock.DeniedAt, lock.DenialReason,
	)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to lock job number "+lock.JobNumber, err)
	}
	return ct.RowsAffected() == 0, nil
}

// IsJobNumberLocked reports whether the job number is blacklisted.
func (r *PgxDeniedJobRepository) IsJobNumberLocked(ctx context.Context, jobNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM denied_job_numbers WHERE job_number = $1);`
	if err := r.pool.QueryRow(ctx, query, jobNumber).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check lock for job number "+jobNumber, err)
	}
	return exists, nil
}

// FindDeniedJobNumber retrieves the lock entry for a job number.
func (r *PgxDeniedJobRepository) FindDeniedJobNumber(ctx context.Context, jobNumber string) (*domain.DeniedJobNumber, error) {
	query := `
		SELECT job_number, commission_id, denied_by, denied_at, denial_reason
		FROM denied_job_numbers
		WHERE job_number = $1;
	`
	var m models.DeniedJobNumber
	err := r.pool.QueryRow(ctx, query, jobNumber).Scan(
		&m.JobNumber, &m.CommissionID, &m.DeniedBy, &m.DeniedAt, &m.DenialReason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find denied job number "+jobNumber, err)
	}
	d := mapping.ToDomainDeniedJobNumber(m)
	return &d, nil
}
