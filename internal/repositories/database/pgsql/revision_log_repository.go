package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/apperrors"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	portsrepo "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/repositories"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/models"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/utils/mapping"
)

// PgxRevisionLogRepository is the append-only store of revision requests.
type PgxRevisionLogRepository struct {
	pool *pgxpool.Pool
}

func newPgxRevisionLogRepository(pool *pgxpool.Pool) portsrepo.RevisionLogRepository {
	return &PgxRevisionLogRepository{pool: pool}
}

var _ portsrepo.RevisionLogRepository = (*PgxRevisionLogRepository)(nil)

// AppendRevisionInTx inserts one revision entry inside the given transaction.
func (r *PgxRevisionLogRepository) AppendRevisionInTx(ctx context.Context, tx pgx.Tx, entry domain.RevisionLogEntry) error {
	m := mapping.ToModelRevisionLog(entry)
	query := `
		INSERT INTO commission_revision_log (
			revision_id, commission_id, revision_number,
			requested_by_id, requested_by_name, requested_by_role,
			reason, previous_amount, new_amount, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		m.RevisionID, m.CommissionID, m.RevisionNumber,
		m.RequestedByID, m.RequestedByName, m.RequestedByRole,
		m.Reason, m.PreviousAmount, m.NewAmount, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append revision log for commission "+m.CommissionID, err)
	}
	return nil
}

// ListRevisionsByCommissionID returns revision entries, revisionNumber descending.
func (r *PgxRevisionLogRepository) ListRevisionsByCommissionID(ctx context.Context, commissionID string) ([]domain.RevisionLogEntry, error) {
	query := `
		SELECT revision_id, commission_id, revision_number,
		       requested_by_id, requested_by_name, requested_by_role,
		       reason, previous_amount, new_amount, created_at
		FROM commission_revision_log
		WHERE commission_id = $1
		ORDER BY revision_number DESC;
	`
	rows, err := r.pool.Query(ctx, query, commissionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query revision log for commission "+commissionID, err)
	}
	defer rows.Close()

	entries := []domain.RevisionLogEntry{}
	for rows.Next() {
		var m models.RevisionLog
		if err := rows.Scan(
			&m.RevisionID, &m.CommissionID, &m.RevisionNumber,
			&m.RequestedByID, &m.RequestedByName, &m.RequestedByRole,
			&m.Reason, &m.PreviousAmount, &m.NewAmount, &m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan revision log row", err)
		}
		entries = append(entries, mapping.ToDomainRevisionLog(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating revision log rows", err)
	}
	return entries, nil
}
