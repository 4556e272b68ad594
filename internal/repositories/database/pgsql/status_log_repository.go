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

// PgxStatusLogRepository is the append-only audit trail of status transitions.
type PgxStatusLogRepository struct {
	pool *pgxpool.Pool
}

func newPgxStatusLogRepository(pool *pgxpool.Pool) portsrepo.StatusLogRepository {
	return &PgxStatusLogRepository{pool: pool}
}

var _ portsrepo.StatusLogRepository = (*PgxStatusLogRepository)(nil)

// AppendStatusInTx inserts one audit entry inside the given transaction.
func (r *PgxStatusLogRepository) AppendStatusInTx(ctx context.Context, tx pgx.Tx, entry domain.StatusLogEntry) error {
	query := `
		INSERT INTO commission_status_log (
			status_log_id, commission_id, previous_status, new_status,
			changed_by, notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		entry.StatusLogID, entry.CommissionID,
		string(entry.PreviousStatus), string(entry.NewStatus),
		entry.ChangedBy, entry.Notes, entry.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append status log for commission "+entry.CommissionID, err)
	}
	return nil
}

// ListStatusLogByCommissionID returns the audit trail, newest first.
func (r *PgxStatusLogRepository) ListStatusLogByCommissionID(ctx context.Context, commissionID string) ([]domain.StatusLogEntry, error) {
	query := `
		SELECT status_log_id, commission_id, previous_status, new_status,
		       changed_by, notes, created_at
		FROM commission_status_log
		WHERE commission_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, commissionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query status log for commission "+commissionID, err)
	}
	defer rows.Close()

	entries := []domain.StatusLogEntry{}
	for rows.Next() {
		var m models.StatusLog
		if err := rows.Scan(
			&m.StatusLogID, &m.CommissionID, &m.PreviousStatus, &m.NewStatus,
			&m.ChangedBy, &m.Notes, &m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan status log row", err)
		}
		entries = append(entries, mapping.ToDomainStatusLog(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating status log rows", err)
	}
	return entries, nil
}
