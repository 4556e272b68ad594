package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
)

// RevisionLogRepository is the append-only store of revision requests.
// No update or delete operations are exposed.
type RevisionLogRepository interface {
	// AppendRevisionInTx inserts one revision entry inside the given transaction.
	AppendRevisionInTx(ctx context.Context, tx pgx.Tx, entry domain.RevisionLogEntry) error

	// ListRevisionsByCommissionID returns all revision entries for a
	// commission ordered by revisionNumber descending.
	ListRevisionsByCommissionID(ctx context.Context, commissionID string) ([]domain.RevisionLogEntry, error)
}

// StatusLogRepository is the append-only audit trail of status transitions.
type StatusLogRepository interface {
	// AppendStatusInTx inserts one audit entry inside the given transaction.
	AppendStatusInTx(ctx context.Context, tx pgx.Tx, entry domain.StatusLogEntry) error

	// ListStatusLogByCommissionID returns the audit trail for a commission
	// ordered by createdAt descending.
	ListStatusLogByCommissionID(ctx context.Context, commissionID string) ([]domain.StatusLogEntry, error)
}

// DeniedJobNumberRepository is the permanent blacklist of job numbers.
// There is no unlock operation by design.
type DeniedJobNumberRepository interface {
	// LockJobNumberInTx inserts the denial lock inside the given transaction.
	// A job number that is already locked is reported via alreadyLocked, not
	// as an error, so denial stays idempotent.
	LockJobNumberInTx(ctx context.Context, tx pgx.Tx, lock domain.DeniedJobNumber) (alreadyLocked bool, err error)

	// IsJobNumberLocked reports whether the job number is blacklisted.
	IsJobNumberLocked(ctx context.Context, jobNumber string) (bool, error)

	// FindDeniedJobNumber retrieves the lock entry for a job number.
	FindDeniedJobNumber(ctx context.Context, jobNumber string) (*domain.DeniedJobNumber, error)
}
