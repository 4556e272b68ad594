package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
)

// CommissionListFilter narrows ListCommissions. Zero values mean "any".
type CommissionListFilter struct {
	Status      domain.CommissionStatus
	Stage       domain.ApprovalStage
	SubmitterID string
	Limit       int
	Offset      int
}

// CommissionReader defines read operations for commission submissions.
type CommissionReader interface {
	// FindCommissionByID retrieves a commission by its unique identifier.
	FindCommissionByID(ctx context.Context, commissionID string) (*domain.CommissionSubmission, error)

	// FindCommissionByIDForUpdate retrieves a commission inside the given
	// transaction with a row lock, serializing concurrent workflow operations
	// on the same commission.
	FindCommissionByIDForUpdate(ctx context.Context, tx pgx.Tx, commissionID string) (*domain.CommissionSubmission, error)

	// ListCommissions retrieves commissions matching the filter, newest first.
	ListCommissions(ctx context.Context, filter CommissionListFilter) ([]domain.CommissionSubmission, error)
}

// CommissionWriter defines write operations for commission submissions.
type CommissionWriter interface {
	// SaveCommission inserts a newly created submission.
	SaveCommission(ctx context.Context, commission domain.CommissionSubmission) error

	// UpdateCommissionInTx writes the commission's workflow fields inside the
	// given transaction, guarded by the stage and status the caller read.
	// Returns apperrors.ErrConflict when the guarded row no longer matches.
	UpdateCommissionInTx(ctx context.Context, tx pgx.Tx, commission domain.CommissionSubmission, expectedStage domain.ApprovalStage, expectedStatus domain.CommissionStatus) error
}

// CommissionRepositoryFacade combines all commission repository interfaces.
type CommissionRepositoryFacade interface {
	CommissionReader
	CommissionWriter
}

// CommissionRepositoryWithTx extends the facade with transaction control;
// the workflow engine runs each operation as one transaction through this.
type CommissionRepositoryWithTx interface {
	CommissionRepositoryFacade
	TransactionManager
}
