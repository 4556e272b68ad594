package services

import (
	"context"

	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	portsrepo "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/repositories"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/dto"
)

// CommissionSvcFacade covers submission creation and all read paths.
type CommissionSvcFacade interface {
	// CreateCommission validates the job number, rejects submissions whose
	// job number is in the denial lock registry, and persists the new
	// submission at the first approval stage.
	CreateCommission(ctx context.Context, req dto.CreateCommissionRequest, submitter domain.Actor) (*domain.CommissionSubmission, error)

	// GetCommissionByID retrieves a single commission.
	GetCommissionByID(ctx context.Context, commissionID string) (*domain.CommissionSubmission, error)

	// ListCommissions retrieves commissions matching the filter, newest first.
	ListCommissions(ctx context.Context, filter portsrepo.CommissionListFilter) ([]domain.CommissionSubmission, error)

	// ListRevisions returns the revision history, revisionNumber descending.
	ListRevisions(ctx context.Context, commissionID string) ([]domain.RevisionLogEntry, error)

	// ListStatusLog returns the transition audit trail, newest first.
	ListStatusLog(ctx context.Context, commissionID string) ([]domain.StatusLogEntry, error)

	// GetDeniedJobNumber retrieves the lock entry for a job number, or
	// apperrors.ErrNotFound when the number is not locked.
	GetDeniedJobNumber(ctx context.Context, jobNumber string) (*domain.DeniedJobNumber, error)
}
