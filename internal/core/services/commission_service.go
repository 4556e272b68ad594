package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/murphysheldon05/tsmroofpro-sub002/internal/apperrors"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	portsrepo "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/repositories"
	portssvc "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/services"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/dto"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/middleware"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/utils/jobnumber"
	"github.com/shopspring/decimal"
)

// commissionService handles submission creation and read access to
// commissions and their logs.
type commissionService struct {
	commissionRepo portsrepo.CommissionRepositoryWithTx
	revisionRepo   portsrepo.RevisionLogRepository
	statusRepo     portsrepo.StatusLogRepository
	deniedRepo     portsrepo.DeniedJobNumberRepository
}

// NewCommissionService creates a new CommissionService.
func NewCommissionService(
	commissionRepo portsrepo.CommissionRepositoryWithTx,
	revisionRepo portsrepo.RevisionLogRepository,
	statusRepo portsrepo.StatusLogRepository,
	deniedRepo portsrepo.DeniedJobNumberRepository,
) portssvc.CommissionSvcFacade {
	return &commissionService{
		commissionRepo: commissionRepo,
		revisionRepo:   revisionRepo,
		statusRepo:     statusRepo,
		deniedRepo:     deniedRepo,
	}
}

var _ portssvc.CommissionSvcFacade = (*commissionService)(nil)

// CreateCommission validates and persists a new submission. A job number
// present in the denial lock registry is rejected before any write.
func (s *commissionService) CreateCommission(ctx context.Context, req dto.CreateCommissionRequest, submitter domain.Actor) (*domain.CommissionSubmission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	normalized, valid, msg := jobnumber.Validate(req.JobNumber)
	if !valid {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, msg)
	}
	if req.RequestedAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: Requested amount must be positive", apperrors.ErrValidation)
	}

	locked, err := s.deniedRepo.IsJobNumberLocked(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, fmt.Errorf("%w: Job number %s was permanently denied and cannot be resubmitted", apperrors.ErrValidation, normalized)
	}

	submissionRole := domain.SubmissionRoleRep
	if submitter.Role == domain.RoleManager {
		submissionRole = domain.SubmissionRoleManager
	}

	now := time.Now().UTC()
	comm := domain.CommissionSubmission{
		CommissionID:    uuid.NewString(),
		JobNumber:       normalized,
		JobName:         req.JobName,
		JobAddress:      req.JobAddress,
		SubmitterID:     submitter.UserID,
		SubmitterName:   submitter.Name,
		SubmissionRole:  submissionRole,
		Status:          domain.StatusPendingReview,
		Stage:           domain.StagePendingManager,
		RevisionCount:   0,
		RequestedAmount: req.RequestedAmount,
		ContractAmount:  req.ContractAmount,
		NetOwed:         req.NetOwed,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     submitter.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: submitter.UserID,
		},
	}

	if err := s.commissionRepo.SaveCommission(ctx, comm); err != nil {
		return nil, err
	}

	logger.Info("Commission submitted",
		slog.String("commission_id", comm.CommissionID),
		slog.String("job_number", comm.JobNumber),
		slog.String("submission_role", string(comm.SubmissionRole)),
	)
	return &comm, nil
}

func (s *commissionService) GetCommissionByID(ctx context.Context, commissionID string) (*domain.CommissionSubmission, error) {
	return s.commissionRepo.FindCommissionByID(ctx, commissionID)
}

func (s *commissionService) ListCommissions(ctx context.Context, filter portsrepo.CommissionListFilter) ([]domain.CommissionSubmission, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.commissionRepo.ListCommissions(ctx, filter)
}

func (s *commissionService) ListRevisions(ctx context.Context, commissionID string) ([]domain.RevisionLogEntry, error) {
	if _, err := s.commissionRepo.FindCommissionByID(ctx, commissionID); err != nil {
		return nil, err
	}
	return s.revisionRepo.ListRevisionsByCommissionID(ctx, commissionID)
}

func (s *commissionService) ListStatusLog(ctx context.Context, commissionID string) ([]domain.StatusLogEntry, error) {
	if _, err := s.commissionRepo.FindCommissionByID(ctx, commissionID); err != nil {
		return nil, err
	}
	return s.statusRepo.ListStatusLogByCommissionID(ctx, commissionID)
}

func (s *commissionService) GetDeniedJobNumber(ctx context.Context, rawJobNumber string) (*domain.DeniedJobNumber, error) {
	normalized, valid, msg := jobnumber.Validate(rawJobNumber)
	if !valid {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, msg)
	}
	return s.deniedRepo.FindDeniedJobNumber(ctx, normalized)
}
