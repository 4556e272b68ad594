package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/murphysheldon05/tsmroofpro-sub002/internal/apperrors"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	portsrepo "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/repositories"
	portssvc "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/services"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/dto"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/middleware"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/utils/jobnumber"
)

// workflowService is the approval workflow engine. Each operation is a
// single read-modify-write transaction: current state is read with a row
// lock, preconditions are validated against it, and the new state plus all
// log rows are written before commit. A stale stage/status at write time
// surfaces as apperrors.ErrConflict and nothing is applied.
type workflowService struct {
	commissionRepo portsrepo.CommissionRepositoryWithTx
	revisionRepo   portsrepo.RevisionLogRepository
	statusRepo     portsrepo.StatusLogRepository
	deniedRepo     portsrepo.DeniedJobNumberRepository
	notifier       portssvc.NotificationDispatcher
}

// NewWorkflowService creates the workflow engine.
func NewWorkflowService(
	commissionRepo portsrepo.CommissionRepositoryWithTx,
	revisionRepo portsrepo.RevisionLogRepository,
	statusRepo portsrepo.StatusLogRepository,
	deniedRepo portsrepo.DeniedJobNumberRepository,
	notifier portssvc.NotificationDispatcher,
) portssvc.WorkflowSvcFacade {
	return &workflowService{
		commissionRepo: commissionRepo,
		revisionRepo:   revisionRepo,
		statusRepo:     statusRepo,
		deniedRepo:     deniedRepo,
		notifier:       notifier,
	}
}

var _ portssvc.WorkflowSvcFacade = (*workflowService)(nil)

// authorizeStageActor checks that the actor may act at the commission's
// current stage. Admins may step in at any stage; submitters never act on
// their own commission.
func (s *workflowService) authorizeStageActor(comm *domain.CommissionSubmission, actor domain.Actor) error {
	required, ok := domain.RequiredApproverRole(comm.Stage)
	if !ok {
		return fmt.Errorf("%w: commission is already finalized", apperrors.ErrConflict)
	}
	if actor.UserID == comm.SubmitterID {
		return fmt.Errorf("%w: submitters cannot act on their own commission", apperrors.ErrForbidden)
	}
	if actor.Role != required && actor.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: role %s cannot act while the commission is at stage %s", apperrors.ErrForbidden, actor.Role, comm.Stage)
	}
	return nil
}

// authorizeDenier checks that the actor holds any approver role.
func (s *workflowService) authorizeDenier(comm *domain.CommissionSubmission, actor domain.Actor) error {
	if actor.UserID == comm.SubmitterID {
		return fmt.Errorf("%w: submitters cannot deny their own commission", apperrors.ErrForbidden)
	}
	switch actor.Role {
	case domain.RoleManager, domain.RoleAccounting, domain.RoleAdmin:
		return nil
	}
	return fmt.Errorf("%w: role %s cannot deny commissions", apperrors.ErrForbidden, actor.Role)
}

// Approve advances the commission along the fixed stage table:
//
//	pending_manager              -> pending_accounting
//	pending_accounting (rep)     -> completed / approved
//	pending_accounting (manager) -> pending_admin
//	pending_admin                -> completed / approved
func (s *workflowService) Approve(ctx context.Context, commissionID string, actor domain.Actor, cmd dto.ApproveCommand) (*domain.CommissionSubmission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.commissionRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.commissionRepo.Rollback(ctx, tx)

	comm, err := s.commissionRepo.FindCommissionByIDForUpdate(ctx, tx, commissionID)
	if err != nil {
		return nil, err
	}
	if comm.IsTerminal() {
		return nil, fmt.Errorf("%w: commission is already finalized", apperrors.ErrConflict)
	}
	if err := s.authorizeStageActor(comm, actor); err != nil {
		return nil, err
	}
	if cmd.ApprovedAmount != nil && !cmd.ApprovedAmount.Equal(comm.RequestedAmount) && strings.TrimSpace(cmd.Notes) == "" {
		return nil, fmt.Errorf("%w: notes are required when modifying the commission amount", apperrors.ErrValidation)
	}

	expectedStage, expectedStatus := comm.Stage, comm.Status
	now := time.Now().UTC()

	var note string
	switch comm.Stage {
	case domain.StagePendingManager:
		comm.ManagerApprovedAt, comm.ManagerApprovedBy = &now, &actor.UserID
		comm.Stage = domain.StagePendingAccounting
		note = "Manager approved, forwarded to accounting"
	case domain.StagePendingAccounting:
		comm.AccountingApprovedAt, comm.AccountingApprovedBy = &now, &actor.UserID
		if comm.SubmissionRole == domain.SubmissionRoleManager {
			comm.Stage = domain.StagePendingAdmin
			note = "Accounting approved, forwarded to admin"
		} else {
			comm.Stage = domain.StageCompleted
			note = "Accounting approved, commission finalized"
		}
	case domain.StagePendingAdmin:
		comm.AdminApprovedAt, comm.AdminApprovedBy = &now, &actor.UserID
		comm.Stage = domain.StageCompleted
		note = "Admin approved, commission finalized"
	}

	// An override at any stage persists forward unless overridden again.
	if cmd.ApprovedAmount != nil {
		amt := *cmd.ApprovedAmount
		comm.ApprovedAmount = &amt
	}
	if comm.Stage == domain.StageCompleted {
		if comm.ApprovedAmount == nil {
			amt := comm.RequestedAmount
			comm.ApprovedAmount = &amt
		}
		comm.Status = domain.StatusApproved
		comm.ApprovedAt, comm.ApprovedBy = &now, &actor.UserID
	} else {
		comm.Status = domain.StatusPendingReview
	}
	comm.LastUpdatedAt, comm.LastUpdatedBy = now, actor.UserID

	if err := s.commissionRepo.UpdateCommissionInTx(ctx, tx, *comm, expectedStage, expectedStatus); err != nil {
		return nil, err
	}
	if err := s.statusRepo.AppendStatusInTx(ctx, tx, domain.StatusLogEntry{
		StatusLogID:    uuid.NewString(),
		CommissionID:   comm.CommissionID,
		PreviousStatus: expectedStatus,
		NewStatus:      comm.Status,
		ChangedBy:      actor.UserID,
		Notes:          joinNotes(note, cmd.Notes),
		CreatedAt:      now,
	}); err != nil {
		return nil, err
	}
	if err := s.commissionRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Commission approval applied",
		slog.String("commission_id", comm.CommissionID),
		slog.String("stage", string(comm.Stage)),
		slog.String("status", string(comm.Status)),
	)

	eventType := domain.NotificationStageAdvanced
	if comm.Status == domain.StatusApproved {
		eventType = domain.NotificationApproved
	}
	s.dispatch(ctx, logger, eventType, comm, cmd.Notes)
	return comm, nil
}

// RequestRevision sends the commission back to the first approval stage.
// A partially-approved commission never resumes mid-chain after changes.
func (s *workflowService) RequestRevision(ctx context.Context, commissionID string, actor domain.Actor, cmd dto.RequestRevisionCommand) (*domain.CommissionSubmission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: Revision reason is required", apperrors.ErrValidation)
	}

	tx, err := s.commissionRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.commissionRepo.Rollback(ctx, tx)

	comm, err := s.commissionRepo.FindCommissionByIDForUpdate(ctx, tx, commissionID)
	if err != nil {
		return nil, err
	}
	if comm.IsTerminal() {
		return nil, fmt.Errorf("%w: commission is already finalized", apperrors.ErrConflict)
	}
	if err := s.authorizeStageActor(comm, actor); err != nil {
		return nil, err
	}

	expectedStage, expectedStatus := comm.Stage, comm.Status
	now := time.Now().UTC()

	previousAmount := comm.EffectiveAmount()
	if cmd.PreviousAmount != nil {
		previousAmount = *cmd.PreviousAmount
	}

	comm.RevisionCount++
	comm.Status = domain.StatusRevisionRequired
	comm.Stage = domain.StagePendingManager
	comm.LastUpdatedAt, comm.LastUpdatedBy = now, actor.UserID

	if err := s.commissionRepo.UpdateCommissionInTx(ctx, tx, *comm, expectedStage, expectedStatus); err != nil {
		return nil, err
	}
	if err := s.revisionRepo.AppendRevisionInTx(ctx, tx, domain.RevisionLogEntry{
		RevisionID:      uuid.NewString(),
		CommissionID:    comm.CommissionID,
		RevisionNumber:  comm.RevisionCount,
		RequestedByID:   actor.UserID,
		RequestedByName: actor.Name,
		RequestedByRole: actor.Role,
		Reason:          reason,
		PreviousAmount:  previousAmount,
		NewAmount:       cmd.NewAmount,
		CreatedAt:       now,
	}); err != nil {
		return nil, err
	}
	if err := s.statusRepo.AppendStatusInTx(ctx, tx, domain.StatusLogEntry{
		StatusLogID:    uuid.NewString(),
		CommissionID:   comm.CommissionID,
		PreviousStatus: expectedStatus,
		NewStatus:      comm.Status,
		ChangedBy:      actor.UserID,
		Notes:          "Revision requested: " + reason,
		CreatedAt:      now,
	}); err != nil {
		return nil, err
	}
	if err := s.commissionRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Commission sent back for revision",
		slog.String("commission_id", comm.CommissionID),
		slog.Int("revision_count", comm.RevisionCount),
	)

	s.dispatch(ctx, logger, domain.NotificationRevisionRequired, comm, reason)
	return comm, nil
}

// Deny terminally denies the commission and blacklists its job number.
// The lock insert is part of the same transaction as the status update, so
// a denied commission can never exist without its lock (or vice versa).
func (s *workflowService) Deny(ctx context.Context, commissionID string, actor domain.Actor, cmd dto.DenyCommand) (*domain.CommissionSubmission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: Denial reason is required", apperrors.ErrValidation)
	}

	tx, err := s.commissionRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.commissionRepo.Rollback(ctx, tx)

	comm, err := s.commissionRepo.FindCommissionByIDForUpdate(ctx, tx, commissionID)
	if err != nil {
		return nil, err
	}
	if comm.IsTerminal() {
		return nil, fmt.Errorf("%w: commission is already finalized", apperrors.ErrConflict)
	}
	if err := s.authorizeDenier(comm, actor); err != nil {
		return nil, err
	}

	expectedStage, expectedStatus := comm.Stage, comm.Status
	now := time.Now().UTC()

	comm.Status = domain.StatusDenied
	comm.Stage = domain.StageCompleted
	comm.DeniedAt, comm.DeniedBy = &now, &actor.UserID
	comm.RejectionReason = &reason
	comm.LastUpdatedAt, comm.LastUpdatedBy = now, actor.UserID

	if err := s.commissionRepo.UpdateCommissionInTx(ctx, tx, *comm, expectedStage, expectedStatus); err != nil {
		return nil, err
	}
	if err := s.statusRepo.AppendStatusInTx(ctx, tx, domain.StatusLogEntry{
		StatusLogID:    uuid.NewString(),
		CommissionID:   comm.CommissionID,
		PreviousStatus: expectedStatus,
		NewStatus:      comm.Status,
		ChangedBy:      actor.UserID,
		Notes:          "Denied: " + reason,
		CreatedAt:      now,
	}); err != nil {
		return nil, err
	}

	rawJobNumber := cmd.JobNumber
	if rawJobNumber == "" {
		rawJobNumber = comm.JobNumber
	}
	if normalized, valid, _ := jobnumber.Validate(rawJobNumber); valid {
		alreadyLocked, err := s.deniedRepo.LockJobNumberInTx(ctx, tx, domain.DeniedJobNumber{
			JobNumber:    normalized,
			CommissionID: comm.CommissionID,
			DeniedBy:     actor.UserID,
			DeniedAt:     now,
			DenialReason: reason,
		})
		if err != nil {
			return nil, err
		}
		if alreadyLocked {
			logger.Info("Job number already locked, denial remains idempotent",
				slog.String("job_number", normalized),
				slog.String("commission_id", comm.CommissionID),
			)
		}
	} else {
		// Denial still succeeds; only the lock is skipped.
		logger.Warn("Job number malformed, denial lock skipped",
			slog.String("job_number", rawJobNumber),
			slog.String("commission_id", comm.CommissionID),
		)
	}

	if err := s.commissionRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Commission denied",
		slog.String("commission_id", comm.CommissionID),
		slog.String("denied_by", actor.UserID),
	)

	s.dispatch(ctx, logger, domain.NotificationDenied, comm, reason)
	return comm, nil
}

// dispatch emits the post-commit notification event. Failures are logged
// and swallowed: the business decision is already durable.
func (s *workflowService) dispatch(ctx context.Context, logger *slog.Logger, eventType domain.NotificationType, comm *domain.CommissionSubmission, notes string) {
	if s.notifier == nil {
		return
	}
	event := domain.NotificationEvent{
		Type:           eventType,
		CommissionID:   comm.CommissionID,
		JobName:        comm.JobName,
		JobAddress:     comm.JobAddress,
		SubmitterName:  comm.SubmitterName,
		SubmissionType: submissionTypeLabel(comm.SubmissionRole),
		ContractAmount: comm.ContractAmount,
		NetOwed:        comm.NetOwed,
		Notes:          notes,
		Status:         comm.Status,
	}
	if err := s.notifier.Dispatch(ctx, event); err != nil {
		logger.Warn("Notification dispatch failed, transition already committed",
			slog.String("commission_id", comm.CommissionID),
			slog.String("event_type", string(eventType)),
			slog.String("error", err.Error()),
		)
	}
}

func submissionTypeLabel(role domain.SubmissionRole) string {
	if role == domain.SubmissionRoleManager {
		return "Manager Commission"
	}
	return "Rep Commission"
}

func joinNotes(note, extra string) string {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		return note
	}
	return note + ": " + extra
}
