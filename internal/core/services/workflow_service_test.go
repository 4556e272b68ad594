package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/murphysheldon05/tsmroofpro-sub002/internal/apperrors"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	portssvc "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/services"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/services"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/dto"
)

type WorkflowServiceTestSuite struct {
	suite.Suite
	mockCommissionRepo *MockCommissionRepository
	mockRevisionRepo   *MockRevisionLogRepository
	mockStatusRepo     *MockStatusLogRepository
	mockDeniedRepo     *MockDeniedJobNumberRepository
	mockNotifier       *MockNotificationDispatcher
	service            portssvc.WorkflowSvcFacade
}

func (s *WorkflowServiceTestSuite) SetupTest() {
	s.mockCommissionRepo = new(MockCommissionRepository)
	s.mockRevisionRepo = new(MockRevisionLogRepository)
	s.mockStatusRepo = new(MockStatusLogRepository)
	s.mockDeniedRepo = new(MockDeniedJobNumberRepository)
	s.mockNotifier = new(MockNotificationDispatcher)
	s.service = services.NewWorkflowService(
		s.mockCommissionRepo,
		s.mockRevisionRepo,
		s.mockStatusRepo,
		s.mockDeniedRepo,
		s.mockNotifier,
	)
}

// newPendingCommission builds a fresh rep submission at the manager stage.
func newPendingCommission() *domain.CommissionSubmission {
	now := time.Now().UTC().Add(-time.Hour)
	return &domain.CommissionSubmission{
		CommissionID:    uuid.NewString(),
		JobNumber:       "1234",
		JobName:         "Maple St Re-roof",
		JobAddress:      "12 Maple St",
		SubmitterID:     "rep-1",
		SubmitterName:   "Riley Sales",
		SubmissionRole:  domain.SubmissionRoleRep,
		Status:          domain.StatusPendingReview,
		Stage:           domain.StagePendingManager,
		RequestedAmount: decimal.NewFromInt(1500),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "rep-1",
			LastUpdatedAt: now,
			LastUpdatedBy: "rep-1",
		},
	}
}

func (s *WorkflowServiceTestSuite) expectTransaction(comm *domain.CommissionSubmission) {
	ctx := mock.Anything
	s.mockCommissionRepo.On("Begin", ctx).Return(nil, nil).Once()
	s.mockCommissionRepo.On("Rollback", ctx, mock.Anything).Return(nil)
	s.mockCommissionRepo.On("FindCommissionByIDForUpdate", ctx, mock.Anything, comm.CommissionID).Return(comm, nil).Once()
}

func (s *WorkflowServiceTestSuite) TestApprove_ManagerStage_AdvancesToAccounting() {
	ctx := context.Background()
	comm := newPendingCommission()
	manager := domain.Actor{UserID: "mgr-1", Name: "Morgan Manager", Role: domain.RoleManager}

	s.expectTransaction(comm)
	s.mockCommissionRepo.On("UpdateCommissionInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(c domain.CommissionSubmission) bool {
		return c.Stage == domain.StagePendingAccounting &&
			c.Status == domain.StatusPendingReview &&
			c.ManagerApprovedBy != nil && *c.ManagerApprovedBy == "mgr-1"
	}), domain.StagePendingManager, domain.StatusPendingReview).Return(nil).Once()
	s.mockStatusRepo.On("AppendStatusInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(e domain.StatusLogEntry) bool {
		return e.CommissionID == comm.CommissionID && e.ChangedBy == "mgr-1"
	})).Return(nil).Once()
	s.mockCommissionRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockNotifier.On("Dispatch", mock.Anything, mock.MatchedBy(func(e domain.NotificationEvent) bool {
		return e.Type == domain.NotificationStageAdvanced
	})).Return(nil).Once()

	result, err := s.service.Approve(ctx, comm.CommissionID, manager, dto.ApproveCommand{})

	s.Require().NoError(err)
	s.Equal(domain.StagePendingAccounting, result.Stage)
	s.Equal(domain.StatusPendingReview, result.Status)
	s.Nil(result.ApprovedAmount)
	s.mockCommissionRepo.AssertExpectations(s.T())
	s.mockStatusRepo.AssertExpectations(s.T())
	s.mockNotifier.AssertExpectations(s.T())
}

func (s *WorkflowServiceTestSuite) TestApprove_AccountingStage_RepSubmission_Finalizes() {
	ctx := context.Background()
	comm := newPendingCommission()
	comm.Stage = domain.StagePendingAccounting
	accountant := domain.Actor{UserID: "acc-1", Name: "Avery Accounting", Role: domain.RoleAccounting}

	s.expectTransaction(comm)
	s.mockCommissionRepo.On("UpdateCommissionInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(c domain.CommissionSubmission) bool {
		return c.Stage == domain.StageCompleted && c.Status == domain.StatusApproved
	}), domain.StagePendingAccounting, domain.StatusPendingReview).Return(nil).Once()
	s.mockStatusRepo.On("AppendStatusInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.StatusLogEntry")).Return(nil).Once()
	s.mockCommissionRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockNotifier.On("Dispatch", mock.Anything, mock.MatchedBy(func(e domain.NotificationEvent) bool {
		return e.Type == domain.NotificationApproved
	})).Return(nil).Once()

	result, err := s.service.Approve(ctx, comm.CommissionID, accountant, dto.ApproveCommand{})

	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, result.Status)
	s.Equal(domain.StageCompleted, result.Stage)
	// The approved amount defaults to the requested amount on finalization.
	s.Require().NotNil(result.ApprovedAmount)
	s.True(result.ApprovedAmount.Equal(decimal.NewFromInt(1500)))
	s.NotNil(result.ApprovedAt)
	s.mockCommissionRepo.AssertExpectations(s.T())
	s.mockNotifier.AssertExpectations(s.T())
}

func (s *WorkflowServiceTestSuite) TestApprove_AccountingStage_ManagerSubmission_RequiresAdmin() {
	ctx := context.Background()
	comm := newPendingCommission()
	comm.SubmissionRole = domain.SubmissionRoleManager
	comm.SubmitterID = "mgr-2"
	comm.Stage = domain.StagePendingAccounting
	accountant := domain.Actor{UserID: "acc-1", Name: "Avery Accounting", Role: domain.RoleAccounting}

	s.expectTransaction(comm)
	s.mockCommissionRepo.On("UpdateCommissionInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(c domain.CommissionSubmission) bool {
		return c.Stage == domain.StagePendingAdmin && c.Status == domain.StatusPendingReview
	}), domain.StagePendingAccounting, domain.StatusPendingReview).Return(nil).Once()
	s.mockStatusRepo.On("AppendStatusInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.StatusLogEntry")).Return(nil).Once()
	s.mockCommissionRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockNotifier.On("Dispatch", mock.Anything, mock.AnythingOfType("domain.NotificationEvent")).Return(nil).Once()

	result, err := s.service.Approve(ctx, comm.CommissionID, accountant, dto.ApproveCommand{})

	s.Require().NoError(err)
	s.Equal(domain.StagePendingAdmin, result.Stage)
	s.Equal(domain.StatusPendingReview, result.Status)
	s.Nil(result.ApprovedAt)
	s.mockCommissionRepo.AssertExpectations(s.T())
}

func (s *WorkflowServiceTestSuite) TestApprove_AdminStage_Finalizes() {
	ctx := context.Background()
	comm := newPendingCommission()
	comm.SubmissionRole = domain.SubmissionRoleManager
	comm.SubmitterID = "mgr-2"
	comm.Stage = domain.StagePendingAdmin
	admin := domain.Actor{UserID: "adm-1", Name: "Alex Admin", Role: domain.RoleAdmin}

	s.expectTransaction(comm)
	s.mockCommissionRepo.On("UpdateCommissionInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(c domain.CommissionSubmission) bool {
		return c.Status == domain.StatusApproved && c.AdminApprovedBy != nil && *c.AdminApprovedBy == "adm-1"
	}), domain.StagePendingAdmin, domain.StatusPendingReview).Return(nil).Once()
	s.mockStatusRepo.On("AppendStatusInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.StatusLogEntry")).Return(nil).Once()
	s.mockCommissionRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockNotifier.On("Dispatch", mock.Anything, mock.AnythingOfType("domain.NotificationEvent")).Return(nil).Once()

	result, err := s.service.Approve(ctx, comm.CommissionID, admin, dto.ApproveCommand{})

	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, result.Status)
	s.mockCommissionRepo.AssertExpectations(s.T())
}

func (s *WorkflowServiceTestSuite) TestApprove_AmountOverrideWithoutNotes_Fails() {
	ctx := context.Background()
	comm := newPendingCommission()
	manager := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}
	override := decimal.NewFromInt(1200)

	s.expectTransaction(comm)

	result, err := s.service.Approve(ctx, comm.CommissionID, manager, dto.ApproveCommand{ApprovedAmount: &override})

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockCommissionRepo.AssertNotCalled(s.T(), "UpdateCommissionInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.mockCommissionRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *WorkflowServiceTestSuite) TestApprove_AmountOverrideWithNotes_Persists() {
	ctx := context.Background()
	comm := newPendingCommission()
	manager := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}
	override := decimal.NewFromInt(1200)

	s.expectTransaction(comm)
	s.mockCommissionRepo.On("UpdateCommissionInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(c domain.CommissionSubmission) bool {
		return c.ApprovedAmount != nil && c.ApprovedAmount.Equal(override)
	}), domain.StagePendingManager, domain.StatusPendingReview).Return(nil).Once()
	s.mockStatusRepo.On("AppendStatusInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.StatusLogEntry")).Return(nil).Once()
	s.mockCommissionRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockNotifier.On("Dispatch", mock.Anything, mock.AnythingOfType("domain.NotificationEvent")).Return(nil).Once()

	result, err := s.service.Approve(ctx, comm.CommissionID, manager, dto.ApproveCommand{
		ApprovedAmount: &override,
		Notes:          "Adjusted per signed change order",
	})

	s.Require().NoError(err)
	s.Require().NotNil(result.ApprovedAmount)
	s.True(result.ApprovedAmount.Equal(override))
	s.mockCommissionRepo.AssertExpectations(s.T())
}

func (s *WorkflowServiceTestSuite) TestApprove_SubmitterCannotActOnOwnCommission() {
	ctx := context.Background()
	comm := newPendingCommission()
	comm.SubmitterID = "mgr-1"
	comm.SubmissionRole = domain.SubmissionRoleManager
	selfManager := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}

	s.expectTransaction(comm)

	result, err := s.service.Approve(ctx, comm.CommissionID, selfManager, dto.ApproveCommand{})

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *WorkflowServiceTestSuite) TestApprove_WrongRoleForStage_Forbidden() {
	ctx := context.Background()
	comm := newPendingCommission()
	comm.Stage = domain.StagePendingAccounting
	manager := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}

	s.expectTransaction(comm)

	result, err := s.service.Approve(ctx, comm.CommissionID, manager, dto.ApproveCommand{})

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *WorkflowServiceTestSuite) TestApprove_AdminMayActAtAnyStage() {
	ctx := context.Background()
	comm := newPendingCommission()
	admin := domain.Actor{UserID: "adm-1", Role: domain.RoleAdmin}

	s.expectTransaction(comm)
	s.mockCommissionRepo.On("UpdateCommissionInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.CommissionSubmission"), domain.StagePendingManager, domain.StatusPendingReview).Return(nil).Once()
	s.mockStatusRepo.On("AppendStatusInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.StatusLogEntry")).Return(nil).Once()
	s.mockCommissionRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockNotifier.On("Dispatch", mock.Anything, mock.AnythingOfType("domain.NotificationEvent")).Return(nil).Once()

	result, err := s.service.Approve(ctx, comm.CommissionID, admin, dto.ApproveCommand{})

	s.Require().NoError(err)
	s.Equal(domain.StagePendingAccounting, result.Stage)
}

func (s *WorkflowServiceTestSuite) TestApprove_TerminalCommission_Conflict() {
	ctx := context.Background()
	comm := newPendingCommission()
	comm.Status = domain.StatusDenied
	comm.Stage = domain.StageCompleted
	admin := domain.Actor{UserID: "adm-1", Role: domain.RoleAdmin}

	s.expectTransaction(comm)

	result, err := s.service.Approve(ctx, comm.CommissionID, admin, dto.ApproveCommand{})

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockCommissionRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *WorkflowServiceTestSuite) TestApprove_ConcurrentUpdate_SurfacesConflict() {
	ctx := context.Background()
	comm := newPendingCommission()
	manager := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}

	s.expectTransaction(comm)
	// Another approver won the race: the guarded update matches no row.
	s.mockCommissionRepo.On("UpdateCommissionInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.CommissionSubmission"), domain.StagePendingManager, domain.StatusPendingReview).Return(apperrors.ErrConflict).Once()

	result, err := s.service.Approve(ctx, comm.CommissionID, manager, dto.ApproveCommand{})

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockCommissionRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
	s.mockNotifier.AssertNotCalled(s.T(), "Dispatch", mock.Anything, mock.Anything)
}

func (s *WorkflowServiceTestSuite) TestApprove_NotificationFailureDoesNotFailOperation() {
	ctx := context.Background()
	comm := newPendingCommission()
	manager := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}

	s.expectTransaction(comm)
	s.mockCommissionRepo.On("UpdateCommissionInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.CommissionSubmission"), domain.StagePendingManager, domain.StatusPendingReview).Return(nil).Once()
	s.mockStatusRepo.On("AppendStatusInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.StatusLogEntry")).Return(nil).Once()
	s.mockCommissionRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockNotifier.On("Dispatch", mock.Anything, mock.AnythingOfType("domain.NotificationEvent")).Return(assert.AnError).Once()

	result, err := s.service.Approve(ctx, comm.CommissionID, manager, dto.ApproveCommand{})

	s.Require().NoError(err)
	s.NotNil(result)
	s.mockNotifier.AssertExpectations(s.T())
}

func (s *WorkflowServiceTestSuite) TestRequestRevision_ResetsToManagerStage() {
	ctx := context.Background()
	comm := newPendingCommission()
	comm.Stage = domain.StagePendingAccounting
	mgrAt := time.Now().UTC().Add(-time.Minute)
	mgrBy := "mgr-1"
	comm.ManagerApprovedAt, comm.ManagerApprovedBy = &mgrAt, &mgrBy
	accountant := domain.Actor{UserID: "acc-1", Name: "Avery Accounting", Role: domain.RoleAccounting}
	newAmount := decimal.NewFromInt(1300)

	s.expectTransaction(comm)
	s.mockCommissionRepo.On("UpdateCommissionInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(c domain.CommissionSubmission) bool {
		return c.Stage == domain.StagePendingManager &&
			c.Status == domain.StatusRevisionRequired &&
			c.RevisionCount == 1
	}), domain.StagePendingAccounting, domain.StatusPendingReview).Return(nil).Once()
	s.mockRevisionRepo.On("AppendRevisionInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(e domain.RevisionLogEntry) bool {
		return e.RevisionNumber == 1 &&
			e.RequestedByID == "acc-1" &&
			e.RequestedByRole == domain.RoleAccounting &&
			e.Reason == "Net owed does not match the contract" &&
			e.PreviousAmount.Equal(decimal.NewFromInt(1500)) &&
			e.NewAmount != nil && e.NewAmount.Equal(newAmount)
	})).Return(nil).Once()
	s.mockStatusRepo.On("AppendStatusInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(e domain.StatusLogEntry) bool {
		return e.NewStatus == domain.StatusRevisionRequired
	})).Return(nil).Once()
	s.mockCommissionRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockNotifier.On("Dispatch", mock.Anything, mock.MatchedBy(func(e domain.NotificationEvent) bool {
		return e.Type == domain.NotificationRevisionRequired
	})).Return(nil).Once()

	result, err := s.service.RequestRevision(ctx, comm.CommissionID, accountant, dto.RequestRevisionCommand{
		Reason:    "Net owed does not match the contract",
		NewAmount: &newAmount,
	})

	s.Require().NoError(err)
	s.Equal(domain.StagePendingManager, result.Stage)
	s.Equal(domain.StatusRevisionRequired, result.Status)
	s.Equal(1, result.RevisionCount)
	s.mockCommissionRepo.AssertExpectations(s.T())
	s.mockRevisionRepo.AssertExpectations(s.T())
	s.mockStatusRepo.AssertExpectations(s.T())
}

func (s *WorkflowServiceTestSuite) TestRequestRevision_EmptyReason_Fails() {
	ctx := context.Background()
	actor := domain.Actor{UserID: "acc-1", Role: domain.RoleAccounting}

	result, err := s.service.RequestRevision(ctx, uuid.NewString(), actor, dto.RequestRevisionCommand{Reason: "   "})

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockCommissionRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *WorkflowServiceTestSuite) TestRequestRevision_TerminalCommission_Conflict() {
	ctx := context.Background()
	comm := newPendingCommission()
	comm.Status = domain.StatusApproved
	comm.Stage = domain.StageCompleted
	admin := domain.Actor{UserID: "adm-1", Role: domain.RoleAdmin}

	s.expectTransaction(comm)

	result, err := s.service.RequestRevision(ctx, comm.CommissionID, admin, dto.RequestRevisionCommand{Reason: "too late"})

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *WorkflowServiceTestSuite) TestDeny_LocksJobNumberAndFinalizes() {
	ctx := context.Background()
	comm := newPendingCommission()
	manager := domain.Actor{UserID: "mgr-1", Name: "Morgan Manager", Role: domain.RoleManager}

	s.expectTransaction(comm)
	s.mockCommissionRepo.On("UpdateCommissionInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(c domain.CommissionSubmission) bool {
		return c.Status == domain.StatusDenied &&
			c.Stage == domain.StageCompleted &&
			c.RejectionReason != nil && *c.RejectionReason == "Duplicate submission for this job"
	}), domain.StagePendingManager, domain.StatusPendingReview).Return(nil).Once()
	s.mockStatusRepo.On("AppendStatusInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(e domain.StatusLogEntry) bool {
		return e.NewStatus == domain.StatusDenied
	})).Return(nil).Once()
	s.mockDeniedRepo.On("LockJobNumberInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(l domain.DeniedJobNumber) bool {
		return l.JobNumber == "1234" && l.CommissionID == comm.CommissionID && l.DeniedBy == "mgr-1"
	})).Return(false, nil).Once()
	s.mockCommissionRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockNotifier.On("Dispatch", mock.Anything, mock.MatchedBy(func(e domain.NotificationEvent) bool {
		return e.Type == domain.NotificationDenied
	})).Return(nil).Once()

	result, err := s.service.Deny(ctx, comm.CommissionID, manager, dto.DenyCommand{Reason: "Duplicate submission for this job"})

	s.Require().NoError(err)
	s.Equal(domain.StatusDenied, result.Status)
	s.NotNil(result.DeniedAt)
	s.mockDeniedRepo.AssertExpectations(s.T())
	s.mockCommissionRepo.AssertExpectations(s.T())
}

func (s *WorkflowServiceTestSuite) TestDeny_AlreadyLockedJobNumber_Idempotent() {
	ctx := context.Background()
	comm := newPendingCommission()
	manager := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}

	s.expectTransaction(comm)
	s.mockCommissionRepo.On("UpdateCommissionInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.CommissionSubmission"), domain.StagePendingManager, domain.StatusPendingReview).Return(nil).Once()
	s.mockStatusRepo.On("AppendStatusInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.StatusLogEntry")).Return(nil).Once()
	s.mockDeniedRepo.On("LockJobNumberInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.DeniedJobNumber")).Return(true, nil).Once()
	s.mockCommissionRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockNotifier.On("Dispatch", mock.Anything, mock.AnythingOfType("domain.NotificationEvent")).Return(nil).Once()

	result, err := s.service.Deny(ctx, comm.CommissionID, manager, dto.DenyCommand{Reason: "Second denial on same job"})

	s.Require().NoError(err)
	s.Equal(domain.StatusDenied, result.Status)
	s.mockDeniedRepo.AssertExpectations(s.T())
}

func (s *WorkflowServiceTestSuite) TestDeny_MalformedJobNumber_SkipsLock() {
	ctx := context.Background()
	comm := newPendingCommission()
	comm.JobNumber = "12"
	manager := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}

	s.expectTransaction(comm)
	s.mockCommissionRepo.On("UpdateCommissionInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.CommissionSubmission"), domain.StagePendingManager, domain.StatusPendingReview).Return(nil).Once()
	s.mockStatusRepo.On("AppendStatusInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.StatusLogEntry")).Return(nil).Once()
	s.mockCommissionRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockNotifier.On("Dispatch", mock.Anything, mock.AnythingOfType("domain.NotificationEvent")).Return(nil).Once()

	result, err := s.service.Deny(ctx, comm.CommissionID, manager, dto.DenyCommand{Reason: "Job record is corrupt"})

	s.Require().NoError(err)
	s.Equal(domain.StatusDenied, result.Status)
	s.mockDeniedRepo.AssertNotCalled(s.T(), "LockJobNumberInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WorkflowServiceTestSuite) TestDeny_RepRole_Forbidden() {
	ctx := context.Background()
	comm := newPendingCommission()
	rep := domain.Actor{UserID: "rep-2", Role: domain.RoleRep}

	s.expectTransaction(comm)

	result, err := s.service.Deny(ctx, comm.CommissionID, rep, dto.DenyCommand{Reason: "not my job"})

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *WorkflowServiceTestSuite) TestDeny_EmptyReason_Fails() {
	ctx := context.Background()
	manager := domain.Actor{UserID: "mgr-1", Role: domain.RoleManager}

	result, err := s.service.Deny(ctx, uuid.NewString(), manager, dto.DenyCommand{})

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockCommissionRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func TestWorkflowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowServiceTestSuite))
}
