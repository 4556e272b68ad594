package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/murphysheldon05/tsmroofpro-sub002/internal/apperrors"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	portsrepo "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/repositories"
	portssvc "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/services"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/services"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/dto"
)

type CommissionServiceTestSuite struct {
	suite.Suite
	mockCommissionRepo *MockCommissionRepository
	mockRevisionRepo   *MockRevisionLogRepository
	mockStatusRepo     *MockStatusLogRepository
	mockDeniedRepo     *MockDeniedJobNumberRepository
	service            portssvc.CommissionSvcFacade
}

func (s *CommissionServiceTestSuite) SetupTest() {
	s.mockCommissionRepo = new(MockCommissionRepository)
	s.mockRevisionRepo = new(MockRevisionLogRepository)
	s.mockStatusRepo = new(MockStatusLogRepository)
	s.mockDeniedRepo = new(MockDeniedJobNumberRepository)
	s.service = services.NewCommissionService(
		s.mockCommissionRepo,
		s.mockRevisionRepo,
		s.mockStatusRepo,
		s.mockDeniedRepo,
	)
}

func validCreateRequest() dto.CreateCommissionRequest {
	return dto.CreateCommissionRequest{
		JobNumber:       "4521",
		JobName:         "Oak Ave Replacement",
		JobAddress:      "44 Oak Ave",
		RequestedAmount: decimal.NewFromInt(2400),
	}
}

func (s *CommissionServiceTestSuite) TestCreateCommission_Success() {
	ctx := context.Background()
	rep := domain.Actor{UserID: "rep-1", Name: "Riley Sales", Role: domain.RoleRep}

	s.mockDeniedRepo.On("IsJobNumberLocked", ctx, "4521").Return(false, nil).Once()
	s.mockCommissionRepo.On("SaveCommission", ctx, mock.MatchedBy(func(c domain.CommissionSubmission) bool {
		return c.JobNumber == "4521" &&
			c.Status == domain.StatusPendingReview &&
			c.Stage == domain.StagePendingManager &&
			c.SubmissionRole == domain.SubmissionRoleRep &&
			c.RevisionCount == 0
	})).Return(nil).Once()

	comm, err := s.service.CreateCommission(ctx, validCreateRequest(), rep)

	s.Require().NoError(err)
	s.Require().NotNil(comm)
	s.NotEmpty(comm.CommissionID)
	s.Equal("rep-1", comm.SubmitterID)
	s.mockDeniedRepo.AssertExpectations(s.T())
	s.mockCommissionRepo.AssertExpectations(s.T())
}

func (s *CommissionServiceTestSuite) TestCreateCommission_ManagerSubmitterGetsManagerRole() {
	ctx := context.Background()
	manager := domain.Actor{UserID: "mgr-1", Name: "Morgan Manager", Role: domain.RoleManager}

	s.mockDeniedRepo.On("IsJobNumberLocked", ctx, "4521").Return(false, nil).Once()
	s.mockCommissionRepo.On("SaveCommission", ctx, mock.MatchedBy(func(c domain.CommissionSubmission) bool {
		return c.SubmissionRole == domain.SubmissionRoleManager
	})).Return(nil).Once()

	comm, err := s.service.CreateCommission(ctx, validCreateRequest(), manager)

	s.Require().NoError(err)
	s.Equal(domain.SubmissionRoleManager, comm.SubmissionRole)
}

func (s *CommissionServiceTestSuite) TestCreateCommission_NormalizesJobNumber() {
	ctx := context.Background()
	rep := domain.Actor{UserID: "rep-1", Role: domain.RoleRep}
	req := validCreateRequest()
	req.JobNumber = " 45-21 "

	s.mockDeniedRepo.On("IsJobNumberLocked", ctx, "4521").Return(false, nil).Once()
	s.mockCommissionRepo.On("SaveCommission", ctx, mock.MatchedBy(func(c domain.CommissionSubmission) bool {
		return c.JobNumber == "4521"
	})).Return(nil).Once()

	comm, err := s.service.CreateCommission(ctx, req, rep)

	s.Require().NoError(err)
	s.Equal("4521", comm.JobNumber)
}

func (s *CommissionServiceTestSuite) TestCreateCommission_InvalidJobNumber_Fails() {
	ctx := context.Background()
	rep := domain.Actor{UserID: "rep-1", Role: domain.RoleRep}
	req := validCreateRequest()
	req.JobNumber = "123"

	comm, err := s.service.CreateCommission(ctx, req, rep)

	s.Require().Error(err)
	s.Nil(comm)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "exactly 4 digits")
	s.mockCommissionRepo.AssertNotCalled(s.T(), "SaveCommission", mock.Anything, mock.Anything)
}

func (s *CommissionServiceTestSuite) TestCreateCommission_LockedJobNumber_Rejected() {
	ctx := context.Background()
	rep := domain.Actor{UserID: "rep-1", Role: domain.RoleRep}

	s.mockDeniedRepo.On("IsJobNumberLocked", ctx, "4521").Return(true, nil).Once()

	comm, err := s.service.CreateCommission(ctx, validCreateRequest(), rep)

	s.Require().Error(err)
	s.Nil(comm)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "permanently denied")
	s.mockCommissionRepo.AssertNotCalled(s.T(), "SaveCommission", mock.Anything, mock.Anything)
}

func (s *CommissionServiceTestSuite) TestCreateCommission_NonPositiveAmount_Fails() {
	ctx := context.Background()
	rep := domain.Actor{UserID: "rep-1", Role: domain.RoleRep}
	req := validCreateRequest()
	req.RequestedAmount = decimal.Zero

	comm, err := s.service.CreateCommission(ctx, req, rep)

	s.Require().Error(err)
	s.Nil(comm)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *CommissionServiceTestSuite) TestListCommissions_DefaultsLimit() {
	ctx := context.Background()

	s.mockCommissionRepo.On("ListCommissions", ctx, mock.MatchedBy(func(f portsrepo.CommissionListFilter) bool {
		return f.Limit == 50
	})).Return([]domain.CommissionSubmission{}, nil).Once()

	_, err := s.service.ListCommissions(ctx, portsrepo.CommissionListFilter{})

	s.Require().NoError(err)
	s.mockCommissionRepo.AssertExpectations(s.T())
}

func (s *CommissionServiceTestSuite) TestListRevisions_UnknownCommission_NotFound() {
	ctx := context.Background()
	commissionID := uuid.NewString()

	s.mockCommissionRepo.On("FindCommissionByID", ctx, commissionID).Return(nil, apperrors.ErrNotFound).Once()

	entries, err := s.service.ListRevisions(ctx, commissionID)

	s.Require().Error(err)
	s.Nil(entries)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockRevisionRepo.AssertNotCalled(s.T(), "ListRevisionsByCommissionID", mock.Anything, mock.Anything)
}

func (s *CommissionServiceTestSuite) TestGetDeniedJobNumber_Normalizes() {
	ctx := context.Background()
	lock := &domain.DeniedJobNumber{JobNumber: "4521", CommissionID: uuid.NewString()}

	s.mockDeniedRepo.On("FindDeniedJobNumber", ctx, "4521").Return(lock, nil).Once()

	result, err := s.service.GetDeniedJobNumber(ctx, "45-21")

	s.Require().NoError(err)
	s.Equal(lock, result)
}

func (s *CommissionServiceTestSuite) TestGetDeniedJobNumber_Malformed_Fails() {
	ctx := context.Background()

	result, err := s.service.GetDeniedJobNumber(ctx, "abc")

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestCommissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommissionServiceTestSuite))
}
