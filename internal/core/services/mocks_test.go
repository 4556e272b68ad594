package services_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	portsrepo "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/repositories"
)

// --- Mock CommissionRepository (facade plus transaction manager) ---

type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockCommissionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockCommissionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockCommissionRepository) FindCommissionByID(ctx context.Context, commissionID string) (*domain.CommissionSubmission, error) {
	args := m.Called(ctx, commissionID)
	var comm *domain.CommissionSubmission
	if args.Get(0) != nil {
		comm = args.Get(0).(*domain.CommissionSubmission)
	}
	return comm, args.Error(1)
}

func (m *MockCommissionRepository) FindCommissionByIDForUpdate(ctx context.Context, tx pgx.Tx, commissionID string) (*domain.CommissionSubmission, error) {
	args := m.Called(ctx, tx, commissionID)
	var comm *domain.CommissionSubmission
	if args.Get(0) != nil {
		comm = args.Get(0).(*domain.CommissionSubmission)
	}
	return comm, args.Error(1)
}

func (m *MockCommissionRepository) ListCommissions(ctx context.Context, filter portsrepo.CommissionListFilter) ([]domain.CommissionSubmission, error) {
	args := m.Called(ctx, filter)
	var comms []domain.CommissionSubmission
	if args.Get(0) != nil {
		comms = args.Get(0).([]domain.CommissionSubmission)
	}
	return comms, args.Error(1)
}

func (m *MockCommissionRepository) SaveCommission(ctx context.Context, commission domain.CommissionSubmission) error {
	args := m.Called(ctx, commission)
	return args.Error(0)
}

func (m *MockCommissionRepository) UpdateCommissionInTx(ctx context.Context, tx pgx.Tx, commission domain.CommissionSubmission, expectedStage domain.ApprovalStage, expectedStatus domain.CommissionStatus) error {
	args := m.Called(ctx, tx, commission, expectedStage, expectedStatus)
	return args.Error(0)
}

// --- Mock RevisionLogRepository ---

type MockRevisionLogRepository struct {
	mock.Mock
}

func (m *MockRevisionLogRepository) AppendRevisionInTx(ctx context.Context, tx pgx.Tx, entry domain.RevisionLogEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockRevisionLogRepository) ListRevisionsByCommissionID(ctx context.Context, commissionID string) ([]domain.RevisionLogEntry, error) {
	args := m.Called(ctx, commissionID)
	var entries []domain.RevisionLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.RevisionLogEntry)
	}
	return entries, args.Error(1)
}

// --- Mock StatusLogRepository ---

type MockStatusLogRepository struct {
	mock.Mock
}

func (m *MockStatusLogRepository) AppendStatusInTx(ctx context.Context, tx pgx.Tx, entry domain.StatusLogEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockStatusLogRepository) ListStatusLogByCommissionID(ctx context.Context, commissionID string) ([]domain.StatusLogEntry, error) {
	args := m.Called(ctx, commissionID)
	var entries []domain.StatusLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.StatusLogEntry)
	}
	return entries, args.Error(1)
}

// --- Mock DeniedJobNumberRepository ---

type MockDeniedJobNumberRepository struct {
	mock.Mock
}

func (m *MockDeniedJobNumberRepository) LockJobNumberInTx(ctx context.Context, tx pgx.Tx, lock domain.DeniedJobNumber) (bool, error) {
	args := m.Called(ctx, tx, lock)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeniedJobNumberRepository) IsJobNumberLocked(ctx context.Context, jobNumber string) (bool, error) {
	args := m.Called(ctx, jobNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeniedJobNumberRepository) FindDeniedJobNumber(ctx context.Context, jobNumber string) (*domain.DeniedJobNumber, error) {
	args := m.Called(ctx, jobNumber)
	var lock *domain.DeniedJobNumber
	if args.Get(0) != nil {
		lock = args.Get(0).(*domain.DeniedJobNumber)
	}
	return lock, args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock NotificationDispatcher ---

type MockNotificationDispatcher struct {
	mock.Mock
}

func (m *MockNotificationDispatcher) Dispatch(ctx context.Context, event domain.NotificationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
