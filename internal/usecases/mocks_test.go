package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"fundvault.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id uint64) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) List(ctx context.Context, status entities.ProjectStatus, limit, offset int) ([]*entities.Project, int, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Project), args.Int(1), args.Error(2)
}

func (m *MockProjectRepository) GetByCreator(ctx context.Context, creator string, limit, offset int) ([]*entities.Project, int, error) {
	args := m.Called(ctx, creator, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Project), args.Int(1), args.Error(2)
}

// Mock MilestoneRepository
type MockMilestoneRepository struct {
	mock.Mock
}

func (m *MockMilestoneRepository) Create(ctx context.Context, milestone *entities.Milestone) error {
	args := m.Called(ctx, milestone)
	return args.Error(0)
}

func (m *MockMilestoneRepository) Get(ctx context.Context, projectID uint64, index uint32) (*entities.Milestone, error) {
	args := m.Called(ctx, projectID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) Update(ctx context.Context, milestone *entities.Milestone) error {
	args := m.Called(ctx, milestone)
	return args.Error(0)
}

func (m *MockMilestoneRepository) ListByProject(ctx context.Context, projectID uint64) ([]*entities.Milestone, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) SumPercentages(ctx context.Context, projectID uint64) (uint32, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(uint32), args.Error(1)
}

func (m *MockMilestoneRepository) ListOverdueActive(ctx context.Context, height uint64, limit int) ([]*entities.Milestone, error) {
	args := m.Called(ctx, height, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Milestone), args.Error(1)
}

// Mock BackingRepository
type MockBackingRepository struct {
	mock.Mock
}

func (m *MockBackingRepository) Create(ctx context.Context, backing *entities.Backing) error {
	args := m.Called(ctx, backing)
	return args.Error(0)
}

func (m *MockBackingRepository) Get(ctx context.Context, projectID uint64, backer string) (*entities.Backing, error) {
	args := m.Called(ctx, projectID, backer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Backing), args.Error(1)
}

func (m *MockBackingRepository) Update(ctx context.Context, backing *entities.Backing) error {
	args := m.Called(ctx, backing)
	return args.Error(0)
}

func (m *MockBackingRepository) ListByProject(ctx context.Context, projectID uint64, limit, offset int) ([]*entities.Backing, int, error) {
	args := m.Called(ctx, projectID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Backing), args.Int(1), args.Error(2)
}

// Mock ReviewerRepository
type MockReviewerRepository struct {
	mock.Mock
}

func (m *MockReviewerRepository) Create(ctx context.Context, reviewer *entities.Reviewer) error {
	args := m.Called(ctx, reviewer)
	return args.Error(0)
}

func (m *MockReviewerRepository) Get(ctx context.Context, projectID uint64, reviewer string) (*entities.Reviewer, error) {
	args := m.Called(ctx, projectID, reviewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Reviewer), args.Error(1)
}

func (m *MockReviewerRepository) ListByProject(ctx context.Context, projectID uint64) ([]*entities.Reviewer, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Reviewer), args.Error(1)
}

// Mock VoteRepository
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) Create(ctx context.Context, vote *entities.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockVoteRepository) Get(ctx context.Context, projectID uint64, index uint32, voter string) (*entities.Vote, error) {
	args := m.Called(ctx, projectID, index, voter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Vote), args.Error(1)
}

func (m *MockVoteRepository) ListByMilestone(ctx context.Context, projectID uint64, index uint32) ([]*entities.Vote, error) {
	args := m.Called(ctx, projectID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Vote), args.Error(1)
}

// Mock PayoutRepository
type MockPayoutRepository struct {
	mock.Mock
}

func (m *MockPayoutRepository) Create(ctx context.Context, payout *entities.Payout) error {
	args := m.Called(ctx, payout)
	return args.Error(0)
}

func (m *MockPayoutRepository) ListByProject(ctx context.Context, projectID uint64) ([]*entities.Payout, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Payout), args.Error(1)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByWalletAddress(ctx context.Context, address string) (*entities.User, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Mock EscrowLedger
type MockEscrowLedger struct {
	mock.Mock
}

func (m *MockEscrowLedger) Deposit(ctx context.Context, from string, amount uint64) (string, error) {
	args := m.Called(ctx, from, amount)
	return args.String(0), args.Error(1)
}

func (m *MockEscrowLedger) Payout(ctx context.Context, to string, amount uint64) (string, error) {
	args := m.Called(ctx, to, amount)
	return args.String(0), args.Error(1)
}

// Mock HeightClock
type MockHeightClock struct {
	mock.Mock
}

func (m *MockHeightClock) CurrentHeight(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}
