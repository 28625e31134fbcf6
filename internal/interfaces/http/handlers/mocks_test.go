package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"fundvault.backend/internal/domain/entities"
	"fundvault.backend/internal/usecases"
)

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) CreateProject(ctx context.Context, input usecases.CreateProjectInput) (*entities.Project, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *MockProjectService) AddMilestone(ctx context.Context, input usecases.AddMilestoneInput) (*entities.Milestone, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Milestone), args.Error(1)
}

func (m *MockProjectService) AddReviewer(ctx context.Context, projectID uint64, caller, reviewer string) error {
	args := m.Called(ctx, projectID, caller, reviewer)
	return args.Error(0)
}

func (m *MockProjectService) ActivateProject(ctx context.Context, projectID uint64, caller string) error {
	args := m.Called(ctx, projectID, caller)
	return args.Error(0)
}

func (m *MockProjectService) CancelProject(ctx context.Context, projectID uint64, caller string) error {
	args := m.Called(ctx, projectID, caller)
	return args.Error(0)
}

func (m *MockProjectService) GetProject(ctx context.Context, projectID uint64) (*entities.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *MockProjectService) ListProjects(ctx context.Context, status entities.ProjectStatus, limit, offset int) ([]*entities.Project, int, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Project), args.Int(1), args.Error(2)
}

func (m *MockProjectService) GetMilestone(ctx context.Context, projectID uint64, index uint32) (*entities.Milestone, error) {
	args := m.Called(ctx, projectID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Milestone), args.Error(1)
}

func (m *MockProjectService) ListMilestones(ctx context.Context, projectID uint64) ([]*entities.Milestone, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Milestone), args.Error(1)
}

func (m *MockProjectService) ListReviewers(ctx context.Context, projectID uint64) ([]*entities.Reviewer, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Reviewer), args.Error(1)
}

type MockFundingService struct {
	mock.Mock
}

func (m *MockFundingService) BackProject(ctx context.Context, projectID uint64, backer string, amount uint64) error {
	args := m.Called(ctx, projectID, backer, amount)
	return args.Error(0)
}

func (m *MockFundingService) RequestRefund(ctx context.Context, projectID uint64, backer string) (uint64, error) {
	args := m.Called(ctx, projectID, backer)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockFundingService) GetBacking(ctx context.Context, projectID uint64, backer string) (*entities.Backing, error) {
	args := m.Called(ctx, projectID, backer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Backing), args.Error(1)
}

func (m *MockFundingService) ListBackings(ctx context.Context, projectID uint64, limit, offset int) ([]*entities.Backing, int, error) {
	args := m.Called(ctx, projectID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Backing), args.Int(1), args.Error(2)
}

type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) SubmitForVerification(ctx context.Context, projectID uint64, index uint32, caller string) error {
	args := m.Called(ctx, projectID, index, caller)
	return args.Error(0)
}

func (m *MockVerificationService) VoteOnMilestone(ctx context.Context, projectID uint64, index uint32, voter string, approve bool) error {
	args := m.Called(ctx, projectID, index, voter, approve)
	return args.Error(0)
}

func (m *MockVerificationService) ReviewerApprove(ctx context.Context, projectID uint64, index uint32, caller string) error {
	args := m.Called(ctx, projectID, index, caller)
	return args.Error(0)
}

func (m *MockVerificationService) ReviewerReject(ctx context.Context, projectID uint64, index uint32, caller string) error {
	args := m.Called(ctx, projectID, index, caller)
	return args.Error(0)
}

func (m *MockVerificationService) ReportMilestoneFailure(ctx context.Context, projectID uint64, index uint32) error {
	args := m.Called(ctx, projectID, index)
	return args.Error(0)
}

func (m *MockVerificationService) ListVotes(ctx context.Context, projectID uint64, index uint32) ([]*entities.Vote, error) {
	args := m.Called(ctx, projectID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Vote), args.Error(1)
}

type MockReleaseService struct {
	mock.Mock
}

func (m *MockReleaseService) ReleaseMilestoneFunds(ctx context.Context, projectID uint64, index uint32) (*entities.Payout, error) {
	args := m.Called(ctx, projectID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payout), args.Error(1)
}

func (m *MockReleaseService) ListPayouts(ctx context.Context, projectID uint64) ([]*entities.Payout, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Payout), args.Error(1)
}
