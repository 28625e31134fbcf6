package repositories

import (
	"context"

	"fundvault.backend/internal/domain/entities"
)

// BackingRepository tracks backer contributions and refund state
type BackingRepository interface {
	Create(ctx context.Context, backing *entities.Backing) error
	Get(ctx context.Context, projectID uint64, backer string) (*entities.Backing, error)
	Update(ctx context.Context, backing *entities.Backing) error
	ListByProject(ctx context.Context, projectID uint64, limit, offset int) ([]*entities.Backing, int, error)
}

// ReviewerRepository tracks reviewer designations per project
type ReviewerRepository interface {
	Create(ctx context.Context, reviewer *entities.Reviewer) error
	Get(ctx context.Context, projectID uint64, reviewer string) (*entities.Reviewer, error)
	ListByProject(ctx context.Context, projectID uint64) ([]*entities.Reviewer, error)
}

// VoteRepository tracks cast votes; records are immutable once written
type VoteRepository interface {
	Create(ctx context.Context, vote *entities.Vote) error
	Get(ctx context.Context, projectID uint64, index uint32, voter string) (*entities.Vote, error)
	ListByMilestone(ctx context.Context, projectID uint64, index uint32) ([]*entities.Vote, error)
}
