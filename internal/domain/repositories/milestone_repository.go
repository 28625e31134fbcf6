package repositories

import (
	"context"

	"fundvault.backend/internal/domain/entities"
)

// MilestoneRepository owns per-project ordered milestone records
type MilestoneRepository interface {
	Create(ctx context.Context, milestone *entities.Milestone) error
	Get(ctx context.Context, projectID uint64, index uint32) (*entities.Milestone, error)
	Update(ctx context.Context, milestone *entities.Milestone) error
	ListByProject(ctx context.Context, projectID uint64) ([]*entities.Milestone, error)
	// SumPercentages returns the total percentage already allocated across the
	// project's milestones.
	SumPercentages(ctx context.Context, projectID uint64) (uint32, error)
	// ListOverdueActive returns active milestones whose deadline is below the
	// given height, for the failure sweep.
	ListOverdueActive(ctx context.Context, height uint64, limit int) ([]*entities.Milestone, error)
}
