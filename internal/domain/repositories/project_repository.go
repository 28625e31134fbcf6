package repositories

import (
	"context"

	"fundvault.backend/internal/domain/entities"
)

// ProjectRepository owns project records and the project id sequence.
// Ids are assigned by Create only; no other component allocates them.
type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	GetByID(ctx context.Context, id uint64) (*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
	List(ctx context.Context, status entities.ProjectStatus, limit, offset int) ([]*entities.Project, int, error)
	GetByCreator(ctx context.Context, creator string, limit, offset int) ([]*entities.Project, int, error)
}
