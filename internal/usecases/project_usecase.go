package usecases

import (
	"context"

	"fundvault.backend/internal/domain/entities"
	"fundvault.backend/internal/domain/errors"
	domainRepos "fundvault.backend/internal/domain/repositories"
)

// ProjectUsecase owns the project lifecycle: creation, milestone and reviewer
// registration while in draft, activation into the funding window, and
// creator-initiated cancellation.
type ProjectUsecase struct {
	projectRepo   domainRepos.ProjectRepository
	milestoneRepo domainRepos.MilestoneRepository
	reviewerRepo  domainRepos.ReviewerRepository
	uow           domainRepos.UnitOfWork
	clock         domainRepos.HeightClock
}

func NewProjectUsecase(
	projectRepo domainRepos.ProjectRepository,
	milestoneRepo domainRepos.MilestoneRepository,
	reviewerRepo domainRepos.ReviewerRepository,
	uow domainRepos.UnitOfWork,
	clock domainRepos.HeightClock,
) *ProjectUsecase {
	return &ProjectUsecase{
		projectRepo:   projectRepo,
		milestoneRepo: milestoneRepo,
		reviewerRepo:  reviewerRepo,
		uow:           uow,
		clock:         clock,
	}
}

type CreateProjectInput struct {
	Creator     string
	Title       string
	Description string
	Goal        uint64
	Mode        entities.VerificationMode
	Deadline    uint64
}

// CreateProject registers a new project in draft. The id is assigned by the
// registry's sequence; callers never pick ids.
func (uc *ProjectUsecase) CreateProject(ctx context.Context, input CreateProjectInput) (*entities.Project, error) {
	if input.Title == "" || len(input.Title) > MaxTitleLength {
		return nil, errors.BadRequest("title must be 1-200 characters")
	}
	if len(input.Description) > MaxDescriptionLength {
		return nil, errors.BadRequest("description too long")
	}
	if input.Goal == 0 {
		return nil, errors.BadRequest("funding goal must be positive")
	}
	if !entities.ValidVerificationMode(input.Mode) {
		return nil, errors.BadRequest("unknown verification mode")
	}

	height, err := uc.clock.CurrentHeight(ctx)
	if err != nil {
		return nil, errors.InternalError(err)
	}
	if input.Deadline <= height {
		return nil, errors.DeadlineViolation("funding deadline must be in the future")
	}

	project := &entities.Project{
		Creator:         input.Creator,
		Title:           input.Title,
		Description:     input.Description,
		Goal:            input.Goal,
		Status:          entities.ProjectStatusDraft,
		Mode:            input.Mode,
		FundingDeadline: input.Deadline,
	}
	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, errors.InternalError(err)
	}
	return project, nil
}

type AddMilestoneInput struct {
	ProjectID   uint64
	Caller      string
	Title       string
	Description string
	Percentage  uint32
	Deadline    uint64
}

// AddMilestone appends a milestone at the next dense index. Only allowed while
// the project is in draft, and only for the creator. The cumulative allocated
// percentage may not exceed 100; under-allocation is allowed and leaves the
// remainder permanently in escrow (documented behavior).
func (uc *ProjectUsecase) AddMilestone(ctx context.Context, input AddMilestoneInput) (*entities.Milestone, error) {
	if input.Title == "" || len(input.Title) > MaxTitleLength {
		return nil, errors.BadRequest("title must be 1-200 characters")
	}
	if len(input.Description) > MaxDescriptionLength {
		return nil, errors.BadRequest("description too long")
	}
	if input.Percentage == 0 || input.Percentage > MaxPercentage {
		return nil, errors.BadRequest("percentage must be between 1 and 100")
	}

	height, err := uc.clock.CurrentHeight(ctx)
	if err != nil {
		return nil, errors.InternalError(err)
	}
	if input.Deadline <= height {
		return nil, errors.DeadlineViolation("milestone deadline must be in the future")
	}

	var milestone *entities.Milestone
	err = uc.uow.Do(ctx, func(ctx context.Context) error {
		project, err := uc.projectRepo.GetByID(ctx, input.ProjectID)
		if err != nil {
			return errors.NotFound("project not found")
		}
		if project.Creator != input.Caller {
			return errors.Forbidden("only the creator can add milestones")
		}
		if project.Status != entities.ProjectStatusDraft {
			return errors.StateConflict("milestones can only be added in draft")
		}

		allocated, err := uc.milestoneRepo.SumPercentages(ctx, project.ID)
		if err != nil {
			return errors.InternalError(err)
		}
		if allocated+input.Percentage > MaxPercentage {
			return errors.BadRequest("milestone percentages exceed 100%")
		}

		milestone = &entities.Milestone{
			ProjectID:   project.ID,
			Index:       project.MilestoneCount,
			Title:       input.Title,
			Description: input.Description,
			Percentage:  input.Percentage,
			Deadline:    input.Deadline,
			Status:      entities.MilestoneStatusPending,
		}
		if err := uc.milestoneRepo.Create(ctx, milestone); err != nil {
			return errors.InternalError(err)
		}

		project.MilestoneCount++
		if err := uc.projectRepo.Update(ctx, project); err != nil {
			return errors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return milestone, nil
}

// AddReviewer registers a reviewer on a draft reviewer-mode project
func (uc *ProjectUsecase) AddReviewer(ctx context.Context, projectID uint64, caller, reviewer string) error {
	if reviewer == "" {
		return errors.BadRequest("reviewer address required")
	}

	return uc.uow.Do(ctx, func(ctx context.Context) error {
		project, err := uc.projectRepo.GetByID(ctx, projectID)
		if err != nil {
			return errors.NotFound("project not found")
		}
		if project.Creator != caller {
			return errors.Forbidden("only the creator can add reviewers")
		}
		if project.Status != entities.ProjectStatusDraft {
			return errors.StateConflict("reviewers can only be added in draft")
		}
		if project.Mode != entities.VerificationModeReviewer {
			return errors.StateConflict("project is not in reviewer mode")
		}
		if existing, err := uc.reviewerRepo.Get(ctx, projectID, reviewer); err == nil && existing != nil {
			return errors.AlreadyDone("reviewer already registered")
		}

		return uc.reviewerRepo.Create(ctx, &entities.Reviewer{
			ProjectID: projectID,
			Reviewer:  reviewer,
			Active:    true,
		})
	})
}

// ActivateProject opens the funding window. Requires at least one milestone.
func (uc *ProjectUsecase) ActivateProject(ctx context.Context, projectID uint64, caller string) error {
	return uc.uow.Do(ctx, func(ctx context.Context) error {
		project, err := uc.projectRepo.GetByID(ctx, projectID)
		if err != nil {
			return errors.NotFound("project not found")
		}
		if project.Creator != caller {
			return errors.Forbidden("only the creator can activate the project")
		}
		if project.Status != entities.ProjectStatusDraft {
			return errors.StateConflict("only draft projects can be activated")
		}
		if project.MilestoneCount == 0 {
			return errors.StateConflict("project has no milestones")
		}

		project.Status = entities.ProjectStatusFunding
		if err := uc.projectRepo.Update(ctx, project); err != nil {
			return errors.InternalError(err)
		}
		return nil
	})
}

// CancelProject cancels a project during funding, unlocking refunds
func (uc *ProjectUsecase) CancelProject(ctx context.Context, projectID uint64, caller string) error {
	return uc.uow.Do(ctx, func(ctx context.Context) error {
		project, err := uc.projectRepo.GetByID(ctx, projectID)
		if err != nil {
			return errors.NotFound("project not found")
		}
		if project.Creator != caller {
			return errors.Forbidden("only the creator can cancel the project")
		}
		if project.Status != entities.ProjectStatusFunding {
			return errors.StateConflict("only funding projects can be cancelled")
		}

		project.Status = entities.ProjectStatusCancelled
		if err := uc.projectRepo.Update(ctx, project); err != nil {
			return errors.InternalError(err)
		}
		return nil
	})
}

// GetProject returns a project by id
func (uc *ProjectUsecase) GetProject(ctx context.Context, projectID uint64) (*entities.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, errors.NotFound("project not found")
	}
	return project, nil
}

// ListProjects returns projects, optionally filtered by status
func (uc *ProjectUsecase) ListProjects(ctx context.Context, status entities.ProjectStatus, limit, offset int) ([]*entities.Project, int, error) {
	return uc.projectRepo.List(ctx, status, limit, offset)
}

// GetMilestone returns a milestone by (project id, index)
func (uc *ProjectUsecase) GetMilestone(ctx context.Context, projectID uint64, index uint32) (*entities.Milestone, error) {
	milestone, err := uc.milestoneRepo.Get(ctx, projectID, index)
	if err != nil {
		return nil, errors.NotFound("milestone not found")
	}
	return milestone, nil
}

// ListMilestones returns the project's milestones in index order
func (uc *ProjectUsecase) ListMilestones(ctx context.Context, projectID uint64) ([]*entities.Milestone, error) {
	if _, err := uc.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, errors.NotFound("project not found")
	}
	return uc.milestoneRepo.ListByProject(ctx, projectID)
}

// ListReviewers returns the reviewers registered for a project
func (uc *ProjectUsecase) ListReviewers(ctx context.Context, projectID uint64) ([]*entities.Reviewer, error) {
	if _, err := uc.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, errors.NotFound("project not found")
	}
	return uc.reviewerRepo.ListByProject(ctx, projectID)
}
