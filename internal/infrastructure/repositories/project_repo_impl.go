package repositories

import (
	"context"

	"gorm.io/gorm"
	"fundvault.backend/internal/domain/entities"
	"fundvault.backend/internal/infrastructure/models"
)

// ProjectRepositoryImpl implements ProjectRepository
type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepositoryImpl {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *entities.Project) error {
	m := &models.Project{
		Creator:         project.Creator,
		Title:           project.Title,
		Description:     project.Description,
		Goal:            project.Goal,
		Status:          string(project.Status),
		Mode:            string(project.Mode),
		FundingDeadline: project.FundingDeadline,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	// Surface the sequence-assigned id to the caller.
	project.ID = m.ID
	return nil
}

func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, id uint64) (*entities.Project, error) {
	var m models.Project
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, project *entities.Project) error {
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"current_funding":        project.CurrentFunding,
			"escrow_balance":         project.EscrowBalance,
			"refunded_contributions": project.RefundedContributions,
			"status":                 project.Status,
			"milestone_count":        project.MilestoneCount,
			"next_milestone":         project.NextMilestone,
		}).Error
}

func (r *ProjectRepositoryImpl) List(ctx context.Context, status entities.ProjectStatus, limit, offset int) ([]*entities.Project, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Project{})
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Project
	if err := db.Order("id ASC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	projects := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		projects = append(projects, r.toEntity(&ms[i]))
	}
	return projects, int(total), nil
}

func (r *ProjectRepositoryImpl) GetByCreator(ctx context.Context, creator string, limit, offset int) ([]*entities.Project, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Project{}).Where("creator = ?", creator)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Project
	if err := db.Order("id ASC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	projects := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		projects = append(projects, r.toEntity(&ms[i]))
	}
	return projects, int(total), nil
}

func (r *ProjectRepositoryImpl) toEntity(m *models.Project) *entities.Project {
	return &entities.Project{
		ID:                    m.ID,
		Creator:               m.Creator,
		Title:                 m.Title,
		Description:           m.Description,
		Goal:                  m.Goal,
		CurrentFunding:        m.CurrentFunding,
		EscrowBalance:         m.EscrowBalance,
		RefundedContributions: m.RefundedContributions,
		Status:                entities.ProjectStatus(m.Status),
		Mode:                  entities.VerificationMode(m.Mode),
		FundingDeadline:       m.FundingDeadline,
		MilestoneCount:        m.MilestoneCount,
		NextMilestone:         m.NextMilestone,
	}
}
