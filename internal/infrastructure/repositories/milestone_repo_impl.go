package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"fundvault.backend/internal/domain/entities"
	domainerrors "fundvault.backend/internal/domain/errors"
	"fundvault.backend/internal/infrastructure/models"
)

// MilestoneRepositoryImpl implements MilestoneRepository
type MilestoneRepositoryImpl struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepositoryImpl {
	return &MilestoneRepositoryImpl{db: db}
}

func (r *MilestoneRepositoryImpl) Create(ctx context.Context, milestone *entities.Milestone) error {
	m := &models.Milestone{
		ProjectID:   milestone.ProjectID,
		Idx:         milestone.Index,
		Title:       milestone.Title,
		Description: milestone.Description,
		Percentage:  milestone.Percentage,
		Deadline:    milestone.Deadline,
		Status:      string(milestone.Status),
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *MilestoneRepositoryImpl) Get(ctx context.Context, projectID uint64, index uint32) (*entities.Milestone, error) {
	var m models.Milestone
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("project_id = ? AND idx = ?", projectID, index).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *MilestoneRepositoryImpl) Update(ctx context.Context, milestone *entities.Milestone) error {
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.Milestone{}).
		Where("project_id = ? AND idx = ?", milestone.ProjectID, milestone.Index).
		Updates(map[string]interface{}{
			"status":         milestone.Status,
			"approvals":      milestone.Approvals,
			"rejections":     milestone.Rejections,
			"funds_released": milestone.FundsReleased,
		}).Error
}

func (r *MilestoneRepositoryImpl) ListByProject(ctx context.Context, projectID uint64) ([]*entities.Milestone, error) {
	var ms []models.Milestone
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("idx ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	milestones := make([]*entities.Milestone, 0, len(ms))
	for i := range ms {
		milestones = append(milestones, r.toEntity(&ms[i]))
	}
	return milestones, nil
}

func (r *MilestoneRepositoryImpl) SumPercentages(ctx context.Context, projectID uint64) (uint32, error) {
	var total int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Milestone{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(percentage), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return uint32(total), nil
}

func (r *MilestoneRepositoryImpl) ListOverdueActive(ctx context.Context, height uint64, limit int) ([]*entities.Milestone, error) {
	var ms []models.Milestone
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("status = ? AND deadline < ?", entities.MilestoneStatusActive, height).
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	milestones := make([]*entities.Milestone, 0, len(ms))
	for i := range ms {
		milestones = append(milestones, r.toEntity(&ms[i]))
	}
	return milestones, nil
}

func (r *MilestoneRepositoryImpl) toEntity(m *models.Milestone) *entities.Milestone {
	return &entities.Milestone{
		ProjectID:     m.ProjectID,
		Index:         m.Idx,
		Title:         m.Title,
		Description:   m.Description,
		Percentage:    m.Percentage,
		Deadline:      m.Deadline,
		Status:        entities.MilestoneStatus(m.Status),
		Approvals:     m.Approvals,
		Rejections:    m.Rejections,
		FundsReleased: m.FundsReleased,
	}
}
