package repositories

import (
	"context"

	"gorm.io/gorm"
	"fundvault.backend/internal/domain/entities"
	"fundvault.backend/internal/infrastructure/models"
)

// BackingRepositoryImpl implements BackingRepository
type BackingRepositoryImpl struct {
	db *gorm.DB
}

func NewBackingRepository(db *gorm.DB) *BackingRepositoryImpl {
	return &BackingRepositoryImpl{db: db}
}

func (r *BackingRepositoryImpl) Create(ctx context.Context, backing *entities.Backing) error {
	m := &models.Backing{
		ProjectID: backing.ProjectID,
		Backer:    backing.Backer,
		Amount:    backing.Amount,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *BackingRepositoryImpl) Get(ctx context.Context, projectID uint64, backer string) (*entities.Backing, error) {
	var m models.Backing
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("project_id = ? AND backer = ?", projectID, backer).
		First(&m).Error; err != nil {
		return nil, err
	}
	return backingToEntity(&m), nil
}

func (r *BackingRepositoryImpl) Update(ctx context.Context, backing *entities.Backing) error {
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.Backing{}).
		Where("project_id = ? AND backer = ?", backing.ProjectID, backing.Backer).
		Updates(map[string]interface{}{
			"refunded":        backing.Refunded,
			"refunded_amount": backing.RefundedAmount,
		}).Error
}

func (r *BackingRepositoryImpl) ListByProject(ctx context.Context, projectID uint64, limit, offset int) ([]*entities.Backing, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Backing{}).Where("project_id = ?", projectID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Backing
	if err := db.Order("created_at ASC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	backings := make([]*entities.Backing, 0, len(ms))
	for i := range ms {
		backings = append(backings, backingToEntity(&ms[i]))
	}
	return backings, int(total), nil
}

func backingToEntity(m *models.Backing) *entities.Backing {
	return &entities.Backing{
		ProjectID:      m.ProjectID,
		Backer:         m.Backer,
		Amount:         m.Amount,
		Refunded:       m.Refunded,
		RefundedAmount: m.RefundedAmount,
	}
}

// ReviewerRepositoryImpl implements ReviewerRepository
type ReviewerRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewerRepository(db *gorm.DB) *ReviewerRepositoryImpl {
	return &ReviewerRepositoryImpl{db: db}
}

func (r *ReviewerRepositoryImpl) Create(ctx context.Context, reviewer *entities.Reviewer) error {
	m := &models.Reviewer{
		ProjectID: reviewer.ProjectID,
		Reviewer:  reviewer.Reviewer,
		Active:    reviewer.Active,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *ReviewerRepositoryImpl) Get(ctx context.Context, projectID uint64, reviewer string) (*entities.Reviewer, error) {
	var m models.Reviewer
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("project_id = ? AND reviewer = ?", projectID, reviewer).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &entities.Reviewer{ProjectID: m.ProjectID, Reviewer: m.Reviewer, Active: m.Active}, nil
}

func (r *ReviewerRepositoryImpl) ListByProject(ctx context.Context, projectID uint64) ([]*entities.Reviewer, error) {
	var ms []models.Reviewer
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	reviewers := make([]*entities.Reviewer, 0, len(ms))
	for i := range ms {
		reviewers = append(reviewers, &entities.Reviewer{
			ProjectID: ms[i].ProjectID,
			Reviewer:  ms[i].Reviewer,
			Active:    ms[i].Active,
		})
	}
	return reviewers, nil
}

// VoteRepositoryImpl implements VoteRepository
type VoteRepositoryImpl struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepositoryImpl {
	return &VoteRepositoryImpl{db: db}
}

func (r *VoteRepositoryImpl) Create(ctx context.Context, vote *entities.Vote) error {
	m := &models.Vote{
		ProjectID:      vote.ProjectID,
		MilestoneIndex: vote.MilestoneIndex,
		Voter:          vote.Voter,
		Approve:        vote.Approve,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *VoteRepositoryImpl) Get(ctx context.Context, projectID uint64, index uint32, voter string) (*entities.Vote, error) {
	var m models.Vote
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("project_id = ? AND milestone_index = ? AND voter = ?", projectID, index, voter).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &entities.Vote{
		ProjectID:      m.ProjectID,
		MilestoneIndex: m.MilestoneIndex,
		Voter:          m.Voter,
		Approve:        m.Approve,
	}, nil
}

func (r *VoteRepositoryImpl) ListByMilestone(ctx context.Context, projectID uint64, index uint32) ([]*entities.Vote, error) {
	var ms []models.Vote
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("project_id = ? AND milestone_index = ?", projectID, index).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	votes := make([]*entities.Vote, 0, len(ms))
	for i := range ms {
		votes = append(votes, &entities.Vote{
			ProjectID:      ms[i].ProjectID,
			MilestoneIndex: ms[i].MilestoneIndex,
			Voter:          ms[i].Voter,
			Approve:        ms[i].Approve,
		})
	}
	return votes, nil
}
