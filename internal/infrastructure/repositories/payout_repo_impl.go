package repositories

import (
	"context"

	"gorm.io/gorm"
	"github.com/volatiletech/null/v8"
	"fundvault.backend/internal/domain/entities"
	"fundvault.backend/internal/infrastructure/models"
)

// PayoutRepositoryImpl implements PayoutRepository
type PayoutRepositoryImpl struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepositoryImpl {
	return &PayoutRepositoryImpl{db: db}
}

func (r *PayoutRepositoryImpl) Create(ctx context.Context, payout *entities.Payout) error {
	m := &models.Payout{
		ID:              payout.ID,
		ProjectID:       payout.ProjectID,
		MilestoneIndex:  payout.MilestoneIndex,
		MilestoneAmount: payout.MilestoneAmount,
		PlatformFee:     payout.PlatformFee,
		CreatorAmount:   payout.CreatorAmount,
		Creator:         payout.Creator,
		TxHash:          payout.TxHash.String,
		ReleasedAt:      payout.ReleasedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *PayoutRepositoryImpl) ListByProject(ctx context.Context, projectID uint64) ([]*entities.Payout, error) {
	var ms []models.Payout
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("milestone_index ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	payouts := make([]*entities.Payout, 0, len(ms))
	for i := range ms {
		m := ms[i]
		payouts = append(payouts, &entities.Payout{
			ID:              m.ID,
			ProjectID:       m.ProjectID,
			MilestoneIndex:  m.MilestoneIndex,
			MilestoneAmount: m.MilestoneAmount,
			PlatformFee:     m.PlatformFee,
			CreatorAmount:   m.CreatorAmount,
			Creator:         m.Creator,
			TxHash:          null.NewString(m.TxHash, m.TxHash != ""),
			ReleasedAt:      m.ReleasedAt,
		})
	}
	return payouts, nil
}
