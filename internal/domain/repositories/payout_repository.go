package repositories

import (
	"context"

	"fundvault.backend/internal/domain/entities"
)

// PayoutRepository is the append-only release audit trail
type PayoutRepository interface {
	Create(ctx context.Context, payout *entities.Payout) error
	ListByProject(ctx context.Context, projectID uint64) ([]*entities.Payout, error)
}
