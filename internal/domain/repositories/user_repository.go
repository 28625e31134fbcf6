package repositories

import (
	"context"

	"github.com/google/uuid"
	"fundvault.backend/internal/domain/entities"
)

// UserRepository defines account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByWalletAddress(ctx context.Context, address string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
}
