package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"fundvault.backend/internal/domain/entities"
	domainerrors "fundvault.backend/internal/domain/errors"
	"fundvault.backend/internal/usecases"
	"fundvault.backend/pkg/crypto"
	"fundvault.backend/pkg/jwt"
)

func newAuthUsecase(userRepo *MockUserRepository) *usecases.AuthUsecase {
	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	return usecases.NewAuthUsecase(userRepo, jwtService)
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo)

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, domainerrors.ErrNotFound)
	userRepo.On("GetByWalletAddress", mock.Anything, "0xabcdef").Return(nil, domainerrors.ErrNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.User")).Return(nil)

	user, err := uc.Register(context.Background(), &entities.RegisterInput{
		Email:         "alice@example.com",
		Name:          "Alice",
		Password:      "correct horse battery",
		WalletAddress: " 0xABCdef ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "0xabcdef", user.WalletAddress, "address is normalized")
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo)

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(&entities.User{ID: uuid.New()}, nil)

	_, err := uc.Register(context.Background(), &entities.RegisterInput{
		Email:         "alice@example.com",
		Name:          "Alice",
		Password:      "pw-long-enough",
		WalletAddress: "0xabc",
	})

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyDone)
}

func TestRegister_DuplicateWallet(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo)

	userRepo.On("GetByEmail", mock.Anything, "bob@example.com").Return(nil, domainerrors.ErrNotFound)
	userRepo.On("GetByWalletAddress", mock.Anything, "0xabc").Return(&entities.User{ID: uuid.New()}, nil)

	_, err := uc.Register(context.Background(), &entities.RegisterInput{
		Email:         "bob@example.com",
		Name:          "Bob",
		Password:      "pw-long-enough",
		WalletAddress: "0xABC",
	})

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyDone)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo)

	hash, err := crypto.HashPassword("hunter2hunter2")
	assert.NoError(t, err)

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(&entities.User{
		ID:            uuid.New(),
		Email:         "alice@example.com",
		PasswordHash:  hash,
		WalletAddress: "0xabc",
	}, nil)

	resp, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "0xabc", resp.User.WalletAddress)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo)

	hash, _ := crypto.HashPassword("hunter2hunter2")
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(&entities.User{
		Email: "alice@example.com", PasswordHash: hash,
	}, nil)

	_, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo)

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domainerrors.ErrNotFound)

	_, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo)

	userID := uuid.New()
	hash, _ := crypto.HashPassword("hunter2hunter2")
	user := &entities.User{ID: userID, Email: "alice@example.com", PasswordHash: hash, WalletAddress: "0xabc"}

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, userID).Return(user, nil)

	resp, err := uc.Login(context.Background(), &entities.LoginInput{
		Email: "alice@example.com", Password: "hunter2hunter2",
	})
	assert.NoError(t, err)

	refreshed, err := uc.RefreshToken(context.Background(), resp.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshToken_Garbage(t *testing.T) {
	uc := newAuthUsecase(new(MockUserRepository))

	_, err := uc.RefreshToken(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
