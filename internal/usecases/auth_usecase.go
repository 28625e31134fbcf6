package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"fundvault.backend/internal/domain/entities"
	domainerrors "fundvault.backend/internal/domain/errors"
	"fundvault.backend/internal/domain/repositories"
	"fundvault.backend/pkg/crypto"
	"fundvault.backend/pkg/jwt"
)

// AuthUsecase handles account registration and login. Every account is bound
// to a wallet address; that address is the principal the project operations
// authorize against.
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account with a mandatory wallet address
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	address := strings.ToLower(strings.TrimSpace(input.WalletAddress))
	if address == "" {
		return nil, domainerrors.BadRequest("wallet address required")
	}

	if existing, err := u.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domainerrors.AlreadyDone("email already registered")
	}
	if existing, err := u.userRepo.GetByWalletAddress(ctx, address); err == nil && existing != nil {
		return nil, domainerrors.AlreadyDone("wallet already registered to another account")
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	user := &entities.User{
		Email:         input.Email,
		Name:          input.Name,
		PasswordHash:  passwordHash,
		WalletAddress: address,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return user, nil
}

// Login authenticates an account and returns a token pair carrying the wallet
// address as the principal.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil || user == nil {
		return nil, domainerrors.Unauthorized("invalid credentials")
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.Unauthorized("invalid credentials")
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, user.WalletAddress)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}, nil
}

// RefreshToken issues a fresh token pair from a valid refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil || user == nil {
		return nil, domainerrors.Unauthorized("account no longer exists")
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, user.WalletAddress)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}, nil
}

// GetMe returns the account for an authenticated user id
func (u *AuthUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, domainerrors.NotFound("account not found")
	}
	return user, nil
}
