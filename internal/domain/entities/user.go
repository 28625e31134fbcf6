package entities

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account bound to a wallet address. The address is the
// principal every project operation is authorized against.
type User struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	PasswordHash  string     `json:"-"`
	WalletAddress string     `json:"walletAddress"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	DeletedAt     *time.Time `json:"-"`
}

// RegisterInput represents input for creating an account
type RegisterInput struct {
	Email         string `json:"email" binding:"required,email"`
	Name          string `json:"name" binding:"required,min=2,max=100"`
	Password      string `json:"password" binding:"required,min=8"`
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}
