package usecase

import (
	"context"

	"greenloop/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// DeviceInfo describes a device to register for push notifications.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account with a hashed password and empty eco profile.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a JWT access/refresh pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Profile retrieves the user with eco stats and derived seed level.
	Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// RegisterDevice registers or refreshes a push-notification device.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) error
}
