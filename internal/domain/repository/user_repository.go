package repository

import (
	"context"

	"greenloop/internal/domain/entity"
	"greenloop/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user together with an empty eco profile.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user (with eco profile) by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, for login.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListIDs returns the IDs of every registered user. Used for broadcast
	// notification fan-out.
	ListIDs(ctx context.Context) ([]uuid.UUID, error)

	// IncrementPoints adds delta points to the user's eco profile. One call
	// represents exactly one award.
	IncrementPoints(ctx context.Context, userID uuid.UUID, delta int) error

	// AddImpact applies environmental-impact accumulator deltas.
	AddImpact(ctx context.Context, userID uuid.UUID, co2 float64, trees int, kg float64) error
}
