// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"greenloop/internal/domain/entity"
	"greenloop/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for announcement persistence.
var (
	// ErrAnnouncementNotFound is returned when an announcement is not found.
	ErrAnnouncementNotFound = errors.New("announcement not found")
	// ErrStateConflict is returned when a conditional state update matched no
	// row, meaning another actor changed the state first.
	ErrStateConflict = errors.New("announcement state changed concurrently")
)

// AnnouncementFilter narrows List results.
type AnnouncementFilter struct {
	Status   *entity.AnnouncementStatus
	Category *entity.WasteCategory

	// Optional straight-line radius filter around a point.
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

// AnnouncementRepository defines the interface for announcement-related
// database operations.
type AnnouncementRepository interface {
	// Create persists a new announcement.
	Create(ctx context.Context, announcement *entity.Announcement) error

	// FindByID retrieves an announcement by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)

	// List retrieves announcements matching the filter, newest first.
	List(ctx context.Context, filter AnnouncementFilter) ([]*entity.Announcement, error)

	// Update persists all mutable fields of the announcement.
	Update(ctx context.Context, announcement *entity.Announcement) error

	// UpdateStatusIf transitions the announcement from one status to another
	// together with the reservation fields, but only if the current status
	// still equals the expected one. Returns ErrStateConflict when no row
	// matched, so reserve and confirm can never both succeed for two actors.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, expected, next entity.AnnouncementStatus, reservedBy *uuid.UUID, reservationExpiresAt *time.Time) error

	// UpdateToken stores a freshly issued collection token and its expiry.
	UpdateToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error
}
