package repository

import (
	"context"
	"time"

	"greenloop/internal/domain/entity"
	"greenloop/internal/errors"

	"github.com/google/uuid"
)

// ErrCollectionNotFound is returned when a collection record is not found.
var ErrCollectionNotFound = errors.New("collection not found")

// CollectionRepository defines the interface for collection-record operations.
type CollectionRepository interface {
	// Create persists a new pending collection record.
	Create(ctx context.Context, collection *entity.Collection) error

	// FindPendingByAnnouncement retrieves the pending record for an
	// announcement's current reservation cycle.
	FindPendingByAnnouncement(ctx context.Context, announcementID uuid.UUID) (*entity.Collection, error)

	// Complete marks the record completed, stamping the collected weight and time.
	Complete(ctx context.Context, id uuid.UUID, kgCollected *float64, collectedAt time.Time) error

	// Cancel marks the record cancelled (reservation expired or reset).
	Cancel(ctx context.Context, id uuid.UUID) error

	// FindByUser retrieves records where the user is depositor or collector,
	// newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error)
}
