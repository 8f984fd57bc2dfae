// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"greenloop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAnnouncementInput defines the data required to publish a new listing.
type CreateAnnouncementInput struct {
	Title       string
	Description string
	Category    entity.WasteCategory
	Quantity    string
	Latitude    float64
	Longitude   float64
	Address     string
	Schedule    []entity.DaySchedule
}

// ListAnnouncementsInput narrows a browse query.
type ListAnnouncementsInput struct {
	Status   *entity.AnnouncementStatus
	Category *entity.WasteCategory

	// When all three are set, results are limited to announcements within
	// RadiusKm of the point.
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

// AnnouncementUsecase defines the interface for the announcement lifecycle.
type AnnouncementUsecase interface {
	// Create publishes a new announcement in the available state, awards the
	// depositor's creation bonus and broadcasts the event to other users.
	Create(ctx context.Context, depositorID uuid.UUID, input *CreateAnnouncementInput) (*entity.Announcement, error)

	// Get retrieves one announcement, lazily expiring a stale reservation.
	Get(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)

	// List retrieves announcements matching the input, lazily expiring stale
	// reservations in the returned page.
	List(ctx context.Context, input *ListAnnouncementsInput) ([]*entity.Announcement, error)

	// Reserve places a 24h hold on an available announcement for the collector
	// and opens a pending collection record.
	Reserve(ctx context.Context, announcementID, collectorID uuid.UUID) (*entity.Announcement, error)

	// Confirm finalizes the pickup: reserved -> collected, completes the
	// collection record and awards points to both parties exactly once.
	Confirm(ctx context.Context, announcementID, collectorID uuid.UUID, kgCollected *float64) (*entity.Announcement, error)

	// SetStatus is the depositor's explicit override. Setting available clears
	// the reservation fields.
	SetStatus(ctx context.Context, announcementID, callerID uuid.UUID, status entity.AnnouncementStatus) (*entity.Announcement, error)

	// AttachImage stores a photo in the blob bucket and records its key on the
	// announcement.
	AttachImage(ctx context.Context, announcementID, callerID uuid.UUID, contentType string, r io.Reader) (*entity.Announcement, error)
}
