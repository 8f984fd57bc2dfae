package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeRange is one start/end pair within a day of the availability schedule.
type TimeRange struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// DaySchedule lists the time ranges during which a pickup can happen on a given day.
type DaySchedule struct {
	Day    string      `json:"day"` // "monday" .. "sunday"
	Ranges []TimeRange `json:"ranges"`
}

// Announcement is a waste-collection listing published by a depositor.
// Its reservation fields are only meaningful while Status is reserved (or the
// collected state the reservation led to); when Status is available they are nil.
type Announcement struct {
	ID          uuid.UUID          `json:"id"`           // The Global Unique Identifier (GUID) for the announcement.
	DepositorID uuid.UUID          `json:"depositor_id"` // The ID of the user who published the listing and owns edits.
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    WasteCategory      `json:"category"`  // One of the closed waste-category set.
	Quantity    string             `json:"quantity"`  // Free-text estimate, e.g. "3 sacs".
	Latitude    float64            `json:"latitude"`  // Geographic latitude of the pickup point.
	Longitude   float64            `json:"longitude"` // Geographic longitude of the pickup point.
	Address     string             `json:"address"`
	ImageKey    string             `json:"image_key,omitempty"` // Blob-store key of the optional photo.
	Schedule    []DaySchedule      `json:"schedule,omitempty"`  // Ordered availability schedule.
	Status      AnnouncementStatus `json:"status"`

	ReservedBy           *uuid.UUID `json:"reserved_by,omitempty"`            // Collector holding the reservation.
	ReservationExpiresAt *time.Time `json:"reservation_expires_at,omitempty"` // End of the 24h reservation window.

	CollectionToken string     `json:"-"`                          // Opaque secret embedded in the QR code. Never serialized to listings.
	TokenExpiresAt  *time.Time `json:"token_expires_at,omitempty"` // Independent of the reservation window.

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReservationExpired reports whether the announcement holds a reservation whose
// window has already closed at the given instant.
func (a *Announcement) ReservationExpired(now time.Time) bool {
	return a.Status == StatusReserved &&
		a.ReservationExpiresAt != nil &&
		a.ReservationExpiresAt.Before(now)
}

// ExpireReservation coerces a stale reservation back to available and clears the
// reservation fields. Callers run this before evaluating any operation
// precondition so a stale hold never blocks a new reserver.
func (a *Announcement) ExpireReservation() {
	a.Status = StatusAvailable
	a.ReservedBy = nil
	a.ReservationExpiresAt = nil
}

// TokenValid reports whether the stored collection token can still be reused at
// the given instant.
func (a *Announcement) TokenValid(now time.Time) bool {
	return a.CollectionToken != "" &&
		a.TokenExpiresAt != nil &&
		a.TokenExpiresAt.After(now)
}
