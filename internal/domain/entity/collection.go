package entity

import (
	"time"

	"github.com/google/uuid"
)

// CollectionStatus represents the state of a companion collection record.
type CollectionStatus string

const (
	// CollectionPending indicates the reservation is active but not yet confirmed.
	CollectionPending CollectionStatus = "pending"
	// CollectionCompleted indicates the pickup was confirmed by QR scan.
	CollectionCompleted CollectionStatus = "completed"
	// CollectionCancelled indicates the reservation expired or was cancelled.
	CollectionCancelled CollectionStatus = "cancelled"
)

// String returns the string representation of the CollectionStatus.
func (s CollectionStatus) String() string {
	return string(s)
}

// Collection links a depositor, a collector and an announcement for one
// reservation cycle. Created on reserve, completed on confirm.
type Collection struct {
	ID             uuid.UUID        `json:"id"`
	AnnouncementID uuid.UUID        `json:"announcement_id"`
	DepositorID    uuid.UUID        `json:"depositor_id"`
	CollectorID    uuid.UUID        `json:"collector_id"`
	Status         CollectionStatus `json:"status"`
	KgCollected    *float64         `json:"kg_collected,omitempty"` // Weight reported at confirmation, if any.
	CollectedAt    *time.Time       `json:"collected_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
