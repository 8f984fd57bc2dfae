// Package model contains the GORM-specific structs mapping domain entities to tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnouncementModel is the GORM-specific struct for the 'announcements' table.
// The schedule is stored as a JSONB document since it is only ever read back
// whole, never queried by day.
type AnnouncementModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DepositorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(32);not null;index"`
	Quantity    string    `gorm:"type:varchar(255)"`
	Latitude    float64   `gorm:"type:decimal(9,6);not null"`
	Longitude   float64   `gorm:"type:decimal(9,6);not null"`
	Address     string    `gorm:"type:text"`
	ImageKey    string    `gorm:"type:varchar(255)"`
	Schedule    []byte    `gorm:"type:jsonb"`
	Status      string    `gorm:"type:varchar(16);not null;index;default:'available'"`

	ReservedBy           *uuid.UUID `gorm:"type:uuid"`
	ReservationExpiresAt *time.Time

	CollectionToken string `gorm:"type:varchar(128)"`
	TokenExpiresAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AnnouncementModel) TableName() string {
	return "announcements"
}
