package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollectionModel is the GORM-specific struct for the 'collections' table.
// One row per reservation cycle of an announcement.
type CollectionModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AnnouncementID uuid.UUID `gorm:"type:uuid;not null;index"`
	DepositorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CollectorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:varchar(16);not null;index;default:'pending'"`
	KgCollected    *float64  `gorm:"type:decimal(10,2)"`
	CollectedAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CollectionModel) TableName() string {
	return "collections"
}
