package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	EcoProfile *EcoProfileModel `gorm:"foreignKey:UserID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// EcoProfileModel is the GORM-specific struct for the 'eco_profiles' table.
// One row per user, created together with the account.
type EcoProfileModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primary_key"`
	Points     int       `gorm:"not null;default:0"`
	CO2Saved   float64   `gorm:"column:co2_saved;type:decimal(12,2);not null;default:0"`
	TreesSaved int       `gorm:"not null;default:0"`
	KgRecycled float64   `gorm:"type:decimal(12,2);not null;default:0"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (EcoProfileModel) TableName() string {
	return "eco_profiles"
}
