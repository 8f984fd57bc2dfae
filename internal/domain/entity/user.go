// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	pointsPerLevel = 100
	maxSeedLevel   = 10
)

// User is the core entity in the system, representing one account that can act
// both as depositor (publishing announcements) and collector (picking them up).
type User struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	PasswordHash string      `json:"-"`
	EcoProfile   *EcoProfile `json:"eco_profile,omitempty"` // Gamification counters. Nil until first load.
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// EcoProfile accumulates gamification points and environmental impact for a user.
// Points grow the user's virtual seed; the level is derived, never stored.
type EcoProfile struct {
	UserID     uuid.UUID `json:"user_id"`
	Points     int       `json:"points"`
	CO2Saved   float64   `json:"co2_saved"`   // Kilograms of CO2 avoided.
	TreesSaved int       `json:"trees_saved"` // Tree equivalents.
	KgRecycled float64   `json:"kg_recycled"` // Total collected weight.
	UpdatedAt  time.Time `json:"updated_at"`
}

// Level derives the seed-growth level from accumulated points.
func (p *EcoProfile) Level() int {
	return LevelForPoints(p.Points)
}

// LevelForPoints computes the seed level for a point total: one level per 100
// points, starting at 1 and capped at 10.
func LevelForPoints(points int) int {
	if points < 0 {
		return 1
	}
	level := 1 + points/pointsPerLevel
	if level > maxSeedLevel {
		return maxSeedLevel
	}

	return level
}
