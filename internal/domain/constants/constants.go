// Package constants centralizes cross-layer business constants.
package constants

import "time"

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Gamification point awards.
const (
	PointsCreateAnnouncement = 10 // depositor bonus when a listing goes live
	PointsConfirmDepositor   = 30 // depositor award when the pickup is confirmed
	PointsConfirmCollector   = 50 // collector award when the pickup is confirmed
)

// Environmental impact factors applied per collected kilogram.
const (
	CO2SavedPerKg  = 2.5
	KgPerTreeSaved = 10
)

// Reservation and collection-token validity windows.
const (
	ReservationWindow = 24 * time.Hour
	TokenValidity     = 7 * 24 * time.Hour
)
