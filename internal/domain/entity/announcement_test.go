package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAnnouncement_ReservationExpired(t *testing.T) {
	now := time.Now()
	collector := uuid.New()

	tests := []struct {
		name     string
		mutate   func(a *Announcement)
		expected bool
	}{
		{
			name:     "available announcement never expired",
			mutate:   func(a *Announcement) { a.Status = StatusAvailable },
			expected: false,
		},
		{
			name: "reserved with future expiry",
			mutate: func(a *Announcement) {
				a.Status = StatusReserved
				a.ReservedBy = &collector
				expiry := now.Add(time.Hour)
				a.ReservationExpiresAt = &expiry
			},
			expected: false,
		},
		{
			name: "reserved with past expiry",
			mutate: func(a *Announcement) {
				a.Status = StatusReserved
				a.ReservedBy = &collector
				expiry := now.Add(-time.Minute)
				a.ReservationExpiresAt = &expiry
			},
			expected: true,
		},
		{
			name: "collected is terminal and never expires",
			mutate: func(a *Announcement) {
				a.Status = StatusCollected
				expiry := now.Add(-time.Hour)
				a.ReservationExpiresAt = &expiry
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Announcement{Status: StatusAvailable}
			tt.mutate(a)
			assert.Equal(t, tt.expected, a.ReservationExpired(now))
		})
	}
}

func TestAnnouncement_ExpireReservation_ClearsReservationFields(t *testing.T) {
	collector := uuid.New()
	expiry := time.Now().Add(-time.Minute)
	a := &Announcement{
		Status:               StatusReserved,
		ReservedBy:           &collector,
		ReservationExpiresAt: &expiry,
	}

	a.ExpireReservation()

	assert.Equal(t, StatusAvailable, a.Status)
	assert.Nil(t, a.ReservedBy)
	assert.Nil(t, a.ReservationExpiresAt)
}

func TestAnnouncement_TokenValid(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name      string
		token     string
		expiresAt *time.Time
		expected  bool
	}{
		{"no token issued", "", nil, false},
		{"token without expiry", "abc", nil, false},
		{"valid token", "abc", &future, true},
		{"expired token", "abc", &past, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Announcement{CollectionToken: tt.token, TokenExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.expected, a.TokenValid(now))
		})
	}
}

func TestWasteCategory_IsValid(t *testing.T) {
	for _, c := range []WasteCategory{
		WasteCategoryMedicaments, WasteCategoryPlastiques, WasteCategoryPiles,
		WasteCategoryTextiles, WasteCategoryElectronique,
	} {
		assert.True(t, c.IsValid(), c.String())
	}

	assert.False(t, WasteCategory("verre").IsValid())
	assert.False(t, WasteCategory("").IsValid())
}
