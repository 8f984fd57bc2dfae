package entity

// AnnouncementStatus represents the lifecycle state of an announcement.
type AnnouncementStatus string

const (
	// StatusAvailable indicates the announcement is open for reservation.
	StatusAvailable AnnouncementStatus = "available"
	// StatusReserved indicates a collector holds the announcement.
	StatusReserved AnnouncementStatus = "reserved"
	// StatusCollected indicates the pickup was confirmed. Terminal for the cycle.
	StatusCollected AnnouncementStatus = "collected"
)

// String returns the string representation of the AnnouncementStatus.
func (s AnnouncementStatus) String() string {
	return string(s)
}

// IsValid checks if the AnnouncementStatus is a valid value.
func (s AnnouncementStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusCollected:
		return true
	default:
		return false
	}
}
