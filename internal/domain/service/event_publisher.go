package service

import (
	"context"
)

// AnnouncementEvent is published when a new announcement goes live so the
// worker can fan out push notifications to every other user.
type AnnouncementEvent struct {
	RequestID      string   `json:"request_id,omitempty"` // For distributed tracing
	AnnouncementID string   `json:"announcement_id"`
	DepositorID    string   `json:"depositor_id"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	RecipientIDs   []string `json:"recipient_ids"` // All user IDs except the depositor.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAnnouncementEvent publishes an announcement event for async processing
	PublishAnnouncementEvent(ctx context.Context, event *AnnouncementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
