package repository

import (
	"context"

	"greenloop/internal/domain/entity"
	"greenloop/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Create persists a new device registration.
	Create(ctx context.Context, device *entity.UserDevice) error

	// FindByUser retrieves all devices registered by one user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindForUsers retrieves all active devices for a list of user IDs.
	// Used for batch fetching devices when fanning out notifications.
	FindForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken refreshes the FCM token of an existing device.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// Deactivate flags a device whose FCM token was rejected as invalid.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
