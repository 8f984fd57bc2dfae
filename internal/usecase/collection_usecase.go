package usecase

import (
	"context"
	"time"

	"greenloop/internal/domain/entity"

	"github.com/google/uuid"
)

// IssueQROutput carries the collection token and its rendered QR image.
type IssueQROutput struct {
	Token     string
	ExpiresAt time.Time
	PNG       []byte
}

// CollectionUsecase defines the interface for the QR collection-confirmation flow.
type CollectionUsecase interface {
	// IssueQR returns the announcement's collection QR code. Only the
	// depositor may request it. The underlying token is reused while valid
	// and regenerated once expired, so repeated calls within the validity
	// window return the identical token.
	IssueQR(ctx context.Context, announcementID, requesterID uuid.UUID) (*IssueQROutput, error)

	// ScanAndConfirm validates scanned QR data against the announcement's
	// stored token and, on success, performs the confirm transition with its
	// point awards. A second scan after success fails on the lifecycle
	// precondition since the token itself is not single-use.
	ScanAndConfirm(ctx context.Context, announcementID, scannerID uuid.UUID, qrData string, kgCollected *float64) (*entity.Announcement, error)

	// History retrieves the user's collection records, as depositor or collector.
	History(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error)
}
