package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "greenloop/internal/delivery/context"
	"greenloop/internal/domain/constants"
	"greenloop/internal/domain/entity"
	domainerrors "greenloop/internal/domain/errors"
	"greenloop/internal/domain/repository"
	"greenloop/internal/domain/service"
	"greenloop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// collectionTokenBytes is the entropy of a collection token before hex encoding.
const collectionTokenBytes = 32

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	announcementRepo repository.AnnouncementRepository
	collectionRepo   repository.CollectionRepository
	qrService        service.QRCodeService
	announcements    usecase.AnnouncementUsecase
	logger           *slog.Logger
}

// CollectionServiceParams holds dependencies for CollectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	AnnouncementRepo repository.AnnouncementRepository
	CollectionRepo   repository.CollectionRepository
	QRService        service.QRCodeService
	Announcements    usecase.AnnouncementUsecase
	Logger           *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		announcementRepo: params.AnnouncementRepo,
		collectionRepo:   params.CollectionRepo,
		qrService:        params.QRService,
		announcements:    params.Announcements,
		logger:           params.Logger,
	}
}

// IssueQR renders the announcement's collection QR code for the depositor.
// The token is reused while still valid, so repeated calls within the validity
// window hand out the identical token.
func (srv *collectionService) IssueQR(ctx context.Context, announcementID, requesterID uuid.UUID) (*usecase.IssueQROutput, error) {
	announcement, err := srv.announcementRepo.FindByID(ctx, announcementID)
	if errors.Is(err, repository.ErrAnnouncementNotFound) {
		return nil, domainerrors.ErrAnnouncementNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find announcement")
	}

	if announcement.DepositorID != requesterID {
		return nil, domainerrors.ErrNotDepositor
	}

	now := time.Now()
	token := announcement.CollectionToken
	var expiresAt time.Time
	if announcement.TokenValid(now) {
		expiresAt = *announcement.TokenExpiresAt
	} else {
		token, err = generateCollectionToken()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate collection token")
		}

		expiresAt = now.Add(constants.TokenValidity)
		if err := srv.announcementRepo.UpdateToken(ctx, announcementID, token, expiresAt); err != nil {
			return nil, errors.Wrap(err, "failed to store collection token")
		}
	}

	payload := service.CollectionQRPayload{
		AnnouncementID: announcementID.String(),
		Token:          token,
		Timestamp:      expiresAt.Add(-constants.TokenValidity).Unix(),
	}

	png, err := srv.qrService.GenerateCollectionQR(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render collection QR code")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Collection QR issued",
		slog.Any("announcement_id", announcementID),
	)

	return &usecase.IssueQROutput{
		Token:     token,
		ExpiresAt: expiresAt,
		PNG:       png,
	}, nil
}

// generateCollectionToken returns a hex-encoded random token.
func generateCollectionToken() (string, error) {
	buf := make([]byte, collectionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}

// ScanAndConfirm validates the scanned QR data against the announcement's
// stored token and then runs the confirm transition. Each rejection reason
// carries its own error code so the scanner app can tell them apart.
func (srv *collectionService) ScanAndConfirm(ctx context.Context, announcementID, scannerID uuid.UUID, qrData string, kgCollected *float64) (*entity.Announcement, error) {
	payload, err := srv.qrService.ParseCollectionQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrMalformedQRCode
	}

	announcement, err := srv.announcementRepo.FindByID(ctx, announcementID)
	if errors.Is(err, repository.ErrAnnouncementNotFound) {
		return nil, domainerrors.ErrAnnouncementNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find announcement")
	}

	if err := validateCollectionPayload(payload, announcement, time.Now()); err != nil {
		return nil, err
	}

	return srv.announcements.Confirm(ctx, announcementID, scannerID, kgCollected)
}

// validateCollectionPayload checks the scanned payload against the stored
// token. Pure so the rejection matrix is testable without storage.
func validateCollectionPayload(payload *service.CollectionQRPayload, announcement *entity.Announcement, now time.Time) error {
	if payload.Token == "" || announcement.CollectionToken == "" || payload.Token != announcement.CollectionToken {
		return domainerrors.ErrInvalidQRToken
	}
	if payload.AnnouncementID != announcement.ID.String() {
		return domainerrors.ErrWrongAnnouncement
	}
	if announcement.TokenExpiresAt == nil || now.After(*announcement.TokenExpiresAt) {
		return domainerrors.ErrExpiredQRCode
	}
	if now.Unix()-payload.Timestamp > int64(constants.TokenValidity/time.Second) {
		return domainerrors.ErrExpiredQRCode
	}

	return nil
}

// History retrieves the user's collection records, as depositor or collector.
func (srv *collectionService) History(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error) {
	collections, err := srv.collectionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collection history")
	}

	return collections, nil
}
