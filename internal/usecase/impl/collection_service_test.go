package impl

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"testing"
	"time"

	"greenloop/internal/domain/entity"
	domainerrors "greenloop/internal/domain/errors"
	"greenloop/internal/domain/service"
	mockRepo "greenloop/internal/mocks/repository"
	mockSvc "greenloop/internal/mocks/service"
	mockUsecase "greenloop/internal/mocks/usecase"
	"greenloop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type collectionServiceMocks struct {
	announcementRepo *mockRepo.MockAnnouncementRepository
	collectionRepo   *mockRepo.MockCollectionRepository
	qrService        *mockSvc.MockQRCodeService
	announcements    *mockUsecase.MockAnnouncementUsecase
}

func newCollectionService(t *testing.T) (usecase.CollectionUsecase, *collectionServiceMocks) {
	m := &collectionServiceMocks{
		announcementRepo: mockRepo.NewMockAnnouncementRepository(t),
		collectionRepo:   mockRepo.NewMockCollectionRepository(t),
		qrService:        mockSvc.NewMockQRCodeService(t),
		announcements:    mockUsecase.NewMockAnnouncementUsecase(t),
	}

	srv := NewCollectionService(CollectionServiceParams{
		AnnouncementRepo: m.announcementRepo,
		CollectionRepo:   m.collectionRepo,
		QRService:        m.qrService,
		Announcements:    m.announcements,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return srv, m
}

func TestCollectionService_IssueQR_GeneratesFreshToken(t *testing.T) {
	srv, m := newCollectionService(t)

	ctx := context.Background()
	announcementID := uuid.New()
	depositorID := uuid.New()

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:          announcementID,
			DepositorID: depositorID,
			Status:      entity.StatusAvailable,
		}, nil)

	var storedToken string
	m.announcementRepo.EXPECT().
		UpdateToken(ctx, announcementID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, _ uuid.UUID, token string, _ time.Time) {
			storedToken = token
		}).
		Return(nil)

	var payload service.CollectionQRPayload
	m.qrService.EXPECT().
		GenerateCollectionQR(mock.AnythingOfType("service.CollectionQRPayload")).
		Run(func(p service.CollectionQRPayload) {
			payload = p
		}).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	out, err := srv.IssueQR(ctx, announcementID, depositorID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.PNG)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), out.ExpiresAt, time.Minute)

	// 32 bytes of entropy, hex encoded.
	assert.Len(t, out.Token, 64)
	_, err = hex.DecodeString(out.Token)
	assert.NoError(t, err)

	assert.Equal(t, storedToken, out.Token)
	assert.Equal(t, announcementID.String(), payload.AnnouncementID)
	assert.Equal(t, out.Token, payload.Token)
}

func TestCollectionService_IssueQR_ReusesValidToken(t *testing.T) {
	srv, m := newCollectionService(t)

	ctx := context.Background()
	announcementID := uuid.New()
	depositorID := uuid.New()
	expiresAt := time.Now().Add(48 * time.Hour)

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:              announcementID,
			DepositorID:     depositorID,
			Status:          entity.StatusAvailable,
			CollectionToken: "deadbeefcafe",
			TokenExpiresAt:  &expiresAt,
		}, nil)

	var payload service.CollectionQRPayload
	m.qrService.EXPECT().
		GenerateCollectionQR(mock.AnythingOfType("service.CollectionQRPayload")).
		Run(func(p service.CollectionQRPayload) {
			payload = p
		}).
		Return([]byte("png"), nil)

	out, err := srv.IssueQR(ctx, announcementID, depositorID)
	require.NoError(t, err)
	assert.Equal(t, "deadbeefcafe", out.Token)
	assert.Equal(t, expiresAt, out.ExpiresAt)

	// The embedded issuance timestamp is derived from the stored expiry, so a
	// reissued code is byte-identical to the first one.
	assert.Equal(t, expiresAt.Add(-7*24*time.Hour).Unix(), payload.Timestamp)
}

func TestCollectionService_IssueQR_NotDepositor(t *testing.T) {
	srv, m := newCollectionService(t)

	ctx := context.Background()
	announcementID := uuid.New()

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:          announcementID,
			DepositorID: uuid.New(),
			Status:      entity.StatusAvailable,
		}, nil)

	_, err := srv.IssueQR(ctx, announcementID, uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_DEPOSITOR", appErr.ErrorCode())
}

func TestCollectionService_ScanAndConfirm_MalformedQR(t *testing.T) {
	srv, m := newCollectionService(t)

	m.qrService.EXPECT().
		ParseCollectionQR("not json").
		Return(nil, errors.New("failed to unmarshal QR code payload"))

	_, err := srv.ScanAndConfirm(context.Background(), uuid.New(), uuid.New(), "not json", nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "QR_MALFORMED", appErr.ErrorCode())
}

func TestCollectionService_ScanAndConfirm_DelegatesToConfirm(t *testing.T) {
	srv, m := newCollectionService(t)

	ctx := context.Background()
	announcementID := uuid.New()
	scannerID := uuid.New()
	expiresAt := time.Now().Add(24 * time.Hour)
	kg := 12.5

	m.qrService.EXPECT().
		ParseCollectionQR("qr-data").
		Return(&service.CollectionQRPayload{
			AnnouncementID: announcementID.String(),
			Token:          "deadbeefcafe",
			Timestamp:      time.Now().Unix(),
		}, nil)

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:              announcementID,
			DepositorID:     uuid.New(),
			Status:          entity.StatusReserved,
			ReservedBy:      &scannerID,
			CollectionToken: "deadbeefcafe",
			TokenExpiresAt:  &expiresAt,
		}, nil)

	m.announcements.EXPECT().
		Confirm(ctx, announcementID, scannerID, &kg).
		Return(&entity.Announcement{ID: announcementID, Status: entity.StatusCollected}, nil)

	confirmed, err := srv.ScanAndConfirm(ctx, announcementID, scannerID, "qr-data", &kg)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCollected, confirmed.Status)
}

func TestValidateCollectionPayload(t *testing.T) {
	announcementID := uuid.New()
	now := time.Now()
	validExpiry := now.Add(24 * time.Hour)
	pastExpiry := now.Add(-time.Hour)

	announcement := func(token string, expiresAt *time.Time) *entity.Announcement {
		return &entity.Announcement{
			ID:              announcementID,
			CollectionToken: token,
			TokenExpiresAt:  expiresAt,
		}
	}

	tests := []struct {
		name         string
		payload      *service.CollectionQRPayload
		announcement *entity.Announcement
		wantCode     string
	}{
		{
			name: "valid payload",
			payload: &service.CollectionQRPayload{
				AnnouncementID: announcementID.String(),
				Token:          "deadbeefcafe",
				Timestamp:      now.Unix(),
			},
			announcement: announcement("deadbeefcafe", &validExpiry),
		},
		{
			name: "wrong announcement",
			payload: &service.CollectionQRPayload{
				AnnouncementID: uuid.New().String(),
				Token:          "deadbeefcafe",
				Timestamp:      now.Unix(),
			},
			announcement: announcement("deadbeefcafe", &validExpiry),
			wantCode:     "QR_WRONG_ANNOUNCEMENT",
		},
		{
			name: "token mismatch",
			payload: &service.CollectionQRPayload{
				AnnouncementID: announcementID.String(),
				Token:          "0123456789ab",
				Timestamp:      now.Unix(),
			},
			announcement: announcement("deadbeefcafe", &validExpiry),
			wantCode:     "QR_INVALID_TOKEN",
		},
		{
			// Token validity is judged before the announcement match, so a
			// scan that gets both wrong reports the token problem.
			name: "wrong token and wrong announcement",
			payload: &service.CollectionQRPayload{
				AnnouncementID: uuid.New().String(),
				Token:          "0123456789ab",
				Timestamp:      now.Unix(),
			},
			announcement: announcement("deadbeefcafe", &validExpiry),
			wantCode:     "QR_INVALID_TOKEN",
		},
		{
			name: "no stored token",
			payload: &service.CollectionQRPayload{
				AnnouncementID: announcementID.String(),
				Token:          "deadbeefcafe",
				Timestamp:      now.Unix(),
			},
			announcement: announcement("", &validExpiry),
			wantCode:     "QR_INVALID_TOKEN",
		},
		{
			name: "stored token expired",
			payload: &service.CollectionQRPayload{
				AnnouncementID: announcementID.String(),
				Token:          "deadbeefcafe",
				Timestamp:      now.Unix(),
			},
			announcement: announcement("deadbeefcafe", &pastExpiry),
			wantCode:     "QR_EXPIRED",
		},
		{
			name: "issuance timestamp too old",
			payload: &service.CollectionQRPayload{
				AnnouncementID: announcementID.String(),
				Token:          "deadbeefcafe",
				Timestamp:      now.Add(-8 * 24 * time.Hour).Unix(),
			},
			announcement: announcement("deadbeefcafe", &validExpiry),
			wantCode:     "QR_EXPIRED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCollectionPayload(tt.payload, tt.announcement, now)
			if tt.wantCode == "" {
				assert.NoError(t, err)

				return
			}

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
		})
	}
}

func TestCollectionService_History(t *testing.T) {
	srv, m := newCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	records := []*entity.Collection{
		{ID: uuid.New(), DepositorID: userID, Status: entity.CollectionCompleted},
		{ID: uuid.New(), CollectorID: userID, Status: entity.CollectionPending},
	}

	m.collectionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(records, nil)

	history, err := srv.History(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, records, history)
}
