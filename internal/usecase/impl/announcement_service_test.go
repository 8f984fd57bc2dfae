package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"greenloop/internal/domain/entity"
	domainerrors "greenloop/internal/domain/errors"
	"greenloop/internal/domain/repository"
	"greenloop/internal/domain/service"
	mockRepo "greenloop/internal/mocks/repository"
	mockSvc "greenloop/internal/mocks/service"
	"greenloop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type announcementServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	announcementRepo *mockRepo.MockAnnouncementRepository
	collectionRepo   *mockRepo.MockCollectionRepository
	userRepo         *mockRepo.MockUserRepository
	publisher        *mockSvc.MockEventPublisher
	imageStore       *mockSvc.MockImageStore
}

func newAnnouncementService(t *testing.T) (usecase.AnnouncementUsecase, *announcementServiceMocks) {
	m := &announcementServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		announcementRepo: mockRepo.NewMockAnnouncementRepository(t),
		collectionRepo:   mockRepo.NewMockCollectionRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
		imageStore:       mockSvc.NewMockImageStore(t),
	}

	srv := NewAnnouncementService(AnnouncementServiceParams{
		TxManager:        m.txManager,
		AnnouncementRepo: m.announcementRepo,
		CollectionRepo:   m.collectionRepo,
		UserRepo:         m.userRepo,
		Publisher:        m.publisher,
		ImageStore:       m.imageStore,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return srv, m
}

// expectTx wires the transaction manager to run the callback against a factory
// handing out the test's repository mocks.
func (m *announcementServiceMocks) expectTx(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewAnnouncementRepository().Return(m.announcementRepo).Maybe()
	factory.EXPECT().NewCollectionRepository().Return(m.collectionRepo).Maybe()
	factory.EXPECT().NewUserRepository().Return(m.userRepo).Maybe()

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func validCreateInput() *usecase.CreateAnnouncementInput {
	return &usecase.CreateAnnouncementInput{
		Title:     "Cartons de piles usagées",
		Category:  entity.WasteCategoryPiles,
		Quantity:  "3 sacs",
		Latitude:  48.8566,
		Longitude: 2.3522,
		Address:   "12 rue de la République, Paris",
	}
}

func TestAnnouncementService_Create_AwardsPointsAndBroadcasts(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	depositorID := uuid.New()
	otherA := uuid.New()
	otherB := uuid.New()

	m.announcementRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Announcement")).
		Return(nil)

	m.userRepo.EXPECT().
		IncrementPoints(ctx, depositorID, 10).
		Return(nil)

	m.userRepo.EXPECT().
		ListIDs(ctx).
		Return([]uuid.UUID{depositorID, otherA, otherB}, nil)

	var published *service.AnnouncementEvent
	m.publisher.EXPECT().
		PublishAnnouncementEvent(ctx, mock.AnythingOfType("*service.AnnouncementEvent")).
		Run(func(_ context.Context, event *service.AnnouncementEvent) {
			published = event
		}).
		Return(nil)

	announcement, err := srv.Create(ctx, depositorID, validCreateInput())
	require.NoError(t, err)
	require.NotNil(t, announcement)
	assert.Equal(t, entity.StatusAvailable, announcement.Status)
	assert.Equal(t, depositorID, announcement.DepositorID)
	assert.Nil(t, announcement.ReservedBy)

	// The depositor never receives their own announcement.
	require.NotNil(t, published)
	assert.Equal(t, announcement.ID.String(), published.AnnouncementID)
	assert.ElementsMatch(t, []string{otherA.String(), otherB.String()}, published.RecipientIDs)
}

func TestAnnouncementService_Create_InvalidCategory(t *testing.T) {
	srv, _ := newAnnouncementService(t)

	input := validCreateInput()
	input.Category = "nucleaire"

	_, err := srv.Create(context.Background(), uuid.New(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CATEGORY", appErr.ErrorCode())
}

func TestAnnouncementService_Create_MissingTitle(t *testing.T) {
	srv, _ := newAnnouncementService(t)

	input := validCreateInput()
	input.Title = ""

	_, err := srv.Create(context.Background(), uuid.New(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAnnouncementService_Create_PublishFailureDoesNotFailCreate(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	depositorID := uuid.New()

	m.announcementRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Announcement")).
		Return(nil)
	m.userRepo.EXPECT().
		IncrementPoints(ctx, depositorID, 10).
		Return(nil)
	m.userRepo.EXPECT().
		ListIDs(ctx).
		Return([]uuid.UUID{uuid.New()}, nil)
	m.publisher.EXPECT().
		PublishAnnouncementEvent(ctx, mock.AnythingOfType("*service.AnnouncementEvent")).
		Return(errors.New("broker unavailable"))

	announcement, err := srv.Create(ctx, depositorID, validCreateInput())
	require.NoError(t, err)
	assert.NotNil(t, announcement)
}

func TestAnnouncementService_Reserve_Available(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	announcementID := uuid.New()
	collectorID := uuid.New()
	depositorID := uuid.New()

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:          announcementID,
			DepositorID: depositorID,
			Status:      entity.StatusAvailable,
		}, nil)

	m.announcementRepo.EXPECT().
		UpdateStatusIf(ctx, announcementID, entity.StatusAvailable, entity.StatusReserved, mock.Anything, mock.Anything).
		Return(nil)

	var created *entity.Collection
	m.collectionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Collection")).
		Run(func(_ context.Context, collection *entity.Collection) {
			created = collection
		}).
		Return(nil)

	reserved, err := srv.Reserve(ctx, announcementID, collectorID)
	require.NoError(t, err)
	require.NotNil(t, reserved)
	assert.Equal(t, entity.StatusReserved, reserved.Status)
	require.NotNil(t, reserved.ReservedBy)
	assert.Equal(t, collectorID, *reserved.ReservedBy)
	require.NotNil(t, reserved.ReservationExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *reserved.ReservationExpiresAt, time.Minute)

	require.NotNil(t, created)
	assert.Equal(t, entity.CollectionPending, created.Status)
	assert.Equal(t, depositorID, created.DepositorID)
	assert.Equal(t, collectorID, created.CollectorID)
}

func TestAnnouncementService_Reserve_NotAvailable(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	announcementID := uuid.New()
	holder := uuid.New()
	expiresAt := time.Now().Add(12 * time.Hour)

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                   announcementID,
			DepositorID:          uuid.New(),
			Status:               entity.StatusReserved,
			ReservedBy:           &holder,
			ReservationExpiresAt: &expiresAt,
		}, nil)

	_, err := srv.Reserve(ctx, announcementID, uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATE", appErr.ErrorCode())
}

func TestAnnouncementService_Reserve_ConcurrentReserveLoses(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	announcementID := uuid.New()

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:          announcementID,
			DepositorID: uuid.New(),
			Status:      entity.StatusAvailable,
		}, nil)

	m.announcementRepo.EXPECT().
		UpdateStatusIf(ctx, announcementID, entity.StatusAvailable, entity.StatusReserved, mock.Anything, mock.Anything).
		Return(repository.ErrStateConflict)

	_, err := srv.Reserve(ctx, announcementID, uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATE", appErr.ErrorCode())
}

func TestAnnouncementService_Reserve_ExpiredReservationIsReleasedFirst(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	announcementID := uuid.New()
	staleHolder := uuid.New()
	collectorID := uuid.New()
	staleExpiry := time.Now().Add(-time.Hour)
	pending := &entity.Collection{ID: uuid.New(), AnnouncementID: announcementID, Status: entity.CollectionPending}

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                   announcementID,
			DepositorID:          uuid.New(),
			Status:               entity.StatusReserved,
			ReservedBy:           &staleHolder,
			ReservationExpiresAt: &staleExpiry,
		}, nil)

	// Lazy expiry of the stale hold.
	m.announcementRepo.EXPECT().
		UpdateStatusIf(ctx, announcementID, entity.StatusReserved, entity.StatusAvailable, mock.Anything, mock.Anything).
		Return(nil)
	m.collectionRepo.EXPECT().
		FindPendingByAnnouncement(ctx, announcementID).
		Return(pending, nil)
	m.collectionRepo.EXPECT().
		Cancel(ctx, pending.ID).
		Return(nil)

	// The new reservation goes through.
	m.announcementRepo.EXPECT().
		UpdateStatusIf(ctx, announcementID, entity.StatusAvailable, entity.StatusReserved, mock.Anything, mock.Anything).
		Return(nil)
	m.collectionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Collection")).
		Return(nil)

	reserved, err := srv.Reserve(ctx, announcementID, collectorID)
	require.NoError(t, err)
	require.NotNil(t, reserved.ReservedBy)
	assert.Equal(t, collectorID, *reserved.ReservedBy)
}

func TestAnnouncementService_Confirm_AwardsPointsAndImpact(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	announcementID := uuid.New()
	depositorID := uuid.New()
	collectorID := uuid.New()
	expiresAt := time.Now().Add(12 * time.Hour)
	pending := &entity.Collection{ID: uuid.New(), AnnouncementID: announcementID, Status: entity.CollectionPending}
	kg := 25.0

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                   announcementID,
			DepositorID:          depositorID,
			Status:               entity.StatusReserved,
			ReservedBy:           &collectorID,
			ReservationExpiresAt: &expiresAt,
		}, nil)

	m.announcementRepo.EXPECT().
		UpdateStatusIf(ctx, announcementID, entity.StatusReserved, entity.StatusCollected, mock.Anything, mock.Anything).
		Return(nil)

	m.collectionRepo.EXPECT().
		FindPendingByAnnouncement(ctx, announcementID).
		Return(pending, nil)
	m.collectionRepo.EXPECT().
		Complete(ctx, pending.ID, &kg, mock.AnythingOfType("time.Time")).
		Return(nil)

	m.userRepo.EXPECT().
		IncrementPoints(ctx, depositorID, 30).
		Return(nil)
	m.userRepo.EXPECT().
		IncrementPoints(ctx, collectorID, 50).
		Return(nil)

	// 25 kg -> 62.5 kg CO2 avoided, 2 tree equivalents, for both parties.
	m.userRepo.EXPECT().
		AddImpact(ctx, depositorID, 62.5, 2, kg).
		Return(nil)
	m.userRepo.EXPECT().
		AddImpact(ctx, collectorID, 62.5, 2, kg).
		Return(nil)

	confirmed, err := srv.Confirm(ctx, announcementID, collectorID, &kg)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCollected, confirmed.Status)
}

func TestAnnouncementService_Confirm_WithoutWeightSkipsImpact(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	announcementID := uuid.New()
	depositorID := uuid.New()
	collectorID := uuid.New()
	expiresAt := time.Now().Add(12 * time.Hour)
	pending := &entity.Collection{ID: uuid.New(), AnnouncementID: announcementID, Status: entity.CollectionPending}

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                   announcementID,
			DepositorID:          depositorID,
			Status:               entity.StatusReserved,
			ReservedBy:           &collectorID,
			ReservationExpiresAt: &expiresAt,
		}, nil)
	m.announcementRepo.EXPECT().
		UpdateStatusIf(ctx, announcementID, entity.StatusReserved, entity.StatusCollected, mock.Anything, mock.Anything).
		Return(nil)
	m.collectionRepo.EXPECT().
		FindPendingByAnnouncement(ctx, announcementID).
		Return(pending, nil)
	m.collectionRepo.EXPECT().
		Complete(ctx, pending.ID, (*float64)(nil), mock.AnythingOfType("time.Time")).
		Return(nil)
	m.userRepo.EXPECT().
		IncrementPoints(ctx, depositorID, 30).
		Return(nil)
	m.userRepo.EXPECT().
		IncrementPoints(ctx, collectorID, 50).
		Return(nil)

	_, err := srv.Confirm(ctx, announcementID, collectorID, nil)
	require.NoError(t, err)
}

func TestAnnouncementService_Confirm_NotReservationOwner(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	announcementID := uuid.New()
	holder := uuid.New()
	expiresAt := time.Now().Add(12 * time.Hour)

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                   announcementID,
			DepositorID:          uuid.New(),
			Status:               entity.StatusReserved,
			ReservedBy:           &holder,
			ReservationExpiresAt: &expiresAt,
		}, nil)

	_, err := srv.Confirm(ctx, announcementID, uuid.New(), nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_RESERVATION_OWNER", appErr.ErrorCode())
}

func TestAnnouncementService_Confirm_ExpiredReservationWins(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	announcementID := uuid.New()
	collectorID := uuid.New()
	staleExpiry := time.Now().Add(-time.Minute)
	pending := &entity.Collection{ID: uuid.New(), AnnouncementID: announcementID, Status: entity.CollectionPending}

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                   announcementID,
			DepositorID:          uuid.New(),
			Status:               entity.StatusReserved,
			ReservedBy:           &collectorID,
			ReservationExpiresAt: &staleExpiry,
		}, nil)

	m.announcementRepo.EXPECT().
		UpdateStatusIf(ctx, announcementID, entity.StatusReserved, entity.StatusAvailable, mock.Anything, mock.Anything).
		Return(nil)
	m.collectionRepo.EXPECT().
		FindPendingByAnnouncement(ctx, announcementID).
		Return(pending, nil)
	m.collectionRepo.EXPECT().
		Cancel(ctx, pending.ID).
		Return(nil)

	// Even the reservation holder cannot confirm once the window has closed.
	_, err := srv.Confirm(ctx, announcementID, collectorID, nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATE", appErr.ErrorCode())
}

func TestAnnouncementService_Confirm_SecondConfirmFails(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	announcementID := uuid.New()
	depositorID := uuid.New()
	collectorID := uuid.New()
	expiresAt := time.Now().Add(12 * time.Hour)
	pending := &entity.Collection{ID: uuid.New(), AnnouncementID: announcementID, Status: entity.CollectionPending}

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                   announcementID,
			DepositorID:          depositorID,
			Status:               entity.StatusReserved,
			ReservedBy:           &collectorID,
			ReservationExpiresAt: &expiresAt,
		}, nil).
		Once()
	m.announcementRepo.EXPECT().
		UpdateStatusIf(ctx, announcementID, entity.StatusReserved, entity.StatusCollected, mock.Anything, mock.Anything).
		Return(nil)
	m.collectionRepo.EXPECT().
		FindPendingByAnnouncement(ctx, announcementID).
		Return(pending, nil)
	m.collectionRepo.EXPECT().
		Complete(ctx, pending.ID, (*float64)(nil), mock.AnythingOfType("time.Time")).
		Return(nil)
	m.userRepo.EXPECT().
		IncrementPoints(ctx, depositorID, 30).
		Return(nil)
	m.userRepo.EXPECT().
		IncrementPoints(ctx, collectorID, 50).
		Return(nil)

	// The second scan sees the collected row.
	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                   announcementID,
			DepositorID:          depositorID,
			Status:               entity.StatusCollected,
			ReservedBy:           &collectorID,
			ReservationExpiresAt: &expiresAt,
		}, nil)

	first, err := srv.Confirm(ctx, announcementID, collectorID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCollected, first.Status)

	_, err = srv.Confirm(ctx, announcementID, collectorID, nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATE", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), entity.StatusCollected.String())
}

func TestAnnouncementService_Get_LazilyExpiresStaleReservation(t *testing.T) {
	srv, m := newAnnouncementService(t)

	ctx := context.Background()
	announcementID := uuid.New()
	holder := uuid.New()
	staleExpiry := time.Now().Add(-time.Hour)

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                   announcementID,
			DepositorID:          uuid.New(),
			Status:               entity.StatusReserved,
			ReservedBy:           &holder,
			ReservationExpiresAt: &staleExpiry,
		}, nil)

	m.announcementRepo.EXPECT().
		UpdateStatusIf(ctx, announcementID, entity.StatusReserved, entity.StatusAvailable, mock.Anything, mock.Anything).
		Return(nil)
	m.collectionRepo.EXPECT().
		FindPendingByAnnouncement(ctx, announcementID).
		Return(nil, repository.ErrCollectionNotFound)

	announcement, err := srv.Get(ctx, announcementID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAvailable, announcement.Status)
	assert.Nil(t, announcement.ReservedBy)
	assert.Nil(t, announcement.ReservationExpiresAt)
}

func TestAnnouncementService_Get_NotFound(t *testing.T) {
	srv, m := newAnnouncementService(t)

	ctx := context.Background()
	announcementID := uuid.New()

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(nil, repository.ErrAnnouncementNotFound)

	_, err := srv.Get(ctx, announcementID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ANNOUNCEMENT_NOT_FOUND", appErr.ErrorCode())
}

func TestAnnouncementService_List_RadiusFilter(t *testing.T) {
	srv, m := newAnnouncementService(t)

	ctx := context.Background()
	near := &entity.Announcement{ID: uuid.New(), Status: entity.StatusAvailable, Latitude: 48.8566, Longitude: 2.3522}
	far := &entity.Announcement{ID: uuid.New(), Status: entity.StatusAvailable, Latitude: 45.7640, Longitude: 4.8357}

	m.announcementRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.AnnouncementFilter")).
		Return([]*entity.Announcement{near, far}, nil)

	lat, lon, radius := 48.8570, 2.3520, 5.0
	announcements, err := srv.List(ctx, &usecase.ListAnnouncementsInput{
		Latitude:  &lat,
		Longitude: &lon,
		RadiusKm:  &radius,
	})
	require.NoError(t, err)
	require.Len(t, announcements, 1)
	assert.Equal(t, near.ID, announcements[0].ID)
}

func TestAnnouncementService_SetStatus_NotDepositor(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	announcementID := uuid.New()

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:          announcementID,
			DepositorID: uuid.New(),
			Status:      entity.StatusAvailable,
		}, nil)

	_, err := srv.SetStatus(ctx, announcementID, uuid.New(), entity.StatusCollected)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_DEPOSITOR", appErr.ErrorCode())
}

func TestAnnouncementService_SetStatus_AvailableClearsReservation(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	announcementID := uuid.New()
	depositorID := uuid.New()
	holder := uuid.New()
	expiresAt := time.Now().Add(12 * time.Hour)
	pending := &entity.Collection{ID: uuid.New(), AnnouncementID: announcementID, Status: entity.CollectionPending}

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                   announcementID,
			DepositorID:          depositorID,
			Status:               entity.StatusReserved,
			ReservedBy:           &holder,
			ReservationExpiresAt: &expiresAt,
		}, nil)

	m.collectionRepo.EXPECT().
		FindPendingByAnnouncement(ctx, announcementID).
		Return(pending, nil)
	m.collectionRepo.EXPECT().
		Cancel(ctx, pending.ID).
		Return(nil)

	var persisted *entity.Announcement
	m.announcementRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Announcement")).
		Run(func(_ context.Context, announcement *entity.Announcement) {
			persisted = announcement
		}).
		Return(nil)

	updated, err := srv.SetStatus(ctx, announcementID, depositorID, entity.StatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAvailable, updated.Status)
	assert.Nil(t, updated.ReservedBy)
	assert.Nil(t, updated.ReservationExpiresAt)

	require.NotNil(t, persisted)
	assert.Equal(t, entity.StatusAvailable, persisted.Status)
	assert.Nil(t, persisted.ReservedBy)
}

func TestAnnouncementService_SetStatus_CollectedBackToAvailablePersists(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	announcementID := uuid.New()
	depositorID := uuid.New()
	collectorID := uuid.New()
	expiresAt := time.Now().Add(-time.Hour)

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                   announcementID,
			DepositorID:          depositorID,
			Status:               entity.StatusCollected,
			ReservedBy:           &collectorID,
			ReservationExpiresAt: &expiresAt,
		}, nil)

	m.collectionRepo.EXPECT().
		FindPendingByAnnouncement(ctx, announcementID).
		Return(nil, repository.ErrCollectionNotFound)

	// Reopening a collected announcement must reach storage; there is no
	// reserved row for a conditional release to match.
	var persisted *entity.Announcement
	m.announcementRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Announcement")).
		Run(func(_ context.Context, announcement *entity.Announcement) {
			persisted = announcement
		}).
		Return(nil)

	updated, err := srv.SetStatus(ctx, announcementID, depositorID, entity.StatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAvailable, updated.Status)

	require.NotNil(t, persisted)
	assert.Equal(t, entity.StatusAvailable, persisted.Status)
	assert.Nil(t, persisted.ReservedBy)
	assert.Nil(t, persisted.ReservationExpiresAt)
}

func TestAnnouncementService_SetStatus_ReservedRequiresExistingHold(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

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

	_, err := srv.SetStatus(ctx, announcementID, depositorID, entity.StatusReserved)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAnnouncementService_SetStatus_ReservedRestoresHoldWithFreshWindow(t *testing.T) {
	srv, m := newAnnouncementService(t)
	m.expectTx(t)

	ctx := context.Background()
	announcementID := uuid.New()
	depositorID := uuid.New()
	collectorID := uuid.New()
	staleExpiry := time.Now().Add(-time.Hour)

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                   announcementID,
			DepositorID:          depositorID,
			Status:               entity.StatusCollected,
			ReservedBy:           &collectorID,
			ReservationExpiresAt: &staleExpiry,
		}, nil)

	var persisted *entity.Announcement
	m.announcementRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Announcement")).
		Run(func(_ context.Context, announcement *entity.Announcement) {
			persisted = announcement
		}).
		Return(nil)

	updated, err := srv.SetStatus(ctx, announcementID, depositorID, entity.StatusReserved)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReserved, updated.Status)

	// The restored hold keeps its owner and gets a full window again.
	require.NotNil(t, persisted)
	require.NotNil(t, persisted.ReservedBy)
	assert.Equal(t, collectorID, *persisted.ReservedBy)
	require.NotNil(t, persisted.ReservationExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *persisted.ReservationExpiresAt, time.Minute)
}

func TestAnnouncementService_SetStatus_InvalidStatus(t *testing.T) {
	srv, _ := newAnnouncementService(t)

	_, err := srv.SetStatus(context.Background(), uuid.New(), uuid.New(), "archived")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAnnouncementService_AttachImage_ReplacesPreviousImage(t *testing.T) {
	srv, m := newAnnouncementService(t)

	ctx := context.Background()
	announcementID := uuid.New()
	depositorID := uuid.New()

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:          announcementID,
			DepositorID: depositorID,
			Status:      entity.StatusAvailable,
			ImageKey:    "2026/01/02/old-key",
		}, nil)

	m.imageStore.EXPECT().
		Put(ctx, "image/png", mock.Anything).
		Return("2026/03/04/new-key", nil)

	m.announcementRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Announcement")).
		Return(nil)

	m.imageStore.EXPECT().
		Delete(ctx, "2026/01/02/old-key").
		Return(nil)

	announcement, err := srv.AttachImage(ctx, announcementID, depositorID, "image/png", nil)
	require.NoError(t, err)
	assert.Equal(t, "2026/03/04/new-key", announcement.ImageKey)
}

func TestAnnouncementService_AttachImage_NotDepositor(t *testing.T) {
	srv, m := newAnnouncementService(t)

	ctx := context.Background()
	announcementID := uuid.New()

	m.announcementRepo.EXPECT().
		FindByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:          announcementID,
			DepositorID: uuid.New(),
			Status:      entity.StatusAvailable,
		}, nil)

	_, err := srv.AttachImage(ctx, announcementID, uuid.New(), "image/png", nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_DEPOSITOR", appErr.ErrorCode())
}
