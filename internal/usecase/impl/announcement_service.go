// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"time"

	deliverycontext "greenloop/internal/delivery/context"
	"greenloop/internal/domain/constants"
	"greenloop/internal/domain/entity"
	domainerrors "greenloop/internal/domain/errors"
	"greenloop/internal/domain/repository"
	"greenloop/internal/domain/service"
	"greenloop/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// announcementService implements the AnnouncementUsecase interface.
type announcementService struct {
	txManager        repository.TransactionManager
	announcementRepo repository.AnnouncementRepository
	collectionRepo   repository.CollectionRepository
	userRepo         repository.UserRepository
	publisher        service.EventPublisher
	imageStore       service.ImageStore
	logger           *slog.Logger
}

// AnnouncementServiceParams holds dependencies for AnnouncementService, injected by Fx.
type AnnouncementServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AnnouncementRepo repository.AnnouncementRepository
	CollectionRepo   repository.CollectionRepository
	UserRepo         repository.UserRepository
	Publisher        service.EventPublisher
	ImageStore       service.ImageStore `optional:"true"`
	Logger           *slog.Logger
}

// NewAnnouncementService is the constructor for announcementService.
func NewAnnouncementService(params AnnouncementServiceParams) usecase.AnnouncementUsecase {
	return &announcementService{
		txManager:        params.TxManager,
		announcementRepo: params.AnnouncementRepo,
		collectionRepo:   params.CollectionRepo,
		userRepo:         params.UserRepo,
		publisher:        params.Publisher,
		imageStore:       params.ImageStore,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *announcementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateCreateInput checks the required fields before anything is persisted.
func validateCreateInput(input *usecase.CreateAnnouncementInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing request body")
	}
	if input.Title == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if !input.Category.IsValid() {
		return domainerrors.ErrInvalidCategory.WithDetails("category: " + input.Category.String())
	}
	if input.Latitude < -90 || input.Latitude > 90 {
		return domainerrors.ErrValidationFailed.WithDetails("latitude out of range")
	}
	if input.Longitude < -180 || input.Longitude > 180 {
		return domainerrors.ErrValidationFailed.WithDetails("longitude out of range")
	}

	return nil
}

// Create publishes a new announcement and awards the depositor's creation bonus
// in the same transaction. The broadcast to other users is best-effort.
func (srv *announcementService) Create(ctx context.Context, depositorID uuid.UUID, input *usecase.CreateAnnouncementInput) (*entity.Announcement, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	announcement := &entity.Announcement{
		ID:          uuid.New(),
		DepositorID: depositorID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Address:     input.Address,
		Schedule:    input.Schedule,
		Status:      entity.StatusAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAnnouncementRepository().Create(ctx, announcement); err != nil {
			return errors.Wrap(err, "failed to create announcement")
		}

		if err := repoFactory.NewUserRepository().IncrementPoints(ctx, depositorID, constants.PointsCreateAnnouncement); err != nil {
			return errors.Wrap(err, "failed to award creation points")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.broadcastCreated(ctx, announcement)

	return announcement, nil
}

// broadcastCreated publishes the announcement event to every other user.
// Failures are logged and swallowed; they never fail the create call.
func (srv *announcementService) broadcastCreated(ctx context.Context, announcement *entity.Announcement) {
	userIDs, err := srv.userRepo.ListIDs(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to list recipients for announcement broadcast",
			slog.Any("announcement_id", announcement.ID),
			slog.Any("error", err),
		)

		return
	}

	recipients := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		if id == announcement.DepositorID {
			continue
		}
		recipients = append(recipients, id.String())
	}

	event := &service.AnnouncementEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		AnnouncementID: announcement.ID.String(),
		DepositorID:    announcement.DepositorID.String(),
		Title:          announcement.Title,
		Category:       announcement.Category.String(),
		Latitude:       announcement.Latitude,
		Longitude:      announcement.Longitude,
		RecipientIDs:   recipients,
	}

	if err := srv.publisher.PublishAnnouncementEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish announcement event",
			slog.Any("announcement_id", announcement.ID),
			slog.Any("error", err),
		)
	}
}

// Get retrieves one announcement, lazily expiring a stale reservation first.
func (srv *announcementService) Get(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	announcement, err := srv.findAnnouncement(ctx, srv.announcementRepo, id)
	if err != nil {
		return nil, err
	}

	if announcement.ReservationExpired(time.Now()) {
		srv.expireStaleReservation(ctx, srv.announcementRepo, srv.collectionRepo, announcement)
	}

	return announcement, nil
}

// List retrieves announcements, applies the optional radius filter and lazily
// expires stale reservations in the returned page.
func (srv *announcementService) List(ctx context.Context, input *usecase.ListAnnouncementsInput) ([]*entity.Announcement, error) {
	filter := repository.AnnouncementFilter{}
	if input != nil {
		filter.Status = input.Status
		filter.Category = input.Category
	}

	announcements, err := srv.announcementRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list announcements")
	}

	now := time.Now()
	for _, announcement := range announcements {
		if announcement.ReservationExpired(now) {
			srv.expireStaleReservation(ctx, srv.announcementRepo, srv.collectionRepo, announcement)
		}
	}

	if input != nil && input.Latitude != nil && input.Longitude != nil && input.RadiusKm != nil {
		announcements = filterByRadius(announcements, *input.Latitude, *input.Longitude, *input.RadiusKm)
	}

	return announcements, nil
}

// filterByRadius keeps announcements within radiusKm straight-line distance of
// the given point.
func filterByRadius(announcements []*entity.Announcement, lat, lon, radiusKm float64) []*entity.Announcement {
	center := orb.Point{lon, lat}
	filtered := make([]*entity.Announcement, 0, len(announcements))
	for _, announcement := range announcements {
		point := orb.Point{announcement.Longitude, announcement.Latitude}
		if geo.Distance(center, point) <= radiusKm*1000 {
			filtered = append(filtered, announcement)
		}
	}

	return filtered
}

// Reserve places a 24h hold on an available announcement.
func (srv *announcementService) Reserve(ctx context.Context, announcementID, collectorID uuid.UUID) (*entity.Announcement, error) {
	var reserved *entity.Announcement

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		announcementRepo := repoFactory.NewAnnouncementRepository()
		collectionRepo := repoFactory.NewCollectionRepository()

		announcement, err := srv.findAnnouncement(ctx, announcementRepo, announcementID)
		if err != nil {
			return err
		}

		now := time.Now()
		if announcement.ReservationExpired(now) {
			if err := srv.releaseReservation(ctx, announcementRepo, collectionRepo, announcement); err != nil {
				return err
			}
		}

		if announcement.Status != entity.StatusAvailable {
			return domainerrors.InvalidStateError(announcement.Status.String())
		}

		expiresAt := now.Add(constants.ReservationWindow)
		err = announcementRepo.UpdateStatusIf(ctx, announcement.ID,
			entity.StatusAvailable, entity.StatusReserved, &collectorID, &expiresAt)
		if errors.Is(err, repository.ErrStateConflict) {
			// Another collector won the race; report the fresh state.
			return domainerrors.InvalidStateError(entity.StatusReserved.String())
		}
		if err != nil {
			return errors.Wrap(err, "failed to reserve announcement")
		}

		collection := &entity.Collection{
			ID:             uuid.New(),
			AnnouncementID: announcement.ID,
			DepositorID:    announcement.DepositorID,
			CollectorID:    collectorID,
			Status:         entity.CollectionPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := collectionRepo.Create(ctx, collection); err != nil {
			return errors.Wrap(err, "failed to create collection record")
		}

		announcement.Status = entity.StatusReserved
		announcement.ReservedBy = &collectorID
		announcement.ReservationExpiresAt = &expiresAt
		reserved = announcement

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reserved, nil
}

// Confirm finalizes the pickup. The state flip, the collection record and both
// point awards commit in one transaction, so a partial award cannot be
// observed. Side effects after commit stay best-effort.
func (srv *announcementService) Confirm(ctx context.Context, announcementID, collectorID uuid.UUID, kgCollected *float64) (*entity.Announcement, error) {
	var confirmed *entity.Announcement

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		announcementRepo := repoFactory.NewAnnouncementRepository()
		collectionRepo := repoFactory.NewCollectionRepository()
		userRepo := repoFactory.NewUserRepository()

		announcement, err := srv.findAnnouncement(ctx, announcementRepo, announcementID)
		if err != nil {
			return err
		}

		now := time.Now()
		// Expiry is evaluated before the confirm precondition, so a confirm
		// racing the end of the window loses.
		if announcement.ReservationExpired(now) {
			if err := srv.releaseReservation(ctx, announcementRepo, collectionRepo, announcement); err != nil {
				return err
			}
		}

		if announcement.Status != entity.StatusReserved {
			return domainerrors.InvalidStateError(announcement.Status.String())
		}
		if announcement.ReservedBy == nil || *announcement.ReservedBy != collectorID {
			return domainerrors.ErrNotReservationOwner
		}

		err = announcementRepo.UpdateStatusIf(ctx, announcement.ID,
			entity.StatusReserved, entity.StatusCollected,
			announcement.ReservedBy, announcement.ReservationExpiresAt)
		if errors.Is(err, repository.ErrStateConflict) {
			return domainerrors.InvalidStateError(entity.StatusCollected.String())
		}
		if err != nil {
			return errors.Wrap(err, "failed to mark announcement collected")
		}

		collection, err := collectionRepo.FindPendingByAnnouncement(ctx, announcement.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find pending collection record")
		}
		if err := collectionRepo.Complete(ctx, collection.ID, kgCollected, now); err != nil {
			return errors.Wrap(err, "failed to complete collection record")
		}

		if err := userRepo.IncrementPoints(ctx, announcement.DepositorID, constants.PointsConfirmDepositor); err != nil {
			return errors.Wrap(err, "failed to award depositor points")
		}
		if err := userRepo.IncrementPoints(ctx, collectorID, constants.PointsConfirmCollector); err != nil {
			return errors.Wrap(err, "failed to award collector points")
		}

		if kgCollected != nil {
			kg := *kgCollected
			co2 := kg * constants.CO2SavedPerKg
			trees := int(math.Floor(kg / constants.KgPerTreeSaved))
			for _, userID := range []uuid.UUID{announcement.DepositorID, collectorID} {
				if err := userRepo.AddImpact(ctx, userID, co2, trees, kg); err != nil {
					return errors.Wrap(err, "failed to apply impact accumulators")
				}
			}
		}

		announcement.Status = entity.StatusCollected
		confirmed = announcement

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Announcement collected",
		slog.Any("announcement_id", announcementID),
		slog.Any("collector_id", collectorID),
	)

	return confirmed, nil
}

// SetStatus is the depositor's explicit override among the three states.
func (srv *announcementService) SetStatus(ctx context.Context, announcementID, callerID uuid.UUID, status entity.AnnouncementStatus) (*entity.Announcement, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status: " + status.String())
	}

	var updated *entity.Announcement

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		announcementRepo := repoFactory.NewAnnouncementRepository()
		collectionRepo := repoFactory.NewCollectionRepository()

		announcement, err := srv.findAnnouncement(ctx, announcementRepo, announcementID)
		if err != nil {
			return err
		}

		if announcement.DepositorID != callerID {
			return domainerrors.ErrNotDepositor
		}

		switch status {
		case entity.StatusAvailable:
			if err := srv.cancelPendingCollection(ctx, collectionRepo, announcement.ID); err != nil {
				return err
			}
			announcement.ExpireReservation()
		case entity.StatusReserved:
			// The override can only restore a reservation that exists;
			// handing out a fresh hold is what Reserve is for.
			if announcement.ReservedBy == nil {
				return domainerrors.ErrValidationFailed.WithDetails("no reservation to restore")
			}
			expiresAt := time.Now().Add(constants.ReservationWindow)
			announcement.ReservationExpiresAt = &expiresAt
		}

		announcement.Status = status
		// The override must stick from any current state, including collected,
		// so this write is unconditional rather than a guarded transition.
		if err := announcementRepo.Update(ctx, announcement); err != nil {
			return errors.Wrap(err, "failed to update announcement status")
		}

		updated = announcement

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// AttachImage stores the photo and records its blob key on the announcement.
func (srv *announcementService) AttachImage(ctx context.Context, announcementID, callerID uuid.UUID, contentType string, r io.Reader) (*entity.Announcement, error) {
	if srv.imageStore == nil {
		return nil, domainerrors.ErrInternalError.WithDetails("image storage is not configured")
	}

	announcement, err := srv.findAnnouncement(ctx, srv.announcementRepo, announcementID)
	if err != nil {
		return nil, err
	}
	if announcement.DepositorID != callerID {
		return nil, domainerrors.ErrNotDepositor
	}

	key, err := srv.imageStore.Put(ctx, contentType, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store announcement image")
	}

	previousKey := announcement.ImageKey
	announcement.ImageKey = key
	if err := srv.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, errors.Wrap(err, "failed to record announcement image key")
	}

	if previousKey != "" {
		if err := srv.imageStore.Delete(ctx, previousKey); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced announcement image",
				slog.String("image_key", previousKey),
				slog.Any("error", err),
			)
		}
	}

	return announcement, nil
}

// findAnnouncement maps the repository sentinel to the domain error.
func (srv *announcementService) findAnnouncement(ctx context.Context, announcementRepo repository.AnnouncementRepository, id uuid.UUID) (*entity.Announcement, error) {
	announcement, err := announcementRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAnnouncementNotFound) {
		return nil, domainerrors.ErrAnnouncementNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find announcement")
	}

	return announcement, nil
}

// releaseReservation coerces a reserved announcement back to available,
// cancelling the pending collection record of the cycle.
func (srv *announcementService) releaseReservation(ctx context.Context, announcementRepo repository.AnnouncementRepository, collectionRepo repository.CollectionRepository, announcement *entity.Announcement) error {
	err := announcementRepo.UpdateStatusIf(ctx, announcement.ID,
		entity.StatusReserved, entity.StatusAvailable, nil, nil)
	if err != nil && !errors.Is(err, repository.ErrStateConflict) {
		return errors.Wrap(err, "failed to release reservation")
	}

	if err := srv.cancelPendingCollection(ctx, collectionRepo, announcement.ID); err != nil {
		return err
	}

	announcement.ExpireReservation()

	return nil
}

// cancelPendingCollection cancels the open collection record of the current
// cycle, if any.
func (srv *announcementService) cancelPendingCollection(ctx context.Context, collectionRepo repository.CollectionRepository, announcementID uuid.UUID) error {
	collection, err := collectionRepo.FindPendingByAnnouncement(ctx, announcementID)
	if errors.Is(err, repository.ErrCollectionNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find pending collection record")
	}

	if err := collectionRepo.Cancel(ctx, collection.ID); err != nil {
		return errors.Wrap(err, "failed to cancel collection record")
	}

	return nil
}

// expireStaleReservation is the read-path variant of releaseReservation:
// best-effort persistence, the returned view is always coerced.
func (srv *announcementService) expireStaleReservation(ctx context.Context, announcementRepo repository.AnnouncementRepository, collectionRepo repository.CollectionRepository, announcement *entity.Announcement) {
	if err := srv.releaseReservation(ctx, announcementRepo, collectionRepo, announcement); err != nil {
		srv.log(ctx).Warn("Failed to persist lazy reservation expiry",
			slog.Any("announcement_id", announcement.ID),
			slog.Any("error", err),
		)
		announcement.ExpireReservation()
	}
}
