package postgres

import (
	"context"
	"encoding/json"
	"time"

	"greenloop/internal/domain/entity"
	domainerrors "greenloop/internal/domain/errors"
	"greenloop/internal/domain/repository"
	"greenloop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// announcementRepository implements the repository.AnnouncementRepository interface.
type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository is the constructor for announcementRepository.
func NewAnnouncementRepository(db *gorm.DB) repository.AnnouncementRepository {
	return &announcementRepository{
		db: db,
	}
}

// Create persists a new announcement.
func (repo *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	announcementM, err := fromAnnouncementDomain(announcement)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(announcementM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid depositor reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required announcement information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create announcement")
	}

	announcement.ID = announcementM.ID
	announcement.CreatedAt = announcementM.CreatedAt
	announcement.UpdatedAt = announcementM.UpdatedAt

	return nil
}

// FindByID retrieves an announcement by its unique ID.
func (repo *announcementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	var announcementM model.AnnouncementModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&announcementM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnnouncementNotFound
		}

		return nil, errors.Wrap(err, "failed to find announcement by ID")
	}

	return toAnnouncementDomain(&announcementM)
}

// List retrieves announcements matching the filter, newest first. The radius
// narrowing is applied by the caller on the decoded coordinates.
func (repo *announcementRepository) List(ctx context.Context, filter repository.AnnouncementFilter) ([]*entity.Announcement, error) {
	query := repo.db.WithContext(ctx).Model(&model.AnnouncementModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}

	var announcementModels []*model.AnnouncementModel
	if err := query.Order("created_at DESC").Find(&announcementModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list announcements")
	}

	announcements := make([]*entity.Announcement, 0, len(announcementModels))
	for _, announcementM := range announcementModels {
		announcement, err := toAnnouncementDomain(announcementM)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, announcement)
	}

	return announcements, nil
}

// Update persists all mutable fields of the announcement.
func (repo *announcementRepository) Update(ctx context.Context, announcement *entity.Announcement) error {
	announcementM, err := fromAnnouncementDomain(announcement)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AnnouncementModel{}).
		Where("id = ?", announcement.ID).
		Updates(map[string]any{
			"title":                  announcementM.Title,
			"description":            announcementM.Description,
			"category":               announcementM.Category,
			"quantity":               announcementM.Quantity,
			"latitude":               announcementM.Latitude,
			"longitude":              announcementM.Longitude,
			"address":                announcementM.Address,
			"image_key":              announcementM.ImageKey,
			"schedule":               announcementM.Schedule,
			"status":                 announcementM.Status,
			"reserved_by":            announcementM.ReservedBy,
			"reservation_expires_at": announcementM.ReservationExpiresAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update announcement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAnnouncementNotFound
	}

	return nil
}

// UpdateStatusIf performs the conditional state transition. The WHERE clause on
// the expected status makes the transition at-most-once under concurrency.
func (repo *announcementRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, expected, next entity.AnnouncementStatus, reservedBy *uuid.UUID, reservationExpiresAt *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AnnouncementModel{}).
		Where("id = ? AND status = ?", id, expected.String()).
		Updates(map[string]any{
			"status":                 next.String(),
			"reserved_by":            reservedBy,
			"reservation_expires_at": reservationExpiresAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to transition announcement status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStateConflict
	}

	return nil
}

// UpdateToken stores a freshly issued collection token and its expiry.
func (repo *announcementRepository) UpdateToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AnnouncementModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"collection_token": token,
			"token_expires_at": expiresAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update collection token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAnnouncementNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAnnouncementDomain converts a GORM AnnouncementModel to a domain Announcement entity.
func toAnnouncementDomain(data *model.AnnouncementModel) (*entity.Announcement, error) {
	if data == nil {
		return nil, nil
	}

	var schedule []entity.DaySchedule
	if len(data.Schedule) > 0 {
		if err := json.Unmarshal(data.Schedule, &schedule); err != nil {
			return nil, errors.Wrap(err, "failed to decode announcement schedule")
		}
	}

	return &entity.Announcement{
		ID:                   data.ID,
		DepositorID:          data.DepositorID,
		Title:                data.Title,
		Description:          data.Description,
		Category:             entity.WasteCategory(data.Category),
		Quantity:             data.Quantity,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		Address:              data.Address,
		ImageKey:             data.ImageKey,
		Schedule:             schedule,
		Status:               entity.AnnouncementStatus(data.Status),
		ReservedBy:           data.ReservedBy,
		ReservationExpiresAt: data.ReservationExpiresAt,
		CollectionToken:      data.CollectionToken,
		TokenExpiresAt:       data.TokenExpiresAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}, nil
}

// fromAnnouncementDomain converts a domain Announcement entity to a GORM AnnouncementModel.
func fromAnnouncementDomain(data *entity.Announcement) (*model.AnnouncementModel, error) {
	if data == nil {
		return nil, nil
	}

	var schedule []byte
	if len(data.Schedule) > 0 {
		encoded, err := json.Marshal(data.Schedule)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode announcement schedule")
		}
		schedule = encoded
	}

	return &model.AnnouncementModel{
		ID:                   data.ID,
		DepositorID:          data.DepositorID,
		Title:                data.Title,
		Description:          data.Description,
		Category:             data.Category.String(),
		Quantity:             data.Quantity,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		Address:              data.Address,
		ImageKey:             data.ImageKey,
		Schedule:             schedule,
		Status:               data.Status.String(),
		ReservedBy:           data.ReservedBy,
		ReservationExpiresAt: data.ReservationExpiresAt,
		CollectionToken:      data.CollectionToken,
		TokenExpiresAt:       data.TokenExpiresAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}, nil
}
