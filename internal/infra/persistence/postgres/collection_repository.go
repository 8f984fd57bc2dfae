package postgres

import (
	"context"
	"time"

	"greenloop/internal/domain/entity"
	domainerrors "greenloop/internal/domain/errors"
	"greenloop/internal/domain/repository"
	"greenloop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// collectionRepository implements the repository.CollectionRepository interface.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{
		db: db,
	}
}

// Create persists a new pending collection record.
func (repo *collectionRepository) Create(ctx context.Context, collection *entity.Collection) error {
	collectionM := fromCollectionDomain(collection)

	if err := repo.db.WithContext(ctx).Create(collectionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid collection reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create collection record")
	}

	collection.ID = collectionM.ID
	collection.CreatedAt = collectionM.CreatedAt
	collection.UpdatedAt = collectionM.UpdatedAt

	return nil
}

// FindPendingByAnnouncement retrieves the pending record for an announcement's
// current reservation cycle.
func (repo *collectionRepository) FindPendingByAnnouncement(ctx context.Context, announcementID uuid.UUID) (*entity.Collection, error) {
	var collectionM model.CollectionModel

	if err := repo.db.WithContext(ctx).
		Where("announcement_id = ? AND status = ?", announcementID, entity.CollectionPending.String()).
		Order("created_at DESC").
		First(&collectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending collection")
	}

	return toCollectionDomain(&collectionM), nil
}

// Complete marks the record completed, stamping the collected weight and time.
func (repo *collectionRepository) Complete(ctx context.Context, id uuid.UUID, kgCollected *float64, collectedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CollectionModel{}).
		Where("id = ? AND status = ?", id, entity.CollectionPending.String()).
		Updates(map[string]any{
			"status":       entity.CollectionCompleted.String(),
			"kg_collected": kgCollected,
			"collected_at": collectedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to complete collection record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCollectionNotFound
	}

	return nil
}

// Cancel marks the record cancelled.
func (repo *collectionRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CollectionModel{}).
		Where("id = ? AND status = ?", id, entity.CollectionPending.String()).
		Update("status", entity.CollectionCancelled.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to cancel collection record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCollectionNotFound
	}

	return nil
}

// FindByUser retrieves records where the user is depositor or collector, newest first.
func (repo *collectionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error) {
	var collectionModels []*model.CollectionModel

	if err := repo.db.WithContext(ctx).
		Where("depositor_id = ? OR collector_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&collectionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find collections by user")
	}

	collections := make([]*entity.Collection, 0, len(collectionModels))
	for _, collectionM := range collectionModels {
		collections = append(collections, toCollectionDomain(collectionM))
	}

	return collections, nil
}

// --- Mapper Functions ---

// toCollectionDomain converts a GORM CollectionModel to a domain Collection entity.
func toCollectionDomain(data *model.CollectionModel) *entity.Collection {
	if data == nil {
		return nil
	}

	return &entity.Collection{
		ID:             data.ID,
		AnnouncementID: data.AnnouncementID,
		DepositorID:    data.DepositorID,
		CollectorID:    data.CollectorID,
		Status:         entity.CollectionStatus(data.Status),
		KgCollected:    data.KgCollected,
		CollectedAt:    data.CollectedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromCollectionDomain converts a domain Collection entity to a GORM CollectionModel.
func fromCollectionDomain(data *entity.Collection) *model.CollectionModel {
	if data == nil {
		return nil
	}

	return &model.CollectionModel{
		ID:             data.ID,
		AnnouncementID: data.AnnouncementID,
		DepositorID:    data.DepositorID,
		CollectorID:    data.CollectorID,
		Status:         data.Status.String(),
		KgCollected:    data.KgCollected,
		CollectedAt:    data.CollectedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
