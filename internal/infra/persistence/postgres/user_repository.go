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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user together with an empty eco profile.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.EcoProfile = &model.EcoProfileModel{
		UserID: userM.ID,
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.EcoProfile = toEcoProfileDomain(userM.EcoProfile)
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a user (with eco profile) by ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("EcoProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by email, for login.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("EcoProfile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// ListIDs returns the IDs of every registered user.
func (repo *userRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user IDs")
	}

	return ids, nil
}

// IncrementPoints adds delta points to the user's eco profile.
func (repo *userRepository) IncrementPoints(ctx context.Context, userID uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EcoProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"points":     gorm.Expr("points + ?", delta),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment points")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddImpact applies environmental-impact accumulator deltas.
func (repo *userRepository) AddImpact(ctx context.Context, userID uuid.UUID, co2 float64, trees int, kg float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EcoProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"co2_saved":   gorm.Expr("co2_saved + ?", co2),
			"trees_saved": gorm.Expr("trees_saved + ?", trees),
			"kg_recycled": gorm.Expr("kg_recycled + ?", kg),
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to apply impact deltas")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		EcoProfile:   toEcoProfileDomain(data.EcoProfile),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toEcoProfileDomain converts a GORM EcoProfileModel to a domain EcoProfile.
func toEcoProfileDomain(data *model.EcoProfileModel) *entity.EcoProfile {
	if data == nil {
		return nil
	}

	return &entity.EcoProfile{
		UserID:     data.UserID,
		Points:     data.Points,
		CO2Saved:   data.CO2Saved,
		TreesSaved: data.TreesSaved,
		KgRecycled: data.KgRecycled,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
