package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "greenloop/internal/delivery/context"
	"greenloop/internal/domain/entity"
	domainerrors "greenloop/internal/domain/errors"
	"greenloop/internal/domain/repository"
	"greenloop/internal/domain/service"
	"greenloop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	deviceRepo   repository.DeviceRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	DeviceRepo   repository.DeviceRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		deviceRepo:   params.DeviceRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates a new account with a hashed password and an empty eco profile.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("User registered",
		slog.Any("user_id", user.ID),
	)

	return user, nil
}

// Login verifies credentials and issues a JWT access/refresh pair. A missing
// account and a wrong password return the same error on purpose.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Profile retrieves the user with eco stats and the derived seed level.
func (srv *userService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// RegisterDevice registers or refreshes a push-notification device. The same
// device ID resubmitted with a new FCM token is an update, not a duplicate.
func (srv *userService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) error {
	devices, err := srv.deviceRepo.FindByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list user devices")
	}

	for _, device := range devices {
		if device.DeviceID == info.DeviceID {
			if err := srv.deviceRepo.UpdateFCMToken(ctx, device.ID, info.FCMToken); err != nil {
				return errors.Wrap(err, "failed to refresh device token")
			}

			return nil
		}
	}

	now := time.Now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  info.FCMToken,
		DeviceID:  info.DeviceID,
		Platform:  info.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.deviceRepo.Create(ctx, device); err != nil {
		return errors.Wrap(err, "failed to register device")
	}

	return nil
}
