package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"greenloop/internal/domain/entity"
	domainerrors "greenloop/internal/domain/errors"
	"greenloop/internal/domain/repository"
	mockRepo "greenloop/internal/mocks/repository"
	mockSvc "greenloop/internal/mocks/service"
	"greenloop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo     *mockRepo.MockUserRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	m := &userServiceMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		deviceRepo:   mockRepo.NewMockDeviceRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	srv := NewUserService(UserServiceParams{
		UserRepo:     m.userRepo,
		DeviceRepo:   m.deviceRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return srv, m
}

func TestUserService_Register(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()

	m.hasher.EXPECT().
		Hash("motdepasse123").
		Return("$2a$10$hashed", nil)

	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := srv.Register(ctx, &usecase.RegisterInput{
		Name:     "Camille",
		Email:    "camille@example.com",
		Password: "motdepasse123",
	})
	require.NoError(t, err)
	assert.Equal(t, "camille@example.com", user.Email)
	assert.Equal(t, "$2a$10$hashed", user.PasswordHash)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()

	m.hasher.EXPECT().
		Hash("motdepasse123").
		Return("$2a$10$hashed", nil)

	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := srv.Register(ctx, &usecase.RegisterInput{
		Name:     "Camille",
		Email:    "camille@example.com",
		Password: "motdepasse123",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestUserService_Login(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "camille@example.com",
		PasswordHash: "$2a$10$hashed",
	}

	m.userRepo.EXPECT().
		FindByEmail(ctx, "camille@example.com").
		Return(user, nil)

	m.hasher.EXPECT().
		Check("motdepasse123", "$2a$10$hashed").
		Return(true)

	m.tokenService.EXPECT().
		GenerateTokens(userID).
		Return("access-token", "refresh-token", nil)

	out, err := srv.Login(ctx, &usecase.LoginInput{
		Email:    "camille@example.com",
		Password: "motdepasse123",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "camille@example.com").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "$2a$10$hashed"}, nil)

	m.hasher.EXPECT().
		Check("mauvais", "$2a$10$hashed").
		Return(false)

	_, err := srv.Login(ctx, &usecase.LoginInput{
		Email:    "camille@example.com",
		Password: "mauvais",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "inconnu@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := srv.Login(ctx, &usecase.LoginInput{
		Email:    "inconnu@example.com",
		Password: "motdepasse123",
	})
	require.Error(t, err)

	// Same error as a wrong password, so callers cannot probe for accounts.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestUserService_Profile(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID: userID,
		EcoProfile: &entity.EcoProfile{
			UserID: userID,
			Points: 250,
		},
	}

	m.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	got, err := srv.Profile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.EcoProfile.Level())
}

func TestUserService_Profile_NotFound(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := srv.Profile(ctx, userID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
}

func TestUserService_RegisterDevice_New(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.deviceRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	var created *entity.UserDevice
	m.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(_ context.Context, device *entity.UserDevice) {
			created = device
		}).
		Return(nil)

	err := srv.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, userID, created.UserID)
	assert.True(t, created.IsActive)
}

func TestUserService_RegisterDevice_RefreshesExistingToken(t *testing.T) {
	srv, m := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	m.deviceRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: deviceID, UserID: userID, DeviceID: "device-123", FCMToken: "old-token"},
		}, nil)

	m.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-token").
		Return(nil)

	err := srv.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "new-token",
		DeviceID: "device-123",
		Platform: "android",
	})
	require.NoError(t, err)
}
