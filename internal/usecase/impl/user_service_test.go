package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"automo/internal/domain/entity"
	domainerrors "automo/internal/domain/errors"
	"automo/internal/domain/repository"
	mockRepo "automo/internal/mocks/repository"
	"automo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Dana Smith",
		Email:    "dana@example.com",
		Password: "Str0ngPassword",
		Phone:    "555-0100",
	}
	userID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).Return(nil, repository.ErrAuthNotFound)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).Return(nil)
		mockAuthRepo.EXPECT().CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).Run(func(_ context.Context, auth *entity.Authentication) {
			assert.Equal(t, userID, auth.UserID)
			assert.Equal(t, "hashed-password", auth.PasswordHash)
		}).Return(nil)
	})

	out, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, input.Email, out.User.Email)
	assert.True(t, out.User.Roles.Contains(entity.RoleUser))
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Dana Smith",
		Email:    "dana@example.com",
		Password: "Str0ngPassword",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
			Return(&entity.Authentication{}, nil)
	})

	out, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "dana@example.com", Password: "weak"}

	fx.hasher.EXPECT().Hash(input.Password).Return("", domainerrors.ErrPasswordStrength)

	out, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "dana@example.com", Roles: entity.Roles{entity.RoleUser}}
	auth := &entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}

	fx.hasher.EXPECT().Check("Str0ngPassword", "stored-hash").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email).Return(auth, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockRefreshRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return(nil, nil)
		mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Run(func(_ context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, hashToken("refresh-token"), token.TokenHash)
		}).Return(nil)
	})

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Str0ngPassword"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, userID, out.User.ID)
}

func TestUserService_Login_PrunesOldestSessions(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "dana@example.com", Roles: entity.Roles{entity.RoleUser}}
	auth := &entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}

	// Cap is 3 in testConfig; three existing sessions means the oldest goes.
	oldest := &entity.RefreshToken{ID: uuid.New(), UserID: userID}
	sessions := []*entity.RefreshToken{
		oldest,
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	fx.hasher.EXPECT().Check("Str0ngPassword", "stored-hash").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email).Return(auth, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockRefreshRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return(sessions, nil)
		mockRefreshRepo.EXPECT().DeleteRefreshToken(ctx, oldest.ID).Return(nil)
		mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
	})

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Str0ngPassword"})

	require.NoError(t, err)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	auth := &entity.Authentication{UserID: uuid.New(), PasswordHash: "stored-hash"}

	fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)
		factory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
		factory.EXPECT().RefreshTokenRepo().Return(mockRepo.NewMockRefreshTokenRepository(t))

		mockAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "dana@example.com").Return(auth, nil)
	})

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "dana@example.com", Password: "wrong"})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)
		factory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
		factory.EXPECT().RefreshTokenRepo().Return(mockRepo.NewMockRefreshTokenRepository(t))

		mockAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com").
			Return(nil, repository.ErrAuthNotFound)
	})

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RefreshToken_RotatesSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Roles: entity.Roles{entity.RoleUser}}
	storedID := uuid.New()
	stored := &entity.RefreshToken{
		ID:        storedID,
		UserID:    userID,
		TokenHash: hashToken("old-refresh"),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().ValidateRefreshToken("old-refresh").Return(refreshClaims(userID), nil)
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, hashToken("old-refresh")).Return(stored, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Run(func(_ context.Context, token *entity.RefreshToken) {
			assert.Equal(t, hashToken("new-refresh"), token.TokenHash)
		}).Return(nil)
		mockRefreshRepo.EXPECT().DeleteRefreshToken(ctx, storedID).Return(nil)
	})

	out, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
}

func TestUserService_RefreshToken_Expired(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken("old-refresh"),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.tokenService.EXPECT().ValidateRefreshToken("old-refresh").Return(refreshClaims(userID), nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, hashToken("old-refresh")).Return(stored, nil)
	})

	out, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_Idempotent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("gone-token").Return(refreshClaims(userID), nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, hashToken("gone-token")).
			Return(nil, repository.ErrRefreshTokenNotFound)
	})

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "gone-token"})

	assert.NoError(t, err)
}

func TestUserService_UpdateProfile_PartialUpdate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, Name: "Old Name", Phone: "555-0100"}
	newName := "New Name"

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
		mockUserRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	updated, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "555-0100", updated.Phone, "unset fields stay untouched")
}

func TestUserService_UploadAvatar_TooLarge(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.UploadAvatarInput{
		ContentType: "image/png",
		Size:        6 << 20,
		Body:        strings.NewReader("oversized"),
	}

	url, err := fx.service.UploadAvatar(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Empty(t, url)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))
}

func TestUserService_UploadAvatar_UnsupportedType(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.UploadAvatarInput{
		ContentType: "application/pdf",
		Size:        1024,
		Body:        strings.NewReader("not an image"),
	}

	url, err := fx.service.UploadAvatar(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Empty(t, url)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedFileType))
}

func TestUserService_UploadAvatar_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID}
	body := strings.NewReader("png bytes")
	input := &usecase.UploadAvatarInput{ContentType: "image/png", Size: 9, Body: body}

	fx.storage.EXPECT().Upload(ctx, "avatars/"+userID.String()+".png", "image/png", body, int64(9)).
		Return("https://cdn.example.com/avatars/"+userID.String()+".png", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
		mockUserRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	url, err := fx.service.UploadAvatar(ctx, userID, input)

	require.NoError(t, err)
	assert.Contains(t, url, "avatars/")
	assert.Equal(t, url, existing.AvatarURL)
}
