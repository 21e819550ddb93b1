package impl

import (
	"context"
	"testing"

	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/repository"
	"stallbook/internal/domain/service"
	mockRepo "stallbook/internal/mocks/repository"
	mockSvc "stallbook/internal/mocks/service"
	"stallbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func newAuthService(t *testing.T) (usecase.AuthUsecase, authServiceMocks) {
	t.Helper()

	mocks := authServiceMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     mocks.userRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenService,
		Logger:       testLogger(),
	})

	return svc, mocks
}

func TestAuthService_Login_Succeeds(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	user := activeTenantUser(entity.RoleWrite)
	user.PasswordHash = "stored-hash"

	mocks.userRepo.EXPECT().FindUserByUsername(ctx, "worker").Return(user, nil)
	mocks.hasher.EXPECT().Check("secret", "stored-hash").Return(true)
	mocks.tokenService.EXPECT().
		GenerateTokens(user.ID, user.TenantID, user.Roles.ToStrings(), false).
		Return("access-token", "refresh-token", nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Username: "worker", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().FindUserByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	user := activeTenantUser(entity.RoleWrite)
	user.PasswordHash = "stored-hash"

	mocks.userRepo.EXPECT().FindUserByUsername(ctx, "worker").Return(user, nil)
	mocks.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	_, err := svc.Login(ctx, usecase.LoginInput{Username: "worker", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	user := activeTenantUser(entity.RoleWrite)
	user.IsActive = false
	user.PasswordHash = "stored-hash"

	mocks.userRepo.EXPECT().FindUserByUsername(ctx, "worker").Return(user, nil)
	mocks.hasher.EXPECT().Check("secret", "stored-hash").Return(true)

	_, err := svc.Login(ctx, usecase.LoginInput{Username: "worker", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthService_Login_SuspendedTenant(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	user := activeTenantUser(entity.RoleAdmin)
	user.Tenant.Status = entity.TenantSuspended
	user.PasswordHash = "stored-hash"

	mocks.userRepo.EXPECT().FindUserByUsername(ctx, "worker").Return(user, nil)
	mocks.hasher.EXPECT().Check("secret", "stored-hash").Return(true)

	_, err := svc.Login(ctx, usecase.LoginInput{Username: "worker", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrTenantSuspended)
}

func TestAuthService_Login_SuperAdminWithoutTenant(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "root",
		PasswordHash: "stored-hash",
		IsActive:     true,
		IsSuperAdmin: true,
	}

	mocks.userRepo.EXPECT().FindUserByUsername(ctx, "root").Return(user, nil)
	mocks.hasher.EXPECT().Check("secret", "stored-hash").Return(true)
	mocks.tokenService.EXPECT().
		GenerateTokens(user.ID, (*uuid.UUID)(nil), []string{}, true).
		Return("access-token", "refresh-token", nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Username: "root", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, out.User.IsSuperAdmin)
}

func TestAuthService_Refresh_Succeeds(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	user := activeTenantUser(entity.RoleRead)
	mocks.tokenService.EXPECT().ValidateToken("refresh-token").
		Return(&service.Claims{UserID: user.ID, Type: "refresh"}, nil)
	mocks.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	mocks.tokenService.EXPECT().
		GenerateTokens(user.ID, user.TenantID, user.Roles.ToStrings(), false).
		Return("new-access", "new-refresh", nil)

	out, err := svc.Refresh(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, mocks := newAuthService(t)

	mocks.tokenService.EXPECT().ValidateToken("access-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "access"}, nil)

	_, err := svc.Refresh(context.Background(), "access-token")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_CurrentUser_ReturnsLiveRecord(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	user := activeTenantUser(entity.RoleRead)
	mocks.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)

	got, err := svc.CurrentUser(ctx, testClaims(user.ID))
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthService_CurrentUser_MissingClaims(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.CurrentUser(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}
