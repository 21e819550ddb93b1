package impl

import (
	"context"
	"testing"

	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/entity"
	"stallbook/internal/domain/repository"
	mockRepo "stallbook/internal/mocks/repository"
	"stallbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccessService(userRepo repository.UserRepository) usecase.AccessUsecase {
	return NewAccessService(AccessServiceParams{UserRepo: userRepo, Logger: testLogger()})
}

func activeTenantUser(roles ...entity.RoleCode) *entity.User {
	tenantID := uuid.New()

	return &entity.User{
		ID:       uuid.New(),
		Username: "worker",
		IsActive: true,
		TenantID: &tenantID,
		Roles:    entity.RoleCodes(roles),
		Tenant:   &entity.Tenant{ID: tenantID, Code: "stall", Status: entity.TenantActive},
	}
}

func TestAccessService_EnsureRole_Allows(t *testing.T) {
	user := activeTenantUser(entity.RoleWrite)
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(context.Background(), user.ID).Return(user, nil)

	service := newAccessService(userRepo)

	authorized, err := service.EnsureRole(context.Background(), testClaims(user.ID), entity.RoleWrite)
	require.NoError(t, err)
	assert.Equal(t, user.ID, authorized.Identity.ID)

	tenantID, bound := authorized.Scope.Tenant()
	require.True(t, bound)
	assert.Equal(t, *user.TenantID, tenantID)
}

func TestAccessService_EnsureRole_HigherRankSatisfiesLowerCheck(t *testing.T) {
	user := activeTenantUser(entity.RoleAdmin)
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(context.Background(), user.ID).Return(user, nil)

	service := newAccessService(userRepo)

	_, err := service.EnsureRole(context.Background(), testClaims(user.ID), entity.RoleRead)
	require.NoError(t, err)
}

func TestAccessService_EnsureRole_InsufficientRole(t *testing.T) {
	user := activeTenantUser(entity.RoleRead)
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(context.Background(), user.ID).Return(user, nil)

	service := newAccessService(userRepo)

	_, err := service.EnsureRole(context.Background(), testClaims(user.ID), entity.RoleWrite)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestAccessService_EnsureRole_DisabledAccount(t *testing.T) {
	user := activeTenantUser(entity.RoleAdmin)
	user.IsActive = false
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(context.Background(), user.ID).Return(user, nil)

	service := newAccessService(userRepo)

	_, err := service.EnsureRole(context.Background(), testClaims(user.ID), entity.RoleRead)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAccessService_EnsureRole_SuspendedTenant(t *testing.T) {
	user := activeTenantUser(entity.RoleAdmin)
	user.Tenant.Status = entity.TenantSuspended
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(context.Background(), user.ID).Return(user, nil)

	service := newAccessService(userRepo)

	_, err := service.EnsureRole(context.Background(), testClaims(user.ID), entity.RoleRead)
	assert.ErrorIs(t, err, domainerrors.ErrTenantSuspended)
}

func TestAccessService_EnsureRole_SuperAdminBypassesRoleCheck(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "root",
		IsActive:     true,
		IsSuperAdmin: true,
	}
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(context.Background(), user.ID).Return(user, nil)

	service := newAccessService(userRepo)

	authorized, err := service.EnsureRole(context.Background(), testClaims(user.ID), entity.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, authorized.Scope.Bound())
}

func TestAccessService_EnsureRole_DeletedUser(t *testing.T) {
	userID := uuid.New()
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(context.Background(), userID).Return(nil, repository.ErrUserNotFound)

	service := newAccessService(userRepo)

	_, err := service.EnsureRole(context.Background(), testClaims(userID), entity.RoleRead)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAccessService_EnsureRole_MissingClaims(t *testing.T) {
	service := newAccessService(mockRepo.NewMockUserRepository(t))

	_, err := service.EnsureRole(context.Background(), nil, entity.RoleRead)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAccessService_EnsureRole_RepositoryError(t *testing.T) {
	userID := uuid.New()
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(context.Background(), userID).Return(nil, errors.New("connection reset"))

	service := newAccessService(userRepo)

	_, err := service.EnsureRole(context.Background(), testClaims(userID), entity.RoleRead)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAccessService_RequireSuperAdmin_RejectsTenantAdmin(t *testing.T) {
	user := activeTenantUser(entity.RoleAdmin)
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(context.Background(), user.ID).Return(user, nil)

	service := newAccessService(userRepo)

	_, err := service.RequireSuperAdmin(context.Background(), testClaims(user.ID))
	assert.ErrorIs(t, err, domainerrors.ErrSuperAdminOnly)
}

func TestAccessService_RequireSuperAdmin_Allows(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "root",
		IsActive:     true,
		IsSuperAdmin: true,
	}
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindUserByID(context.Background(), user.ID).Return(user, nil)

	service := newAccessService(userRepo)

	authorized, err := service.RequireSuperAdmin(context.Background(), testClaims(user.ID))
	require.NoError(t, err)
	assert.True(t, authorized.Identity.IsSuperAdmin)
}
