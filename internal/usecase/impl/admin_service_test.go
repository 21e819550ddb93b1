package impl

import (
	"context"
	"testing"

	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/repository"
	mockRepo "stallbook/internal/mocks/repository"
	mockSvc "stallbook/internal/mocks/service"
	mockUC "stallbook/internal/mocks/usecase"
	"stallbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	roleRepo  *mockRepo.MockRoleRepository
	orgRepo   *mockRepo.MockOrgRepository
	logRepo   *mockRepo.MockOperationLogRepository
	hasher    *mockSvc.MockPasswordHasher
	access    *mockUC.MockAccessUsecase
}

func newAdminService(t *testing.T) (usecase.AdminUsecase, adminServiceMocks) {
	t.Helper()

	mocks := adminServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		roleRepo:  mockRepo.NewMockRoleRepository(t),
		orgRepo:   mockRepo.NewMockOrgRepository(t),
		logRepo:   mockRepo.NewMockOperationLogRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		access:    mockUC.NewMockAccessUsecase(t),
	}
	svc := NewAdminService(AdminServiceParams{
		TxManager: mocks.txManager,
		UserRepo:  mocks.userRepo,
		RoleRepo:  mocks.roleRepo,
		OrgRepo:   mocks.orgRepo,
		LogRepo:   mocks.logRepo,
		Hasher:    mocks.hasher,
		Access:    mocks.access,
		Logger:    testLogger(),
	})

	return svc, mocks
}

func expectRoleLookups(t *testing.T, mocks adminServiceMocks, codes ...entity.RoleCode) {
	t.Helper()

	mocks.factory.EXPECT().NewRoleRepository().Return(mocks.roleRepo)
	for _, code := range codes {
		mocks.roleRepo.EXPECT().
			FindRoleByCode(mock.Anything, code).
			Return(&entity.Role{ID: uuid.New(), Code: code}, nil)
	}
}

func TestAdminService_CreateUser_Succeeds(t *testing.T) {
	svc, mocks := newAdminService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)
	mocks.hasher.EXPECT().Hash("secret-pass").Return("hashed", nil)

	expectRoleLookups(t, mocks, entity.RoleRead, entity.RoleWrite)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User"), mock.AnythingOfType("[]uuid.UUID")).
		Run(func(ctx context.Context, user *entity.User, roleIDs []uuid.UUID) {
			assert.Equal(t, "newhand", user.Username)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Equal(t, tenantID, *user.TenantID)
			assert.True(t, user.IsActive)
			assert.Len(t, roleIDs, 2)
		}).
		Return(nil)
	expectAuditLog(t, mocks.factory)
	wireTx(t, mocks.txManager, mocks.factory)

	user, err := svc.CreateUser(ctx, claims, usecase.CreateUserInput{
		Username: "  newhand  ",
		Password: "secret-pass",
		RealName: "新進人員",
		Roles:    []entity.RoleCode{entity.RoleRead, entity.RoleWrite},
	})
	require.NoError(t, err)
	assert.Equal(t, "newhand", user.Username)
	assert.Equal(t, "新進人員", user.RealName)
}

func TestAdminService_CreateUser_DuplicateUsername(t *testing.T) {
	svc, mocks := newAdminService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)
	mocks.hasher.EXPECT().Hash("secret-pass").Return("hashed", nil)

	expectRoleLookups(t, mocks, entity.RoleRead)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User"), mock.AnythingOfType("[]uuid.UUID")).
		Return(repository.ErrDuplicateUsername)
	wireTx(t, mocks.txManager, mocks.factory)

	_, err := svc.CreateUser(ctx, claims, usecase.CreateUserInput{
		Username: "taken",
		Password: "secret-pass",
		Roles:    []entity.RoleCode{entity.RoleRead},
	})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAdminService_CreateUser_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.CreateUserInput
	}{
		{
			name:  "missing password",
			input: usecase.CreateUserInput{Username: "newhand", Roles: []entity.RoleCode{entity.RoleRead}},
		},
		{
			name:  "no roles",
			input: usecase.CreateUserInput{Username: "newhand", Password: "secret-pass"},
		},
		{
			name: "unknown role code",
			input: usecase.CreateUserInput{
				Username: "newhand",
				Password: "secret-pass",
				Roles:    []entity.RoleCode{"owner"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newAdminService(t)
			authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
			claims := testClaims(authorized.Identity.ID)
			mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)

			_, err := svc.CreateUser(ctx, claims, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAdminService_CreateUser_RequiresAdminRole(t *testing.T) {
	svc, mocks := newAdminService(t)
	ctx := context.Background()
	claims := testClaims(uuid.New())

	mocks.access.EXPECT().
		EnsureRole(ctx, claims, entity.RoleAdmin).
		Return(nil, domainerrors.ErrPermissionDenied)

	_, err := svc.CreateUser(ctx, claims, usecase.CreateUserInput{
		Username: "newhand",
		Password: "secret-pass",
		Roles:    []entity.RoleCode{entity.RoleRead},
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestAdminService_ReplaceUserRoles_Succeeds(t *testing.T) {
	svc, mocks := newAdminService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)
	userID := uuid.New()

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)

	expectRoleLookups(t, mocks, entity.RoleAdmin)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.userRepo.EXPECT().
		ReplaceUserRoles(ctx, authorized.Scope, userID, mock.AnythingOfType("[]uuid.UUID")).
		Return(nil)
	expectAuditLog(t, mocks.factory)
	wireTx(t, mocks.txManager, mocks.factory)

	err := svc.ReplaceUserRoles(ctx, claims, userID, []entity.RoleCode{entity.RoleAdmin})
	require.NoError(t, err)
}

func TestAdminService_SetUserActive_BlocksSelfDeactivation(t *testing.T) {
	svc, mocks := newAdminService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)

	err := svc.SetUserActive(ctx, claims, authorized.Identity.ID, false)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_SetUserActive_AllowsSelfReactivation(t *testing.T) {
	svc, mocks := newAdminService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)
	mocks.userRepo.EXPECT().
		SetUserActive(ctx, authorized.Scope, authorized.Identity.ID, true).
		Return(nil)

	err := svc.SetUserActive(ctx, claims, authorized.Identity.ID, true)
	require.NoError(t, err)
}

func TestAdminService_ResetPassword_Succeeds(t *testing.T) {
	svc, mocks := newAdminService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)
	userID := uuid.New()

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)
	mocks.hasher.EXPECT().Hash("fresh-pass").Return("fresh-hash", nil)
	mocks.userRepo.EXPECT().
		UpdateUserPassword(ctx, authorized.Scope, userID, "fresh-hash").
		Return(nil)

	err := svc.ResetPassword(ctx, claims, userID, "fresh-pass")
	require.NoError(t, err)
}

func TestAdminService_ResetPassword_OutOfScopeReadsAsNotFound(t *testing.T) {
	svc, mocks := newAdminService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)
	userID := uuid.New()

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)
	mocks.hasher.EXPECT().Hash("fresh-pass").Return("fresh-hash", nil)
	mocks.userRepo.EXPECT().
		UpdateUserPassword(ctx, authorized.Scope, userID, "fresh-hash").
		Return(repository.ErrUserNotFound)

	err := svc.ResetPassword(ctx, claims, userID, "fresh-pass")
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestAdminService_CreateDepartment_RequiresName(t *testing.T) {
	svc, mocks := newAdminService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)

	_, err := svc.CreateDepartment(ctx, claims, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_DeleteRegion_ProtectsRegionsWithLocations(t *testing.T) {
	svc, mocks := newAdminService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)
	regionID := uuid.New()

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)
	mocks.orgRepo.EXPECT().
		CountRegionLocations(ctx, authorized.Scope, regionID).
		Return(int64(2), nil)

	err := svc.DeleteRegion(ctx, claims, regionID)
	assert.ErrorIs(t, err, domainerrors.ErrRegionInUse)
}

func TestAdminService_DeleteRegion_DeletesEmptyRegion(t *testing.T) {
	svc, mocks := newAdminService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)
	regionID := uuid.New()

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)
	mocks.orgRepo.EXPECT().
		CountRegionLocations(ctx, authorized.Scope, regionID).
		Return(int64(0), nil)
	mocks.orgRepo.EXPECT().DeleteRegion(ctx, authorized.Scope, regionID).Return(nil)

	err := svc.DeleteRegion(ctx, claims, regionID)
	require.NoError(t, err)
}

func TestAdminService_DeleteRegion_OutOfScopeReadsAsNotFound(t *testing.T) {
	svc, mocks := newAdminService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)
	regionID := uuid.New()

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)
	mocks.orgRepo.EXPECT().
		CountRegionLocations(ctx, authorized.Scope, regionID).
		Return(int64(0), nil)
	mocks.orgRepo.EXPECT().
		DeleteRegion(ctx, authorized.Scope, regionID).
		Return(repository.ErrRegionNotFound)

	err := svc.DeleteRegion(ctx, claims, regionID)
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestAdminService_ListOperationLogs_CapsAtLimit(t *testing.T) {
	svc, mocks := newAdminService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)
	mocks.logRepo.EXPECT().
		ListRecentLogs(ctx, authorized.Scope, 100).
		Return([]*entity.OperationLog{{ID: uuid.New(), Action: "user.create"}}, nil)

	logs, err := svc.ListOperationLogs(ctx, claims)
	require.NoError(t, err)
	require.Len(t, logs, 1)
}
