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

type tenantServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	tenantRepo  *mockRepo.MockTenantRepository
	userRepo    *mockRepo.MockUserRepository
	entryRepo   *mockRepo.MockEntryRepository
	revenueRepo *mockRepo.MockRevenueRepository
	hasher      *mockSvc.MockPasswordHasher
	access      *mockUC.MockAccessUsecase
}

func newTenantService(t *testing.T) (usecase.TenantUsecase, tenantServiceMocks) {
	t.Helper()

	mocks := tenantServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		tenantRepo:  mockRepo.NewMockTenantRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		entryRepo:   mockRepo.NewMockEntryRepository(t),
		revenueRepo: mockRepo.NewMockRevenueRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		access:      mockUC.NewMockAccessUsecase(t),
	}
	svc := NewTenantService(TenantServiceParams{
		TxManager:   mocks.txManager,
		TenantRepo:  mocks.tenantRepo,
		UserRepo:    mocks.userRepo,
		EntryRepo:   mocks.entryRepo,
		RevenueRepo: mocks.revenueRepo,
		Hasher:      mocks.hasher,
		Access:      mocks.access,
		Logger:      testLogger(),
	})

	return svc, mocks
}

func TestTenantService_ProvisionTenant_Succeeds(t *testing.T) {
	svc, mocks := newTenantService(t)
	ctx := context.Background()
	super := testSuperAdmin()
	claims := testClaims(super.Identity.ID)

	mocks.access.EXPECT().RequireSuperAdmin(ctx, claims).Return(super, nil)
	mocks.hasher.EXPECT().Hash("first-pass").Return("hashed", nil)

	mocks.factory.EXPECT().NewTenantRepository().Return(mocks.tenantRepo)
	mocks.tenantRepo.EXPECT().
		CreateTenant(ctx, mock.AnythingOfType("*entity.Tenant")).
		Run(func(ctx context.Context, tenant *entity.Tenant) {
			assert.Equal(t, "nightmarket", tenant.Code)
			assert.Equal(t, entity.TenantActive, tenant.Status)
		}).
		Return(nil)

	roleRepo := mockRepo.NewMockRoleRepository(t)
	mocks.factory.EXPECT().NewRoleRepository().Return(roleRepo)
	roleRepo.EXPECT().
		FindRoleByCode(ctx, entity.RoleAdmin).
		Return(&entity.Role{ID: uuid.New(), Code: entity.RoleAdmin}, nil)

	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User"), mock.AnythingOfType("[]uuid.UUID")).
		Run(func(ctx context.Context, user *entity.User, roleIDs []uuid.UUID) {
			assert.Equal(t, "boss", user.Username)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Len(t, roleIDs, 1)
		}).
		Return(nil)

	// Nine built-in units plus four expense types.
	seeded := 0
	dictRepo := mockRepo.NewMockDictionaryRepository(t)
	mocks.factory.EXPECT().NewDictionaryRepository().Return(dictRepo)
	dictRepo.EXPECT().
		UpsertDictionary(ctx, mock.AnythingOfType("*entity.Dictionary")).
		Run(func(ctx context.Context, dict *entity.Dictionary) {
			seeded++
			assert.True(t, dict.IsActive)
		}).
		Return(nil).
		Times(13)

	expectAuditLog(t, mocks.factory)
	wireTx(t, mocks.txManager, mocks.factory)

	out, err := svc.ProvisionTenant(ctx, claims, usecase.ProvisionTenantInput{
		Code:          " nightmarket ",
		Name:          "夜市滷味",
		AdminUsername: " boss ",
		AdminPassword: "first-pass",
		AdminRealName: "老闆",
	})
	require.NoError(t, err)
	assert.Equal(t, 13, seeded)
	assert.Equal(t, "nightmarket", out.Tenant.Code)
	assert.Equal(t, out.Tenant.ID, *out.Admin.TenantID)
	assert.Equal(t, entity.RoleCodes{entity.RoleAdmin}, out.Admin.Roles)
}

func TestTenantService_ProvisionTenant_DuplicateCode(t *testing.T) {
	svc, mocks := newTenantService(t)
	ctx := context.Background()
	super := testSuperAdmin()
	claims := testClaims(super.Identity.ID)

	mocks.access.EXPECT().RequireSuperAdmin(ctx, claims).Return(super, nil)
	mocks.hasher.EXPECT().Hash("first-pass").Return("hashed", nil)

	mocks.factory.EXPECT().NewTenantRepository().Return(mocks.tenantRepo)
	mocks.tenantRepo.EXPECT().
		CreateTenant(ctx, mock.AnythingOfType("*entity.Tenant")).
		Return(repository.ErrDuplicateTenantCode)
	wireTx(t, mocks.txManager, mocks.factory)

	_, err := svc.ProvisionTenant(ctx, claims, usecase.ProvisionTenantInput{
		Code:          "nightmarket",
		Name:          "夜市滷味",
		AdminUsername: "boss",
		AdminPassword: "first-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrTenantCodeTaken)
}

func TestTenantService_ProvisionTenant_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.ProvisionTenantInput
	}{
		{
			name:  "missing code",
			input: usecase.ProvisionTenantInput{Name: "夜市滷味", AdminUsername: "boss", AdminPassword: "pw"},
		},
		{
			name:  "missing name",
			input: usecase.ProvisionTenantInput{Code: "nightmarket", AdminUsername: "boss", AdminPassword: "pw"},
		},
		{
			name:  "missing admin password",
			input: usecase.ProvisionTenantInput{Code: "nightmarket", Name: "夜市滷味", AdminUsername: "boss"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newTenantService(t)
			super := testSuperAdmin()
			claims := testClaims(super.Identity.ID)
			mocks.access.EXPECT().RequireSuperAdmin(ctx, claims).Return(super, nil)

			_, err := svc.ProvisionTenant(ctx, claims, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestTenantService_ProvisionTenant_RequiresSuperAdmin(t *testing.T) {
	svc, mocks := newTenantService(t)
	ctx := context.Background()
	claims := testClaims(uuid.New())

	mocks.access.EXPECT().
		RequireSuperAdmin(ctx, claims).
		Return(nil, domainerrors.ErrSuperAdminOnly)

	_, err := svc.ProvisionTenant(ctx, claims, usecase.ProvisionTenantInput{
		Code:          "nightmarket",
		Name:          "夜市滷味",
		AdminUsername: "boss",
		AdminPassword: "first-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrSuperAdminOnly)
}

func TestTenantService_SetTenantStatus_RejectsUnknownStatus(t *testing.T) {
	svc, mocks := newTenantService(t)
	ctx := context.Background()
	super := testSuperAdmin()
	claims := testClaims(super.Identity.ID)

	mocks.access.EXPECT().RequireSuperAdmin(ctx, claims).Return(super, nil)

	err := svc.SetTenantStatus(ctx, claims, uuid.New(), entity.TenantStatus("archived"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTenantService_SetTenantStatus_Suspends(t *testing.T) {
	svc, mocks := newTenantService(t)
	ctx := context.Background()
	super := testSuperAdmin()
	claims := testClaims(super.Identity.ID)
	tenantID := uuid.New()

	mocks.access.EXPECT().RequireSuperAdmin(ctx, claims).Return(super, nil)
	mocks.tenantRepo.EXPECT().
		UpdateTenantStatus(ctx, tenantID, entity.TenantSuspended).
		Return(nil)

	err := svc.SetTenantStatus(ctx, claims, tenantID, entity.TenantSuspended)
	require.NoError(t, err)
}

func TestTenantService_RenameTenant_UnknownTenant(t *testing.T) {
	svc, mocks := newTenantService(t)
	ctx := context.Background()
	super := testSuperAdmin()
	claims := testClaims(super.Identity.ID)
	tenantID := uuid.New()

	mocks.access.EXPECT().RequireSuperAdmin(ctx, claims).Return(super, nil)
	mocks.tenantRepo.EXPECT().
		UpdateTenant(ctx, mock.AnythingOfType("*entity.Tenant")).
		Return(repository.ErrTenantNotFound)

	err := svc.RenameTenant(ctx, claims, tenantID, "新店名")
	assert.ErrorIs(t, err, domainerrors.ErrTenantNotFound)
}

func TestTenantService_Stats_CountsAcrossAllTenants(t *testing.T) {
	svc, mocks := newTenantService(t)
	ctx := context.Background()
	super := testSuperAdmin()
	claims := testClaims(super.Identity.ID)
	all := entity.ScopeAll()

	mocks.access.EXPECT().RequireSuperAdmin(ctx, claims).Return(super, nil)
	mocks.tenantRepo.EXPECT().CountTenants(ctx).Return(int64(4), nil)
	mocks.userRepo.EXPECT().CountUsers(ctx, all).Return(int64(12), nil)
	mocks.entryRepo.EXPECT().CountEntries(ctx, all).Return(int64(350), nil)
	mocks.revenueRepo.EXPECT().CountRevenues(ctx, all).Return(int64(90), nil)

	stats, err := svc.Stats(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TenantCount)
	assert.Equal(t, int64(12), stats.UserCount)
	assert.Equal(t, int64(350), stats.EntryCount)
	assert.Equal(t, int64(90), stats.RevenueCount)
}
