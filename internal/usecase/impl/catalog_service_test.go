package impl

import (
	"context"
	"testing"

	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	mockRepo "stallbook/internal/mocks/repository"
	mockUC "stallbook/internal/mocks/usecase"
	"stallbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceMocks struct {
	catalogRepo  *mockRepo.MockCatalogRepository
	dictRepo     *mockRepo.MockDictionaryRepository
	locationRepo *mockRepo.MockLocationRepository
	logRepo      *mockRepo.MockOperationLogRepository
	access       *mockUC.MockAccessUsecase
}

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, catalogServiceMocks) {
	t.Helper()

	mocks := catalogServiceMocks{
		catalogRepo:  mockRepo.NewMockCatalogRepository(t),
		dictRepo:     mockRepo.NewMockDictionaryRepository(t),
		locationRepo: mockRepo.NewMockLocationRepository(t),
		logRepo:      mockRepo.NewMockOperationLogRepository(t),
		access:       mockUC.NewMockAccessUsecase(t),
	}
	svc := NewCatalogService(CatalogServiceParams{
		CatalogRepo:  mocks.catalogRepo,
		DictRepo:     mocks.dictRepo,
		LocationRepo: mocks.locationRepo,
		LogRepo:      mocks.logRepo,
		Access:       mocks.access,
		Logger:       testLogger(),
	})

	return svc, mocks
}

func TestCatalogService_SaveCategory_Succeeds(t *testing.T) {
	svc, mocks := newCatalogService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)
	mocks.catalogRepo.EXPECT().UpsertCategory(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)
	mocks.logRepo.EXPECT().AppendLog(ctx, mock.AnythingOfType("*entity.OperationLog")).Return(nil)

	category, err := svc.SaveCategory(ctx, claims, usecase.CategoryInput{Name: "  葉菜類  ", SortOrder: 2})
	require.NoError(t, err)
	assert.Equal(t, "葉菜類", category.Name)
	assert.Equal(t, tenantID, category.TenantID)
	assert.Equal(t, 2, category.SortOrder)
}

func TestCatalogService_SaveCategory_RequiresName(t *testing.T) {
	svc, mocks := newCatalogService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)

	_, err := svc.SaveCategory(ctx, claims, usecase.CategoryInput{Name: "   "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_DeleteCategory_ProtectsCategoriesInUse(t *testing.T) {
	svc, mocks := newCatalogService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)
	categoryID := uuid.New()

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)
	mocks.catalogRepo.EXPECT().
		CountItemsInCategory(ctx, authorized.Scope, categoryID).
		Return(int64(3), nil)

	err := svc.DeleteCategory(ctx, claims, categoryID)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryInUse)
}

func TestCatalogService_DeleteCategory_DeletesEmptyCategory(t *testing.T) {
	svc, mocks := newCatalogService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)
	categoryID := uuid.New()

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)
	mocks.catalogRepo.EXPECT().
		CountItemsInCategory(ctx, authorized.Scope, categoryID).
		Return(int64(0), nil)
	mocks.catalogRepo.EXPECT().DeleteCategory(ctx, authorized.Scope, categoryID).Return(nil)
	mocks.logRepo.EXPECT().AppendLog(ctx, mock.AnythingOfType("*entity.OperationLog")).Return(nil)

	err := svc.DeleteCategory(ctx, claims, categoryID)
	require.NoError(t, err)
}

func TestCatalogService_Units_TenantEntriesLayerOverDefaults(t *testing.T) {
	svc, mocks := newCatalogService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleRead)
	claims := testClaims(authorized.Identity.ID)

	// The tenant redefines catty and deactivates bundle.
	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleRead).Return(authorized, nil)
	mocks.dictRepo.EXPECT().
		ListDictionaries(ctx, authorized.Scope, entity.DictionaryUnit).
		Return([]*entity.Dictionary{
			{
				Code:     "catty",
				Label:    "臺斤",
				Meta:     []byte(`{"toKg":0.605,"isWeight":true}`),
				IsActive: true,
			},
			{
				Code:     "bundle",
				Label:    "捆",
				IsActive: false,
			},
		}, nil)

	units, err := svc.Units(ctx, claims)
	require.NoError(t, err)

	byCode := make(map[string]int)
	for _, u := range units {
		byCode[u.Code]++
	}

	assert.Equal(t, 1, byCode["catty"], "tenant override must replace the default")
	assert.Equal(t, 0, byCode["bundle"], "deactivated units must not resurface from defaults")
	assert.Equal(t, 1, byCode["kg"], "untouched defaults must remain available")

	for _, u := range units {
		if u.Code == "catty" {
			assert.InDelta(t, 0.605, u.ToKg, 1e-9)
			assert.True(t, u.IsWeight)
		}
	}
}

func TestCatalogService_SaveDictionary_RejectsUnknownCategory(t *testing.T) {
	svc, mocks := newCatalogService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)

	_, err := svc.SaveDictionary(ctx, claims, usecase.DictionaryInput{
		Category: "flavors",
		Code:     "spicy",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDictionaryInvalid)
}

func TestCatalogService_SaveDictionary_UnitWritesNeedAdmin(t *testing.T) {
	svc, mocks := newCatalogService(t)
	ctx := context.Background()
	claims := testClaims(uuid.New())

	mocks.access.EXPECT().
		EnsureRole(ctx, claims, entity.RoleAdmin).
		Return(nil, domainerrors.ErrPermissionDenied)

	_, err := svc.SaveDictionary(ctx, claims, usecase.DictionaryInput{
		Category: entity.DictionaryUnit,
		Code:     "catty",
		Meta:     []byte(`{"toKg":0.605,"isWeight":true}`),
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCatalogService_SaveDictionary_RejectsNonPositiveWeightFactor(t *testing.T) {
	svc, mocks := newCatalogService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)

	tests := []struct {
		name string
		meta []byte
	}{
		{name: "negative factor", meta: []byte(`{"toKg":-0.5,"isWeight":true}`)},
		{name: "zero factor", meta: []byte(`{"toKg":0,"isWeight":true}`)},
		{name: "missing factor", meta: []byte(`{"isWeight":true}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveDictionary(ctx, claims, usecase.DictionaryInput{
				Category: entity.DictionaryUnit,
				Code:     "catty",
				Meta:     tt.meta,
			})
			assert.ErrorIs(t, err, domainerrors.ErrDictionaryInvalid)
		})
	}
}

func TestCatalogService_SaveDictionary_GeneratesExpenseCode(t *testing.T) {
	svc, mocks := newCatalogService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)
	mocks.dictRepo.EXPECT().
		ListDictionaries(ctx, authorized.Scope, entity.DictionaryExpenseType).
		Return([]*entity.Dictionary{
			{Code: "EXP001"},
			{Code: "EXP002"},
		}, nil)
	mocks.dictRepo.EXPECT().UpsertDictionary(ctx, mock.AnythingOfType("*entity.Dictionary")).Return(nil)
	mocks.logRepo.EXPECT().AppendLog(ctx, mock.AnythingOfType("*entity.OperationLog")).Return(nil)

	dict, err := svc.SaveDictionary(ctx, claims, usecase.DictionaryInput{
		Category: entity.DictionaryExpenseType,
		Label:    "瓦斯",
	})
	require.NoError(t, err)
	assert.Equal(t, "EXP003", dict.Code)
	assert.Equal(t, tenantID, dict.TenantID)
}

func TestCatalogService_SaveItem_Succeeds(t *testing.T) {
	svc, mocks := newCatalogService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)
	categoryID := uuid.New()

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)
	mocks.catalogRepo.EXPECT().UpsertItem(ctx, mock.AnythingOfType("*entity.Item")).Return(nil)
	mocks.logRepo.EXPECT().AppendLog(ctx, mock.AnythingOfType("*entity.OperationLog")).Return(nil)

	item, err := svc.SaveItem(ctx, claims, usecase.ItemInput{
		Name:        "高麗菜",
		CategoryID:  &categoryID,
		DefaultUnit: "catty",
	})
	require.NoError(t, err)
	assert.Equal(t, "高麗菜", item.Name)
	assert.Equal(t, tenantID, item.TenantID)
	assert.True(t, item.IsActive)
}

func TestCatalogService_ListItems_ReadRoleSuffices(t *testing.T) {
	svc, mocks := newCatalogService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleRead)
	claims := testClaims(authorized.Identity.ID)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleRead).Return(authorized, nil)
	mocks.catalogRepo.EXPECT().
		ListItems(ctx, authorized.Scope, true).
		Return([]*entity.Item{{ID: uuid.New(), Name: "高麗菜"}}, nil)

	items, err := svc.ListItems(ctx, claims, true)
	require.NoError(t, err)
	require.Len(t, items, 1)
}
