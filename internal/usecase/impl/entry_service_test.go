package impl

import (
	"context"
	"testing"
	"time"

	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/repository"
	mockRepo "stallbook/internal/mocks/repository"
	mockUC "stallbook/internal/mocks/usecase"
	"stallbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func purchaseInput(itemID uuid.UUID, quantity float64, unitCode string, price float64) usecase.EntryInput {
	return usecase.EntryInput{
		Type:     entity.EntryPurchase,
		Date:     time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC),
		ItemID:   &itemID,
		Quantity: quantity,
		Unit:     unitCode,
		Price:    price,
	}
}

func TestEntryService_CreateEntry_DerivesWeightAndUnitPrice(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()

	tests := []struct {
		name           string
		input          usecase.EntryInput
		wantWeight     *float64
		wantUnitPrice  float64
		wantNilWeight  bool
	}{
		{
			name:          "kilograms convert one to one",
			input:         purchaseInput(uuid.New(), 2.5, "kg", 500),
			wantWeight:    floatPtr(2.5),
			wantUnitPrice: 200,
		},
		{
			name:          "catty converts at point six",
			input:         purchaseInput(uuid.New(), 5, "catty", 600),
			wantWeight:    floatPtr(3.0),
			wantUnitPrice: 200,
		},
		{
			name:          "count units fall back to price per quantity",
			input:         purchaseInput(uuid.New(), 3, "bag", 300),
			wantNilWeight: true,
			wantUnitPrice: 100,
		},
		{
			name:          "unknown unit falls back to price per quantity",
			input:         purchaseInput(uuid.New(), 4, "mystery", 200),
			wantNilWeight: true,
			wantUnitPrice: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := mockUC.NewMockAccessUsecase(t)
			access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)

			dictRepo := mockRepo.NewMockDictionaryRepository(t)
			dictRepo.EXPECT().
				ListDictionaries(ctx, authorized.Scope, entity.DictionaryUnit).
				Return(nil, nil)

			entryRepo := mockRepo.NewMockEntryRepository(t)
			entryRepo.EXPECT().CreateEntry(ctx, mock.AnythingOfType("*entity.Entry")).Return(nil)

			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewEntryRepository().Return(entryRepo)
			expectAuditLog(t, factory)

			svc := NewEntryService(EntryServiceParams{
				TxManager: passthroughTx(t, factory),
				EntryRepo: entryRepo,
				DictRepo:  dictRepo,
				Access:    access,
				Logger:    testLogger(),
			})

			entry, err := svc.CreateEntry(ctx, claims, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tenantID, entry.TenantID)
			require.NotNil(t, entry.CreatedBy)
			assert.Equal(t, authorized.Identity.ID, *entry.CreatedBy)

			if tt.wantNilWeight {
				assert.Nil(t, entry.StandardWeight)
			} else {
				require.NotNil(t, entry.StandardWeight)
				assert.InDelta(t, *tt.wantWeight, *entry.StandardWeight, 1e-9)
			}
			require.NotNil(t, entry.UnitPrice)
			assert.InDelta(t, tt.wantUnitPrice, *entry.UnitPrice, 1e-9)

			// Dates store at day precision regardless of the submitted time.
			assert.Equal(t, 0, entry.Date.Hour())
			assert.Equal(t, 14, entry.Date.Day())
		})
	}
}

func TestEntryService_CreateEntry_TenantUnitOverrideWins(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)

	// The tenant redefines catty at 0.605 kg.
	dictRepo := mockRepo.NewMockDictionaryRepository(t)
	dictRepo.EXPECT().
		ListDictionaries(ctx, authorized.Scope, entity.DictionaryUnit).
		Return([]*entity.Dictionary{{
			ID:       uuid.New(),
			TenantID: tenantID,
			Category: entity.DictionaryUnit,
			Code:     "catty",
			Label:    "臺斤",
			Meta:     []byte(`{"toKg":0.605,"isWeight":true}`),
			IsActive: true,
		}}, nil)

	entryRepo := mockRepo.NewMockEntryRepository(t)
	entryRepo.EXPECT().CreateEntry(ctx, mock.AnythingOfType("*entity.Entry")).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewEntryRepository().Return(entryRepo)
	expectAuditLog(t, factory)

	svc := NewEntryService(EntryServiceParams{
		TxManager: passthroughTx(t, factory),
		EntryRepo: entryRepo,
		DictRepo:  dictRepo,
		Access:    access,
		Logger:    testLogger(),
	})

	entry, err := svc.CreateEntry(ctx, claims, purchaseInput(uuid.New(), 10, "catty", 605))
	require.NoError(t, err)
	require.NotNil(t, entry.StandardWeight)
	assert.InDelta(t, 6.05, *entry.StandardWeight, 1e-9)
	require.NotNil(t, entry.UnitPrice)
	assert.InDelta(t, 100, *entry.UnitPrice, 1e-9)
}

func TestEntryService_CreateEntry_ExpenseIsABareAmount(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)

	dictRepo := mockRepo.NewMockDictionaryRepository(t)
	dictRepo.EXPECT().
		ListDictionaries(ctx, authorized.Scope, entity.DictionaryUnit).
		Return(nil, nil)

	entryRepo := mockRepo.NewMockEntryRepository(t)
	entryRepo.EXPECT().CreateEntry(ctx, mock.AnythingOfType("*entity.Entry")).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewEntryRepository().Return(entryRepo)
	expectAuditLog(t, factory)

	svc := NewEntryService(EntryServiceParams{
		TxManager: passthroughTx(t, factory),
		EntryRepo: entryRepo,
		DictRepo:  dictRepo,
		Access:    access,
		Logger:    testLogger(),
	})

	// No quantity, no unit, no item. The amount and its classification
	// are the whole record.
	entry, err := svc.CreateEntry(ctx, claims, usecase.EntryInput{
		Type:        entity.EntryExpense,
		Date:        time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		ExpenseType: "rent",
		Price:       15000,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EntryApproved, entry.Status)
	assert.Equal(t, "rent", entry.ExpenseType)
	assert.Zero(t, entry.Quantity)
	assert.Empty(t, entry.Unit)
	assert.Nil(t, entry.StandardWeight)
	assert.Nil(t, entry.UnitPrice)
}

func TestEntryService_CreateEntry_RejectsInvalidInput(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()
	itemID := uuid.New()

	tests := []struct {
		name  string
		input usecase.EntryInput
	}{
		{
			name:  "unknown type",
			input: usecase.EntryInput{Type: "TRANSFER", Date: time.Now(), Quantity: 1, Price: 1},
		},
		{
			name:  "zero quantity",
			input: usecase.EntryInput{Type: entity.EntryPurchase, Date: time.Now(), ItemID: &itemID, Unit: "kg", Quantity: 0, Price: 100},
		},
		{
			name:  "negative price",
			input: usecase.EntryInput{Type: entity.EntryPurchase, Date: time.Now(), ItemID: &itemID, Unit: "kg", Quantity: 1, Price: -1},
		},
		{
			name:  "purchase without item",
			input: usecase.EntryInput{Type: entity.EntryPurchase, Date: time.Now(), Unit: "kg", Quantity: 1, Price: 100},
		},
		{
			name:  "expense without expense type",
			input: usecase.EntryInput{Type: entity.EntryExpense, Date: time.Now(), Quantity: 1, Price: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := mockUC.NewMockAccessUsecase(t)
			access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)

			svc := NewEntryService(EntryServiceParams{
				TxManager: mockRepo.NewMockTransactionManager(t),
				EntryRepo: mockRepo.NewMockEntryRepository(t),
				DictRepo:  mockRepo.NewMockDictionaryRepository(t),
				Access:    access,
				Logger:    testLogger(),
			})

			_, err := svc.CreateEntry(ctx, claims, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrEntryInvalid)
		})
	}
}

func TestEntryService_UpdateEntry_OutOfScopeReadsAsNotFound(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()
	entryID := uuid.New()

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)

	dictRepo := mockRepo.NewMockDictionaryRepository(t)
	dictRepo.EXPECT().
		ListDictionaries(ctx, authorized.Scope, entity.DictionaryUnit).
		Return(nil, nil)

	entryRepo := mockRepo.NewMockEntryRepository(t)
	entryRepo.EXPECT().
		FindEntryByID(ctx, authorized.Scope, entryID).
		Return(nil, repository.ErrEntryNotFound)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewEntryRepository().Return(entryRepo)

	svc := NewEntryService(EntryServiceParams{
		TxManager: passthroughTx(t, factory),
		EntryRepo: entryRepo,
		DictRepo:  dictRepo,
		Access:    access,
		Logger:    testLogger(),
	})

	_, err := svc.UpdateEntry(ctx, claims, entryID, purchaseInput(uuid.New(), 1, "kg", 100))
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestEntryService_UpdateEntry_TypeSwitchClearsStaleFields(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()

	itemID := uuid.New()
	vendorID := uuid.New()
	existing := &entity.Entry{
		ID:       uuid.New(),
		TenantID: tenantID,
		Type:     entity.EntryPurchase,
		Date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ItemID:   &itemID,
		VendorID: &vendorID,
		Quantity: 2,
		Unit:     "kg",
		Price:    200,
	}

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)

	dictRepo := mockRepo.NewMockDictionaryRepository(t)
	dictRepo.EXPECT().
		ListDictionaries(ctx, authorized.Scope, entity.DictionaryUnit).
		Return(nil, nil)

	entryRepo := mockRepo.NewMockEntryRepository(t)
	entryRepo.EXPECT().FindEntryByID(ctx, authorized.Scope, existing.ID).Return(existing, nil)
	entryRepo.EXPECT().UpdateEntry(ctx, authorized.Scope, mock.AnythingOfType("*entity.Entry")).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewEntryRepository().Return(entryRepo)
	expectAuditLog(t, factory)

	svc := NewEntryService(EntryServiceParams{
		TxManager: passthroughTx(t, factory),
		EntryRepo: entryRepo,
		DictRepo:  dictRepo,
		Access:    access,
		Logger:    testLogger(),
	})

	updated, err := svc.UpdateEntry(ctx, claims, existing.ID, usecase.EntryInput{
		Type:        entity.EntryExpense,
		Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ExpenseType: "rent",
		Quantity:    1,
		Price:       15000,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EntryExpense, updated.Type)
	assert.Nil(t, updated.ItemID)
	assert.Nil(t, updated.VendorID)
	assert.Equal(t, "rent", updated.ExpenseType)
}

func TestEntryService_ListEntries_NormalizesRangeBounds(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleRead)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()

	from := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC)

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().EnsureRole(ctx, claims, entity.RoleRead).Return(authorized, nil)

	entryRepo := mockRepo.NewMockEntryRepository(t)
	entryRepo.EXPECT().
		ListEntriesByDateRange(ctx, authorized.Scope, dayStart(from), dayEnd(to)).
		Return([]*entity.Entry{}, nil)

	svc := NewEntryService(EntryServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		EntryRepo: entryRepo,
		DictRepo:  mockRepo.NewMockDictionaryRepository(t),
		Access:    access,
		Logger:    testLogger(),
	})

	entries, err := svc.ListEntries(ctx, claims, from, to)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryService_SetEntryStatus_PersistsReviewDecision(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()

	existing := &entity.Entry{
		ID:       uuid.New(),
		TenantID: tenantID,
		Type:     entity.EntryPurchase,
		Status:   entity.EntryApproved,
		Date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Quantity: 2,
		Unit:     "kg",
		Price:    200,
	}

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)

	entryRepo := mockRepo.NewMockEntryRepository(t)
	entryRepo.EXPECT().FindEntryByID(ctx, authorized.Scope, existing.ID).Return(existing, nil)
	entryRepo.EXPECT().
		UpdateEntry(ctx, authorized.Scope, mock.AnythingOfType("*entity.Entry")).
		Run(func(_ context.Context, _ entity.TenantScope, entry *entity.Entry) {
			assert.Equal(t, entity.EntryRejected, entry.Status)
		}).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewEntryRepository().Return(entryRepo)
	expectAuditLog(t, factory)

	svc := NewEntryService(EntryServiceParams{
		TxManager: passthroughTx(t, factory),
		EntryRepo: entryRepo,
		DictRepo:  mockRepo.NewMockDictionaryRepository(t),
		Access:    access,
		Logger:    testLogger(),
	})

	updated, err := svc.SetEntryStatus(ctx, claims, existing.ID, entity.EntryRejected)
	require.NoError(t, err)
	assert.Equal(t, entity.EntryRejected, updated.Status)
}

func TestEntryService_SetEntryStatus_RequiresAdmin(t *testing.T) {
	claims := testClaims(uuid.New())
	ctx := context.Background()

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().
		EnsureRole(ctx, claims, entity.RoleAdmin).
		Return(nil, domainerrors.ErrPermissionDenied)

	svc := NewEntryService(EntryServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		EntryRepo: mockRepo.NewMockEntryRepository(t),
		DictRepo:  mockRepo.NewMockDictionaryRepository(t),
		Access:    access,
		Logger:    testLogger(),
	})

	_, err := svc.SetEntryStatus(ctx, claims, uuid.New(), entity.EntryApproved)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestEntryService_SetEntryStatus_RejectsUnknownStatus(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)

	svc := NewEntryService(EntryServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		EntryRepo: mockRepo.NewMockEntryRepository(t),
		DictRepo:  mockRepo.NewMockDictionaryRepository(t),
		Access:    access,
		Logger:    testLogger(),
	})

	_, err := svc.SetEntryStatus(ctx, claims, uuid.New(), entity.EntryStatus("ARCHIVED"))
	assert.ErrorIs(t, err, domainerrors.ErrEntryInvalid)
}

func TestEntryService_SetEntryStatus_OutOfScopeReadsAsNotFound(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleAdmin)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()
	entryID := uuid.New()

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().EnsureRole(ctx, claims, entity.RoleAdmin).Return(authorized, nil)

	entryRepo := mockRepo.NewMockEntryRepository(t)
	entryRepo.EXPECT().
		FindEntryByID(ctx, authorized.Scope, entryID).
		Return(nil, repository.ErrEntryNotFound)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewEntryRepository().Return(entryRepo)

	svc := NewEntryService(EntryServiceParams{
		TxManager: passthroughTx(t, factory),
		EntryRepo: entryRepo,
		DictRepo:  mockRepo.NewMockDictionaryRepository(t),
		Access:    access,
		Logger:    testLogger(),
	})

	_, err := svc.SetEntryStatus(ctx, claims, entryID, entity.EntryApproved)
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func floatPtr(v float64) *float64 {
	return &v
}
