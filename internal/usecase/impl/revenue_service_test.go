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

func TestRevenueService_RecordRevenue_Succeeds(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()
	locationID := uuid.New()

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)

	locationRepo := mockRepo.NewMockLocationRepository(t)
	locationRepo.EXPECT().
		FindLocationByID(ctx, authorized.Scope, locationID).
		Return(&entity.Location{ID: locationID, TenantID: tenantID, Name: "夜市攤位"}, nil)

	revenueRepo := mockRepo.NewMockRevenueRepository(t)
	revenueRepo.EXPECT().UpsertRevenue(ctx, mock.AnythingOfType("*entity.Revenue")).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRevenueRepository().Return(revenueRepo)
	expectAuditLog(t, factory)

	svc := NewRevenueService(RevenueServiceParams{
		TxManager:    passthroughTx(t, factory),
		RevenueRepo:  revenueRepo,
		LocationRepo: locationRepo,
		Access:       access,
		Logger:       testLogger(),
	})

	record, err := svc.RecordRevenue(ctx, claims, usecase.RevenueInput{
		LocationID: locationID,
		Date:       time.Date(2026, 4, 5, 18, 0, 0, 0, time.UTC),
		Amount:     8800,
	})
	require.NoError(t, err)
	assert.Equal(t, tenantID, record.TenantID)
	assert.Equal(t, locationID, record.LocationID)
	assert.Equal(t, float64(8800), record.Amount)
	assert.Equal(t, 0, record.Date.Hour())
}

func TestRevenueService_RecordRevenue_DayOffForcesZeroAmount(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()
	locationID := uuid.New()

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)

	locationRepo := mockRepo.NewMockLocationRepository(t)
	locationRepo.EXPECT().
		FindLocationByID(ctx, authorized.Scope, locationID).
		Return(&entity.Location{ID: locationID, TenantID: tenantID}, nil)

	revenueRepo := mockRepo.NewMockRevenueRepository(t)
	revenueRepo.EXPECT().UpsertRevenue(ctx, mock.AnythingOfType("*entity.Revenue")).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRevenueRepository().Return(revenueRepo)
	expectAuditLog(t, factory)

	svc := NewRevenueService(RevenueServiceParams{
		TxManager:    passthroughTx(t, factory),
		RevenueRepo:  revenueRepo,
		LocationRepo: locationRepo,
		Access:       access,
		Logger:       testLogger(),
	})

	record, err := svc.RecordRevenue(ctx, claims, usecase.RevenueInput{
		LocationID: locationID,
		Date:       time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
		Amount:     9999,
		IsDayOff:   true,
	})
	require.NoError(t, err)
	assert.True(t, record.IsDayOff)
	assert.Zero(t, record.Amount)
}

func TestRevenueService_RecordRevenue_ForeignLocationReadsAsNotFound(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()
	locationID := uuid.New()

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)

	locationRepo := mockRepo.NewMockLocationRepository(t)
	locationRepo.EXPECT().
		FindLocationByID(ctx, authorized.Scope, locationID).
		Return(nil, repository.ErrLocationNotFound)

	svc := NewRevenueService(RevenueServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		RevenueRepo:  mockRepo.NewMockRevenueRepository(t),
		LocationRepo: locationRepo,
		Access:       access,
		Logger:       testLogger(),
	})

	_, err := svc.RecordRevenue(ctx, claims, usecase.RevenueInput{
		LocationID: locationID,
		Date:       time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
		Amount:     100,
	})
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestRevenueService_RecordRevenue_RejectsInvalidInput(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.RevenueInput
	}{
		{
			name:  "missing location",
			input: usecase.RevenueInput{Date: time.Now(), Amount: 100},
		},
		{
			name:  "missing date",
			input: usecase.RevenueInput{LocationID: uuid.New(), Amount: 100},
		},
		{
			name:  "negative amount",
			input: usecase.RevenueInput{LocationID: uuid.New(), Date: time.Now(), Amount: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := mockUC.NewMockAccessUsecase(t)
			access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)

			svc := NewRevenueService(RevenueServiceParams{
				TxManager:    mockRepo.NewMockTransactionManager(t),
				RevenueRepo:  mockRepo.NewMockRevenueRepository(t),
				LocationRepo: mockRepo.NewMockLocationRepository(t),
				Access:       access,
				Logger:       testLogger(),
			})

			_, err := svc.RecordRevenue(ctx, claims, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrRevenueInvalid)
		})
	}
}

func TestRevenueService_UpdateRevenue_OutOfScopeReadsAsNotFound(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleWrite)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()
	recordID := uuid.New()

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().EnsureRole(ctx, claims, entity.RoleWrite).Return(authorized, nil)

	revenueRepo := mockRepo.NewMockRevenueRepository(t)
	revenueRepo.EXPECT().
		FindRevenueByID(ctx, authorized.Scope, recordID).
		Return(nil, repository.ErrRevenueNotFound)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRevenueRepository().Return(revenueRepo)

	svc := NewRevenueService(RevenueServiceParams{
		TxManager:    passthroughTx(t, factory),
		RevenueRepo:  revenueRepo,
		LocationRepo: mockRepo.NewMockLocationRepository(t),
		Access:       access,
		Logger:       testLogger(),
	})

	_, err := svc.UpdateRevenue(ctx, claims, recordID, usecase.RevenueInput{
		LocationID: uuid.New(),
		Date:       time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
		Amount:     100,
	})
	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestRevenueService_ListRevenues_ReadRoleSuffices(t *testing.T) {
	tenantID := uuid.New()
	authorized := testAuthorized(tenantID, entity.RoleRead)
	claims := testClaims(authorized.Identity.ID)
	ctx := context.Background()

	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)

	access := mockUC.NewMockAccessUsecase(t)
	access.EXPECT().EnsureRole(ctx, claims, entity.RoleRead).Return(authorized, nil)

	revenueRepo := mockRepo.NewMockRevenueRepository(t)
	revenueRepo.EXPECT().
		ListRevenuesByDateRange(ctx, authorized.Scope, dayStart(from), dayEnd(to)).
		Return([]*entity.Revenue{{ID: uuid.New(), Amount: 5000}}, nil)

	svc := NewRevenueService(RevenueServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		RevenueRepo:  revenueRepo,
		LocationRepo: mockRepo.NewMockLocationRepository(t),
		Access:       access,
		Logger:       testLogger(),
	})

	records, err := svc.ListRevenues(ctx, claims, from, to)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, float64(5000), records[0].Amount)
}
