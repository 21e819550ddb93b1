package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	mockRepo "stallbook/internal/mocks/repository"
	mockUC "stallbook/internal/mocks/usecase"
	"stallbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportServiceMocks struct {
	entryRepo   *mockRepo.MockEntryRepository
	revenueRepo *mockRepo.MockRevenueRepository
	dictRepo    *mockRepo.MockDictionaryRepository
	access      *mockUC.MockAccessUsecase
}

func newReportService(t *testing.T) (usecase.ReportUsecase, reportServiceMocks) {
	t.Helper()

	mocks := reportServiceMocks{
		entryRepo:   mockRepo.NewMockEntryRepository(t),
		revenueRepo: mockRepo.NewMockRevenueRepository(t),
		dictRepo:    mockRepo.NewMockDictionaryRepository(t),
		access:      mockUC.NewMockAccessUsecase(t),
	}
	svc := NewReportService(ReportServiceParams{
		EntryRepo:   mocks.entryRepo,
		RevenueRepo: mocks.revenueRepo,
		DictRepo:    mocks.dictRepo,
		Access:      mocks.access,
		Logger:      testLogger(),
	})

	return svc, mocks
}

func TestReportService_BuildReport_AggregatesRange(t *testing.T) {
	svc, mocks := newReportService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleRead)
	claims := testClaims(authorized.Identity.ID)

	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)
	itemID := uuid.New()

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleRead).Return(authorized, nil)
	mocks.entryRepo.EXPECT().
		ListEntriesByDateRange(ctx, authorized.Scope, from, dayEnd(to)).
		Return([]*entity.Entry{
			{
				Type:     entity.EntryPurchase,
				ItemID:   &itemID,
				ItemName: "高麗菜",
				Date:     time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
				Quantity: 10,
				Price:    600,
			},
			{
				Type:        entity.EntryExpense,
				ExpenseType: "rent",
				Date:        time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
				Price:       400,
			},
		}, nil)
	mocks.revenueRepo.EXPECT().
		ListRevenuesByDateRange(ctx, authorized.Scope, from, dayEnd(to)).
		Return([]*entity.Revenue{
			{Date: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), Amount: 3000},
			{Date: time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC), Amount: 2000},
		}, nil)
	mocks.dictRepo.EXPECT().
		ListDictionaries(ctx, authorized.Scope, entity.DictionaryExpenseType).
		Return([]*entity.Dictionary{{Code: "rent", Label: "租金", IsActive: true}}, nil)

	summary, err := svc.BuildReport(ctx, claims, from, to)
	require.NoError(t, err)

	require.Len(t, summary.Daily, 3, "every day in range must appear, zero-filled")
	assert.Equal(t, float64(3000), summary.Daily[0].Revenue)
	assert.Equal(t, float64(600), summary.Daily[0].Cost)
	assert.Zero(t, summary.Daily[1].Revenue)
	assert.Equal(t, float64(400), summary.Daily[1].Cost)

	assert.Equal(t, float64(5000), summary.TotalRevenue)
	assert.Equal(t, float64(1000), summary.TotalCost)
	assert.Equal(t, float64(4000), summary.Profit)

	require.Len(t, summary.TopItems, 1)
	assert.Equal(t, "高麗菜", summary.TopItems[0].Name)

	require.Len(t, summary.ExpenseBreakdown, 1)
	assert.Equal(t, "租金", summary.ExpenseBreakdown[0].Label)
	assert.Equal(t, float64(400), summary.ExpenseBreakdown[0].Total)
}

func TestReportService_BuildReport_NormalizesReversedRange(t *testing.T) {
	svc, mocks := newReportService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleRead)
	claims := testClaims(authorized.Identity.ID)

	from := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleRead).Return(authorized, nil)
	mocks.entryRepo.EXPECT().
		ListEntriesByDateRange(ctx, authorized.Scope, to, dayEnd(from)).
		Return(nil, nil)
	mocks.revenueRepo.EXPECT().
		ListRevenuesByDateRange(ctx, authorized.Scope, to, dayEnd(from)).
		Return(nil, nil)
	mocks.dictRepo.EXPECT().
		ListDictionaries(ctx, authorized.Scope, entity.DictionaryExpenseType).
		Return(nil, nil)

	summary, err := svc.BuildReport(ctx, claims, from, to)
	require.NoError(t, err)
	assert.Equal(t, to, summary.From)
	assert.Equal(t, from, summary.To)
	assert.Len(t, summary.Daily, 3)
}

func TestReportService_ExportCSV_RejectsUnknownKind(t *testing.T) {
	svc, mocks := newReportService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleRead)
	claims := testClaims(authorized.Identity.ID)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleRead).Return(authorized, nil)

	_, err := svc.ExportCSV(ctx, claims, usecase.ExportKind("invoices"), time.Now(), time.Now())
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_ExportCSV_Revenues(t *testing.T) {
	svc, mocks := newReportService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleRead)
	claims := testClaims(authorized.Identity.ID)

	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleRead).Return(authorized, nil)
	// Queries serve newest first; the export reverses back to oldest first.
	mocks.revenueRepo.EXPECT().
		ListRevenuesByDateRange(ctx, authorized.Scope, from, dayEnd(to)).
		Return([]*entity.Revenue{
			{Date: to, LocationName: "夜市攤位", Amount: 0, IsDayOff: true},
			{Date: from, LocationName: "夜市攤位", Amount: 4500},
		}, nil)

	file, err := svc.ExportCSV(ctx, claims, usecase.ExportRevenues, from, to)
	require.NoError(t, err)
	assert.Equal(t, "revenues_2026-05-01_2026-05-02.csv", file.Filename)

	content := string(file.Data)
	assert.True(t, strings.HasPrefix(content, "\xef\xbb\xbf"), "exports carry a UTF-8 BOM for spreadsheet apps")
	assert.Contains(t, content, "\r\n")

	lines := strings.Split(strings.TrimSuffix(content, "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "日期")
	assert.Contains(t, lines[1], "2026-05-01")
	assert.Contains(t, lines[1], "4500")
	assert.Contains(t, lines[2], "是")
}

func TestReportService_ExportCSV_EntriesUseLocalizedLabels(t *testing.T) {
	svc, mocks := newReportService(t)
	ctx := context.Background()
	authorized := testAuthorized(uuid.New(), entity.RoleRead)
	claims := testClaims(authorized.Identity.ID)

	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	itemID := uuid.New()

	mocks.access.EXPECT().EnsureRole(ctx, claims, entity.RoleRead).Return(authorized, nil)
	mocks.entryRepo.EXPECT().
		ListEntriesByDateRange(ctx, authorized.Scope, from, dayEnd(to)).
		Return([]*entity.Entry{
			{
				Type:        entity.EntryExpense,
				ExpenseType: "rent",
				Date:        from,
				Price:       1200,
			},
			{
				Type:       entity.EntryPurchase,
				ItemID:     &itemID,
				ItemName:   "高麗菜",
				VendorName: "菜商",
				Date:       from,
				Quantity:   5,
				Unit:       "catty",
				Price:      300,
			},
		}, nil)
	mocks.dictRepo.EXPECT().
		ListDictionaries(ctx, authorized.Scope, entity.DictionaryExpenseType).
		Return([]*entity.Dictionary{{Code: "rent", Label: "租金", IsActive: true}}, nil)
	mocks.dictRepo.EXPECT().
		ListDictionaries(ctx, authorized.Scope, entity.DictionaryUnit).
		Return(nil, nil)

	file, err := svc.ExportCSV(ctx, claims, usecase.ExportEntries, from, to)
	require.NoError(t, err)
	assert.Equal(t, "entries_2026-05-01_2026-05-01.csv", file.Filename)

	content := string(file.Data)
	assert.Contains(t, content, "進貨")
	assert.Contains(t, content, "高麗菜")
	assert.Contains(t, content, "臺斤", "unit codes render with the default label")
	assert.Contains(t, content, "支出")
	assert.Contains(t, content, "租金")
}
