package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stallbook/internal/domain/entity"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.Local)
}

func purchase(d int, itemID uuid.UUID, name string, qty float64, unitCode string, price float64, kg *float64) *entity.Entry {
	return &entity.Entry{
		ID:             uuid.New(),
		Type:           entity.EntryPurchase,
		Date:           day(d),
		ItemID:         &itemID,
		ItemName:       name,
		Quantity:       qty,
		Unit:           unitCode,
		Price:          price,
		StandardWeight: kg,
	}
}

func expense(d int, expenseType string, price float64) *entity.Entry {
	return &entity.Entry{
		ID:          uuid.New(),
		Type:        entity.EntryExpense,
		Date:        day(d),
		ExpenseType: expenseType,
		Price:       price,
	}
}

func revenue(d int, amount float64) *entity.Revenue {
	return &entity.Revenue{
		ID:         uuid.New(),
		LocationID: uuid.New(),
		Date:       day(d),
		Amount:     amount,
	}
}

func TestBuildDailySeriesZeroFilled(t *testing.T) {
	t.Parallel()

	summary := Build(day(1), day(5),
		[]*entity.Entry{expense(2, "utility", 120)},
		[]*entity.Revenue{revenue(4, 900)},
		nil,
	)

	require.Len(t, summary.Daily, 5, "one element per day, range inclusive")
	assert.Equal(t, day(1), summary.Daily[0].Date)
	assert.Equal(t, day(5), summary.Daily[4].Date)

	assert.Zero(t, summary.Daily[0].Revenue)
	assert.Zero(t, summary.Daily[0].Cost)
	assert.InDelta(t, 120, summary.Daily[1].Cost, 1e-9)
	assert.InDelta(t, 900, summary.Daily[3].Revenue, 1e-9)
}

func TestBuildSingleDayRange(t *testing.T) {
	t.Parallel()

	summary := Build(day(3), day(3), nil, []*entity.Revenue{revenue(3, 500)}, nil)

	require.Len(t, summary.Daily, 1)
	assert.InDelta(t, 500, summary.Daily[0].Revenue, 1e-9)
}

func TestBuildTotalsAndProfit(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	summary := Build(day(1), day(3),
		[]*entity.Entry{
			purchase(1, itemID, "豬肉", 2.5, "kg", 500, ptr(2.5)),
			expense(2, "utility", 300),
		},
		[]*entity.Revenue{revenue(1, 1000), revenue(2, 200)},
		nil,
	)

	assert.InDelta(t, 1200, summary.TotalRevenue, 1e-9)
	assert.InDelta(t, 800, summary.TotalCost, 1e-9, "purchases and expenses both count as cost")
	assert.InDelta(t, 400, summary.Profit, 1e-9)
}

func TestBuildTopItems(t *testing.T) {
	t.Parallel()

	ids := make([]uuid.UUID, 10)
	entries := make([]*entity.Entry, 0, 12)
	for i := range ids {
		ids[i] = uuid.New()
		// Costs 100, 200, ... 1000.
		entries = append(entries, purchase(1, ids[i], "品項", 1, "kg", float64((i+1)*100), ptr(1.0)))
	}
	// Two more purchases of the first item; totals accumulate per item
	// and lift it to 400, tying ids[3].
	entries = append(entries,
		purchase(2, ids[0], "品項", 2, "kg", 150, ptr(2.0)),
		purchase(3, ids[0], "品項", 3, "catty", 150, ptr(1.8)),
	)

	summary := Build(day(1), day(3), entries, nil, nil)

	require.Len(t, summary.TopItems, TopItemLimit)
	assert.Equal(t, ids[9], summary.TopItems[0].ItemID)
	assert.InDelta(t, 1000, summary.TopItems[0].TotalCost, 1e-9)
	assert.Equal(t, ids[8], summary.TopItems[1].ItemID)

	// ids[0] was seen before ids[3], so at equal cost it ranks first.
	assert.Equal(t, ids[0], summary.TopItems[6].ItemID, "equal totals keep first-seen order")
	assert.Equal(t, ids[3], summary.TopItems[7].ItemID)

	first := summary.TopItems[6]
	assert.InDelta(t, 400, first.TotalCost, 1e-9)
	assert.InDelta(t, 4.8, first.TotalWeightKg, 1e-9)
	assert.InDelta(t, 6, first.TotalQuantity, 1e-9)
	assert.Equal(t, "catty", first.Unit, "latest unit wins")
}

func TestBuildTopItemsSkipsExpensesAndDanglingItems(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	entries := []*entity.Entry{
		expense(1, "rent", 9999),
		purchase(1, itemID, "", 1, "kg", 100, ptr(1.0)),
		{ // Purchase without an item reference is excluded from ranking.
			ID:       uuid.New(),
			Type:     entity.EntryPurchase,
			Date:     day(1),
			Quantity: 1,
			Unit:     "kg",
			Price:    400,
		},
	}

	summary := Build(day(1), day(1), entries, nil, nil)

	require.Len(t, summary.TopItems, 1)
	assert.Equal(t, UnnamedItem, summary.TopItems[0].Name)
}

func TestBuildExpenseBreakdown(t *testing.T) {
	t.Parallel()

	entries := []*entity.Entry{
		expense(1, "utility", 100),
		expense(2, "rent", 800),
		expense(3, "utility", 50),
		expense(3, "misc", 150),
	}
	labels := map[string]string{"utility": "水電", "rent": "租金"}

	summary := Build(day(1), day(3), entries, nil, labels)

	require.Len(t, summary.ExpenseBreakdown, 3)
	assert.Equal(t, ExpenseSlice{Type: "rent", Label: "租金", Total: 800}, summary.ExpenseBreakdown[0])
	assert.Equal(t, ExpenseSlice{Type: "utility", Label: "水電", Total: 150}, summary.ExpenseBreakdown[1], "equal totals keep first-seen order")
	assert.Equal(t, ExpenseSlice{Type: "misc", Label: "misc", Total: 150}, summary.ExpenseBreakdown[2], "missing label falls back to code")
}

func TestBuildEmptyInput(t *testing.T) {
	t.Parallel()

	summary := Build(day(1), day(2), nil, nil, nil)

	require.Len(t, summary.Daily, 2)
	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.TotalCost)
	assert.Zero(t, summary.Profit)
	assert.Empty(t, summary.TopItems)
	assert.Empty(t, summary.ExpenseBreakdown)
}

func ptr(v float64) *float64 {
	return &v
}
