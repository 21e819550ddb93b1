// Package report aggregates entries and revenues into the numbers the
// reports screen and the CSV export share. It is pure computation over
// already-loaded records; tenant scoping happens before data gets here.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"stallbook/internal/domain/entity"
)

// TopItemLimit caps the ranked purchase item list.
const TopItemLimit = 8

// UnnamedItem labels purchases whose item record no longer exists.
const UnnamedItem = "未命名"

// DayStat is one calendar day's revenue and cost.
type DayStat struct {
	Date    time.Time
	Revenue float64
	Cost    float64
}

// TopItem is one purchase item's totals over the report range.
type TopItem struct {
	ItemID        uuid.UUID
	Name          string
	TotalCost     float64
	TotalWeightKg float64
	TotalQuantity float64
	Unit          string // Most recently seen unit code for the item.
}

// ExpenseSlice is one expense type's total over the report range.
type ExpenseSlice struct {
	Type  string
	Label string
	Total float64
}

// Summary is the full aggregate for a date range.
type Summary struct {
	From             time.Time
	To               time.Time
	Daily            []DayStat // One element per day, range inclusive, missing days zero.
	TotalRevenue     float64
	TotalCost        float64
	Profit           float64
	TopItems         []TopItem
	ExpenseBreakdown []ExpenseSlice
}

// Build aggregates the given records over [from, to]. Both purchase and
// expense entries count toward cost. expenseLabels maps expense type
// codes to display labels; unmapped codes fall back to the code.
func Build(from, to time.Time, entries []*entity.Entry, revenues []*entity.Revenue, expenseLabels map[string]string) *Summary {
	summary := &Summary{From: from, To: to}

	dayRevenue := make(map[string]float64)
	dayCost := make(map[string]float64)

	for _, r := range revenues {
		dayRevenue[dayKey(r.Date)] += r.Amount
		summary.TotalRevenue += r.Amount
	}
	for _, e := range entries {
		dayCost[dayKey(e.Date)] += e.Price
		summary.TotalCost += e.Price
	}
	summary.Profit = summary.TotalRevenue - summary.TotalCost

	for cursor := dayStart(from); !cursor.After(dayStart(to)); cursor = cursor.AddDate(0, 0, 1) {
		key := dayKey(cursor)
		summary.Daily = append(summary.Daily, DayStat{
			Date:    cursor,
			Revenue: dayRevenue[key],
			Cost:    dayCost[key],
		})
	}

	summary.TopItems = buildTopItems(entries)
	summary.ExpenseBreakdown = buildExpenseBreakdown(entries, expenseLabels)

	return summary
}

func buildTopItems(entries []*entity.Entry) []TopItem {
	totals := make(map[uuid.UUID]*TopItem)
	order := make([]uuid.UUID, 0)

	for _, e := range entries {
		if e.Type != entity.EntryPurchase || e.ItemID == nil {
			continue
		}
		item, ok := totals[*e.ItemID]
		if !ok {
			name := e.ItemName
			if name == "" {
				name = UnnamedItem
			}
			item = &TopItem{ItemID: *e.ItemID, Name: name, Unit: e.Unit}
			totals[*e.ItemID] = item
			order = append(order, *e.ItemID)
		}
		item.TotalCost += e.Price
		if e.StandardWeight != nil {
			item.TotalWeightKg += *e.StandardWeight
		}
		item.TotalQuantity += e.Quantity
		if e.Unit != "" {
			item.Unit = e.Unit
		}
	}

	ranked := make([]TopItem, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *totals[id])
	}
	// Stable sort keeps first-seen order for equal costs.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalCost > ranked[j].TotalCost
	})
	if len(ranked) > TopItemLimit {
		ranked = ranked[:TopItemLimit]
	}

	return ranked
}

func buildExpenseBreakdown(entries []*entity.Entry, labels map[string]string) []ExpenseSlice {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, e := range entries {
		if e.Type != entity.EntryExpense || e.ExpenseType == "" {
			continue
		}
		if _, ok := totals[e.ExpenseType]; !ok {
			order = append(order, e.ExpenseType)
		}
		totals[e.ExpenseType] += e.Price
	}

	breakdown := make([]ExpenseSlice, 0, len(order))
	for _, code := range order {
		label := labels[code]
		if label == "" {
			label = code
		}
		breakdown = append(breakdown, ExpenseSlice{Type: code, Label: label, Total: totals[code]})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})

	return breakdown
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
