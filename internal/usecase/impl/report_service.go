package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "stallbook/internal/delivery/context"
	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/report"
	"stallbook/internal/domain/repository"
	"stallbook/internal/domain/service"
	"stallbook/internal/domain/unit"
	"stallbook/internal/infra/export"
	"stallbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	entryRepo   repository.EntryRepository
	revenueRepo repository.RevenueRepository
	dictRepo    repository.DictionaryRepository
	access      usecase.AccessUsecase
	logger      *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	EntryRepo   repository.EntryRepository
	RevenueRepo repository.RevenueRepository
	DictRepo    repository.DictionaryRepository
	Access      usecase.AccessUsecase
	Logger      *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		entryRepo:   params.EntryRepo,
		revenueRepo: params.RevenueRepo,
		dictRepo:    params.DictRepo,
		access:      params.Access,
		logger:      params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BuildReport aggregates the scope's entries and revenues over [from, to].
func (srv *reportService) BuildReport(ctx context.Context, claims *service.Claims, from, to time.Time) (*report.Summary, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleRead)
	if err != nil {
		return nil, err
	}
	from, to = orderRange(from, to)

	entries, revenues, err := srv.loadRange(ctx, authorized.Scope, from, to)
	if err != nil {
		return nil, err
	}

	labels, err := srv.expenseLabels(ctx, authorized.Scope)
	if err != nil {
		return nil, err
	}

	summary := report.Build(from, to, entries, revenues, labels)
	srv.log(ctx).Debug("Report built",
		slog.Time("from", from), slog.Time("to", to),
		slog.Int("entries", len(entries)), slog.Int("revenues", len(revenues)))

	return summary, nil
}

// ExportCSV renders one dataset over [from, to] as a CSV download.
func (srv *reportService) ExportCSV(ctx context.Context, claims *service.Claims, kind usecase.ExportKind, from, to time.Time) (*usecase.ExportFile, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleRead)
	if err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown export kind")
	}
	from, to = orderRange(from, to)

	var rows [][]string
	switch kind {
	case usecase.ExportRevenues:
		rows, err = srv.revenueRows(ctx, authorized.Scope, from, to)
	case usecase.ExportEntries:
		rows, err = srv.entryRows(ctx, authorized.Scope, from, to)
	}
	if err != nil {
		return nil, err
	}

	data, err := export.CSV(rows)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render export csv")
	}

	filename := fmt.Sprintf("%s_%s_%s.csv",
		kind, from.Format("2006-01-02"), to.Format("2006-01-02"))

	return &usecase.ExportFile{Filename: filename, Data: data}, nil
}

// entryRows renders cost entries oldest first with localized type and
// unit labels. Purchases show the item name; expenses show the expense
// type label with the raw code as fallback.
func (srv *reportService) entryRows(ctx context.Context, scope entity.TenantScope, from, to time.Time) ([][]string, error) {
	entries, err := srv.entryRepo.ListEntriesByDateRange(ctx, scope, from, dayEnd(to))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entries for export")
	}

	labels, err := srv.expenseLabels(ctx, scope)
	if err != nil {
		return nil, err
	}
	defs, err := srv.unitDefinitions(ctx, scope)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"日期", "類型", "品項/支出", "廠商", "數量", "單位", "金額", "備註"}}
	// Exports read oldest first even though list queries serve newest first.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]

		kindLabel := "支出"
		subject := labels[e.ExpenseType]
		if subject == "" {
			subject = e.ExpenseType
		}
		if e.Type == entity.EntryPurchase {
			kindLabel = "進貨"
			subject = e.ItemName
		}

		unitLabel := ""
		if e.Unit != "" {
			unitLabel = unit.Label(e.Unit, defs)
		}

		rows = append(rows, []string{
			e.Date.Format("2006-01-02"),
			kindLabel,
			subject,
			e.VendorName,
			formatNumber(e.Quantity),
			unitLabel,
			formatNumber(e.Price),
			e.Note,
		})
	}

	return rows, nil
}

// revenueRows renders daily revenue oldest first. Day-off rows export a
// zero amount and a localized flag.
func (srv *reportService) revenueRows(ctx context.Context, scope entity.TenantScope, from, to time.Time) ([][]string, error) {
	revenues, err := srv.revenueRepo.ListRevenuesByDateRange(ctx, scope, from, dayEnd(to))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list revenues for export")
	}

	rows := [][]string{{"日期", "地點", "金額", "是否休假"}}
	for i := len(revenues) - 1; i >= 0; i-- {
		r := revenues[i]

		amount := formatNumber(r.Amount)
		dayOff := "否"
		if r.IsDayOff {
			amount = "0"
			dayOff = "是"
		}

		rows = append(rows, []string{
			r.Date.Format("2006-01-02"),
			r.LocationName,
			amount,
			dayOff,
		})
	}

	return rows, nil
}

func (srv *reportService) loadRange(ctx context.Context, scope entity.TenantScope, from, to time.Time) ([]*entity.Entry, []*entity.Revenue, error) {
	entries, err := srv.entryRepo.ListEntriesByDateRange(ctx, scope, from, dayEnd(to))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list entries for report")
	}

	revenues, err := srv.revenueRepo.ListRevenuesByDateRange(ctx, scope, from, dayEnd(to))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list revenues for report")
	}

	return entries, revenues, nil
}

// expenseLabels maps expense type codes to display labels, including
// inactive entries so historical records keep their labels.
func (srv *reportService) expenseLabels(ctx context.Context, scope entity.TenantScope) (map[string]string, error) {
	dicts, err := srv.dictRepo.ListDictionaries(ctx, scope, entity.DictionaryExpenseType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load expense type dictionary")
	}

	labels := make(map[string]string, len(dicts))
	for _, d := range dicts {
		labels[d.Code] = d.DisplayLabel()
	}

	return labels, nil
}

func (srv *reportService) unitDefinitions(ctx context.Context, scope entity.TenantScope) ([]unit.Definition, error) {
	dicts, err := srv.dictRepo.ListDictionaries(ctx, scope, entity.DictionaryUnit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load unit dictionary")
	}

	defs := make([]unit.Definition, 0, len(dicts))
	for _, d := range dicts {
		defs = append(defs, unit.FromDictionary(d))
	}

	return defs, nil
}

// formatNumber renders amounts the way the UI shows them: no trailing
// zeros, no exponent notation.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orderRange(from, to time.Time) (time.Time, time.Time) {
	from, to = dayStart(from), dayStart(to)
	if from.After(to) {
		return to, from
	}

	return from, to
}
