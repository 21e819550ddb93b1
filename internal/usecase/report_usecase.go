package usecase

import (
	"context"
	"time"

	"stallbook/internal/domain/report"
	"stallbook/internal/domain/service"
)

// ExportKind selects which dataset a CSV export covers.
type ExportKind string

const (
	// ExportEntries exports cost entries.
	ExportEntries ExportKind = "entries"
	// ExportRevenues exports daily revenue records.
	ExportRevenues ExportKind = "revenues"
)

// IsValid checks if the ExportKind is a known value.
func (k ExportKind) IsValid() bool {
	switch k {
	case ExportEntries, ExportRevenues:
		return true
	default:
		return false
	}
}

// ExportFile is a rendered CSV download.
type ExportFile struct {
	Filename string
	Data     []byte
}

// ReportUsecase defines the interface for aggregate reporting.
type ReportUsecase interface {
	// BuildReport aggregates the scope's entries and revenues over
	// [from, to] into daily series, totals, top items and the expense
	// breakdown.
	BuildReport(ctx context.Context, claims *service.Claims, from, to time.Time) (*report.Summary, error)

	// ExportCSV renders one dataset over [from, to] as a
	// spreadsheet-compatible CSV file.
	ExportCSV(ctx context.Context, claims *service.Claims, kind ExportKind, from, to time.Time) (*ExportFile, error)
}
