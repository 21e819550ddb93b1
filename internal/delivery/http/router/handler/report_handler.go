package handler

import (
	"log/slog"
	"net/http"

	"stallbook/internal/delivery/http/middleware"
	"stallbook/internal/delivery/http/response"
	"stallbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for reporting and export handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: logger,
	}
}

// Summary handles building the aggregate report over a date range.
func (h *ReportHandler) Summary(c echo.Context) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	summary, err := h.uc.BuildReport(c.Request().Context(), middleware.GetClaims(c), from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Report built successfully")
}

// Export streams one dataset over a date range as a CSV download.
func (h *ReportHandler) Export(c echo.Context) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	kind := usecase.ExportKind(c.QueryParam("type"))

	file, err := h.uc.ExportCSV(c.Request().Context(), middleware.GetClaims(c), kind, from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.CSV(c, file.Filename, file.Data)
}
