package handler

import (
	"log/slog"
	"net/http"
	"time"

	"stallbook/internal/delivery/http/middleware"
	"stallbook/internal/delivery/http/response"
	"stallbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RevenueHandler holds dependencies for daily revenue handlers.
type RevenueHandler struct {
	uc     usecase.RevenueUsecase
	logger *slog.Logger
}

// NewRevenueHandler is the constructor for RevenueHandler, injected by Fx.
func NewRevenueHandler(uc usecase.RevenueUsecase, logger *slog.Logger) *RevenueHandler {
	return &RevenueHandler{
		uc:     uc,
		logger: logger,
	}
}

type revenueRequest struct {
	LocationID uuid.UUID `json:"locationId" validate:"required"`
	Date       string    `json:"date" validate:"required"`
	Amount     float64   `json:"amount"`
	IsDayOff   bool      `json:"isDayOff"`
	Note       string    `json:"note"`
}

func (r *revenueRequest) toInput() (usecase.RevenueInput, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return usecase.RevenueInput{}, errors.Wrap(err, "invalid revenue date")
	}

	return usecase.RevenueInput{
		LocationID: r.LocationID,
		Date:       date,
		Amount:     r.Amount,
		IsDayOff:   r.IsDayOff,
		Note:       r.Note,
	}, nil
}

// Record handles writing a location's takings for one day. Submitting
// the same location and date again replaces the previous record.
func (h *RevenueHandler) Record(c echo.Context) error {
	var req revenueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid revenue input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	revenue, err := h.uc.RecordRevenue(c.Request().Context(), middleware.GetClaims(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, revenue, "Revenue recorded successfully")
}

// Update handles editing an existing revenue record by ID.
func (h *RevenueHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var req revenueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid revenue input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	revenue, err := h.uc.UpdateRevenue(c.Request().Context(), middleware.GetClaims(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, revenue, "Revenue updated successfully")
}

// Delete handles removing a revenue record.
func (h *RevenueHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.DeleteRevenue(c.Request().Context(), middleware.GetClaims(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Revenue deleted successfully")
}

// List handles retrieving revenue records within a date range.
func (h *RevenueHandler) List(c echo.Context) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	revenues, err := h.uc.ListRevenues(c.Request().Context(), middleware.GetClaims(c), from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, revenues, "Revenues retrieved successfully")
}
