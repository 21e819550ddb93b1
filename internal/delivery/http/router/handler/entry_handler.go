package handler

import (
	"log/slog"
	"net/http"
	"time"

	"stallbook/internal/delivery/http/middleware"
	"stallbook/internal/delivery/http/response"
	"stallbook/internal/domain/entity"
	"stallbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EntryHandler holds dependencies for cost entry handlers.
type EntryHandler struct {
	uc     usecase.EntryUsecase
	logger *slog.Logger
}

// NewEntryHandler is the constructor for EntryHandler, injected by Fx.
func NewEntryHandler(uc usecase.EntryUsecase, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		uc:     uc,
		logger: logger,
	}
}

type entryRequest struct {
	Type        string     `json:"type" validate:"required"`
	Date        string     `json:"date" validate:"required"`
	ItemID      *uuid.UUID `json:"itemId"`
	VendorID    *uuid.UUID `json:"vendorId"`
	ExpenseType string     `json:"expenseType"`
	Quantity    float64    `json:"quantity"`
	Unit        string     `json:"unit"`
	Price       float64    `json:"price"`
	Note        string     `json:"note"`
}

func (r *entryRequest) toInput() (usecase.EntryInput, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return usecase.EntryInput{}, errors.Wrap(err, "invalid entry date")
	}

	return usecase.EntryInput{
		Type:        entity.EntryType(r.Type),
		Date:        date,
		ItemID:      r.ItemID,
		VendorID:    r.VendorID,
		ExpenseType: r.ExpenseType,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		Price:       r.Price,
		Note:        r.Note,
	}, nil
}

// Create handles recording a new cost entry.
func (h *EntryHandler) Create(c echo.Context) error {
	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	entry, err := h.uc.CreateEntry(c.Request().Context(), middleware.GetClaims(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Entry created successfully")
}

// Update handles editing an existing cost entry.
func (h *EntryHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	entry, err := h.uc.UpdateEntry(c.Request().Context(), middleware.GetClaims(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Entry updated successfully")
}

type entryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}

// SetStatus handles moving an entry through the review workflow.
func (h *EntryHandler) SetStatus(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var req entryStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, err := h.uc.SetEntryStatus(c.Request().Context(), middleware.GetClaims(c), id, entity.EntryStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Entry status updated successfully")
}

// Delete handles removing a cost entry.
func (h *EntryHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.DeleteEntry(c.Request().Context(), middleware.GetClaims(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Entry deleted successfully")
}

// List handles retrieving entries within a date range.
func (h *EntryHandler) List(c echo.Context) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	entries, err := h.uc.ListEntries(c.Request().Context(), middleware.GetClaims(c), from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Entries retrieved successfully")
}
