package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"stallbook/internal/delivery/http/middleware"
	"stallbook/internal/delivery/http/response"
	"stallbook/internal/domain/entity"
	"stallbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog and vocabulary handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

type categoryRequest struct {
	Name      string `json:"name" validate:"required"`
	SortOrder int    `json:"sortOrder"`
}

type itemRequest struct {
	Name        string     `json:"name" validate:"required"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	DefaultUnit string     `json:"defaultUnit"`
}

type vendorRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	Note  string `json:"note"`
}

type locationRequest struct {
	Name     string     `json:"name" validate:"required"`
	RegionID *uuid.UUID `json:"regionId"`
}

type dictionaryRequest struct {
	Category  string          `json:"category" validate:"required"`
	Code      string          `json:"code" validate:"required"`
	Label     string          `json:"label"`
	Meta      json.RawMessage `json:"meta"`
	SortOrder int             `json:"sortOrder"`
}

type activeRequest struct {
	Active bool `json:"active"`
}

// SaveCategory upserts an item category by name.
func (h *CatalogHandler) SaveCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.uc.SaveCategory(c.Request().Context(), middleware.GetClaims(c), usecase.CategoryInput{
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category saved successfully")
}

// ListCategories retrieves the tenant's categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context(), middleware.GetClaims(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// DeleteCategory removes a category that no item references.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), middleware.GetClaims(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}

// SaveItem upserts a purchasable item by name.
func (h *CatalogHandler) SaveItem(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.SaveItem(c.Request().Context(), middleware.GetClaims(c), usecase.ItemInput{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		DefaultUnit: req.DefaultUnit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Item saved successfully")
}

// ListItems retrieves the tenant's items.
func (h *CatalogHandler) ListItems(c echo.Context) error {
	items, err := h.uc.ListItems(c.Request().Context(), middleware.GetClaims(c), parseActiveOnly(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Items retrieved successfully")
}

// SetItemActive toggles whether an item appears in pickers.
func (h *CatalogHandler) SetItemActive(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var req activeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := h.uc.SetItemActive(c.Request().Context(), middleware.GetClaims(c), id, req.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item updated successfully")
}

// SaveVendor upserts a vendor by name.
func (h *CatalogHandler) SaveVendor(c echo.Context) error {
	var req vendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	vendor, err := h.uc.SaveVendor(c.Request().Context(), middleware.GetClaims(c), usecase.VendorInput{
		Name:  req.Name,
		Phone: req.Phone,
		Note:  req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor saved successfully")
}

// ListVendors retrieves the tenant's vendors.
func (h *CatalogHandler) ListVendors(c echo.Context) error {
	vendors, err := h.uc.ListVendors(c.Request().Context(), middleware.GetClaims(c), parseActiveOnly(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendors, "Vendors retrieved successfully")
}

// SetVendorActive toggles whether a vendor appears in pickers.
func (h *CatalogHandler) SetVendorActive(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var req activeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := h.uc.SetVendorActive(c.Request().Context(), middleware.GetClaims(c), id, req.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Vendor updated successfully")
}

// SaveLocation upserts a selling location by name.
func (h *CatalogHandler) SaveLocation(c echo.Context) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location, err := h.uc.SaveLocation(c.Request().Context(), middleware.GetClaims(c), usecase.LocationInput{
		Name:     req.Name,
		RegionID: req.RegionID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location saved successfully")
}

// ListLocations retrieves the tenant's selling locations.
func (h *CatalogHandler) ListLocations(c echo.Context) error {
	locations, err := h.uc.ListLocations(c.Request().Context(), middleware.GetClaims(c), parseActiveOnly(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// SetLocationActive toggles whether a location appears in pickers.
func (h *CatalogHandler) SetLocationActive(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var req activeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := h.uc.SetLocationActive(c.Request().Context(), middleware.GetClaims(c), id, req.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Location updated successfully")
}

// SaveDictionary upserts a vocabulary entry by category and code.
func (h *CatalogHandler) SaveDictionary(c echo.Context) error {
	var req dictionaryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dictionary input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dict, err := h.uc.SaveDictionary(c.Request().Context(), middleware.GetClaims(c), usecase.DictionaryInput{
		Category:  entity.DictionaryCategory(req.Category),
		Code:      req.Code,
		Label:     req.Label,
		Meta:      req.Meta,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dict, "Dictionary entry saved successfully")
}

// ListDictionaries retrieves the tenant's vocabulary for one category.
func (h *CatalogHandler) ListDictionaries(c echo.Context) error {
	category := entity.DictionaryCategory(c.QueryParam("category"))

	dicts, err := h.uc.ListDictionaries(c.Request().Context(), middleware.GetClaims(c), category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dicts, "Dictionary entries retrieved successfully")
}

// SetDictionaryActive toggles whether a vocabulary entry appears in pickers.
func (h *CatalogHandler) SetDictionaryActive(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var req activeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := h.uc.SetDictionaryActive(c.Request().Context(), middleware.GetClaims(c), id, req.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dictionary entry updated successfully")
}

// Units resolves the tenant's effective unit definitions.
func (h *CatalogHandler) Units(c echo.Context) error {
	units, err := h.uc.Units(c.Request().Context(), middleware.GetClaims(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, units, "Units retrieved successfully")
}
