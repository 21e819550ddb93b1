package handler

import (
	"log/slog"
	"net/http"

	"stallbook/internal/delivery/http/middleware"
	"stallbook/internal/delivery/http/response"
	"stallbook/internal/domain/entity"
	"stallbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TenantHandler holds dependencies for platform-level tenant handlers.
type TenantHandler struct {
	uc     usecase.TenantUsecase
	logger *slog.Logger
}

// NewTenantHandler is the constructor for TenantHandler, injected by Fx.
func NewTenantHandler(uc usecase.TenantUsecase, logger *slog.Logger) *TenantHandler {
	return &TenantHandler{
		uc:     uc,
		logger: logger,
	}
}

type provisionTenantRequest struct {
	Code          string `json:"code" validate:"required"`
	Name          string `json:"name" validate:"required"`
	AdminUsername string `json:"adminUsername" validate:"required"`
	AdminPassword string `json:"adminPassword" validate:"required,min=6"`
	AdminRealName string `json:"adminRealName"`
}

type tenantStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

type provisionTenantView struct {
	Tenant *entity.Tenant `json:"tenant"`
	Admin  userView       `json:"admin"`
}

type platformStatsView struct {
	TenantCount  int64 `json:"tenantCount"`
	UserCount    int64 `json:"userCount"`
	EntryCount   int64 `json:"entryCount"`
	RevenueCount int64 `json:"revenueCount"`
}

// Provision creates a tenant with its first admin account and default
// vocabularies in one transaction.
func (h *TenantHandler) Provision(c echo.Context) error {
	var req provisionTenantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tenant input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.ProvisionTenant(c.Request().Context(), middleware.GetClaims(c), usecase.ProvisionTenantInput{
		Code:          req.Code,
		Name:          req.Name,
		AdminUsername: req.AdminUsername,
		AdminPassword: req.AdminPassword,
		AdminRealName: req.AdminRealName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := provisionTenantView{
		Tenant: out.Tenant,
		Admin:  toUserView(out.Admin),
	}

	return response.Success(c, http.StatusCreated, view, "Tenant provisioned successfully")
}

// List retrieves every tenant on the platform, newest first.
func (h *TenantHandler) List(c echo.Context) error {
	tenants, err := h.uc.ListTenants(c.Request().Context(), middleware.GetClaims(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tenants, "Tenants retrieved successfully")
}

// Rename changes a tenant's display name.
func (h *TenantHandler) Rename(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tenant input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.RenameTenant(c.Request().Context(), middleware.GetClaims(c), id, req.Name); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tenant updated successfully")
}

// SetStatus switches a tenant between active and suspended.
func (h *TenantHandler) SetStatus(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var req tenantStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.SetTenantStatus(c.Request().Context(), middleware.GetClaims(c), id, entity.TenantStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tenant status updated successfully")
}

// Stats summarizes platform-wide usage counts.
func (h *TenantHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context(), middleware.GetClaims(c))
	if err != nil {
		return errors.WithStack(err)
	}

	view := platformStatsView{
		TenantCount:  stats.TenantCount,
		UserCount:    stats.UserCount,
		EntryCount:   stats.EntryCount,
		RevenueCount: stats.RevenueCount,
	}

	return response.Success(c, http.StatusOK, view, "Platform stats retrieved successfully")
}
