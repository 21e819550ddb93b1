package handler

import (
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

// AdminHandler holds dependencies for tenant administration handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

type createUserRequest struct {
	Username     string     `json:"username" validate:"required"`
	Password     string     `json:"password" validate:"required,min=6"`
	RealName     string     `json:"realName"`
	Roles        []string   `json:"roles" validate:"required,min=1"`
	DepartmentID *uuid.UUID `json:"departmentId"`
}

type updateUserRequest struct {
	RealName     string     `json:"realName"`
	DepartmentID *uuid.UUID `json:"departmentId"`
}

type replaceRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type nameRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListUsers retrieves the tenant's user accounts.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context(), middleware.GetClaims(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "Users retrieved successfully")
}

// CreateUser creates a new account inside the admin's tenant.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.CreateUser(c.Request().Context(), middleware.GetClaims(c), usecase.CreateUserInput{
		Username:     req.Username,
		Password:     req.Password,
		RealName:     req.RealName,
		Roles:        entity.RoleCodesFromStrings(req.Roles),
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(user), "User created successfully")
}

// UpdateUser edits a user's profile fields.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := h.uc.UpdateUser(c.Request().Context(), middleware.GetClaims(c), id, usecase.UpdateUserInput{
		RealName:     req.RealName,
		DepartmentID: req.DepartmentID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User updated successfully")
}

// ReplaceRoles swaps a user's role assignments.
func (h *AdminHandler) ReplaceRoles(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var req replaceRolesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid roles input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ReplaceUserRoles(c.Request().Context(), middleware.GetClaims(c), id, entity.RoleCodesFromStrings(req.Roles)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Roles updated successfully")
}

// SetUserActive toggles whether a user may sign in.
func (h *AdminHandler) SetUserActive(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var req activeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := h.uc.SetUserActive(c.Request().Context(), middleware.GetClaims(c), id, req.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User updated successfully")
}

// ResetPassword replaces a user's password.
func (h *AdminHandler) ResetPassword(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), middleware.GetClaims(c), id, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

// CreateDepartment adds an organizational unit.
func (h *AdminHandler) CreateDepartment(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid department input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	department, err := h.uc.CreateDepartment(c.Request().Context(), middleware.GetClaims(c), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, department, "Department created successfully")
}

// ListDepartments retrieves the tenant's departments.
func (h *AdminHandler) ListDepartments(c echo.Context) error {
	departments, err := h.uc.ListDepartments(c.Request().Context(), middleware.GetClaims(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, departments, "Departments retrieved successfully")
}

// DeleteDepartment removes a department; assigned users are detached.
func (h *AdminHandler) DeleteDepartment(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.DeleteDepartment(c.Request().Context(), middleware.GetClaims(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Department deleted successfully")
}

// CreateRegion adds a location grouping.
func (h *AdminHandler) CreateRegion(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid region input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	region, err := h.uc.CreateRegion(c.Request().Context(), middleware.GetClaims(c), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, region, "Region created successfully")
}

// ListRegions retrieves the tenant's regions.
func (h *AdminHandler) ListRegions(c echo.Context) error {
	regions, err := h.uc.ListRegions(c.Request().Context(), middleware.GetClaims(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, regions, "Regions retrieved successfully")
}

// DeleteRegion removes a region with no attached locations.
func (h *AdminHandler) DeleteRegion(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.DeleteRegion(c.Request().Context(), middleware.GetClaims(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Region deleted successfully")
}

// ListOperationLogs retrieves the tenant's newest audit records.
func (h *AdminHandler) ListOperationLogs(c echo.Context) error {
	logs, err := h.uc.ListOperationLogs(c.Request().Context(), middleware.GetClaims(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "Operation logs retrieved successfully")
}
