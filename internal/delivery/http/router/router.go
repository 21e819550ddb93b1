// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stallbook/internal/delivery/http/middleware"
	"stallbook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	EntryHandler   *handler.EntryHandler
	RevenueHandler *handler.RevenueHandler
	ReportHandler  *handler.ReportHandler
	CatalogHandler *handler.CatalogHandler
	AdminHandler   *handler.AdminHandler
	TenantHandler  *handler.TenantHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	entryHandler   *handler.EntryHandler
	revenueHandler *handler.RevenueHandler
	reportHandler  *handler.ReportHandler
	catalogHandler *handler.CatalogHandler
	adminHandler   *handler.AdminHandler
	tenantHandler  *handler.TenantHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		entryHandler:   params.EntryHandler,
		revenueHandler: params.RevenueHandler,
		reportHandler:  params.ReportHandler,
		catalogHandler: params.CatalogHandler,
		adminHandler:   params.AdminHandler,
		tenantHandler:  params.TenantHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Business routes. Authentication is handled here; role checks
	// happen inside the usecases against the live user record.
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		entryGroup := apiGroup.Group("/entries")
		{
			entryGroup.POST("", r.entryHandler.Create)
			entryGroup.GET("", r.entryHandler.List)
			entryGroup.PUT("/:id", r.entryHandler.Update)
			entryGroup.PUT("/:id/status", r.entryHandler.SetStatus)
			entryGroup.DELETE("/:id", r.entryHandler.Delete)
		}

		revenueGroup := apiGroup.Group("/revenues")
		{
			revenueGroup.POST("", r.revenueHandler.Record)
			revenueGroup.GET("", r.revenueHandler.List)
			revenueGroup.PUT("/:id", r.revenueHandler.Update)
			revenueGroup.DELETE("/:id", r.revenueHandler.Delete)
		}

		reportGroup := apiGroup.Group("/reports")
		{
			reportGroup.GET("/summary", r.reportHandler.Summary)
			reportGroup.GET("/export", r.reportHandler.Export)
		}

		categoryGroup := apiGroup.Group("/categories")
		{
			categoryGroup.POST("", r.catalogHandler.SaveCategory)
			categoryGroup.GET("", r.catalogHandler.ListCategories)
			categoryGroup.DELETE("/:id", r.catalogHandler.DeleteCategory)
		}

		itemGroup := apiGroup.Group("/items")
		{
			itemGroup.POST("", r.catalogHandler.SaveItem)
			itemGroup.GET("", r.catalogHandler.ListItems)
			itemGroup.PUT("/:id/active", r.catalogHandler.SetItemActive)
		}

		vendorGroup := apiGroup.Group("/vendors")
		{
			vendorGroup.POST("", r.catalogHandler.SaveVendor)
			vendorGroup.GET("", r.catalogHandler.ListVendors)
			vendorGroup.PUT("/:id/active", r.catalogHandler.SetVendorActive)
		}

		locationGroup := apiGroup.Group("/locations")
		{
			locationGroup.POST("", r.catalogHandler.SaveLocation)
			locationGroup.GET("", r.catalogHandler.ListLocations)
			locationGroup.PUT("/:id/active", r.catalogHandler.SetLocationActive)
		}

		dictionaryGroup := apiGroup.Group("/dictionaries")
		{
			dictionaryGroup.POST("", r.catalogHandler.SaveDictionary)
			dictionaryGroup.GET("", r.catalogHandler.ListDictionaries)
			dictionaryGroup.PUT("/:id/active", r.catalogHandler.SetDictionaryActive)
		}

		apiGroup.GET("/units", r.catalogHandler.Units)

		// Tenant administration. Requires the admin role.
		adminGroup := apiGroup.Group("/admin")
		{
			adminGroup.GET("/users", r.adminHandler.ListUsers)
			adminGroup.POST("/users", r.adminHandler.CreateUser)
			adminGroup.PUT("/users/:id", r.adminHandler.UpdateUser)
			adminGroup.PUT("/users/:id/roles", r.adminHandler.ReplaceRoles)
			adminGroup.PUT("/users/:id/active", r.adminHandler.SetUserActive)
			adminGroup.PUT("/users/:id/password", r.adminHandler.ResetPassword)

			adminGroup.POST("/departments", r.adminHandler.CreateDepartment)
			adminGroup.GET("/departments", r.adminHandler.ListDepartments)
			adminGroup.DELETE("/departments/:id", r.adminHandler.DeleteDepartment)

			adminGroup.POST("/regions", r.adminHandler.CreateRegion)
			adminGroup.GET("/regions", r.adminHandler.ListRegions)
			adminGroup.DELETE("/regions/:id", r.adminHandler.DeleteRegion)

			adminGroup.GET("/logs", r.adminHandler.ListOperationLogs)
		}

		// Platform routes. Requires the super admin flag.
		platformGroup := apiGroup.Group("/platform")
		{
			platformGroup.POST("/tenants", r.tenantHandler.Provision)
			platformGroup.GET("/tenants", r.tenantHandler.List)
			platformGroup.PUT("/tenants/:id", r.tenantHandler.Rename)
			platformGroup.PUT("/tenants/:id/status", r.tenantHandler.SetStatus)
			platformGroup.GET("/stats", r.tenantHandler.Stats)
		}
	}
}
