// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"greenloop/config"
	"greenloop/internal/delivery/api/middleware"
	"greenloop/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	AnnouncementHandler *handler.AnnouncementHandler
	CollectionHandler   *handler.CollectionHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	announcementHandler *handler.AnnouncementHandler
	collectionHandler   *handler.CollectionHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		announcementHandler: params.AnnouncementHandler,
		collectionHandler:   params.CollectionHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// User routes
	userGroup := apiV1.Group("/user")
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.POST("/devices", r.userHandler.RegisterDevice)
	}

	// Announcement lifecycle routes
	announcementsGroup := apiV1.Group("/announcements")
	{
		announcementsGroup.POST("", r.announcementHandler.Create)
		announcementsGroup.GET("", r.announcementHandler.List)
		announcementsGroup.GET("/:id", r.announcementHandler.Get)
		announcementsGroup.POST("/:id/reserve", r.announcementHandler.Reserve)
		announcementsGroup.POST("/:id/confirm", r.announcementHandler.Confirm)
		announcementsGroup.PATCH("/:id/status", r.announcementHandler.SetStatus)
		announcementsGroup.POST("/:id/image", r.announcementHandler.AttachImage)

		// QR collection flow
		announcementsGroup.GET("/:id/qr", r.collectionHandler.IssueQR)
		announcementsGroup.POST("/:id/scan", r.collectionHandler.Scan)
	}

	// Collection history
	collectionsGroup := apiV1.Group("/collections")
	{
		collectionsGroup.GET("", r.collectionHandler.History)
	}
}
