// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"esimhub/internal/delivery/http/middleware"
	"esimhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EsimHandler         *handler.EsimHandler
	OrderHandler        *handler.OrderHandler
	CatalogHandler      *handler.CatalogHandler
	NotificationHandler *handler.NotificationHandler
	WebhookHandler      *handler.WebhookHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	esimHandler         *handler.EsimHandler
	orderHandler        *handler.OrderHandler
	catalogHandler      *handler.CatalogHandler
	notificationHandler *handler.NotificationHandler
	webhookHandler      *handler.WebhookHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		esimHandler:         params.EsimHandler,
		orderHandler:        params.OrderHandler,
		catalogHandler:      params.CatalogHandler,
		notificationHandler: params.NotificationHandler,
		webhookHandler:      params.WebhookHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Provider push deliveries authenticate with an HMAC signature, not a
	// bearer token.
	e.POST("/webhooks/esim", r.webhookHandler.Receive)

	// Public catalog routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/packages", r.catalogHandler.ListPackages)
	}

	// eSIM profile routes that require authentication
	esimGroup := e.Group("/esims")
	esimGroup.Use(r.authMiddleware.Authenticate)
	{
		esimGroup.GET("", r.esimHandler.List)
		esimGroup.POST("/sync", r.esimHandler.Sync)
		esimGroup.GET("/:id", r.esimHandler.Get)
		esimGroup.GET("/:id/qrcode", r.esimHandler.ActivationQR)
		esimGroup.POST("/:id/topup", r.esimHandler.TopUp)
		esimGroup.POST("/:id/suspend", r.esimHandler.Suspend)
		esimGroup.POST("/:id/unsuspend", r.esimHandler.Unsuspend)
		esimGroup.POST("/:id/revoke", r.esimHandler.Revoke)
	}

	// Purchase order routes that require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Purchase)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
	}

	// Notification inbox routes that require authentication
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationGroup.PUT("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.PUT("/read-all", r.notificationHandler.MarkAllRead)
	}

	// Reseller account routes that require authentication
	accountGroup := e.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/balance", r.catalogHandler.GetBalance)
	}
}
