// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"automo/internal/delivery/http/middleware"
	"automo/internal/delivery/http/router/handler"
	"automo/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	SearchHandler   *handler.SearchHandler
	BookingHandler  *handler.BookingHandler
	ProviderHandler *handler.ProviderHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	searchHandler   *handler.SearchHandler
	bookingHandler  *handler.BookingHandler
	providerHandler *handler.ProviderHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		searchHandler:   params.SearchHandler,
		bookingHandler:  params.BookingHandler,
		providerHandler: params.ProviderHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/route", r.authHandler.Route, r.authMiddleware.Authenticate)
	}

	// Public discovery routes
	providersGroup := e.Group("/providers")
	{
		providersGroup.GET("/search", r.searchHandler.SearchProviders)
		providersGroup.GET("/:id", r.searchHandler.GetPublicListing)
		providersGroup.GET("/:id/reviews", r.searchHandler.ListProviderReviews)
	}

	// Account routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PATCH("/profile", r.userHandler.UpdateProfile)
		userGroup.POST("/avatar", r.userHandler.UploadAvatar)
		userGroup.POST("/provider-application", r.providerHandler.Apply)
		userGroup.GET("/provider-application", r.providerHandler.GetApplication)
	}

	// Customer booking routes
	bookingGroup := e.Group("/bookings")
	bookingGroup.Use(r.authMiddleware.Authenticate)
	{
		bookingGroup.POST("/quote", r.bookingHandler.Quote)
		bookingGroup.POST("", r.bookingHandler.CreateBooking)
		bookingGroup.GET("", r.bookingHandler.ListMyBookings)
		bookingGroup.GET("/:id", r.bookingHandler.GetBooking)
		bookingGroup.GET("/:id/qr", r.bookingHandler.GetBookingQR)
		bookingGroup.POST("/:id/cancel", r.bookingHandler.CancelBooking)
		bookingGroup.POST("/:id/review", r.bookingHandler.ReviewBooking)
	}

	// Provider routes that require authentication and the "provider" role
	providerGroup := e.Group("/provider")
	providerGroup.Use(r.authMiddleware.Authenticate)
	providerGroup.Use(r.authMiddleware.RequireRole(entity.RoleProvider.String()))
	{
		providerGroup.GET("/listing", r.providerHandler.GetListing)
		providerGroup.PATCH("/listing", r.providerHandler.UpdateListing)
		providerGroup.POST("/listing/logo", r.providerHandler.UploadLogo)
		providerGroup.POST("/device-tokens", r.providerHandler.RegisterDeviceToken)
		providerGroup.GET("/offerings", r.providerHandler.ListOfferings)
		providerGroup.POST("/offerings", r.providerHandler.CreateOffering)
		providerGroup.PUT("/offerings/:id", r.providerHandler.UpdateOffering)
		providerGroup.DELETE("/offerings/:id", r.providerHandler.DeleteOffering)
		providerGroup.GET("/bookings", r.bookingHandler.ListProviderBookings)
		providerGroup.POST("/bookings/:id/confirm", r.bookingHandler.ConfirmBooking)
		providerGroup.POST("/bookings/:id/decline", r.bookingHandler.DeclineBooking)
		providerGroup.POST("/bookings/:id/complete", r.bookingHandler.CompleteBooking)
		providerGroup.GET("/customers", r.providerHandler.ListCustomers)
		providerGroup.GET("/revenue", r.providerHandler.Revenue)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/provider-requests", r.adminHandler.ListPendingRequests)
		adminGroup.POST("/provider-requests/:id/approve", r.adminHandler.ApproveRequest)
		adminGroup.POST("/provider-requests/:id/reject", r.adminHandler.RejectRequest)
		adminGroup.POST("/providers/:id/suspend", r.adminHandler.SuspendProvider)
		adminGroup.POST("/providers/:id/reinstate", r.adminHandler.ReinstateProvider)
	}
}
