package bookings

import (
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public routes - guests can book; a token, when present, attaches
	// the booking to the user
	publicBookings := router.Group("/bookings")
	publicBookings.Use(middleware.OptionalAuth(cfg))
	{
		publicBookings.POST("", controller.CreateBooking)                // POST /api/v1/bookings
		publicBookings.GET("/:bookingId", controller.GetBookingDetails) // GET /api/v1/bookings/:bookingId
	}

	// Admin routes - operational listing
	adminBookings := router.Group("/admin/bookings")
	adminBookings.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		adminBookings.GET("", controller.GetAllBookings) // GET /api/v1/admin/bookings
	}
}
