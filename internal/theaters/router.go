package theaters

import (
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTheaterRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public routes - anyone can browse theaters
	publicTheaters := router.Group("/theaters")
	{
		publicTheaters.GET("", controller.ListTheaters) // GET /api/v1/theaters
	}

	// Admin routes - catalog management
	adminTheaters := router.Group("/admin/theaters")
	adminTheaters.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		adminTheaters.POST("", controller.CreateTheater)                   // POST /api/v1/admin/theaters
		adminTheaters.POST("/:theaterId/screens", controller.CreateScreen) // POST /api/v1/admin/theaters/:theaterId/screens
	}
}
