package shows

import (
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupShowRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public routes - seat availability is readable by anyone
	publicShows := router.Group("/shows")
	{
		publicShows.GET("/:showId", controller.GetShowDetails) // GET /api/v1/shows/:showId
	}

	// Admin routes - scheduling
	adminShows := router.Group("/admin/shows")
	adminShows.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		adminShows.POST("", controller.CreateShow) // POST /api/v1/admin/shows
	}
}
