package movies

import (
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupMovieRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public routes - anyone can browse the catalog
	publicMovies := router.Group("/movies")
	{
		publicMovies.GET("", controller.ListMovies)              // GET /api/v1/movies?search=
		publicMovies.GET("/:movieId", controller.GetMovieDetail) // GET /api/v1/movies/:movieId
	}

	// Admin routes - catalog management
	adminMovies := router.Group("/admin/movies")
	adminMovies.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		adminMovies.POST("", controller.CreateMovie) // POST /api/v1/admin/movies
	}
}
