package movies

import (
	"net/http"

	"cinebook/internal/shared/apperrors"
	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	ListMovies(c *gin.Context)
	GetMovieDetail(c *gin.Context)
	CreateMovie(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// ListMovies handles GET /movies?search=
func (ctrl *controller) ListMovies(c *gin.Context) {
	var query MovieListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	movies, err := ctrl.service.ListMovies(c.Request.Context(), query)
	if err != nil {
		response.RespondJSON(c, "error", apperrors.HTTPStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Movies retrieved successfully", movies, nil)
}

// GetMovieDetail handles GET /movies/:movieId
func (ctrl *controller) GetMovieDetail(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("movieId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid movie ID", nil, err.Error())
		return
	}

	detail, err := ctrl.service.GetMovieDetail(c.Request.Context(), movieID)
	if err != nil {
		response.RespondJSON(c, "error", apperrors.HTTPStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Movie retrieved successfully", detail, nil)
}

// CreateMovie handles POST /admin/movies
func (ctrl *controller) CreateMovie(c *gin.Context) {
	var req CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	movie, err := ctrl.service.CreateMovie(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", apperrors.HTTPStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Movie created successfully", movie, nil)
}
