package theaters

import (
	"net/http"

	"cinebook/internal/shared/apperrors"
	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	ListTheaters(c *gin.Context)
	CreateTheater(c *gin.Context)
	CreateScreen(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// ListTheaters handles GET /theaters
func (ctrl *controller) ListTheaters(c *gin.Context) {
	theaters, err := ctrl.service.ListTheaters(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", apperrors.HTTPStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Theaters retrieved successfully", theaters, nil)
}

// CreateTheater handles POST /admin/theaters
func (ctrl *controller) CreateTheater(c *gin.Context) {
	var req CreateTheaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	theater, err := ctrl.service.CreateTheater(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", apperrors.HTTPStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Theater created successfully", theater, nil)
}

// CreateScreen handles POST /admin/theaters/:theaterId/screens
func (ctrl *controller) CreateScreen(c *gin.Context) {
	theaterID, err := uuid.Parse(c.Param("theaterId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid theater ID", nil, err.Error())
		return
	}

	var req CreateScreenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	screen, err := ctrl.service.CreateScreen(c.Request.Context(), theaterID, req)
	if err != nil {
		response.RespondJSON(c, "error", apperrors.HTTPStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Screen created successfully", screen, nil)
}
