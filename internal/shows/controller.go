package shows

import (
	"net/http"

	"cinebook/internal/shared/apperrors"
	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	GetShowDetails(c *gin.Context)
	CreateShow(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetShowDetails handles GET /shows/:showId
func (ctrl *controller) GetShowDetails(c *gin.Context) {
	showID, err := uuid.Parse(c.Param("showId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid show ID", nil, err.Error())
		return
	}

	detail, err := ctrl.service.GetShowDetails(c.Request.Context(), showID)
	if err != nil {
		response.RespondJSON(c, "error", apperrors.HTTPStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Show retrieved successfully", detail, nil)
}

// CreateShow handles POST /admin/shows
func (ctrl *controller) CreateShow(c *gin.Context) {
	var req CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	show, err := ctrl.service.CreateShow(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", apperrors.HTTPStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Show created successfully", show, nil)
}
