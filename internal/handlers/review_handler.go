package handlers

import (
	"net/http"

	"patitas_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/api/reviews/:caregiverID", h.ListByCaregiver)
}

// ListByCaregiver returns the caregiver's reviews newest first. A
// caregiver with none gets an empty data list.
func (h *ReviewHandler) ListByCaregiver(c *gin.Context) {
	caregiverID, err := ParseParamUint(c, "caregiverID")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	rows, err := h.reviewService.ListByCaregiver(caregiverID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   rows,
	})
}
