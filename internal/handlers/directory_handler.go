package handlers

import (
	"net/http"

	"patitas_backend/internal/middleware"
	"patitas_backend/internal/services"
	"patitas_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// PlaceholderPhotoPath is served when a caregiver has no photo.
const PlaceholderPhotoPath = "/static/assets/img/placeholder.jpg"

type DirectoryHandler struct {
	*BaseHandler
	directoryService services.DirectoryService
}

func NewDirectoryHandler(base *BaseHandler, directoryService services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{
		BaseHandler:      base,
		directoryService: directoryService,
	}
}

func (h *DirectoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
	rg.GET("/api/foto/:userID", h.Photo)
}

// Dashboard returns the caregiver directory for the signed-in user.
func (h *DirectoryHandler) Dashboard(c *gin.Context) {
	caregivers, err := h.directoryService.ListCaregivers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	payload := gin.H{"cuidadores": caregivers}
	if user, ok := middleware.CurrentUser(c); ok {
		payload["usuario"] = gin.H{
			"id":     user.ID,
			"nombre": user.Name,
			"role":   user.Role,
		}
	}
	c.JSON(http.StatusOK, payload)
}

// Photo resolves a caregiver's photo: external URLs redirect, stored blobs
// are served directly, anything else falls back to the placeholder.
func (h *DirectoryHandler) Photo(c *gin.Context) {
	userID, err := ParseParamUint(c, "userID")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	ref, err := h.directoryService.CaregiverPhoto(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	switch ref.Kind {
	case storage.PhotoExternal:
		c.Redirect(http.StatusFound, ref.URL)
	case storage.PhotoInline:
		c.Data(http.StatusOK, ref.ContentType, ref.Data)
	default:
		c.Redirect(http.StatusFound, PlaceholderPhotoPath)
	}
}
