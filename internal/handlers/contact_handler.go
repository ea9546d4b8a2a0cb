package handlers

import (
	"net/http"

	"patitas_backend/internal/services"
	"patitas_backend/internal/services/dto"
	"patitas_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/contact", h.ContactPage)
	rg.POST("/contact", h.Submit)
}

func (h *ContactHandler) ContactPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "contact"})
}

// Submit stores the message and sends the visitor back to the form. A
// storage failure still redirects, carrying only a generic notice.
func (h *ContactHandler) Submit(c *gin.Context) {
	var form dto.ContactForm
	if !h.BindAndValidate(c, &form) {
		return
	}

	if err := h.contactService.Submit(c.Request.Context(), &form); err != nil {
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) && appErr.HTTPCode < http.StatusInternalServerError {
			h.HandleServiceError(c, err)
			return
		}
		c.Redirect(http.StatusFound, "/contact?sent=0")
		return
	}
	c.Redirect(http.StatusFound, "/contact?sent=1")
}
