package handlers

import (
	"net/http"
	"net/url"

	"patitas_backend/internal/logger"
	"patitas_backend/internal/services"
	"patitas_backend/internal/services/dto"
	"patitas_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

// RegisterRoutes mounts the back office. The group is expected to carry
// AuthMiddleware plus RequireAdmin.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Main)
	rg.GET("/page/:token", h.Page)

	rg.POST("/cuidador/add", h.AddCaregiver)
	rg.POST("/cuidador/edit/:id", h.EditCaregiver)
	rg.POST("/cuidador/delete/:id", h.DeleteCaregiver)

	rg.POST("/cliente/add", h.AddClient)
	rg.POST("/cliente/edit/:id", h.EditClient)
	rg.POST("/cliente/delete/:id", h.DeleteClient)

	rg.POST("/resena/add", h.AddReview)
	rg.POST("/resena/edit/:id", h.EditReview)
	rg.POST("/resena/delete/:id", h.DeleteReview)

	rg.POST("/comentario/read/:id", h.MarkContactMessageRead)
	rg.POST("/comentario/delete/:id", h.DeleteContactMessage)
}

// Main serves the default listing, first page of caregivers.
func (h *AdminHandler) Main(c *gin.Context) {
	h.renderListing(c, DefaultPageToken)
}

// Page serves one page of one entity family. A malformed token falls back
// to the default listing instead of an error page.
func (h *AdminHandler) Page(c *gin.Context) {
	token := c.Param("token")
	if _, _, err := ParsePageToken(token); err != nil {
		c.Redirect(http.StatusFound, "/admin/?invalid_page=1")
		return
	}
	h.renderListing(c, token)
}

func (h *AdminHandler) renderListing(c *gin.Context, token string) {
	family, page, err := ParsePageToken(token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	listing, err := h.adminService.Listing(family, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// --- Caregivers ---

func (h *AdminHandler) AddCaregiver(c *gin.Context) {
	var form dto.CaregiverForm
	if !h.BindAndValidate(c, &form) {
		return
	}
	photo, err := ReadPhotoUpload(c)
	if err != nil {
		h.redirectBack(c, err)
		return
	}
	h.redirectBack(c, h.adminService.AddCaregiver(c.Request.Context(), &form, photo))
}

func (h *AdminHandler) EditCaregiver(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	var form dto.CaregiverForm
	if !h.BindAndValidate(c, &form) {
		return
	}
	photo, err := ReadPhotoUpload(c)
	if err != nil {
		h.redirectBack(c, err)
		return
	}
	h.redirectBack(c, h.adminService.EditCaregiver(c.Request.Context(), id, &form, photo))
}

func (h *AdminHandler) DeleteCaregiver(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.redirectBack(c, h.adminService.DeleteCaregiver(id))
}

// --- Clients ---

func (h *AdminHandler) AddClient(c *gin.Context) {
	var form dto.ClientForm
	if !h.BindAndValidate(c, &form) {
		return
	}
	h.redirectBack(c, h.adminService.AddClient(&form))
}

func (h *AdminHandler) EditClient(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	var form dto.ClientForm
	if !h.BindAndValidate(c, &form) {
		return
	}
	h.redirectBack(c, h.adminService.EditClient(id, &form))
}

func (h *AdminHandler) DeleteClient(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.redirectBack(c, h.adminService.DeleteClient(id))
}

// --- Reviews ---

func (h *AdminHandler) AddReview(c *gin.Context) {
	var form dto.ReviewForm
	if !h.BindAndValidate(c, &form) {
		return
	}
	h.redirectBack(c, h.adminService.AddReview(&form))
}

func (h *AdminHandler) EditReview(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	var form dto.ReviewForm
	if !h.BindAndValidate(c, &form) {
		return
	}
	h.redirectBack(c, h.adminService.EditReview(id, &form))
}

func (h *AdminHandler) DeleteReview(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.redirectBack(c, h.adminService.DeleteReview(id))
}

// --- Contact ---

func (h *AdminHandler) MarkContactMessageRead(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.redirectBack(c, h.adminService.MarkContactMessageRead(id))
}

func (h *AdminHandler) DeleteContactMessage(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.redirectBack(c, h.adminService.DeleteContactMessage(id))
}

// redirectBack sends the admin to the page token the form came from.
// Success and failure both land there; failures carry the error message in
// the query string so the front can show a notice.
func (h *AdminHandler) redirectBack(c *gin.Context, err error) {
	token := c.PostForm("source_page")
	if _, _, tokenErr := ParsePageToken(token); tokenErr != nil {
		token = DefaultPageToken
	}

	target := "/admin/page/" + token
	if err != nil {
		message := "Operation failed"
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			message = appErr.Message
		}
		logger.CtxWarn(c.Request.Context(), "Admin operation failed",
			"error", err.Error(),
			"path", c.Request.URL.Path,
		)
		target += "?error=" + url.QueryEscape(message)
	}
	c.Redirect(http.StatusFound, target)
}
