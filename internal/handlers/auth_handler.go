package handlers

import (
	"net/http"
	"net/url"
	"time"

	"patitas_backend/internal/auth"
	"patitas_backend/internal/middleware"
	"patitas_backend/internal/models"
	"patitas_backend/internal/services"
	"patitas_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService   services.AuthService
	sessionSecret string
	sessionTTL    time.Duration
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, sessionSecret string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   base,
		authService:   authService,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
	}
}

// RegisterPublicRoutes mounts the routes reachable without a session. The
// group is expected to carry OptionalAuth so a signed-in visitor is
// recognized.
func (h *AuthHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Landing)
	rg.GET("/login", h.LoginPage)
	rg.POST("/login", h.Login)
	rg.GET("/register", h.RegisterPage)
	rg.POST("/register", h.Register)
}

// RegisterPrivateRoutes mounts the routes behind AuthMiddleware.
func (h *AuthHandler) RegisterPrivateRoutes(rg *gin.RouterGroup) {
	rg.GET("/logout", h.Logout)
}

func (h *AuthHandler) Landing(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "landing"})
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	if user, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, homeFor(user))
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "login"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	token, err := auth.GenerateSessionToken(h.sessionSecret, user.ID, h.sessionTTL)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.SetCookie(middleware.SessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", false, true)

	// A relative next target wins; anything carrying a host is ignored.
	if next := c.Query("next"); next != "" && isRelativeURL(next) {
		c.Redirect(http.StatusFound, next)
		return
	}
	c.Redirect(http.StatusFound, homeFor(user))
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	if user, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, homeFor(user))
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "register"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	photo, err := ReadPhotoUpload(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.authService.Register(c.Request.Context(), &req, photo); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func homeFor(user *models.User) string {
	if user.Role == models.UserRoleAdmin {
		return "/admin/"
	}
	return "/dashboard"
}

func isRelativeURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Host == "" && parsed.Scheme == ""
}
