package middleware

import (
	"net/http"
	"net/url"

	"patitas_backend/internal/auth"
	"patitas_backend/internal/logger"
	"patitas_backend/internal/models"
	"patitas_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the signed session token.
const SessionCookie = "session"

// currentUserKey is the gin context key the authenticated user is stored
// under.
const currentUserKey = "currentUser"

// AuthMiddleware resolves the session cookie to a user row. The token only
// names the user id; name, email and role always come from the database, so
// a role change takes effect on the next request. Requests without a valid
// session are redirected to the login page with the original URL in `next`.
func AuthMiddleware(secret string, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			redirectToLogin(c)
			return
		}

		userID, err := auth.ParseSessionToken(secret, tokenStr)
		if err != nil {
			clearSessionCookie(c)
			redirectToLogin(c)
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			clearSessionCookie(c)
			redirectToLogin(c)
			return
		}

		c.Set(currentUserKey, user)
		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// OptionalAuth resolves the session cookie like AuthMiddleware but lets
// anonymous requests through. Landing and login pages use it to notice an
// already signed-in visitor.
func OptionalAuth(secret string, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err == nil && tokenStr != "" {
			if userID, err := auth.ParseSessionToken(secret, tokenStr); err == nil {
				if user, err := userRepo.FindByID(userID); err == nil {
					c.Set(currentUserKey, user)
					ctx := logger.WithUserID(c.Request.Context(), user.ID)
					c.Request = c.Request.WithContext(ctx)
				}
			}
		}
		c.Next()
	}
}

// RequireAdmin gates the back office. Authenticated non-admins land back on
// their dashboard instead of an error page.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || user.Role != models.UserRoleAdmin {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

func redirectToLogin(c *gin.Context) {
	target := "/login"
	if uri := c.Request.URL.RequestURI(); uri != "" && uri != "/" {
		target += "?next=" + url.QueryEscape(uri)
	}
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
