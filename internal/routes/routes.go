package routes

import (
	"patitas_backend/internal/handlers"
	"patitas_backend/internal/middleware"
	"patitas_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes assembles the route tree from the prepared handlers.
// Three zones: public (anonymous allowed, signed-in visitors recognized),
// private (session required) and admin (session plus the admin role,
// re-checked against the database on every request).
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	sessionSecret string,
	userRepo repositories.UserRepository,
) {
	public := ginRouter.Group("/")
	public.Use(middleware.OptionalAuth(sessionSecret, userRepo))
	{
		appHandlers.AuthHandler.RegisterPublicRoutes(public)
		appHandlers.ContactHandler.RegisterRoutes(public)
		appHandlers.ReviewHandler.RegisterRoutes(public)
	}

	private := ginRouter.Group("/")
	private.Use(middleware.AuthMiddleware(sessionSecret, userRepo))
	{
		appHandlers.AuthHandler.RegisterPrivateRoutes(private)
		appHandlers.DirectoryHandler.RegisterRoutes(private)
	}

	admin := ginRouter.Group("/admin")
	admin.Use(middleware.AuthMiddleware(sessionSecret, userRepo))
	admin.Use(middleware.RequireAdmin())
	{
		appHandlers.AdminHandler.RegisterRoutes(admin)
	}
}
