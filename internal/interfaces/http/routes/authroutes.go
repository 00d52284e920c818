package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "incidentdesk/internal/interfaces/http/handlers/user"
	"incidentdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	UserHandler    *userhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", config.UserHandler.Login)
		auth.POST("/logout",
			config.AuthMiddleware.RequireAuth(),
			config.UserHandler.Logout)
	}
}
