package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "incidentdesk/internal/interfaces/http/handlers/user"
	"incidentdesk/internal/interfaces/http/middleware"
	"incidentdesk/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		users.GET("", config.UserHandler.List)
		users.POST("", config.UserHandler.Create)
		users.DELETE("/:id", config.UserHandler.Delete)
	}
}
