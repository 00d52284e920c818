package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "incidentdesk/internal/interfaces/http/handlers/ticket"
	"incidentdesk/internal/interfaces/http/middleware"
	"incidentdesk/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths must be registered before parameterized ones.
		tickets.POST("",
			config.TicketHandler.Create)
		tickets.GET("",
			config.TicketHandler.List)
		tickets.GET("/stats",
			authorization.RequireAdmin(),
			config.TicketHandler.Stats)

		tickets.PATCH("/:id/status",
			authorization.RequireAdmin(),
			config.TicketHandler.UpdateStatus)

		tickets.GET("/:id",
			config.TicketHandler.Get)
		tickets.DELETE("/:id",
			authorization.RequireAdmin(),
			config.TicketHandler.Delete)
	}
}
