package routes

import (
	"github.com/gin-gonic/gin"

	historyhandlers "incidentdesk/internal/interfaces/http/handlers/history"
	"incidentdesk/internal/interfaces/http/middleware"
	"incidentdesk/internal/shared/authorization"
)

type HistoriqueRouteConfig struct {
	HistoryHandler *historyhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupHistoriqueRoutes(engine *gin.Engine, config *HistoriqueRouteConfig) {
	historique := engine.Group("/historique")
	historique.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		historique.GET("", config.HistoryHandler.List)
		// POST keeps the legacy action envelope (trash view, restore).
		historique.POST("", config.HistoryHandler.Dispatch)
	}
}
