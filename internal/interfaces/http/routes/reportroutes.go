package routes

import (
	"github.com/gin-gonic/gin"

	reporthandlers "incidentdesk/internal/interfaces/http/handlers/report"
	"incidentdesk/internal/interfaces/http/middleware"
	"incidentdesk/internal/shared/authorization"
)

type ReportRouteConfig struct {
	ReportHandler  *reporthandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupReportRoutes(engine *gin.Engine, config *ReportRouteConfig) {
	reports := engine.Group("/reports")
	reports.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		reports.POST("", config.ReportHandler.Generate)
	}
}
