package routes

import (
	"github.com/gin-gonic/gin"

	screenshothandlers "incidentdesk/internal/interfaces/http/handlers/screenshot"
	"incidentdesk/internal/interfaces/http/middleware"
)

type ScreenshotRouteConfig struct {
	ScreenshotHandler *screenshothandlers.Handler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupScreenshotRoutes(engine *gin.Engine, config *ScreenshotRouteConfig) {
	screenshots := engine.Group("/screenshots")
	screenshots.Use(config.AuthMiddleware.RequireAuth())
	{
		screenshots.POST("", config.ScreenshotHandler.Save)
	}
}
