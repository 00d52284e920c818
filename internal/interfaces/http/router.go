// Package http assembles the gin engine: repositories, use cases,
// handlers, middleware and routes.
package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	historyusecases "incidentdesk/internal/application/history/usecases"
	reportusecases "incidentdesk/internal/application/report/usecases"
	screenshotusecases "incidentdesk/internal/application/screenshot/usecases"
	ticketusecases "incidentdesk/internal/application/ticket/usecases"
	userusecases "incidentdesk/internal/application/user/usecases"
	"incidentdesk/internal/infrastructure/auth"
	"incidentdesk/internal/infrastructure/config"
	"incidentdesk/internal/infrastructure/ratelimit"
	"incidentdesk/internal/infrastructure/report"
	"incidentdesk/internal/infrastructure/repository"
	"incidentdesk/internal/infrastructure/storage"
	historyhandlers "incidentdesk/internal/interfaces/http/handlers/history"
	reporthandlers "incidentdesk/internal/interfaces/http/handlers/report"
	screenshothandlers "incidentdesk/internal/interfaces/http/handlers/screenshot"
	tickethandlers "incidentdesk/internal/interfaces/http/handlers/ticket"
	userhandlers "incidentdesk/internal/interfaces/http/handlers/user"
	"incidentdesk/internal/interfaces/http/middleware"
	"incidentdesk/internal/interfaces/http/routes"
	"incidentdesk/internal/shared/db"
	"incidentdesk/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
}

// NewRouter wires the full dependency graph and registers all routes.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(log),
		middleware.CORS([]string{"http://localhost:3000", "http://localhost:8080"}),
		middleware.CSRF(),
	)

	store, err := storage.NewDiskStore(cfg.Upload.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload storage: %w", err)
	}

	txManager := db.NewTransactionManager(database)
	ticketRepo := repository.NewTicketRepository(database)
	historyRepo := repository.NewHistoryRepository(database)
	userRepo := repository.NewUserRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	screenshotRepo := repository.NewScreenshotRepository(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	limiter := ratelimit.NewRedisRateLimiter(redisClient)
	limitConfig := ratelimit.LoginLimitConfig{
		MaxAttempts:   cfg.Auth.RateLimit.LoginMaxAttempts,
		WindowMinutes: cfg.Auth.RateLimit.LoginWindowMinute,
	}
	pdfGenerator := report.NewPDFGenerator(&cfg.Report)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, txManager, store, cfg.Upload.MaxFileSize, log)
	updateStatusUC := ticketusecases.NewUpdateStatusUseCase(ticketRepo, log)
	softDeleteUC := ticketusecases.NewSoftDeleteTicketUseCase(ticketRepo, historyRepo, txManager, log)
	restoreUC := ticketusecases.NewRestoreTicketUseCase(ticketRepo, historyRepo, txManager, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	statsUC := ticketusecases.NewTicketStatsUseCase(ticketRepo, log)

	listHistoriqueUC := historyusecases.NewListHistoriqueUseCase(historyRepo, log)
	listDeletedUC := historyusecases.NewListDeletedTicketsUseCase(historyRepo, log)

	singleReportUC := reportusecases.NewSingleReportUseCase(ticketRepo, pdfGenerator, log)
	batchReportUC := reportusecases.NewBatchReportUseCase(ticketRepo, pdfGenerator, log)

	loginUC := userusecases.NewLoginUseCase(userRepo, sessionRepo, hasher, jwtService, limiter, limitConfig, log)
	logoutUC := userusecases.NewLogoutUseCase(sessionRepo, log)
	createUserUC := userusecases.NewCreateUserUseCase(userRepo, hasher, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	deleteUserUC := userusecases.NewDeleteUserUseCase(userRepo, log)

	saveScreenshotUC := screenshotusecases.NewSaveScreenshotUseCase(screenshotRepo, store, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	ticketHandler := tickethandlers.NewHandler(createTicketUC, updateStatusUC, softDeleteUC, listTicketsUC, getTicketUC, statsUC)
	historyHandler := historyhandlers.NewHandler(listHistoriqueUC, listDeletedUC, restoreUC)
	reportHandler := reporthandlers.NewHandler(singleReportUC, batchReportUC)
	userHandler := userhandlers.NewHandler(loginUC, logoutUC, createUserUC, listUsersUC, deleteUserUC, cfg.Auth.Cookie)
	screenshotHandler := screenshothandlers.NewHandler(saveScreenshotUC)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupHistoriqueRoutes(engine, &routes.HistoriqueRouteConfig{
		HistoryHandler: historyHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupReportRoutes(engine, &routes.ReportRouteConfig{
		ReportHandler:  reportHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupScreenshotRoutes(engine, &routes.ScreenshotRouteConfig{
		ScreenshotHandler: screenshotHandler,
		AuthMiddleware:    authMiddleware,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Router{engine: engine}, nil
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
