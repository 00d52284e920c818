package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"incidentdesk/internal/infrastructure/config"
	"incidentdesk/internal/infrastructure/database"
	"incidentdesk/internal/infrastructure/repository"
	"incidentdesk/internal/shared/logger"
)

const cleanupInterval = 15 * time.Minute

// Standalone maintenance worker. Purges expired sessions on a fixed
// interval so stale rows never accumulate in the sessions table.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting session cleanup worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	sessionRepo := repository.NewSessionRepository(database.Get())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := sessionRepo.DeleteExpired(ctx); err != nil {
			log.Errorw("session cleanup failed", "error", err)
			return
		}
		log.Debugw("expired sessions purged")
	}

	cleanup()
	log.Infow("session cleanup worker started", "interval", cleanupInterval.String())

	for {
		select {
		case <-ticker.C:
			cleanup()
		case sig := <-sigChan:
			log.Infow("received signal, shutting down", "signal", sig.String())
			return
		}
	}
}
