// Package migration runs goose SQL migrations against the application
// database.
package migration

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"incidentdesk/internal/shared/logger"
)

type GooseMigrator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGooseMigrator(scriptsPath string) *GooseMigrator {
	return &GooseMigrator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.goose"),
	}
}

func (m *GooseMigrator) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting goose migration",
		"scripts_path", m.scriptsPath)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		m.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	m.logger.Infow("current migration status",
		"version", currentVersion)

	if err := goose.Up(sqlDB, m.scriptsPath); err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		m.logger.Errorw("failed to get final version", "error", err)
		return fmt.Errorf("failed to get final version: %w", err)
	}

	m.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (m *GooseMigrator) MigrateDown(db *gorm.DB, steps int) error {
	m.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, m.scriptsPath); err != nil {
			m.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	m.logger.Infow("down migration completed successfully")
	return nil
}

func (m *GooseMigrator) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Status(sqlDB, m.scriptsPath); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	return nil
}

func (m *GooseMigrator) Create(name string) error {
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Create(nil, m.scriptsPath, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	m.logger.Infow("migration created successfully", "name", name)
	return nil
}
