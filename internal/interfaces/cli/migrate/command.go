// Package migrate implements the migrate CLI subcommand.
package migrate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"incidentdesk/internal/infrastructure/config"
	"incidentdesk/internal/infrastructure/database"
	"incidentdesk/internal/infrastructure/migration"
	"incidentdesk/internal/shared/logger"
)

var (
	env         string
	scriptsPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVar(&scriptsPath, "scripts", "./scripts/migrations", "Path to the migration scripts")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(m *migration.GooseMigrator) error {
				return m.Migrate(database.Get())
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					return fmt.Errorf("invalid step count: %s", args[0])
				}
				steps = parsed
			}
			return withDatabase(func(m *migration.GooseMigrator) error {
				return m.MigrateDown(database.Get(), steps)
			})
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(m *migration.GooseMigrator) error {
				return m.Status(database.Get())
			})
		},
	}
}

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new migration script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator := migration.NewGooseMigrator(scriptsPath)
			return migrator.Create(args[0])
		},
	}
}

func withDatabase(fn func(m *migration.GooseMigrator) error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	return fn(migration.NewGooseMigrator(scriptsPath))
}
