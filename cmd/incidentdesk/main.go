package main

import (
	"os"

	"github.com/spf13/cobra"

	"incidentdesk/internal/interfaces/cli/migrate"
	"incidentdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "incidentdesk",
		Short: "Incidentdesk - incident ticket management",
		Long:  `Incidentdesk is an incident ticket management service with a JSON API, PDF reporting and administrative tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
