package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lumenhq/lumen/internal/interfaces/cli/migrate"
	"github.com/lumenhq/lumen/internal/interfaces/cli/passwd"
	"github.com/lumenhq/lumen/internal/interfaces/cli/seed"
	"github.com/lumenhq/lumen/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lumen",
		Short: "Lumen - smart mirror backend",
		Long:  `Lumen serves the smart mirror display and its admin portal, with database migration and seeding tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		passwd.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
