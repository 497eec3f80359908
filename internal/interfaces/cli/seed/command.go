package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenhq/lumen/internal/infrastructure/repository"
	"github.com/lumenhq/lumen/internal/infrastructure/seed"
	"github.com/lumenhq/lumen/internal/interfaces/cli/bootstrap"
	"github.com/lumenhq/lumen/internal/shared/constants"
)

var (
	env      string
	filePath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Install default widgets and settings",
		Long: `Insert the default widget set and settings that are missing.
Existing rows are never changed, so running it again is safe.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "YAML file with defaults (default: built-in set)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	defaults, err := loadDefaults()
	if err != nil {
		return err
	}

	e, err := bootstrap.Init(env)
	if err != nil {
		return err
	}
	defer e.Close()

	seeder := seed.NewSeeder(
		repository.NewWidgetRepository(e.DB, e.Logger),
		repository.NewSettingRepository(e.DB, e.Logger),
		e.Logger,
	)
	result, err := seeder.Run(cmd.Context(), defaults)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d widgets and %d settings\n", result.Widgets, result.Settings)
	return nil
}

func loadDefaults() (*seed.Defaults, error) {
	if filePath == "" {
		return seed.LoadDefaults()
	}
	return seed.LoadFile(filePath)
}
