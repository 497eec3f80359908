package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenhq/lumen/internal/infrastructure/migration"
	"github.com/lumenhq/lumen/internal/interfaces/cli/bootstrap"
	"github.com/lumenhq/lumen/internal/shared/constants"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending scripts, roll back, and show status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func initEnv() (*bootstrap.Env, *migration.GooseStrategy, error) {
	e, err := bootstrap.Init(env)
	if err != nil {
		return nil, nil, err
	}
	return e, migration.NewGooseStrategy(migration.Dialect(e.Config.Database.Driver), e.Logger), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	e, strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	e.Logger.Infow("running up migrations", "environment", env)

	if err := strategy.Migrate(e.DB); err != nil {
		e.Logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	e.Logger.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", steps)
	}

	e, strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	e.Logger.Infow("rolling back migrations", "environment", env, "steps", steps)

	if err := strategy.MigrateDown(e.DB, steps); err != nil {
		e.Logger.Errorw("rollback failed", "error", err)
		return fmt.Errorf("rollback failed: %w", err)
	}

	e.Logger.Infow("rollback completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	version, err := strategy.GetVersion(e.DB)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Current migration version: %d\n", version)

	return strategy.Status(e.DB)
}
