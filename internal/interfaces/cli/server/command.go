package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/lumenhq/lumen/internal/infrastructure/migration"
	"github.com/lumenhq/lumen/internal/infrastructure/repository"
	"github.com/lumenhq/lumen/internal/infrastructure/seed"
	"github.com/lumenhq/lumen/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/lumenhq/lumen/internal/interfaces/http"
	"github.com/lumenhq/lumen/internal/shared/constants"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
	runMigrate  bool
	runSeed     bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Lumen API server that the mirror display and the admin portal talk to.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().BoolVar(&runMigrate, "migrate", true, "Apply pending migrations on startup")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Derive the schema from models instead of running SQL migrations (development only)")
	cmd.Flags().BoolVar(&runSeed, "seed", true, "Install default widgets and settings that are missing")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	e, err := bootstrap.Init(env)
	if err != nil {
		return err
	}
	defer e.Close()

	cfg := e.Config
	log := e.Logger

	log.Infow("starting server",
		"environment", env,
		"mode", cfg.Server.Mode,
		"database", cfg.Database.Driver,
	)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := handleMigrations(e); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	if runSeed {
		defaults, err := seed.LoadDefaults()
		if err != nil {
			return fmt.Errorf("failed to load seed defaults: %w", err)
		}
		seeder := seed.NewSeeder(
			repository.NewWidgetRepository(e.DB, log),
			repository.NewSettingRepository(e.DB, log),
			log,
		)
		if _, err := seeder.Run(cmd.Context(), defaults); err != nil {
			return fmt.Errorf("failed to seed defaults: %w", err)
		}
	}

	container := httpRouter.NewContainer(e.DB, cfg, log)
	container.SetupRoutes()
	container.Start()

	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           container.GetEngine(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Upstream fetches are bounded well below this; the stream route is hijacked.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		container.Shutdown()
		return fmt.Errorf("failed to start server: %w", err)
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}
	container.Shutdown()

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(e *bootstrap.Env) error {
	log := e.Logger

	if !runMigrate && !autoMigrate {
		log.Infow("skipping migrations")
		return nil
	}

	if autoMigrate && e.Config.Server.Mode == "release" {
		logger.Warn("auto-migration is enabled in release mode - this is not recommended!")
	}

	manager := migration.NewManager(e.Config.Database.Driver, autoMigrate, log)
	if err := manager.Migrate(e.DB); err != nil {
		return err
	}

	if goose, ok := manager.GetStrategy().(*migration.GooseStrategy); ok {
		if version, err := goose.GetVersion(e.DB); err != nil {
			log.Warnw("failed to read migration version", "error", err)
		} else {
			log.Infow("current migration version", "version", version)
		}
	}
	return nil
}
