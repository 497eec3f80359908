// Package bootstrap loads config, logging, timezone and the database for
// the CLI commands.
package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lumenhq/lumen/internal/infrastructure/config"
	"github.com/lumenhq/lumen/internal/infrastructure/database"
	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/constants"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// Env is the process environment shared by every command.
type Env struct {
	Config *config.Config
	DB     *gorm.DB
	Logger logger.Interface
}

// Init loads configuration for env and opens the database.
func Init(env string) (*Env, error) {
	cfg, err := config.Load(GinMode(env))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	// Day boundaries, recurrences and the feast day follow the household's clock
	if err := biztime.Init(cfg.Location.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize timezone: %w", err)
	}

	db, err := database.Open(&cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Env{Config: cfg, DB: db, Logger: log}, nil
}

// Close releases the database connection.
func (e *Env) Close() {
	if err := database.Close(e.DB); err != nil {
		e.Logger.Warnw("failed to close database", "error", err)
	}
}

// GinMode maps a deployment environment name to a gin mode.
func GinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return "release"
	case constants.EnvTest, "testing":
		return "test"
	default:
		return "debug"
	}
}
