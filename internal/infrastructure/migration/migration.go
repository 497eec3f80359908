package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lumenhq/lumen/internal/infrastructure/persistence/models"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose for the database driver, or GORM AutoMigrate when
// autoMigrate is set.
func NewManager(driver string, autoMigrate bool, log logger.Interface) *Manager {
	var strategy Strategy
	if autoMigrate {
		strategy = NewGormAutoMigrateStrategy(log)
	} else {
		strategy = NewGooseStrategy(Dialect(driver), log)
	}
	return NewManagerWithStrategy(strategy, log)
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate brings the schema up to date for every model
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, models.All()...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// Dialect maps a database driver name to its goose dialect.
func Dialect(driver string) string {
	if driver == "mysql" {
		return "mysql"
	}
	return "sqlite3"
}
