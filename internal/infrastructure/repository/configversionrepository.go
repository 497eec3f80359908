package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/models"
	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/constants"
	"github.com/lumenhq/lumen/internal/shared/db"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// ConfigVersionRepository implements mirror.ConfigVersionRepository
type ConfigVersionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewConfigVersionRepository creates a new ConfigVersionRepository
func NewConfigVersionRepository(db *gorm.DB, logger logger.Interface) mirror.ConfigVersionRepository {
	return &ConfigVersionRepository{db: db, logger: logger}
}

func (r *ConfigVersionRepository) Get(ctx context.Context) (*mirror.ConfigVersion, error) {
	var model models.ConfigVersionModel

	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", constants.ConfigVersionID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mirror.ErrConfigVersionNotFound
		}
		return nil, fmt.Errorf("failed to get config version: %w", err)
	}

	return mappers.ConfigVersionToDomain(&model), nil
}

// Bump inserts the row at version 1 or increments it in the database, so
// concurrent bumps never lose an update.
func (r *ConfigVersionRepository) Bump(ctx context.Context) (*mirror.ConfigVersion, error) {
	now := biztime.NowUTC()
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.ConfigVersionModel{ID: constants.ConfigVersionID, Version: 1, UpdatedAt: now}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		}),
	}).Create(&model).Error
	if err != nil {
		r.logger.Errorw("failed to bump config version", "error", err)
		return nil, fmt.Errorf("failed to bump config version: %w", err)
	}

	var current models.ConfigVersionModel
	if err := tx.Where("id = ?", constants.ConfigVersionID).First(&current).Error; err != nil {
		return nil, fmt.Errorf("failed to read bumped config version: %w", err)
	}

	return mappers.ConfigVersionToDomain(&current), nil
}
