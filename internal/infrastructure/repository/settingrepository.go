package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/models"
	"github.com/lumenhq/lumen/internal/shared/db"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

var settingUpsertColumns = []string{"value", "value_type", "category", "label", "encrypted", "updated_by", "updated_at"}

// SettingRepository implements setting.Repository
type SettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SettingMapper
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db *gorm.DB, logger logger.Interface) setting.Repository {
	return &SettingRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewSettingMapper(),
	}
}

// GetByKey retrieves a setting by its full key
func (r *SettingRepository) GetByKey(ctx context.Context, key string) (*setting.Setting, error) {
	var model models.SettingModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("setting_key = ?", key).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingNotFound
		}
		r.logger.Errorw("failed to get setting by key", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting by key: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// GetByCategory retrieves all settings in a category
func (r *SettingRepository) GetByCategory(ctx context.Context, category string) ([]*setting.Setting, error) {
	var modelList []*models.SettingModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("category = ?", category).
		Order("setting_key ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to get settings by category", "category", category, "error", err)
		return nil, fmt.Errorf("failed to get settings by category: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// GetAll retrieves all settings
func (r *SettingRepository) GetAll(ctx context.Context) ([]*setting.Setting, error) {
	var modelList []*models.SettingModel

	err := db.GetTxFromContext(ctx, r.db).
		Order("category ASC, setting_key ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to get all settings", "error", err)
		return nil, fmt.Errorf("failed to get all settings: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// Upsert creates or updates a setting keyed on setting_key
func (r *SettingRepository) Upsert(ctx context.Context, s *setting.Setting) error {
	return r.UpsertMany(ctx, []*setting.Setting{s})
}

// UpsertMany writes all settings in a single statement
func (r *SettingRepository) UpsertMany(ctx context.Context, settings []*setting.Setting) error {
	if len(settings) == 0 {
		return nil
	}

	modelList := make([]*models.SettingModel, 0, len(settings))
	for _, s := range settings {
		modelList = append(modelList, r.mapper.ToModel(s))
	}

	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns(settingUpsertColumns),
	}).Create(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to upsert settings", "count", len(settings), "error", err)
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	return nil
}
