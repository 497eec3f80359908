package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumenhq/lumen/internal/domain/widget"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/models"
	"github.com/lumenhq/lumen/internal/shared/db"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// WidgetRepository implements widget.Repository
type WidgetRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.WidgetMapper
}

// NewWidgetRepository creates a new WidgetRepository
func NewWidgetRepository(db *gorm.DB, logger logger.Interface) widget.Repository {
	return &WidgetRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewWidgetMapper(),
	}
}

func (r *WidgetRepository) List(ctx context.Context) ([]*widget.Widget, error) {
	return r.list(ctx, false)
}

func (r *WidgetRepository) ListEnabled(ctx context.Context) ([]*widget.Widget, error) {
	return r.list(ctx, true)
}

func (r *WidgetRepository) list(ctx context.Context, enabledOnly bool) ([]*widget.Widget, error) {
	var modelList []*models.WidgetModel

	query := db.GetTxFromContext(ctx, r.db).Order("display_order ASC, id ASC")
	if enabledOnly {
		query = query.Where("enabled = ?", true)
	}
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list widgets", "enabled_only", enabledOnly, "error", err)
		return nil, fmt.Errorf("failed to list widgets: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

func (r *WidgetRepository) GetByID(ctx context.Context, id string) (*widget.Widget, error) {
	var model models.WidgetModel

	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, widget.ErrWidgetNotFound
		}
		r.logger.Errorw("failed to get widget", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get widget: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *WidgetRepository) GetByIDs(ctx context.Context, ids []string) ([]*widget.Widget, error) {
	if len(ids) == 0 {
		return []*widget.Widget{}, nil
	}

	var modelList []*models.WidgetModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get widgets by ids", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to get widgets by ids: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// Update writes the mutable columns of w
func (r *WidgetRepository) Update(ctx context.Context, w *widget.Widget) error {
	model := r.mapper.ToModel(w)

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.WidgetModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"enabled":       model.Enabled,
			"display_order": model.DisplayOrder,
			"settings":      model.Settings,
			"updated_at":    model.UpdatedAt,
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update widget", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update widget: %w", err)
	}

	return nil
}

func (r *WidgetRepository) CreateIfMissing(ctx context.Context, w *widget.Widget) error {
	model := r.mapper.ToModel(w)

	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to seed widget", "id", model.ID, "error", err)
		return fmt.Errorf("failed to seed widget: %w", err)
	}

	return nil
}

func (r *WidgetRepository) Count(ctx context.Context) (widget.Counts, error) {
	var counts widget.Counts
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.WidgetModel{}).Count(&counts.Total).Error; err != nil {
		return widget.Counts{}, fmt.Errorf("failed to count widgets: %w", err)
	}
	if err := tx.Model(&models.WidgetModel{}).Where("enabled = ?", true).Count(&counts.Enabled).Error; err != nil {
		return widget.Counts{}, fmt.Errorf("failed to count enabled widgets: %w", err)
	}

	return counts, nil
}
