package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/models"
	"github.com/lumenhq/lumen/internal/shared/db"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// CalendarFeedRepository implements calendar.Repository
type CalendarFeedRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.CalendarFeedMapper
}

// NewCalendarFeedRepository creates a new CalendarFeedRepository
func NewCalendarFeedRepository(db *gorm.DB, logger logger.Interface) calendar.Repository {
	return &CalendarFeedRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewCalendarFeedMapper(),
	}
}

func (r *CalendarFeedRepository) List(ctx context.Context) ([]*calendar.Feed, error) {
	var modelList []*models.CalendarFeedModel

	if err := db.GetTxFromContext(ctx, r.db).Order("created_at ASC, id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list calendar feeds", "error", err)
		return nil, fmt.Errorf("failed to list calendar feeds: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

func (r *CalendarFeedRepository) ListEnabled(ctx context.Context) ([]*calendar.Feed, error) {
	var modelList []*models.CalendarFeedModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("enabled = ?", true).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list enabled calendar feeds", "error", err)
		return nil, fmt.Errorf("failed to list enabled calendar feeds: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

func (r *CalendarFeedRepository) GetByID(ctx context.Context, id string) (*calendar.Feed, error) {
	var model models.CalendarFeedModel

	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, calendar.ErrFeedNotFound
		}
		r.logger.Errorw("failed to get calendar feed", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get calendar feed: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *CalendarFeedRepository) Create(ctx context.Context, feed *calendar.Feed) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(feed)).Error; err != nil {
		r.logger.Errorw("failed to create calendar feed", "id", feed.ID(), "error", err)
		return fmt.Errorf("failed to create calendar feed: %w", err)
	}
	return nil
}

func (r *CalendarFeedRepository) Update(ctx context.Context, feed *calendar.Feed) error {
	model := r.mapper.ToModel(feed)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CalendarFeedModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":       model.Name,
			"url":        model.URL,
			"color":      model.Color,
			"enabled":    model.Enabled,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update calendar feed", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update calendar feed: %w", result.Error)
	}

	return nil
}

func (r *CalendarFeedRepository) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.CalendarFeedModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete calendar feed", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete calendar feed: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return calendar.ErrFeedNotFound
	}

	return nil
}
