package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/models"
	"github.com/lumenhq/lumen/internal/shared/db"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// CommuteRouteRepository implements commute.Repository
type CommuteRouteRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.CommuteRouteMapper
}

// NewCommuteRouteRepository creates a new CommuteRouteRepository
func NewCommuteRouteRepository(db *gorm.DB, logger logger.Interface) commute.Repository {
	return &CommuteRouteRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewCommuteRouteMapper(),
	}
}

func (r *CommuteRouteRepository) List(ctx context.Context) ([]*commute.Route, error) {
	var modelList []*models.CommuteRouteModel

	if err := db.GetTxFromContext(ctx, r.db).Order("created_at ASC, id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list commute routes", "error", err)
		return nil, fmt.Errorf("failed to list commute routes: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

func (r *CommuteRouteRepository) ListEnabled(ctx context.Context) ([]*commute.Route, error) {
	var modelList []*models.CommuteRouteModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("enabled = ?", true).
		Order("arrival_time ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list enabled commute routes", "error", err)
		return nil, fmt.Errorf("failed to list enabled commute routes: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

func (r *CommuteRouteRepository) GetByID(ctx context.Context, id string) (*commute.Route, error) {
	var model models.CommuteRouteModel

	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commute.ErrRouteNotFound
		}
		r.logger.Errorw("failed to get commute route", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get commute route: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *CommuteRouteRepository) Create(ctx context.Context, route *commute.Route) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(route)).Error; err != nil {
		r.logger.Errorw("failed to create commute route", "id", route.ID(), "error", err)
		return fmt.Errorf("failed to create commute route: %w", err)
	}
	return nil
}

func (r *CommuteRouteRepository) Update(ctx context.Context, route *commute.Route) error {
	model := r.mapper.ToModel(route)

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CommuteRouteModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":              model.Name,
			"origin_lat":        model.OriginLat,
			"origin_lon":        model.OriginLon,
			"origin_label":      model.OriginLabel,
			"destination_lat":   model.DestinationLat,
			"destination_lon":   model.DestinationLon,
			"destination_label": model.DestinationLabel,
			"arrival_time":      model.ArrivalTime,
			"active_days":       model.ActiveDays,
			"enabled":           model.Enabled,
			"updated_at":        model.UpdatedAt,
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update commute route", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update commute route: %w", err)
	}

	return nil
}

func (r *CommuteRouteRepository) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.CommuteRouteModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete commute route", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete commute route: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return commute.ErrRouteNotFound
	}

	return nil
}
