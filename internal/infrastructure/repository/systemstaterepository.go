package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/models"
	"github.com/lumenhq/lumen/internal/shared/constants"
	"github.com/lumenhq/lumen/internal/shared/db"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// SystemStateRepository implements mirror.SystemStateRepository
type SystemStateRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewSystemStateRepository creates a new SystemStateRepository
func NewSystemStateRepository(db *gorm.DB, logger logger.Interface) mirror.SystemStateRepository {
	return &SystemStateRepository{db: db, logger: logger}
}

func (r *SystemStateRepository) Get(ctx context.Context) (*mirror.SystemState, error) {
	var model models.SystemStateModel

	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", constants.SystemStateID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mirror.ErrSystemStateNotFound
		}
		return nil, fmt.Errorf("failed to get system state: %w", err)
	}

	return mappers.SystemStateToDomain(&model), nil
}

func (r *SystemStateRepository) Touch(ctx context.Context, at time.Time) error {
	model := models.SystemStateModel{
		ID:        constants.SystemStateID,
		Online:    true,
		LastPing:  &at,
		UpdatedAt: at,
	}
	return r.upsert(ctx, &model, []string{"online", "last_ping", "updated_at"})
}

func (r *SystemStateRepository) RecordHeartbeat(ctx context.Context, hb mirror.Heartbeat, at time.Time) error {
	model := models.SystemStateModel{
		ID:          constants.SystemStateID,
		Online:      true,
		LastPing:    &at,
		Uptime:      hb.Uptime,
		MemoryUsage: hb.MemoryUsage,
		CPUUsage:    hb.CPUUsage,
		UpdatedAt:   at,
	}
	return r.upsert(ctx, &model, []string{"online", "last_ping", "uptime", "memory_usage", "cpu_usage", "updated_at"})
}

func (r *SystemStateRepository) upsert(ctx context.Context, model *models.SystemStateModel, columns []string) error {
	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert system state: %w", err)
	}
	return nil
}

func (r *SystemStateRepository) MarkOffline(ctx context.Context, cutoff time.Time) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SystemStateModel{}).
		Where("id = ? AND online = ? AND (last_ping IS NULL OR last_ping < ?)", constants.SystemStateID, true, cutoff).
		Updates(map[string]any{"online": false, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		r.logger.Errorw("failed to mark mirror offline", "error", result.Error)
		return false, fmt.Errorf("failed to mark mirror offline: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
