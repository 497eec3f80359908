package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/models"
	"github.com/lumenhq/lumen/internal/shared/db"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// ActivityLogRepository implements mirror.ActivityLogRepository
type ActivityLogRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewActivityLogRepository creates a new ActivityLogRepository
func NewActivityLogRepository(db *gorm.DB, logger logger.Interface) mirror.ActivityLogRepository {
	return &ActivityLogRepository{db: db, logger: logger}
}

func (r *ActivityLogRepository) Append(ctx context.Context, entry *mirror.ActivityEntry) error {
	model := mappers.ActivityEntryToModel(entry)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append activity", "action", entry.Action, "error", err)
		return fmt.Errorf("failed to append activity: %w", err)
	}

	entry.ID = model.ID
	return nil
}

func (r *ActivityLogRepository) Recent(ctx context.Context, limit int) ([]*mirror.ActivityEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var modelList []*models.ActivityLogModel
	err := db.GetTxFromContext(ctx, r.db).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list recent activity", "error", err)
		return nil, fmt.Errorf("failed to list recent activity: %w", err)
	}

	out := make([]*mirror.ActivityEntry, 0, len(modelList))
	for _, m := range modelList {
		out = append(out, mappers.ActivityEntryToDomain(m))
	}
	return out, nil
}
