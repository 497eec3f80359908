package mappers

import (
	"gorm.io/datatypes"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/models"
)

func ConfigVersionToDomain(model *models.ConfigVersionModel) *mirror.ConfigVersion {
	if model == nil {
		return nil
	}
	return &mirror.ConfigVersion{Version: model.Version, UpdatedAt: model.UpdatedAt}
}

func SystemStateToDomain(model *models.SystemStateModel) *mirror.SystemState {
	if model == nil {
		return nil
	}
	return &mirror.SystemState{
		Online:      model.Online,
		LastPing:    model.LastPing,
		Uptime:      model.Uptime,
		MemoryUsage: model.MemoryUsage,
		CPUUsage:    model.CPUUsage,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ActivityEntryToModel(e *mirror.ActivityEntry) *models.ActivityLogModel {
	if e == nil {
		return nil
	}
	return &models.ActivityLogModel{
		ID:        e.ID,
		Action:    e.Action,
		Category:  e.Category,
		UserID:    e.UserID,
		Details:   datatypes.JSONMap(e.Details),
		CreatedAt: e.CreatedAt,
	}
}

func ActivityEntryToDomain(model *models.ActivityLogModel) *mirror.ActivityEntry {
	if model == nil {
		return nil
	}
	details := map[string]any(model.Details)
	if details == nil {
		details = map[string]any{}
	}
	return &mirror.ActivityEntry{
		ID:        model.ID,
		Action:    model.Action,
		Category:  model.Category,
		UserID:    model.UserID,
		Details:   details,
		CreatedAt: model.CreatedAt,
	}
}
