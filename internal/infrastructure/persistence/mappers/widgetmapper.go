package mappers

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/lumenhq/lumen/internal/domain/widget"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/models"
)

// WidgetMapper converts between widget entities and models
type WidgetMapper interface {
	ToDomain(model *models.WidgetModel) *widget.Widget
	ToModel(w *widget.Widget) *models.WidgetModel
	ToDomainList(modelList []*models.WidgetModel) []*widget.Widget
}

type widgetMapper struct{}

func NewWidgetMapper() WidgetMapper {
	return &widgetMapper{}
}

func (m *widgetMapper) ToDomain(model *models.WidgetModel) *widget.Widget {
	if model == nil {
		return nil
	}
	return widget.ReconstructWidget(
		model.ID,
		model.Name,
		model.Enabled,
		model.DisplayOrder,
		json.RawMessage(model.Settings),
		model.UpdatedAt,
	)
}

func (m *widgetMapper) ToModel(w *widget.Widget) *models.WidgetModel {
	if w == nil {
		return nil
	}
	return &models.WidgetModel{
		ID:           w.ID(),
		Name:         w.Name(),
		Enabled:      w.Enabled(),
		DisplayOrder: w.Order(),
		Settings:     datatypes.JSON(w.Settings()),
		UpdatedAt:    w.UpdatedAt(),
	}
}

func (m *widgetMapper) ToDomainList(modelList []*models.WidgetModel) []*widget.Widget {
	out := make([]*widget.Widget, 0, len(modelList))
	for _, model := range modelList {
		if w := m.ToDomain(model); w != nil {
			out = append(out, w)
		}
	}
	return out
}
