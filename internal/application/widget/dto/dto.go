package dto

import (
	"encoding/json"
	"time"

	"github.com/lumenhq/lumen/internal/domain/widget"
)

type WidgetDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Enabled   bool            `json:"enabled"`
	Order     int             `json:"order"`
	Settings  json.RawMessage `json:"settings"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type WidgetsResponse struct {
	Widgets []WidgetDTO `json:"widgets"`
}

// WidgetPatch is one entry of a bulk update. Absent fields are unchanged.
type WidgetPatch struct {
	ID       string          `json:"id" validate:"required,max=50"`
	Enabled  *bool           `json:"enabled"`
	Order    *int            `json:"order" validate:"omitempty,min=0,max=1000"`
	Settings json.RawMessage `json:"settings"`
}

type UpdateWidgetsRequest struct {
	Widgets []WidgetPatch `json:"widgets" validate:"required,min=1,max=50,dive"`
}

func (p WidgetPatch) ToDomain() widget.Patch {
	return widget.Patch{
		ID:       p.ID,
		Enabled:  p.Enabled,
		Order:    p.Order,
		Settings: p.Settings,
	}
}

func ToWidgetDTO(w *widget.Widget) WidgetDTO {
	return WidgetDTO{
		ID:        w.ID(),
		Name:      w.Name(),
		Enabled:   w.Enabled(),
		Order:     w.Order(),
		Settings:  w.Settings(),
		UpdatedAt: w.UpdatedAt(),
	}
}

func ToWidgetsResponse(widgets []*widget.Widget) *WidgetsResponse {
	out := make([]WidgetDTO, 0, len(widgets))
	for _, w := range widgets {
		out = append(out, ToWidgetDTO(w))
	}
	return &WidgetsResponse{Widgets: out}
}
