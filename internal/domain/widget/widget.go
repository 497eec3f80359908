// Package widget models the mirror's display modules and their layout.
package widget

import (
	"encoding/json"
	"time"

	"github.com/lumenhq/lumen/internal/shared/biztime"
)

// Known widget identifiers. The set is fixed and seeded at install time.
const (
	IDClock    = "clock"
	IDWeather  = "weather"
	IDCalendar = "calendar"
	IDCommute  = "commute"
	IDSummary  = "ai-summary"
	IDNews     = "news"
	IDSpotify  = "spotify"
	IDFeastDay = "feast-day"
)

// Widget is one display module. Settings is an opaque JSON object owned by
// the display.
type Widget struct {
	id        string
	name      string
	enabled   bool
	order     int
	settings  json.RawMessage
	updatedAt time.Time
}

// NewWidget creates a widget with an empty settings object when none is given.
func NewWidget(id, name string, order int, enabled bool, settings json.RawMessage) (*Widget, error) {
	if id == "" {
		return nil, ErrInvalidWidget
	}
	w := &Widget{
		id:        id,
		name:      name,
		enabled:   enabled,
		order:     order,
		settings:  json.RawMessage("{}"),
		updatedAt: biztime.NowUTC(),
	}
	if err := w.SetOrder(order); err != nil {
		return nil, err
	}
	if len(settings) > 0 {
		if err := w.SetSettings(settings); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// ReconstructWidget rebuilds a Widget from persistence.
func ReconstructWidget(id, name string, enabled bool, order int, settings json.RawMessage, updatedAt time.Time) *Widget {
	if len(settings) == 0 {
		settings = json.RawMessage("{}")
	}
	return &Widget{
		id:        id,
		name:      name,
		enabled:   enabled,
		order:     order,
		settings:  settings,
		updatedAt: updatedAt,
	}
}

func (w *Widget) ID() string                { return w.id }
func (w *Widget) Name() string              { return w.name }
func (w *Widget) Enabled() bool             { return w.enabled }
func (w *Widget) Order() int                { return w.order }
func (w *Widget) Settings() json.RawMessage { return w.settings }
func (w *Widget) UpdatedAt() time.Time      { return w.updatedAt }

func (w *Widget) SetEnabled(enabled bool) {
	w.enabled = enabled
	w.updatedAt = biztime.NowUTC()
}

// SetOrder sets the display position; lower values render first.
func (w *Widget) SetOrder(order int) error {
	if order < 0 {
		return ErrInvalidOrder
	}
	w.order = order
	w.updatedAt = biztime.NowUTC()
	return nil
}

// SetSettings replaces the settings blob, which must be a JSON object.
func (w *Widget) SetSettings(settings json.RawMessage) error {
	var obj map[string]any
	if err := json.Unmarshal(settings, &obj); err != nil || obj == nil {
		return ErrInvalidSettings
	}
	w.settings = append(json.RawMessage(nil), settings...)
	w.updatedAt = biztime.NowUTC()
	return nil
}

// Patch is a partial widget update. Nil fields are left untouched.
type Patch struct {
	ID       string
	Enabled  *bool
	Order    *int
	Settings json.RawMessage
}

// Apply applies p to w.
func (w *Widget) Apply(p Patch) error {
	if p.Enabled != nil {
		w.SetEnabled(*p.Enabled)
	}
	if p.Order != nil {
		if err := w.SetOrder(*p.Order); err != nil {
			return err
		}
	}
	if len(p.Settings) > 0 {
		if err := w.SetSettings(p.Settings); err != nil {
			return err
		}
	}
	return nil
}

// Counts summarizes the widget table for the status view.
type Counts struct {
	Total   int64
	Enabled int64
}
