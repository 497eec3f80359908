package mirror

import (
	"strings"
	"time"
)

// Action tags written to the activity log.
const (
	ActionWeatherUpdate  = "weather.update"
	ActionCalendarCreate = "calendar.create"
	ActionCalendarUpdate = "calendar.update"
	ActionCalendarDelete = "calendar.delete"
	ActionCommuteCreate  = "commute.create"
	ActionCommuteUpdate  = "commute.update"
	ActionCommuteDelete  = "commute.delete"
	ActionWidgetsUpdate  = "widgets.update"
	ActionSettingsUpdate = "settings.update"
	ActionAIUpdate       = "ai.update"
	ActionMirrorRefresh  = "mirror.refresh"
)

// ActivityEntry is one append-only audit row.
type ActivityEntry struct {
	ID        uint
	Action    string
	Category  string
	UserID    string
	Details   map[string]any
	CreatedAt time.Time
}

// Change describes a completed admin mutation.
type Change struct {
	Action   string
	Category string
	UserID   string
	Details  map[string]any
}

// Entry turns the change into an activity row. Category defaults to the
// action namespace.
func (c Change) Entry(at time.Time) *ActivityEntry {
	category := c.Category
	if category == "" {
		category, _, _ = strings.Cut(c.Action, ".")
	}
	details := c.Details
	if details == nil {
		details = map[string]any{}
	}
	return &ActivityEntry{
		Action:    c.Action,
		Category:  category,
		UserID:    c.UserID,
		Details:   details,
		CreatedAt: at,
	}
}
