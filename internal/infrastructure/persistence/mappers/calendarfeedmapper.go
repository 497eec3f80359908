package mappers

import (
	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/models"
)

// CalendarFeedMapper converts between calendar feeds and models
type CalendarFeedMapper interface {
	ToDomain(model *models.CalendarFeedModel) *calendar.Feed
	ToModel(f *calendar.Feed) *models.CalendarFeedModel
	ToDomainList(modelList []*models.CalendarFeedModel) []*calendar.Feed
}

type calendarFeedMapper struct{}

func NewCalendarFeedMapper() CalendarFeedMapper {
	return &calendarFeedMapper{}
}

func (m *calendarFeedMapper) ToDomain(model *models.CalendarFeedModel) *calendar.Feed {
	if model == nil {
		return nil
	}
	return calendar.ReconstructFeed(
		model.ID,
		model.Name,
		model.URL,
		model.Color,
		model.Enabled,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *calendarFeedMapper) ToModel(f *calendar.Feed) *models.CalendarFeedModel {
	if f == nil {
		return nil
	}
	return &models.CalendarFeedModel{
		ID:        f.ID(),
		Name:      f.Name(),
		URL:       f.URL(),
		Color:     f.Color(),
		Enabled:   f.Enabled(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}
}

func (m *calendarFeedMapper) ToDomainList(modelList []*models.CalendarFeedModel) []*calendar.Feed {
	out := make([]*calendar.Feed, 0, len(modelList))
	for _, model := range modelList {
		if f := m.ToDomain(model); f != nil {
			out = append(out, f)
		}
	}
	return out
}
