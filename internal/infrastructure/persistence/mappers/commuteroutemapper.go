package mappers

import (
	"gorm.io/datatypes"

	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/models"
)

// CommuteRouteMapper converts between commute routes and models
type CommuteRouteMapper interface {
	ToDomain(model *models.CommuteRouteModel) *commute.Route
	ToModel(r *commute.Route) *models.CommuteRouteModel
	ToDomainList(modelList []*models.CommuteRouteModel) []*commute.Route
}

type commuteRouteMapper struct{}

func NewCommuteRouteMapper() CommuteRouteMapper {
	return &commuteRouteMapper{}
}

func (m *commuteRouteMapper) ToDomain(model *models.CommuteRouteModel) *commute.Route {
	if model == nil {
		return nil
	}
	spec := commute.RouteSpec{
		Name:             model.Name,
		Origin:           commute.Coordinate{Lat: model.OriginLat, Lon: model.OriginLon},
		Destination:      commute.Coordinate{Lat: model.DestinationLat, Lon: model.DestinationLon},
		OriginLabel:      model.OriginLabel,
		DestinationLabel: model.DestinationLabel,
		ArrivalTime:      model.ArrivalTime,
		ActiveDays:       []string(model.ActiveDays),
		Enabled:          model.Enabled,
	}
	return commute.ReconstructRoute(model.ID, spec, model.CreatedAt, model.UpdatedAt)
}

func (m *commuteRouteMapper) ToModel(r *commute.Route) *models.CommuteRouteModel {
	if r == nil {
		return nil
	}
	return &models.CommuteRouteModel{
		ID:               r.ID(),
		Name:             r.Name(),
		OriginLat:        r.Origin().Lat,
		OriginLon:        r.Origin().Lon,
		OriginLabel:      r.OriginLabel(),
		DestinationLat:   r.Destination().Lat,
		DestinationLon:   r.Destination().Lon,
		DestinationLabel: r.DestinationLabel(),
		ArrivalTime:      r.ArrivalTime(),
		ActiveDays:       datatypes.NewJSONSlice(r.ActiveDays()),
		Enabled:          r.Enabled(),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
	}
}

func (m *commuteRouteMapper) ToDomainList(modelList []*models.CommuteRouteModel) []*commute.Route {
	out := make([]*commute.Route, 0, len(modelList))
	for _, model := range modelList {
		if r := m.ToDomain(model); r != nil {
			out = append(out, r)
		}
	}
	return out
}
