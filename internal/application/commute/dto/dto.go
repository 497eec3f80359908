package dto

import (
	"time"

	"github.com/lumenhq/lumen/internal/domain/commute"
)

type RouteDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	OriginLat        float64   `json:"originLat"`
	OriginLon        float64   `json:"originLon"`
	DestinationLat   float64   `json:"destinationLat"`
	DestinationLon   float64   `json:"destinationLon"`
	OriginLabel      string    `json:"originLabel,omitempty"`
	DestinationLabel string    `json:"destinationLabel,omitempty"`
	ArrivalTime      string    `json:"arrivalTime"`
	ActiveDays       []string  `json:"activeDays"`
	Enabled          bool      `json:"enabled"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type RoutesResponse struct {
	Routes []RouteDTO `json:"routes"`
}

type CreateRouteRequest struct {
	Name             string   `json:"name" validate:"required,max=100"`
	OriginLat        *float64 `json:"originLat" validate:"required,min=-90,max=90"`
	OriginLon        *float64 `json:"originLon" validate:"required,min=-180,max=180"`
	DestinationLat   *float64 `json:"destinationLat" validate:"required,min=-90,max=90"`
	DestinationLon   *float64 `json:"destinationLon" validate:"required,min=-180,max=180"`
	OriginLabel      string   `json:"originLabel" validate:"max=200"`
	DestinationLabel string   `json:"destinationLabel" validate:"max=200"`
	ArrivalTime      string   `json:"arrivalTime" validate:"required,hhmm"`
	ActiveDays       []string `json:"activeDays" validate:"required,min=1,max=7,dive,weekday"`
	Enabled          *bool    `json:"enabled"`
}

func (r CreateRouteRequest) ToSpec() commute.RouteSpec {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	return commute.RouteSpec{
		Name:             r.Name,
		Origin:           commute.Coordinate{Lat: deref(r.OriginLat), Lon: deref(r.OriginLon)},
		Destination:      commute.Coordinate{Lat: deref(r.DestinationLat), Lon: deref(r.DestinationLon)},
		OriginLabel:      r.OriginLabel,
		DestinationLabel: r.DestinationLabel,
		ArrivalTime:      r.ArrivalTime,
		ActiveDays:       r.ActiveDays,
		Enabled:          enabled,
	}
}

// UpdateRouteRequest is a partial update; absent fields keep their value.
type UpdateRouteRequest struct {
	Name             *string  `json:"name" validate:"omitempty,max=100"`
	OriginLat        *float64 `json:"originLat" validate:"omitempty,min=-90,max=90"`
	OriginLon        *float64 `json:"originLon" validate:"omitempty,min=-180,max=180"`
	DestinationLat   *float64 `json:"destinationLat" validate:"omitempty,min=-90,max=90"`
	DestinationLon   *float64 `json:"destinationLon" validate:"omitempty,min=-180,max=180"`
	OriginLabel      *string  `json:"originLabel" validate:"omitempty,max=200"`
	DestinationLabel *string  `json:"destinationLabel" validate:"omitempty,max=200"`
	ArrivalTime      *string  `json:"arrivalTime" validate:"omitempty,hhmm"`
	ActiveDays       []string `json:"activeDays" validate:"omitempty,min=1,max=7,dive,weekday"`
	Enabled          *bool    `json:"enabled"`
}

// Apply overlays r on spec.
func (r UpdateRouteRequest) Apply(spec commute.RouteSpec) commute.RouteSpec {
	if r.Name != nil {
		spec.Name = *r.Name
	}
	if r.OriginLat != nil {
		spec.Origin.Lat = *r.OriginLat
	}
	if r.OriginLon != nil {
		spec.Origin.Lon = *r.OriginLon
	}
	if r.DestinationLat != nil {
		spec.Destination.Lat = *r.DestinationLat
	}
	if r.DestinationLon != nil {
		spec.Destination.Lon = *r.DestinationLon
	}
	if r.OriginLabel != nil {
		spec.OriginLabel = *r.OriginLabel
	}
	if r.DestinationLabel != nil {
		spec.DestinationLabel = *r.DestinationLabel
	}
	if r.ArrivalTime != nil {
		spec.ArrivalTime = *r.ArrivalTime
	}
	if r.ActiveDays != nil {
		spec.ActiveDays = r.ActiveDays
	}
	if r.Enabled != nil {
		spec.Enabled = *r.Enabled
	}
	return spec
}

// PlaceDTO is one geocoding match offered to the route editor.
type PlaceDTO struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Type      string  `json:"type,omitempty"`
}

type SearchPlacesResponse struct {
	Results []PlaceDTO `json:"results"`
}

func ToRouteDTO(r *commute.Route) RouteDTO {
	return RouteDTO{
		ID:               r.ID(),
		Name:             r.Name(),
		OriginLat:        r.Origin().Lat,
		OriginLon:        r.Origin().Lon,
		DestinationLat:   r.Destination().Lat,
		DestinationLon:   r.Destination().Lon,
		OriginLabel:      r.OriginLabel(),
		DestinationLabel: r.DestinationLabel(),
		ArrivalTime:      r.ArrivalTime(),
		ActiveDays:       r.ActiveDays(),
		Enabled:          r.Enabled(),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
	}
}

func ToRoutesResponse(routes []*commute.Route) *RoutesResponse {
	out := make([]RouteDTO, 0, len(routes))
	for _, r := range routes {
		out = append(out, ToRouteDTO(r))
	}
	return &RoutesResponse{Routes: out}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
