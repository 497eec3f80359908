package commute

import "errors"

var (
	ErrRouteNotFound      = errors.New("commute route not found")
	ErrInvalidRouteName   = errors.New("name is required")
	ErrInvalidCoordinate  = errors.New("latitude must be within [-90, 90] and longitude within [-180, 180]")
	ErrInvalidArrivalTime = errors.New("arrivalTime must be in HH:MM format")
	ErrInvalidActiveDays  = errors.New("activeDays must contain at least one of mon..sun")
)
