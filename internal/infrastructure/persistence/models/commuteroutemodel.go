package models

import (
	"time"

	"gorm.io/datatypes"
)

// CommuteRouteModel is the GORM model for commute_routes table
type CommuteRouteModel struct {
	ID               string                      `gorm:"column:id;type:varchar(50);primaryKey"`
	Name             string                      `gorm:"column:name;type:varchar(100);not null"`
	OriginLat        float64                     `gorm:"column:origin_lat;not null"`
	OriginLon        float64                     `gorm:"column:origin_lon;not null"`
	OriginLabel      string                      `gorm:"column:origin_label;type:varchar(200)"`
	DestinationLat   float64                     `gorm:"column:destination_lat;not null"`
	DestinationLon   float64                     `gorm:"column:destination_lon;not null"`
	DestinationLabel string                      `gorm:"column:destination_label;type:varchar(200)"`
	ArrivalTime      string                      `gorm:"column:arrival_time;type:varchar(5);not null"`
	ActiveDays       datatypes.JSONSlice[string] `gorm:"column:active_days"`
	Enabled          bool                        `gorm:"column:enabled;not null;default:true;index"`
	CreatedAt        time.Time                   `gorm:"column:created_at"`
	UpdatedAt        time.Time                   `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (CommuteRouteModel) TableName() string {
	return "commute_routes"
}
