package models

import (
	"time"
)

// CalendarFeedModel is the GORM model for calendar_feeds table
type CalendarFeedModel struct {
	ID        string    `gorm:"column:id;type:varchar(50);primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"`
	URL       string    `gorm:"column:url;type:text;not null"`
	Color     string    `gorm:"column:color;type:varchar(7);not null"`
	Enabled   bool      `gorm:"column:enabled;not null;default:true;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (CalendarFeedModel) TableName() string {
	return "calendar_feeds"
}
