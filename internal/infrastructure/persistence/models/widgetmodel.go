package models

import (
	"time"

	"gorm.io/datatypes"
)

// WidgetModel is the GORM model for widgets table
type WidgetModel struct {
	ID           string         `gorm:"column:id;type:varchar(50);primaryKey"`
	Name         string         `gorm:"column:name;type:varchar(100);not null"`
	Enabled      bool           `gorm:"column:enabled;not null;default:true"`
	DisplayOrder int            `gorm:"column:display_order;not null;default:0;index"`
	Settings     datatypes.JSON `gorm:"column:settings"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (WidgetModel) TableName() string {
	return "widgets"
}
