package models

import (
	"time"
)

// SettingModel is the GORM model for settings table
type SettingModel struct {
	SettingKey string    `gorm:"column:setting_key;type:varchar(100);primaryKey"`
	Value      string    `gorm:"column:value;type:text"`
	ValueType  string    `gorm:"column:value_type;type:varchar(20);not null;default:'string'"`
	Category   string    `gorm:"column:category;type:varchar(50);not null;index"`
	Label      string    `gorm:"column:label;type:varchar(200)"`
	Encrypted  bool      `gorm:"column:encrypted;not null;default:false"`
	UpdatedBy  string    `gorm:"column:updated_by;type:varchar(100)"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (SettingModel) TableName() string {
	return "settings"
}
