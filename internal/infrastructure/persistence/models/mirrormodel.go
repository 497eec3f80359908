package models

import (
	"time"

	"gorm.io/datatypes"
)

// ConfigVersionModel is the GORM model for the singleton config_versions row
type ConfigVersionModel struct {
	ID        string    `gorm:"column:id;type:varchar(20);primaryKey"`
	Version   int64     `gorm:"column:version;not null;default:1"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (ConfigVersionModel) TableName() string {
	return "config_versions"
}

// SystemStateModel is the GORM model for the singleton system_states row
type SystemStateModel struct {
	ID          string     `gorm:"column:id;type:varchar(20);primaryKey"`
	Online      bool       `gorm:"column:online;not null;default:false"`
	LastPing    *time.Time `gorm:"column:last_ping"`
	Uptime      int64      `gorm:"column:uptime;not null;default:0"`
	MemoryUsage float64    `gorm:"column:memory_usage;not null;default:0"`
	CPUUsage    float64    `gorm:"column:cpu_usage;not null;default:0"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (SystemStateModel) TableName() string {
	return "system_states"
}

// ActivityLogModel is the GORM model for activity_logs table
type ActivityLogModel struct {
	ID        uint              `gorm:"primaryKey;autoIncrement"`
	Action    string            `gorm:"column:action;type:varchar(50);not null;index"`
	Category  string            `gorm:"column:category;type:varchar(50);not null"`
	UserID    string            `gorm:"column:user_id;type:varchar(100)"`
	Details   datatypes.JSONMap `gorm:"column:details"`
	CreatedAt time.Time         `gorm:"column:created_at;index"`
}

// TableName returns the table name for GORM
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
