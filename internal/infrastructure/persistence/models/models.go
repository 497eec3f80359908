// Package models holds the GORM table definitions.
package models

// All returns every model in creation order, for AutoMigrate.
func All() []any {
	return []any{
		&SettingModel{},
		&WidgetModel{},
		&CalendarFeedModel{},
		&CommuteRouteModel{},
		&ConfigVersionModel{},
		&SystemStateModel{},
		&ActivityLogModel{},
	}
}
