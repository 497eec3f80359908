package http

import (
	"gorm.io/gorm"

	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/domain/widget"
	"github.com/lumenhq/lumen/internal/infrastructure/repository"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	versionRepo  mirror.ConfigVersionRepository
	stateRepo    mirror.SystemStateRepository
	activityRepo mirror.ActivityLogRepository
	settingRepo  setting.Repository
	widgetRepo   widget.Repository
	feedRepo     calendar.Repository
	routeRepo    commute.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		versionRepo:  repository.NewConfigVersionRepository(db, log),
		stateRepo:    repository.NewSystemStateRepository(db, log),
		activityRepo: repository.NewActivityLogRepository(db, log),
		settingRepo:  repository.NewSettingRepository(db, log),
		widgetRepo:   repository.NewWidgetRepository(db, log),
		feedRepo:     repository.NewCalendarFeedRepository(db, log),
		routeRepo:    repository.NewCommuteRouteRepository(db, log),
	}
}
