package mirror

import (
	"context"
	"time"

	"github.com/lumenhq/lumen/internal/application/mirror/dto"
	"github.com/lumenhq/lumen/internal/application/mirror/usecases"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/version"
)

// ServiceDDD aggregates the display-wide use cases: version, liveness and
// the change recorder shared by every mutation.
type ServiceDDD struct {
	recordChangeUC     *usecases.RecordChangeUseCase
	getConfigVersionUC *usecases.GetConfigVersionUseCase
	recordHeartbeatUC  *usecases.RecordHeartbeatUseCase
	detectOfflineUC    *usecases.DetectOfflineUseCase
	getStatusUC        *usecases.GetMirrorStatusUseCase
	refreshUC          *usecases.RefreshMirrorUseCase
	buildTime          string
	logger             logger.Interface
}

// Deps are the collaborators of ServiceDDD.
type Deps struct {
	TxManager    usecases.TransactionRunner
	VersionRepo  mirror.ConfigVersionRepository
	StateRepo    mirror.SystemStateRepository
	ActivityRepo mirror.ActivityLogRepository
	Widgets      usecases.WidgetCounter
	Publisher    usecases.VersionPublisher
	OfflineAfter time.Duration
	// BuildTime is the configured override of the build identity.
	BuildTime string
}

func NewServiceDDD(deps Deps, logger logger.Interface) *ServiceDDD {
	recorder := usecases.NewRecordChangeUseCase(deps.TxManager, deps.ActivityRepo, deps.VersionRepo, deps.Publisher, logger)
	return &ServiceDDD{
		recordChangeUC:     recorder,
		getConfigVersionUC: usecases.NewGetConfigVersionUseCase(deps.VersionRepo, deps.StateRepo, logger),
		recordHeartbeatUC:  usecases.NewRecordHeartbeatUseCase(deps.StateRepo, logger),
		detectOfflineUC:    usecases.NewDetectOfflineUseCase(deps.StateRepo, deps.OfflineAfter, logger),
		getStatusUC:        usecases.NewGetMirrorStatusUseCase(deps.StateRepo, deps.VersionRepo, deps.ActivityRepo, deps.Widgets, logger),
		refreshUC:          usecases.NewRefreshMirrorUseCase(recorder, logger),
		buildTime:          version.Resolve(deps.BuildTime),
		logger:             logger,
	}
}

// Recorder returns the commit helper handed to the other services.
func (s *ServiceDDD) Recorder() mirror.ChangeRecorder {
	return s.recordChangeUC
}

func (s *ServiceDDD) GetConfigVersion(ctx context.Context) mirror.VersionView {
	return s.getConfigVersionUC.Execute(ctx)
}

func (s *ServiceDDD) RecordHeartbeat(ctx context.Context, hb mirror.Heartbeat) bool {
	return s.recordHeartbeatUC.Execute(ctx, hb)
}

func (s *ServiceDDD) DetectOffline(ctx context.Context) error {
	return s.detectOfflineUC.Execute(ctx)
}

func (s *ServiceDDD) GetStatus(ctx context.Context) (*dto.StatusResponse, error) {
	return s.getStatusUC.Execute(ctx)
}

func (s *ServiceDDD) Refresh(ctx context.Context, userID string) error {
	return s.refreshUC.Execute(ctx, userID)
}

// BuildInfo returns the build identity and the current server time.
func (s *ServiceDDD) BuildInfo() dto.BuildInfoResponse {
	return dto.BuildInfoResponse{
		BuildTime: s.buildTime,
		Timestamp: biztime.NowUTC().UnixMilli(),
	}
}
