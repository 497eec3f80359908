package usecases

import (
	"context"
	"errors"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// GetConfigVersionUseCase serves the display's staleness and liveness poll.
type GetConfigVersionUseCase struct {
	versionRepo mirror.ConfigVersionRepository
	stateRepo   mirror.SystemStateRepository
	logger      logger.Interface
}

func NewGetConfigVersionUseCase(
	versionRepo mirror.ConfigVersionRepository,
	stateRepo mirror.SystemStateRepository,
	logger logger.Interface,
) *GetConfigVersionUseCase {
	return &GetConfigVersionUseCase{
		versionRepo: versionRepo,
		stateRepo:   stateRepo,
		logger:      logger,
	}
}

// Execute never fails. Store errors are logged and the {0, null} default
// is returned; the heartbeat write is attempted regardless.
func (uc *GetConfigVersionUseCase) Execute(ctx context.Context) mirror.VersionView {
	if err := uc.stateRepo.Touch(ctx, biztime.NowUTC()); err != nil {
		uc.logger.Warnw("failed to refresh mirror heartbeat", "error", err)
	}

	v, err := uc.versionRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, mirror.ErrConfigVersionNotFound) {
			uc.logger.Errorw("failed to read config version", "error", err)
		}
		return (*mirror.ConfigVersion)(nil).MarshalView()
	}
	return v.MarshalView()
}
