package usecases

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/lumenhq/lumen/internal/application/mirror/dto"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	apperrors "github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// RecentActivityLimit is how many activity rows the dashboard shows.
const RecentActivityLimit = 10

type GetMirrorStatusUseCase struct {
	stateRepo    mirror.SystemStateRepository
	versionRepo  mirror.ConfigVersionRepository
	activityRepo mirror.ActivityLogRepository
	widgets      WidgetCounter
	logger       logger.Interface
}

func NewGetMirrorStatusUseCase(
	stateRepo mirror.SystemStateRepository,
	versionRepo mirror.ConfigVersionRepository,
	activityRepo mirror.ActivityLogRepository,
	widgets WidgetCounter,
	logger logger.Interface,
) *GetMirrorStatusUseCase {
	return &GetMirrorStatusUseCase{
		stateRepo:    stateRepo,
		versionRepo:  versionRepo,
		activityRepo: activityRepo,
		widgets:      widgets,
		logger:       logger,
	}
}

func (uc *GetMirrorStatusUseCase) Execute(ctx context.Context) (*dto.StatusResponse, error) {
	var (
		state   *mirror.SystemState
		version *mirror.ConfigVersion
		entries []*mirror.ActivityEntry
		resp    dto.StatusResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := uc.stateRepo.Get(gctx)
		if err != nil && !errors.Is(err, mirror.ErrSystemStateNotFound) {
			return err
		}
		state = s
		return nil
	})
	g.Go(func() error {
		v, err := uc.versionRepo.Get(gctx)
		if err != nil && !errors.Is(err, mirror.ErrConfigVersionNotFound) {
			return err
		}
		version = v
		return nil
	})
	g.Go(func() error {
		counts, err := uc.widgets.Count(gctx)
		if err != nil {
			return err
		}
		resp.Widgets = dto.WidgetCountsDTO{Total: counts.Total, Enabled: counts.Enabled}
		return nil
	})
	g.Go(func() error {
		e, err := uc.activityRepo.Recent(gctx, RecentActivityLimit)
		if err != nil {
			return err
		}
		entries = e
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to load mirror status", "error", err)
		return nil, apperrors.WrapInternal("Failed to fetch mirror status", err)
	}

	resp.System = dto.ToSystemDTO(state)
	resp.ConfigVersion = version.MarshalView()
	resp.RecentActivity = dto.ToActivityDTOs(entries)
	return &resp, nil
}
