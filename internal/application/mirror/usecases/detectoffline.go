package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/infrastructure/metrics"
	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// DetectOfflineUseCase flips the mirror offline once its heartbeat is stale.
type DetectOfflineUseCase struct {
	stateRepo    mirror.SystemStateRepository
	offlineAfter time.Duration
	logger       logger.Interface
}

func NewDetectOfflineUseCase(stateRepo mirror.SystemStateRepository, offlineAfter time.Duration, logger logger.Interface) *DetectOfflineUseCase {
	if offlineAfter <= 0 {
		offlineAfter = 2 * time.Minute
	}
	return &DetectOfflineUseCase{stateRepo: stateRepo, offlineAfter: offlineAfter, logger: logger}
}

func (uc *DetectOfflineUseCase) Execute(ctx context.Context) error {
	now := biztime.NowUTC()
	changed, err := uc.stateRepo.MarkOffline(ctx, now.Add(-uc.offlineAfter))
	if err != nil {
		return fmt.Errorf("failed to mark mirror offline: %w", err)
	}
	if changed {
		metrics.MirrorOnline.Set(0)
		uc.logger.Warnw("mirror went offline", "offline_after", uc.offlineAfter)
		return nil
	}

	state, err := uc.stateRepo.Get(ctx)
	if err == nil && state != nil {
		metrics.MirrorOnline.Set(metrics.BoolGauge(state.Online))
		if state.LastPing != nil {
			metrics.MirrorLastPing.Set(float64(state.LastPing.Unix()))
		}
	}
	return nil
}
