package usecases

import (
	"context"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/infrastructure/metrics"
	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

type RecordHeartbeatUseCase struct {
	stateRepo mirror.SystemStateRepository
	logger    logger.Interface
}

func NewRecordHeartbeatUseCase(stateRepo mirror.SystemStateRepository, logger logger.Interface) *RecordHeartbeatUseCase {
	return &RecordHeartbeatUseCase{stateRepo: stateRepo, logger: logger}
}

// Execute stores the gauges and reports whether it succeeded.
func (uc *RecordHeartbeatUseCase) Execute(ctx context.Context, hb mirror.Heartbeat) bool {
	now := biztime.NowUTC()
	if err := uc.stateRepo.RecordHeartbeat(ctx, hb, now); err != nil {
		uc.logger.Errorw("failed to record heartbeat", "error", err)
		return false
	}
	metrics.MirrorOnline.Set(1)
	metrics.MirrorLastPing.Set(float64(now.Unix()))
	return true
}
