package usecases

import (
	"context"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/infrastructure/metrics"
	"github.com/lumenhq/lumen/internal/infrastructure/pubsub"
	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// RecordChangeUseCase is the single commit helper every mutation calls after
// its primary writes succeeded.
type RecordChangeUseCase struct {
	txManager    TransactionRunner
	activityRepo mirror.ActivityLogRepository
	versionRepo  mirror.ConfigVersionRepository
	publisher    VersionPublisher
	logger       logger.Interface
}

func NewRecordChangeUseCase(
	txManager TransactionRunner,
	activityRepo mirror.ActivityLogRepository,
	versionRepo mirror.ConfigVersionRepository,
	publisher VersionPublisher,
	logger logger.Interface,
) *RecordChangeUseCase {
	return &RecordChangeUseCase{
		txManager:    txManager,
		activityRepo: activityRepo,
		versionRepo:  versionRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

var _ mirror.ChangeRecorder = (*RecordChangeUseCase)(nil)

// Record appends the activity row and bumps the version in one transaction.
// A failure leaves the primary write in place with a stale version; it is
// logged and counted but not retried.
func (uc *RecordChangeUseCase) Record(ctx context.Context, change mirror.Change) {
	_ = uc.Commit(ctx, change)
}

// Commit is Record for callers whose only write is the version bump, so a
// failure has to reach the client.
func (uc *RecordChangeUseCase) Commit(ctx context.Context, change mirror.Change) error {
	var bumped *mirror.ConfigVersion

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.activityRepo.Append(ctx, change.Entry(biztime.NowUTC())); err != nil {
			return err
		}
		v, err := uc.versionRepo.Bump(ctx)
		if err != nil {
			return err
		}
		bumped = v
		return nil
	})
	if err != nil {
		metrics.VersionBumpFailures.Inc()
		uc.logger.Errorw("failed to record change, config version is stale",
			"action", change.Action,
			"user_id", change.UserID,
			"error", err,
		)
		return err
	}

	metrics.VersionBumps.WithLabelValues(change.Action).Inc()
	metrics.ConfigVersion.Set(float64(bumped.Version))

	uc.logger.Infow("config version bumped",
		"action", change.Action,
		"version", bumped.Version,
		"user_id", change.UserID,
	)

	if uc.publisher == nil {
		return nil
	}
	event := pubsub.VersionEvent{
		Version:   bumped.Version,
		UpdatedAt: bumped.UpdatedAt,
		Action:    change.Action,
	}
	if err := uc.publisher.PublishVersion(ctx, event); err != nil {
		uc.logger.Warnw("failed to publish config version",
			"version", bumped.Version,
			"error", err,
		)
	}
	return nil
}
