package usecases

import (
	"context"
	stderrors "errors"

	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

type DeleteFeedUseCase struct {
	feedRepo calendar.Repository
	recorder mirror.ChangeRecorder
	logger   logger.Interface
}

func NewDeleteFeedUseCase(feedRepo calendar.Repository, recorder mirror.ChangeRecorder, logger logger.Interface) *DeleteFeedUseCase {
	return &DeleteFeedUseCase{feedRepo: feedRepo, recorder: recorder, logger: logger}
}

// Execute deletes an existing feed. A missing id is a not-found error and
// nothing is written.
func (uc *DeleteFeedUseCase) Execute(ctx context.Context, id, userID string) error {
	feed, err := uc.feedRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, calendar.ErrFeedNotFound) {
			return errors.NewNotFoundError("Calendar not found")
		}
		uc.logger.Errorw("failed to load calendar feed", "id", id, "error", err)
		return errors.WrapInternal("Failed to delete calendar", err)
	}

	if err := uc.feedRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, calendar.ErrFeedNotFound) {
			return errors.NewNotFoundError("Calendar not found")
		}
		uc.logger.Errorw("failed to delete calendar feed", "id", id, "error", err)
		return errors.WrapInternal("Failed to delete calendar", err)
	}

	uc.recorder.Record(ctx, mirror.Change{
		Action:  mirror.ActionCalendarDelete,
		UserID:  userID,
		Details: map[string]any{"id": id, "name": feed.Name()},
	})
	return nil
}
