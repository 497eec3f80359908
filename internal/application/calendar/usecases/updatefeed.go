package usecases

import (
	"context"
	stderrors "errors"

	"github.com/lumenhq/lumen/internal/application/calendar/dto"
	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

type UpdateFeedUseCase struct {
	feedRepo calendar.Repository
	recorder mirror.ChangeRecorder
	logger   logger.Interface
}

func NewUpdateFeedUseCase(feedRepo calendar.Repository, recorder mirror.ChangeRecorder, logger logger.Interface) *UpdateFeedUseCase {
	return &UpdateFeedUseCase{feedRepo: feedRepo, recorder: recorder, logger: logger}
}

func (uc *UpdateFeedUseCase) Execute(ctx context.Context, id string, req dto.UpdateFeedRequest, userID string) (*dto.FeedDTO, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	feed, err := uc.feedRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, calendar.ErrFeedNotFound) {
			return nil, errors.NewNotFoundError("Calendar not found")
		}
		uc.logger.Errorw("failed to load calendar feed", "id", id, "error", err)
		return nil, errors.WrapInternal("Failed to update calendar", err)
	}

	if err := feed.Apply(req.ToPatch()); err != nil {
		return nil, feedError(err)
	}

	if err := uc.feedRepo.Update(ctx, feed); err != nil {
		if stderrors.Is(err, calendar.ErrFeedNotFound) {
			return nil, errors.NewNotFoundError("Calendar not found")
		}
		uc.logger.Errorw("failed to update calendar feed", "id", id, "error", err)
		return nil, errors.WrapInternal("Failed to update calendar", err)
	}

	uc.recorder.Record(ctx, mirror.Change{
		Action:  mirror.ActionCalendarUpdate,
		UserID:  userID,
		Details: map[string]any{"id": feed.ID(), "name": feed.Name()},
	})

	out := dto.ToFeedDTO(feed)
	return &out, nil
}

// feedError maps domain validation failures onto validation AppErrors.
func feedError(err error) error {
	switch {
	case stderrors.Is(err, calendar.ErrInvalidFeedName), stderrors.Is(err, calendar.ErrInvalidFeedURL):
		return errors.NewValidationError(err.Error())
	default:
		return errors.WrapInternal("Failed to save calendar", err)
	}
}
