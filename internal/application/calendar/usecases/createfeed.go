package usecases

import (
	"context"

	"github.com/lumenhq/lumen/internal/application/calendar/dto"
	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

type CreateFeedUseCase struct {
	feedRepo calendar.Repository
	recorder mirror.ChangeRecorder
	logger   logger.Interface
}

func NewCreateFeedUseCase(feedRepo calendar.Repository, recorder mirror.ChangeRecorder, logger logger.Interface) *CreateFeedUseCase {
	return &CreateFeedUseCase{feedRepo: feedRepo, recorder: recorder, logger: logger}
}

func (uc *CreateFeedUseCase) Execute(ctx context.Context, req dto.CreateFeedRequest, userID string) (*dto.FeedDTO, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	feed, err := calendar.NewFeed(req.Name, req.URL, req.Color, enabled)
	if err != nil {
		return nil, feedError(err)
	}

	if err := uc.feedRepo.Create(ctx, feed); err != nil {
		uc.logger.Errorw("failed to create calendar feed", "name", feed.Name(), "error", err)
		return nil, errors.WrapInternal("Failed to create calendar", err)
	}

	uc.recorder.Record(ctx, mirror.Change{
		Action:  mirror.ActionCalendarCreate,
		UserID:  userID,
		Details: map[string]any{"id": feed.ID(), "name": feed.Name()},
	})

	out := dto.ToFeedDTO(feed)
	return &out, nil
}
