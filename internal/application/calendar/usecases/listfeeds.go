package usecases

import (
	"context"

	"github.com/lumenhq/lumen/internal/application/calendar/dto"
	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

type ListFeedsUseCase struct {
	feedRepo calendar.Repository
	logger   logger.Interface
}

func NewListFeedsUseCase(feedRepo calendar.Repository, logger logger.Interface) *ListFeedsUseCase {
	return &ListFeedsUseCase{feedRepo: feedRepo, logger: logger}
}

func (uc *ListFeedsUseCase) Execute(ctx context.Context) (*dto.FeedsResponse, error) {
	feeds, err := uc.feedRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list calendar feeds", "error", err)
		return nil, errors.WrapInternal("Failed to fetch calendars", err)
	}
	return dto.ToFeedsResponse(feeds), nil
}
