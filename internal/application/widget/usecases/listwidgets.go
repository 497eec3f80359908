package usecases

import (
	"context"

	"github.com/lumenhq/lumen/internal/application/widget/dto"
	"github.com/lumenhq/lumen/internal/domain/widget"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

type ListWidgetsUseCase struct {
	widgetRepo widget.Repository
	logger     logger.Interface
}

func NewListWidgetsUseCase(widgetRepo widget.Repository, logger logger.Interface) *ListWidgetsUseCase {
	return &ListWidgetsUseCase{widgetRepo: widgetRepo, logger: logger}
}

// Execute lists all widgets in display order.
func (uc *ListWidgetsUseCase) Execute(ctx context.Context) (*dto.WidgetsResponse, error) {
	widgets, err := uc.widgetRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list widgets", "error", err)
		return nil, errors.WrapInternal("Failed to fetch widgets", err)
	}
	return dto.ToWidgetsResponse(widgets), nil
}

// Enabled lists the widgets the display renders. Store errors yield an
// empty layout.
func (uc *ListWidgetsUseCase) Enabled(ctx context.Context) *dto.WidgetsResponse {
	widgets, err := uc.widgetRepo.ListEnabled(ctx)
	if err != nil {
		uc.logger.Warnw("failed to list enabled widgets", "error", err)
		return dto.ToWidgetsResponse(nil)
	}
	return dto.ToWidgetsResponse(widgets)
}
