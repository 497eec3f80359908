package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lumenhq/lumen/internal/application/widget/dto"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/domain/widget"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

// maxConcurrentWrites bounds the widget writes in flight per request.
const maxConcurrentWrites = 4

// UpdateWidgetsUseCase applies a bulk toggle/reorder request
type UpdateWidgetsUseCase struct {
	widgetRepo widget.Repository
	recorder   mirror.ChangeRecorder
	logger     logger.Interface
}

func NewUpdateWidgetsUseCase(
	widgetRepo widget.Repository,
	recorder mirror.ChangeRecorder,
	logger logger.Interface,
) *UpdateWidgetsUseCase {
	return &UpdateWidgetsUseCase{
		widgetRepo: widgetRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

// Execute resolves and validates every patch before the first write, then
// writes the widgets concurrently and records one change for the request.
func (uc *UpdateWidgetsUseCase) Execute(ctx context.Context, req dto.UpdateWidgetsRequest, userID string) (*dto.WidgetsResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(req.Widgets))
	seen := make(map[string]bool, len(req.Widgets))
	for _, p := range req.Widgets {
		if seen[p.ID] {
			return nil, errors.NewValidationError(fmt.Sprintf("Duplicate widget id: %s", p.ID))
		}
		seen[p.ID] = true
		ids = append(ids, p.ID)
	}

	found, err := uc.widgetRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load widgets", "ids", ids, "error", err)
		return nil, errors.WrapInternal("Failed to update widgets", err)
	}
	byID := make(map[string]*widget.Widget, len(found))
	for _, w := range found {
		byID[w.ID()] = w
	}

	updated := make([]*widget.Widget, 0, len(req.Widgets))
	for _, p := range req.Widgets {
		w, ok := byID[p.ID]
		if !ok {
			return nil, errors.NewNotFoundError(fmt.Sprintf("Widget not found: %s", p.ID))
		}
		if err := w.Apply(p.ToDomain()); err != nil {
			if stderrors.Is(err, widget.ErrInvalidOrder) || stderrors.Is(err, widget.ErrInvalidSettings) {
				return nil, errors.NewValidationError(fmt.Sprintf("%s: %s", p.ID, err.Error()))
			}
			return nil, errors.WrapInternal("Failed to update widgets", err)
		}
		updated = append(updated, w)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWrites)
	for _, w := range updated {
		g.Go(func() error {
			return uc.widgetRepo.Update(gctx, w)
		})
	}
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to write widgets", "ids", ids, "error", err)
		return nil, errors.WrapInternal("Failed to update widgets", err)
	}

	uc.recorder.Record(ctx, mirror.Change{
		Action:   mirror.ActionWidgetsUpdate,
		Category: "widgets",
		UserID:   userID,
		Details:  map[string]any{"ids": ids},
	})

	widgets, err := uc.widgetRepo.List(ctx)
	if err != nil {
		uc.logger.Warnw("failed to reload widgets after update", "error", err)
		return dto.ToWidgetsResponse(updated), nil
	}
	return dto.ToWidgetsResponse(widgets), nil
}
