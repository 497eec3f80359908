package usecases

import (
	"context"
	stderrors "errors"

	"github.com/lumenhq/lumen/internal/application/commute/dto"
	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

type ListRoutesUseCase struct {
	routeRepo commute.Repository
	logger    logger.Interface
}

func NewListRoutesUseCase(routeRepo commute.Repository, logger logger.Interface) *ListRoutesUseCase {
	return &ListRoutesUseCase{routeRepo: routeRepo, logger: logger}
}

func (uc *ListRoutesUseCase) Execute(ctx context.Context) (*dto.RoutesResponse, error) {
	routes, err := uc.routeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list commute routes", "error", err)
		return nil, errors.WrapInternal("Failed to fetch commute routes", err)
	}
	return dto.ToRoutesResponse(routes), nil
}

type CreateRouteUseCase struct {
	routeRepo commute.Repository
	recorder  mirror.ChangeRecorder
	logger    logger.Interface
}

func NewCreateRouteUseCase(routeRepo commute.Repository, recorder mirror.ChangeRecorder, logger logger.Interface) *CreateRouteUseCase {
	return &CreateRouteUseCase{routeRepo: routeRepo, recorder: recorder, logger: logger}
}

func (uc *CreateRouteUseCase) Execute(ctx context.Context, req dto.CreateRouteRequest, userID string) (*dto.RouteDTO, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	route, err := commute.NewRoute(req.ToSpec())
	if err != nil {
		return nil, routeError(err)
	}

	if err := uc.routeRepo.Create(ctx, route); err != nil {
		uc.logger.Errorw("failed to create commute route", "name", route.Name(), "error", err)
		return nil, errors.WrapInternal("Failed to create commute route", err)
	}

	uc.recorder.Record(ctx, mirror.Change{
		Action:  mirror.ActionCommuteCreate,
		UserID:  userID,
		Details: map[string]any{"id": route.ID(), "name": route.Name()},
	})

	out := dto.ToRouteDTO(route)
	return &out, nil
}

type UpdateRouteUseCase struct {
	routeRepo commute.Repository
	recorder  mirror.ChangeRecorder
	logger    logger.Interface
}

func NewUpdateRouteUseCase(routeRepo commute.Repository, recorder mirror.ChangeRecorder, logger logger.Interface) *UpdateRouteUseCase {
	return &UpdateRouteUseCase{routeRepo: routeRepo, recorder: recorder, logger: logger}
}

func (uc *UpdateRouteUseCase) Execute(ctx context.Context, id string, req dto.UpdateRouteRequest, userID string) (*dto.RouteDTO, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	route, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, commute.ErrRouteNotFound) {
			return nil, errors.NewNotFoundError("Commute route not found")
		}
		uc.logger.Errorw("failed to load commute route", "id", id, "error", err)
		return nil, errors.WrapInternal("Failed to update commute route", err)
	}

	if err := route.Update(req.Apply(route.Spec())); err != nil {
		return nil, routeError(err)
	}

	if err := uc.routeRepo.Update(ctx, route); err != nil {
		if stderrors.Is(err, commute.ErrRouteNotFound) {
			return nil, errors.NewNotFoundError("Commute route not found")
		}
		uc.logger.Errorw("failed to update commute route", "id", id, "error", err)
		return nil, errors.WrapInternal("Failed to update commute route", err)
	}

	uc.recorder.Record(ctx, mirror.Change{
		Action:  mirror.ActionCommuteUpdate,
		UserID:  userID,
		Details: map[string]any{"id": route.ID(), "name": route.Name()},
	})

	out := dto.ToRouteDTO(route)
	return &out, nil
}

type DeleteRouteUseCase struct {
	routeRepo commute.Repository
	recorder  mirror.ChangeRecorder
	logger    logger.Interface
}

func NewDeleteRouteUseCase(routeRepo commute.Repository, recorder mirror.ChangeRecorder, logger logger.Interface) *DeleteRouteUseCase {
	return &DeleteRouteUseCase{routeRepo: routeRepo, recorder: recorder, logger: logger}
}

func (uc *DeleteRouteUseCase) Execute(ctx context.Context, id, userID string) error {
	route, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, commute.ErrRouteNotFound) {
			return errors.NewNotFoundError("Commute route not found")
		}
		uc.logger.Errorw("failed to load commute route", "id", id, "error", err)
		return errors.WrapInternal("Failed to delete commute route", err)
	}

	if err := uc.routeRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, commute.ErrRouteNotFound) {
			return errors.NewNotFoundError("Commute route not found")
		}
		uc.logger.Errorw("failed to delete commute route", "id", id, "error", err)
		return errors.WrapInternal("Failed to delete commute route", err)
	}

	uc.recorder.Record(ctx, mirror.Change{
		Action:  mirror.ActionCommuteDelete,
		UserID:  userID,
		Details: map[string]any{"id": id, "name": route.Name()},
	})
	return nil
}

func routeError(err error) error {
	switch {
	case stderrors.Is(err, commute.ErrInvalidRouteName),
		stderrors.Is(err, commute.ErrInvalidCoordinate),
		stderrors.Is(err, commute.ErrInvalidArrivalTime),
		stderrors.Is(err, commute.ErrInvalidActiveDays):
		return errors.NewValidationError(err.Error())
	default:
		return errors.WrapInternal("Failed to save commute route", err)
	}
}
