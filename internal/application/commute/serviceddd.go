package commute

import (
	"context"

	"github.com/lumenhq/lumen/internal/application/commute/dto"
	"github.com/lumenhq/lumen/internal/application/commute/usecases"
	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// ServiceDDD aggregates the commute route admin use cases
type ServiceDDD struct {
	listUC   *usecases.ListRoutesUseCase
	createUC *usecases.CreateRouteUseCase
	updateUC *usecases.UpdateRouteUseCase
	deleteUC *usecases.DeleteRouteUseCase
	searchUC *usecases.SearchPlacesUseCase
}

func NewServiceDDD(
	routeRepo commute.Repository,
	recorder mirror.ChangeRecorder,
	searcher usecases.PlaceSearcher,
	credentials usecases.CredentialSource,
	geocodeFetcher *resilient.Fetcher,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		listUC:   usecases.NewListRoutesUseCase(routeRepo, logger),
		createUC: usecases.NewCreateRouteUseCase(routeRepo, recorder, logger),
		updateUC: usecases.NewUpdateRouteUseCase(routeRepo, recorder, logger),
		deleteUC: usecases.NewDeleteRouteUseCase(routeRepo, recorder, logger),
		searchUC: usecases.NewSearchPlacesUseCase(searcher, credentials, geocodeFetcher, logger),
	}
}

func (s *ServiceDDD) List(ctx context.Context) (*dto.RoutesResponse, error) {
	return s.listUC.Execute(ctx)
}

func (s *ServiceDDD) Create(ctx context.Context, req dto.CreateRouteRequest, userID string) (*dto.RouteDTO, error) {
	return s.createUC.Execute(ctx, req, userID)
}

func (s *ServiceDDD) Update(ctx context.Context, id string, req dto.UpdateRouteRequest, userID string) (*dto.RouteDTO, error) {
	return s.updateUC.Execute(ctx, id, req, userID)
}

func (s *ServiceDDD) Delete(ctx context.Context, id, userID string) error {
	return s.deleteUC.Execute(ctx, id, userID)
}

func (s *ServiceDDD) SearchPlaces(ctx context.Context, query string) (*dto.SearchPlacesResponse, error) {
	return s.searchUC.Execute(ctx, query)
}
