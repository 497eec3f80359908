package calendar

import (
	"context"

	"github.com/lumenhq/lumen/internal/application/calendar/dto"
	"github.com/lumenhq/lumen/internal/application/calendar/usecases"
	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// ServiceDDD aggregates the calendar feed admin use cases
type ServiceDDD struct {
	listUC     *usecases.ListFeedsUseCase
	createUC   *usecases.CreateFeedUseCase
	updateUC   *usecases.UpdateFeedUseCase
	deleteUC   *usecases.DeleteFeedUseCase
	validateUC *usecases.ValidateFeedUseCase
}

func NewServiceDDD(
	feedRepo calendar.Repository,
	recorder mirror.ChangeRecorder,
	validator usecases.FeedValidator,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		listUC:     usecases.NewListFeedsUseCase(feedRepo, logger),
		createUC:   usecases.NewCreateFeedUseCase(feedRepo, recorder, logger),
		updateUC:   usecases.NewUpdateFeedUseCase(feedRepo, recorder, logger),
		deleteUC:   usecases.NewDeleteFeedUseCase(feedRepo, recorder, logger),
		validateUC: usecases.NewValidateFeedUseCase(validator, logger),
	}
}

func (s *ServiceDDD) List(ctx context.Context) (*dto.FeedsResponse, error) {
	return s.listUC.Execute(ctx)
}

func (s *ServiceDDD) Create(ctx context.Context, req dto.CreateFeedRequest, userID string) (*dto.FeedDTO, error) {
	return s.createUC.Execute(ctx, req, userID)
}

func (s *ServiceDDD) Update(ctx context.Context, id string, req dto.UpdateFeedRequest, userID string) (*dto.FeedDTO, error) {
	return s.updateUC.Execute(ctx, id, req, userID)
}

func (s *ServiceDDD) Delete(ctx context.Context, id, userID string) error {
	return s.deleteUC.Execute(ctx, id, userID)
}

func (s *ServiceDDD) Validate(ctx context.Context, req dto.ValidateFeedRequest) (*dto.ValidateFeedResponse, error) {
	return s.validateUC.Execute(ctx, req)
}
