package widget

import (
	"context"

	"github.com/lumenhq/lumen/internal/application/widget/dto"
	"github.com/lumenhq/lumen/internal/application/widget/usecases"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/domain/widget"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// ServiceDDD aggregates the widget use cases
type ServiceDDD struct {
	listUC   *usecases.ListWidgetsUseCase
	updateUC *usecases.UpdateWidgetsUseCase
}

func NewServiceDDD(widgetRepo widget.Repository, recorder mirror.ChangeRecorder, logger logger.Interface) *ServiceDDD {
	return &ServiceDDD{
		listUC:   usecases.NewListWidgetsUseCase(widgetRepo, logger),
		updateUC: usecases.NewUpdateWidgetsUseCase(widgetRepo, recorder, logger),
	}
}

func (s *ServiceDDD) List(ctx context.Context) (*dto.WidgetsResponse, error) {
	return s.listUC.Execute(ctx)
}

func (s *ServiceDDD) ListEnabled(ctx context.Context) *dto.WidgetsResponse {
	return s.listUC.Enabled(ctx)
}

func (s *ServiceDDD) Update(ctx context.Context, req dto.UpdateWidgetsRequest, userID string) (*dto.WidgetsResponse, error) {
	return s.updateUC.Execute(ctx, req, userID)
}
