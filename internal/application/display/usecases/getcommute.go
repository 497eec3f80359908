package usecases

import (
	"context"
	"time"

	"github.com/lumenhq/lumen/internal/application/display/dto"
	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/tomtom"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// GetCommuteUseCase estimates today's enabled routes with live traffic.
type GetCommuteUseCase struct {
	routeRepo   commute.Repository
	estimator   TravelEstimator
	credentials CredentialSource
	fetcher     *resilient.Fetcher
	now         func() time.Time
	logger      logger.Interface
}

func NewGetCommuteUseCase(
	routeRepo commute.Repository,
	estimator TravelEstimator,
	credentials CredentialSource,
	fetcher *resilient.Fetcher,
	logger logger.Interface,
) *GetCommuteUseCase {
	return &GetCommuteUseCase{
		routeRepo:   routeRepo,
		estimator:   estimator,
		credentials: credentials,
		fetcher:     fetcher,
		now:         biztime.NowUTC,
		logger:      logger,
	}
}

// Estimates returns today's estimates and whether any of them is demo data.
// No configured routes yields the demo set; configured routes inactive today
// yield an empty list.
func (uc *GetCommuteUseCase) Estimates(ctx context.Context) ([]commute.Estimate, bool) {
	now := uc.now()

	routes, err := uc.routeRepo.ListEnabled(ctx)
	if err != nil {
		uc.logger.Warnw("failed to list commute routes, using demo estimates", "error", err)
		return demoEstimates(now), true
	}
	if len(routes) == 0 {
		return demoEstimates(now), true
	}

	key := uc.credentials.Credential(ctx, setting.KeyRoutingAPIKey)
	estimates := make([]commute.Estimate, 0, len(routes))
	demo := false
	for _, r := range routes {
		if !r.IsActiveOn(now) {
			continue
		}
		cacheKey := r.ID() + ":" + r.Origin().String() + ":" + r.Destination().String()
		travel, fellBack := resilient.Fetch(ctx, uc.fetcher, cacheKey, func(ctx context.Context) (tomtom.Travel, error) {
			return uc.estimator.Route(ctx, key, r.Origin(), r.Destination(), time.Time{})
		}, tomtom.Travel{})
		if fellBack {
			demo = true
			estimates = append(estimates, demoEstimate(r, now))
			continue
		}
		estimates = append(estimates, commute.NewEstimate(r, now, travel.Duration, travel.TrafficDelay, travel.DistanceMeters))
	}
	return estimates, demo
}

func (uc *GetCommuteUseCase) Execute(ctx context.Context) *dto.CommuteResponse {
	estimates, demo := uc.Estimates(ctx)
	return &dto.CommuteResponse{Routes: dto.ToEstimateDTOs(estimates), IsDemo: demo}
}
