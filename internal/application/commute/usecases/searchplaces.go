package usecases

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/lumenhq/lumen/internal/application/commute/dto"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/tomtom"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

const (
	minQueryLength = 2
	maxQueryLength = 100
)

// SearchPlacesUseCase proxies geocoding for the route editor. Upstream
// failures and a missing key yield an empty result list.
type SearchPlacesUseCase struct {
	searcher    PlaceSearcher
	credentials CredentialSource
	fetcher     *resilient.Fetcher
	logger      logger.Interface
}

func NewSearchPlacesUseCase(
	searcher PlaceSearcher,
	credentials CredentialSource,
	fetcher *resilient.Fetcher,
	logger logger.Interface,
) *SearchPlacesUseCase {
	return &SearchPlacesUseCase{
		searcher:    searcher,
		credentials: credentials,
		fetcher:     fetcher,
		logger:      logger,
	}
}

func (uc *SearchPlacesUseCase) Execute(ctx context.Context, query string) (*dto.SearchPlacesResponse, error) {
	query = strings.TrimSpace(query)
	if n := utf8.RuneCountInString(query); n < minQueryLength || n > maxQueryLength {
		return nil, errors.NewValidationError("Query must be between 2 and 100 characters")
	}

	key := uc.credentials.Credential(ctx, setting.KeyGeocodeAPIKey)
	places, _ := resilient.Fetch(ctx, uc.fetcher, strings.ToLower(query), func(ctx context.Context) ([]tomtom.Place, error) {
		if key == "" {
			return nil, resilient.ErrNotConfigured
		}
		return uc.searcher.Search(ctx, key, query)
	}, []tomtom.Place{})

	out := make([]dto.PlaceDTO, 0, len(places))
	for _, p := range places {
		out = append(out, dto.PlaceDTO{
			Name:      p.Name,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Type:      p.Type,
		})
	}
	return &dto.SearchPlacesResponse{Results: out}, nil
}
