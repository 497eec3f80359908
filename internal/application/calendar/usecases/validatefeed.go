package usecases

import (
	"context"
	"net/url"

	"github.com/lumenhq/lumen/internal/application/calendar/dto"
	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

// ValidateFeedUseCase checks a candidate URL without persisting anything.
type ValidateFeedUseCase struct {
	validator FeedValidator
	logger    logger.Interface
}

func NewValidateFeedUseCase(validator FeedValidator, logger logger.Interface) *ValidateFeedUseCase {
	return &ValidateFeedUseCase{validator: validator, logger: logger}
}

func (uc *ValidateFeedUseCase) Execute(ctx context.Context, req dto.ValidateFeedRequest) (*dto.ValidateFeedResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	normalized, err := calendar.NormalizeURL(req.URL)
	if err != nil {
		resp := dto.ValidateFeedResponse{Valid: false, Error: err.Error()}
		return &resp, nil
	}

	result := uc.validator.Validate(ctx, normalized)
	if !result.Valid {
		uc.logger.Infow("calendar feed validation failed", "kind", result.Kind, "url_host", hostOf(normalized))
	}
	resp := dto.ToValidateFeedResponse(result)
	return &resp, nil
}

// hostOf returns the host of a feed URL for logging; feed paths often embed
// private tokens.
func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
