package dto

import (
	"time"

	"github.com/lumenhq/lumen/internal/domain/calendar"
)

type FeedDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Color     string    `json:"color"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type FeedsResponse struct {
	Feeds []FeedDTO `json:"feeds"`
}

type CreateFeedRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	URL     string `json:"url" validate:"required,max=2048"`
	Color   string `json:"color" validate:"omitempty,hexcolor6"`
	Enabled *bool  `json:"enabled"`
}

type UpdateFeedRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=100"`
	URL     *string `json:"url" validate:"omitempty,max=2048"`
	Color   *string `json:"color" validate:"omitempty,hexcolor6"`
	Enabled *bool   `json:"enabled"`
}

func (r UpdateFeedRequest) ToPatch() calendar.FeedPatch {
	return calendar.FeedPatch{
		Name:    r.Name,
		URL:     r.URL,
		Color:   r.Color,
		Enabled: r.Enabled,
	}
}

type ValidateFeedRequest struct {
	URL string `json:"url" validate:"required,max=2048"`
}

// ValidateFeedResponse is {valid, eventCount, message} on success and
// {valid:false, error} otherwise.
type ValidateFeedResponse struct {
	Valid      bool                 `json:"valid"`
	EventCount *int                 `json:"eventCount,omitempty"`
	Message    string               `json:"message,omitempty"`
	Error      string               `json:"error,omitempty"`
	Kind       calendar.FailureKind `json:"kind,omitempty"`
}

func ToValidateFeedResponse(r calendar.ValidationResult) ValidateFeedResponse {
	if !r.Valid {
		return ValidateFeedResponse{Valid: false, Error: r.Error, Kind: r.Kind}
	}
	count := r.EventCount
	return ValidateFeedResponse{Valid: true, EventCount: &count, Message: r.Message}
}

func ToFeedDTO(f *calendar.Feed) FeedDTO {
	return FeedDTO{
		ID:        f.ID(),
		Name:      f.Name(),
		URL:       f.URL(),
		Color:     f.Color(),
		Enabled:   f.Enabled(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}
}

func ToFeedsResponse(feeds []*calendar.Feed) *FeedsResponse {
	out := make([]FeedDTO, 0, len(feeds))
	for _, f := range feeds {
		out = append(out, ToFeedDTO(f))
	}
	return &FeedsResponse{Feeds: out}
}
