package usecases

import (
	"context"

	"github.com/lumenhq/lumen/internal/domain/calendar"
)

// FeedValidator fetches and parses a candidate feed URL.
type FeedValidator interface {
	Validate(ctx context.Context, rawURL string) calendar.ValidationResult
}
