package usecases

import (
	"context"

	"github.com/lumenhq/lumen/internal/infrastructure/adapters/tomtom"
)

// PlaceSearcher is the geocoding provider.
type PlaceSearcher interface {
	Search(ctx context.Context, key, query string) ([]tomtom.Place, error)
}

// CredentialSource resolves API keys, stored settings first.
type CredentialSource interface {
	Credential(ctx context.Context, key string) string
}
