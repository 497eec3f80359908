package setting

import (
	"context"
)

// Repository defines the interface for setting persistence
type Repository interface {
	// GetByKey retrieves a setting by its full key
	GetByKey(ctx context.Context, key string) (*Setting, error)

	// GetByCategory retrieves all settings in a category
	GetByCategory(ctx context.Context, category string) ([]*Setting, error)

	// GetAll retrieves all settings ordered by key
	GetAll(ctx context.Context) ([]*Setting, error)

	// Upsert creates or updates a setting keyed on Key
	Upsert(ctx context.Context, setting *Setting) error

	// UpsertMany writes several settings in one statement
	UpsertMany(ctx context.Context, settings []*Setting) error
}
