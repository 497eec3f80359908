package widget

import "context"

// Repository defines the interface for widget persistence
type Repository interface {
	// List returns all widgets ordered by display order then id
	List(ctx context.Context) ([]*Widget, error)

	// ListEnabled returns enabled widgets in display order
	ListEnabled(ctx context.Context) ([]*Widget, error)

	GetByID(ctx context.Context, id string) (*Widget, error)

	// GetByIDs returns the widgets found; missing ids are simply absent
	GetByIDs(ctx context.Context, ids []string) ([]*Widget, error)

	Update(ctx context.Context, w *Widget) error

	// CreateIfMissing inserts w unless a widget with the same id exists
	CreateIfMissing(ctx context.Context, w *Widget) error

	Count(ctx context.Context) (Counts, error)
}
