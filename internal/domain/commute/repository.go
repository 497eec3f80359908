package commute

import "context"

// Repository defines the interface for commute route persistence
type Repository interface {
	List(ctx context.Context) ([]*Route, error)
	ListEnabled(ctx context.Context) ([]*Route, error)
	GetByID(ctx context.Context, id string) (*Route, error)
	Create(ctx context.Context, route *Route) error
	Update(ctx context.Context, route *Route) error
	Delete(ctx context.Context, id string) error
}
