package calendar

import "context"

// Repository defines the interface for calendar feed persistence
type Repository interface {
	List(ctx context.Context) ([]*Feed, error)
	ListEnabled(ctx context.Context) ([]*Feed, error)
	GetByID(ctx context.Context, id string) (*Feed, error)
	Create(ctx context.Context, feed *Feed) error
	Update(ctx context.Context, feed *Feed) error
	Delete(ctx context.Context, id string) error
}
