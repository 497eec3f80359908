package usecases

import (
	"context"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/domain/widget"
	"github.com/lumenhq/lumen/internal/infrastructure/pubsub"
)

// TransactionRunner runs fn as one unit of work.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// VersionPublisher is told about every committed version.
type VersionPublisher interface {
	PublishVersion(ctx context.Context, event pubsub.VersionEvent) error
}

// WidgetCounter reports widget enablement for the status view.
type WidgetCounter interface {
	Count(ctx context.Context) (widget.Counts, error)
}

// ChangeCommitter records a change and reports whether the version moved.
type ChangeCommitter interface {
	Commit(ctx context.Context, change mirror.Change) error
}
