package mirror

import (
	"context"
	"time"
)

// ConfigVersionRepository owns the singleton version row.
type ConfigVersionRepository interface {
	// Get returns the current version or ErrConfigVersionNotFound.
	Get(ctx context.Context) (*ConfigVersion, error)

	// Bump atomically creates the row at 1 or increments it by 1.
	Bump(ctx context.Context) (*ConfigVersion, error)
}

// SystemStateRepository owns the singleton liveness row.
type SystemStateRepository interface {
	Get(ctx context.Context) (*SystemState, error)

	// Touch marks the mirror online with lastPing=at, creating the row if absent.
	Touch(ctx context.Context, at time.Time) error

	// RecordHeartbeat is Touch plus the reported gauges.
	RecordHeartbeat(ctx context.Context, hb Heartbeat, at time.Time) error

	// MarkOffline flips online to false if the last ping is older than cutoff.
	// It reports whether a row changed.
	MarkOffline(ctx context.Context, cutoff time.Time) (bool, error)
}

// ActivityLogRepository is the append-only audit trail.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *ActivityEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]*ActivityEntry, error)
}

// ChangeRecorder commits the side effects of a completed admin mutation: one
// activity row and one version bump, as a single unit of work. Failures are
// logged by the recorder and never reported to the caller.
type ChangeRecorder interface {
	Record(ctx context.Context, change Change)
}
