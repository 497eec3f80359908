package usecases

import (
	"context"
	"time"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/domain/widget"
)

type mockVersionRepository struct {
	GetFunc  func(ctx context.Context) (*mirror.ConfigVersion, error)
	BumpFunc func(ctx context.Context) (*mirror.ConfigVersion, error)
}

func (m *mockVersionRepository) Get(ctx context.Context) (*mirror.ConfigVersion, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, mirror.ErrConfigVersionNotFound
}

func (m *mockVersionRepository) Bump(ctx context.Context) (*mirror.ConfigVersion, error) {
	if m.BumpFunc != nil {
		return m.BumpFunc(ctx)
	}
	return &mirror.ConfigVersion{Version: 1}, nil
}

type mockStateRepository struct {
	GetFunc             func(ctx context.Context) (*mirror.SystemState, error)
	TouchFunc           func(ctx context.Context, at time.Time) error
	RecordHeartbeatFunc func(ctx context.Context, hb mirror.Heartbeat, at time.Time) error
	MarkOfflineFunc     func(ctx context.Context, cutoff time.Time) (bool, error)
}

func (m *mockStateRepository) Get(ctx context.Context) (*mirror.SystemState, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, mirror.ErrSystemStateNotFound
}

func (m *mockStateRepository) Touch(ctx context.Context, at time.Time) error {
	if m.TouchFunc != nil {
		return m.TouchFunc(ctx, at)
	}
	return nil
}

func (m *mockStateRepository) RecordHeartbeat(ctx context.Context, hb mirror.Heartbeat, at time.Time) error {
	if m.RecordHeartbeatFunc != nil {
		return m.RecordHeartbeatFunc(ctx, hb, at)
	}
	return nil
}

func (m *mockStateRepository) MarkOffline(ctx context.Context, cutoff time.Time) (bool, error) {
	if m.MarkOfflineFunc != nil {
		return m.MarkOfflineFunc(ctx, cutoff)
	}
	return false, nil
}

type mockActivityRepository struct {
	AppendFunc func(ctx context.Context, entry *mirror.ActivityEntry) error
	RecentFunc func(ctx context.Context, limit int) ([]*mirror.ActivityEntry, error)
}

func (m *mockActivityRepository) Append(ctx context.Context, entry *mirror.ActivityEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockActivityRepository) Recent(ctx context.Context, limit int) ([]*mirror.ActivityEntry, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, limit)
	}
	return nil, nil
}

func widgetCounts(total, enabled int64) *mockWidgetCounter {
	return &mockWidgetCounter{counts: widget.Counts{Total: total, Enabled: enabled}}
}

type mockWidgetCounter struct {
	counts widget.Counts
	err    error
}

func (m *mockWidgetCounter) Count(context.Context) (widget.Counts, error) {
	return m.counts, m.err
}

// inlineTx runs fn directly, standing in for a real transaction.
type inlineTx struct{}

func (inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
