package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

func TestGetConfigVersion(t *testing.T) {
	at := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		get         func(ctx context.Context) (*mirror.ConfigVersion, error)
		touchErr    error
		wantVersion int64
		wantNilAt   bool
	}{
		{
			name:        "existing row",
			get:         func(context.Context) (*mirror.ConfigVersion, error) { return &mirror.ConfigVersion{Version: 7, UpdatedAt: at}, nil },
			wantVersion: 7,
		},
		{
			name:      "no row yet",
			get:       func(context.Context) (*mirror.ConfigVersion, error) { return nil, mirror.ErrConfigVersionNotFound },
			wantNilAt: true,
		},
		{
			name:      "store failure",
			get:       func(context.Context) (*mirror.ConfigVersion, error) { return nil, errors.New("connection refused") },
			touchErr:  errors.New("connection refused"),
			wantNilAt: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			touched := 0
			state := &mockStateRepository{
				TouchFunc: func(context.Context, time.Time) error {
					touched++
					return tt.touchErr
				},
			}
			uc := NewGetConfigVersionUseCase(&mockVersionRepository{GetFunc: tt.get}, state, logger.NewNop())

			view := uc.Execute(context.Background())

			assert.Equal(t, tt.wantVersion, view.Version)
			assert.Equal(t, tt.wantNilAt, view.UpdatedAt == nil)
			assert.Equal(t, 1, touched)
		})
	}
}

func TestDetectOffline(t *testing.T) {
	var cutoff time.Time
	state := &mockStateRepository{
		MarkOfflineFunc: func(_ context.Context, c time.Time) (bool, error) {
			cutoff = c
			return true, nil
		},
	}
	uc := NewDetectOfflineUseCase(state, 90*time.Second, logger.NewNop())

	before := time.Now().UTC()
	assert.NoError(t, uc.Execute(context.Background()))
	assert.WithinDuration(t, before.Add(-90*time.Second), cutoff, time.Second)
}

func TestGetMirrorStatus(t *testing.T) {
	ping := time.Now().UTC()
	var limit int
	uc := NewGetMirrorStatusUseCase(
		&mockStateRepository{GetFunc: func(context.Context) (*mirror.SystemState, error) {
			return &mirror.SystemState{Online: true, LastPing: &ping, Uptime: 3600}, nil
		}},
		&mockVersionRepository{GetFunc: func(context.Context) (*mirror.ConfigVersion, error) {
			return &mirror.ConfigVersion{Version: 3, UpdatedAt: ping}, nil
		}},
		&mockActivityRepository{RecentFunc: func(_ context.Context, n int) ([]*mirror.ActivityEntry, error) {
			limit = n
			return []*mirror.ActivityEntry{{ID: 2, Action: mirror.ActionMirrorRefresh}}, nil
		}},
		widgetCounts(8, 6),
		logger.NewNop(),
	)

	resp, err := uc.Execute(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, RecentActivityLimit, limit)
	assert.True(t, resp.System.Online)
	assert.Equal(t, int64(3), resp.ConfigVersion.Version)
	assert.Equal(t, int64(8), resp.Widgets.Total)
	assert.Equal(t, int64(6), resp.Widgets.Enabled)
	assert.Len(t, resp.RecentActivity, 1)
}

func TestGetMirrorStatus_EmptyStore(t *testing.T) {
	uc := NewGetMirrorStatusUseCase(&mockStateRepository{}, &mockVersionRepository{}, &mockActivityRepository{}, widgetCounts(0, 0), logger.NewNop())

	resp, err := uc.Execute(context.Background())
	assert.NoError(t, err)
	assert.False(t, resp.System.Online)
	assert.Nil(t, resp.ConfigVersion.UpdatedAt)
	assert.NotNil(t, resp.RecentActivity)
}
