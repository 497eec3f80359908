package repository

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/domain/widget"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/testdb"
	"github.com/lumenhq/lumen/internal/shared/db"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

func TestSettingRepository_UpsertAndRead(t *testing.T) {
	repo := NewSettingRepository(testdb.New(t), logger.NewNop())
	ctx := context.Background()

	lat, _ := setting.NewSetting("weather.latitude", "41.88", "")
	units, _ := setting.NewSetting("weather.units", "celsius", "")
	tone, _ := setting.NewSetting("ai.tone", "friendly", "")
	require.NoError(t, repo.UpsertMany(ctx, []*setting.Setting{lat, units, tone}))

	lat.SetValue("40.00", "admin")
	require.NoError(t, repo.Upsert(ctx, lat))

	got, err := repo.GetByKey(ctx, "weather.latitude")
	require.NoError(t, err)
	assert.Equal(t, "40.00", got.Value())
	assert.Equal(t, "admin", got.UpdatedBy())

	weather, err := repo.GetByCategory(ctx, "weather")
	require.NoError(t, err)
	assert.Len(t, weather, 2)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = repo.GetByKey(ctx, "weather.missing")
	assert.ErrorIs(t, err, setting.ErrSettingNotFound)
}

func TestWidgetRepository(t *testing.T) {
	repo := NewWidgetRepository(testdb.New(t), logger.NewNop())
	ctx := context.Background()

	clock, _ := widget.NewWidget(widget.IDClock, "Clock", 0, true, nil)
	news, _ := widget.NewWidget(widget.IDNews, "News", 1, false, json.RawMessage(`{"limit":5}`))
	require.NoError(t, repo.CreateIfMissing(ctx, clock))
	require.NoError(t, repo.CreateIfMissing(ctx, news))

	// Seeding again keeps the stored row.
	again, _ := widget.NewWidget(widget.IDClock, "Clock", 9, false, nil)
	require.NoError(t, repo.CreateIfMissing(ctx, again))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "clock", list[0].ID())
	assert.Equal(t, 0, list[0].Order())
	assert.JSONEq(t, `{"limit":5}`, string(list[1].Settings()))

	on := true
	require.NoError(t, news.Apply(widget.Patch{Enabled: &on}))
	require.NoError(t, repo.Update(ctx, news))

	counts, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, widget.Counts{Total: 2, Enabled: 2}, counts)

	found, err := repo.GetByIDs(ctx, []string{"news", "nope"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, widget.ErrWidgetNotFound)
}

func TestCalendarFeedRepository_CRUD(t *testing.T) {
	repo := NewCalendarFeedRepository(testdb.New(t), logger.NewNop())
	ctx := context.Background()

	f, err := calendar.NewFeed("Family", "webcal://example.com/family.ics", "", true)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, f))

	off := false
	require.NoError(t, f.Apply(calendar.FeedPatch{Enabled: &off}))
	require.NoError(t, repo.Update(ctx, f))

	got, err := repo.GetByID(ctx, f.ID())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/family.ics", got.URL())
	assert.False(t, got.Enabled())

	enabled, err := repo.ListEnabled(ctx)
	require.NoError(t, err)
	assert.Empty(t, enabled)

	require.NoError(t, repo.Delete(ctx, f.ID()))
	assert.ErrorIs(t, repo.Delete(ctx, f.ID()), calendar.ErrFeedNotFound)
	_, err = repo.GetByID(ctx, f.ID())
	assert.ErrorIs(t, err, calendar.ErrFeedNotFound)
}

func TestCommuteRouteRepository_CRUD(t *testing.T) {
	repo := NewCommuteRouteRepository(testdb.New(t), logger.NewNop())
	ctx := context.Background()

	r, err := commute.NewRoute(commute.RouteSpec{
		Name:        "Work",
		Origin:      commute.Coordinate{Lat: 90, Lon: -87.63},
		Destination: commute.Coordinate{Lat: 41.97, Lon: -87.90},
		ArrivalTime: "09:00",
		ActiveDays:  []string{"mon", "wed"},
		Enabled:     true,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, r))

	got, err := repo.GetByID(ctx, r.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"mon", "wed"}, got.ActiveDays())
	assert.Equal(t, 90.0, got.Origin().Lat)

	spec := got.Spec()
	spec.ArrivalTime = "08:15"
	require.NoError(t, got.Update(spec))
	require.NoError(t, repo.Update(ctx, got))

	list, err := repo.ListEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "08:15", list[0].ArrivalTime())

	require.NoError(t, repo.Delete(ctx, r.ID()))
	assert.ErrorIs(t, repo.Delete(ctx, r.ID()), commute.ErrRouteNotFound)
}

func TestConfigVersionRepository_Bump(t *testing.T) {
	repo := NewConfigVersionRepository(testdb.New(t), logger.NewNop())
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, mirror.ErrConfigVersionNotFound)

	v, err := repo.Bump(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Version)

	v, err = repo.Bump(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Version)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
}

func TestConfigVersionRepository_ConcurrentBumpsAreNotLost(t *testing.T) {
	repo := NewConfigVersionRepository(testdb.New(t), logger.NewNop())
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Bump(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.Version)
}

func TestConfigVersionRepository_BumpRollsBackWithTransaction(t *testing.T) {
	gdb := testdb.New(t)
	repo := NewConfigVersionRepository(gdb, logger.NewNop())
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	err := tm.RunInTransaction(ctx, func(ctx context.Context) error {
		_, err := repo.Bump(ctx)
		require.NoError(t, err)
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, mirror.ErrConfigVersionNotFound)
}

func TestSystemStateRepository(t *testing.T) {
	repo := NewSystemStateRepository(testdb.New(t), logger.NewNop())
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, mirror.ErrSystemStateNotFound)

	first := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Touch(ctx, first))
	require.NoError(t, repo.RecordHeartbeat(ctx, mirror.Heartbeat{Uptime: 3600, MemoryUsage: 42.5, CPUUsage: 0.7}, first.Add(time.Minute)))

	state, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, state.Online)
	assert.Equal(t, int64(3600), state.Uptime)
	assert.InDelta(t, 42.5, state.MemoryUsage, 0.001)
	require.NotNil(t, state.LastPing)
	assert.True(t, state.LastPing.Equal(first.Add(time.Minute)))

	changed, err := repo.MarkOffline(ctx, first)
	require.NoError(t, err)
	assert.False(t, changed, "ping is newer than cutoff")

	changed, err = repo.MarkOffline(ctx, first.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, changed)

	state, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, state.Online)
	assert.Equal(t, int64(3600), state.Uptime)

	// Touch keeps the gauges.
	require.NoError(t, repo.Touch(ctx, first.Add(2*time.Hour)))
	state, _ = repo.Get(ctx)
	assert.True(t, state.Online)
	assert.Equal(t, int64(3600), state.Uptime)
}

func TestActivityLogRepository(t *testing.T) {
	repo := NewActivityLogRepository(testdb.New(t), logger.NewNop())
	ctx := context.Background()

	base := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	for i, action := range []string{mirror.ActionWeatherUpdate, mirror.ActionCalendarCreate, mirror.ActionMirrorRefresh} {
		e := mirror.Change{Action: action, UserID: "admin", Details: map[string]any{"n": i}}.Entry(base.Add(time.Duration(i) * time.Minute))
		require.NoError(t, repo.Append(ctx, e))
		assert.NotZero(t, e.ID)
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, mirror.ActionMirrorRefresh, recent[0].Action)
	assert.Equal(t, "mirror", recent[0].Category)
	assert.Equal(t, json.Number("2"), recent[0].Details["n"])
	assert.Equal(t, mirror.ActionCalendarCreate, recent[1].Action)
}
