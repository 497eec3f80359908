package seed

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/domain/widget"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/testdb"
	"github.com/lumenhq/lumen/internal/infrastructure/repository"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

func TestLoadDefaults(t *testing.T) {
	d, err := LoadDefaults()
	require.NoError(t, err)

	ids := make([]string, 0, len(d.Widgets))
	for _, w := range d.Widgets {
		ids = append(ids, w.ID)
	}
	assert.ElementsMatch(t, []string{
		widget.IDClock, widget.IDWeather, widget.IDCalendar, widget.IDCommute,
		widget.IDSummary, widget.IDNews, widget.IDSpotify, widget.IDFeastDay,
	}, ids)
	assert.NotEmpty(t, d.Settings)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
widgets:
  - id: clock
    name: Clock
    enabled: true
settings:
  - key: news.limit
    value: "3"
`), 0o600))

	d, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, d.Widgets, 1)
	assert.Equal(t, "clock", d.Widgets[0].ID)
	require.Len(t, d.Settings, 1)
	assert.Equal(t, "3", d.Settings[0].Value)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	gdb := testdb.New(t)
	log := logger.NewNop()
	widgets := repository.NewWidgetRepository(gdb, log)
	settings := repository.NewSettingRepository(gdb, log)
	seeder := NewSeeder(widgets, settings, log)
	ctx := context.Background()

	d, err := LoadDefaults()
	require.NoError(t, err)

	first, err := seeder.Run(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, len(d.Widgets), first.Widgets)
	assert.Equal(t, len(d.Settings), first.Settings)

	second, err := seeder.Run(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, Result{}, second)

	all, err := widgets.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(d.Widgets))
	assert.Equal(t, widget.IDClock, all[0].ID())
	assert.JSONEq(t, `{"format24h": false, "showSeconds": false}`, string(all[0].Settings()))
}

func TestSeeder_KeepsAdminEdits(t *testing.T) {
	gdb := testdb.New(t)
	log := logger.NewNop()
	settings := repository.NewSettingRepository(gdb, log)
	seeder := NewSeeder(repository.NewWidgetRepository(gdb, log), settings, log)
	ctx := context.Background()

	d, err := Parse([]byte(`
settings:
  - key: weather.location
    value: New York, NY
`))
	require.NoError(t, err)

	_, err = seeder.Run(ctx, d)
	require.NoError(t, err)

	stored, err := settings.GetByKey(ctx, "weather.location")
	require.NoError(t, err)
	stored.SetValue("Chicago, IL", "admin")
	require.NoError(t, settings.Upsert(ctx, stored))

	res, err := seeder.Run(ctx, d)
	require.NoError(t, err)
	assert.Zero(t, res.Settings)

	stored, err = settings.GetByKey(ctx, "weather.location")
	require.NoError(t, err)
	assert.Equal(t, "Chicago, IL", stored.Value())
}

func TestParse_WidgetWithoutSettings(t *testing.T) {
	d, err := Parse([]byte("widgets:\n  - id: clock\n    name: Clock\n    enabled: true\n"))
	require.NoError(t, err)
	require.Len(t, d.Widgets, 1)

	raw, err := json.Marshal(d.Widgets[0].settingsObject())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}
