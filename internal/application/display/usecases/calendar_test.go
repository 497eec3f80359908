package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/infrastructure/cache"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/testdb"
	"github.com/lumenhq/lumen/internal/infrastructure/repository"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

func newFeedRepo(t *testing.T, feeds ...*calendar.Feed) calendar.Repository {
	t.Helper()
	repo := repository.NewCalendarFeedRepository(testdb.New(t), logger.NewNop())
	for _, f := range feeds {
		require.NoError(t, repo.Create(context.Background(), f))
	}
	return repo
}

func mustFeed(t *testing.T, name, url string) *calendar.Feed {
	t.Helper()
	f, err := calendar.NewFeed(name, url, "", true)
	require.NoError(t, err)
	return f
}

func TestGetCalendar_NoFeedsIsDemo(t *testing.T) {
	source := &mockEventSource{EventsFunc: func(context.Context, *calendar.Feed, time.Time, time.Time) ([]calendar.Event, error) {
		t.Fatal("no feed should be fetched")
		return nil, nil
	}}
	uc := NewGetCalendarUseCase(newFeedRepo(t), source, newFetcher(t), 0, logger.NewNop())
	uc.now = fixedClock

	resp := uc.Execute(context.Background())
	assert.True(t, resp.IsDemo)
	assert.NotEmpty(t, resp.Events)
}

func TestGetCalendar_MergesAndSorts(t *testing.T) {
	work := mustFeed(t, "Work", "https://example.com/work.ics")
	home := mustFeed(t, "Home", "https://example.com/home.ics")
	broken := mustFeed(t, "Broken", "https://example.com/broken.ics")

	source := &mockEventSource{EventsFunc: func(_ context.Context, feed *calendar.Feed, from, to time.Time) ([]calendar.Event, error) {
		assert.Equal(t, 7*24*time.Hour, to.Sub(from))
		switch feed.Name() {
		case "Work":
			return []calendar.Event{{ID: "w1", Title: "Review", Start: from.Add(10 * time.Hour), FeedName: "Work"}}, nil
		case "Home":
			return []calendar.Event{{ID: "h1", Title: "Dentist", Start: from.Add(8 * time.Hour), FeedName: "Home"}}, nil
		default:
			return nil, stderrors.New("404")
		}
	}}
	uc := NewGetCalendarUseCase(newFeedRepo(t, work, home, broken), source, newFetcher(t), 7, logger.NewNop())
	uc.now = fixedClock

	resp := uc.Execute(context.Background())
	assert.False(t, resp.IsDemo)
	require.Len(t, resp.Events, 2)
	assert.Equal(t, "Dentist", resp.Events[0].Title)
	assert.Equal(t, "Home", resp.Events[0].Calendar)
	assert.Equal(t, "Review", resp.Events[1].Title)
}

func TestGetCalendar_AllFeedsFailingIsDemo(t *testing.T) {
	source := &mockEventSource{EventsFunc: func(context.Context, *calendar.Feed, time.Time, time.Time) ([]calendar.Event, error) {
		return nil, stderrors.New("timeout")
	}}
	uc := NewGetCalendarUseCase(newFeedRepo(t, mustFeed(t, "A", "https://example.com/a.ics")), source, newFetcher(t), 7, logger.NewNop())
	uc.now = fixedClock

	resp := uc.Execute(context.Background())
	assert.True(t, resp.IsDemo)
	assert.NotEmpty(t, resp.Events)
}

func TestGetCalendar_FeedEditsApplyToCachedEvents(t *testing.T) {
	feed := mustFeed(t, "Work", "https://example.com/work.ics")
	repo := newFeedRepo(t, feed)

	fetches := 0
	source := &mockEventSource{EventsFunc: func(_ context.Context, f *calendar.Feed, from, _ time.Time) ([]calendar.Event, error) {
		fetches++
		return f.Tag([]calendar.Event{{ID: "w1", Title: "Review", Start: from.Add(10 * time.Hour)}}), nil
	}}
	fetcher := resilient.NewFetcher(resilient.Options{
		Name:  "calendar-" + t.Name(),
		TTL:   5 * time.Minute,
		Cache: cache.NewMemoryCache(16),
	}, logger.NewNop())
	uc := NewGetCalendarUseCase(repo, source, fetcher, 7, logger.NewNop())
	uc.now = fixedClock

	first := uc.Execute(context.Background())
	require.Len(t, first.Events, 1)
	assert.Equal(t, calendar.DefaultColor, first.Events[0].Color)

	name, color := "Office", "#ff0000"
	require.NoError(t, feed.Apply(calendar.FeedPatch{Name: &name, Color: &color}))
	require.NoError(t, repo.Update(context.Background(), feed))

	second := uc.Execute(context.Background())
	require.Len(t, second.Events, 1)
	assert.Equal(t, 1, fetches, "second read must come from the cache")
	assert.Equal(t, "Office", second.Events[0].Calendar)
	assert.Equal(t, "#ff0000", second.Events[0].Color)
}
