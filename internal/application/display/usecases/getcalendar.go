package usecases

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lumenhq/lumen/internal/application/display/dto"
	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

const (
	DefaultLookaheadDays = 7
	maxConcurrentFeeds   = 4
)

// GetCalendarUseCase merges the upcoming events of every enabled feed.
type GetCalendarUseCase struct {
	feedRepo      calendar.Repository
	source        EventSource
	fetcher       *resilient.Fetcher
	lookaheadDays int
	now           func() time.Time
	logger        logger.Interface
}

func NewGetCalendarUseCase(
	feedRepo calendar.Repository,
	source EventSource,
	fetcher *resilient.Fetcher,
	lookaheadDays int,
	logger logger.Interface,
) *GetCalendarUseCase {
	if lookaheadDays <= 0 {
		lookaheadDays = DefaultLookaheadDays
	}
	return &GetCalendarUseCase{
		feedRepo:      feedRepo,
		source:        source,
		fetcher:       fetcher,
		lookaheadDays: lookaheadDays,
		now:           biztime.NowUTC,
		logger:        logger,
	}
}

// Events returns the merged events and whether they are demo data.
func (uc *GetCalendarUseCase) Events(ctx context.Context) ([]calendar.Event, bool) {
	now := uc.now()
	from := biztime.StartOfDay(now)
	to := from.AddDate(0, 0, uc.lookaheadDays)

	feeds, err := uc.feedRepo.ListEnabled(ctx)
	if err != nil {
		uc.logger.Warnw("failed to list calendar feeds, using demo events", "error", err)
		return demoEvents(now), true
	}
	if len(feeds) == 0 {
		return demoEvents(now), true
	}

	var (
		mu     sync.Mutex
		merged []calendar.Event
		live   int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFeeds)
	for _, feed := range feeds {
		g.Go(func() error {
			key := feed.ID() + ":" + feed.URL() + ":" + from.Format(time.DateOnly)
			events, fellBack := resilient.Fetch(gctx, uc.fetcher, key, func(ctx context.Context) ([]calendar.Event, error) {
				return uc.source.Events(ctx, feed, from, to)
			}, nil)
			// Cached events may predate a rename or recolor.
			events = feed.Tag(events)

			mu.Lock()
			defer mu.Unlock()
			if !fellBack {
				live++
			}
			merged = append(merged, events...)
			return nil
		})
	}
	_ = g.Wait()

	if live == 0 {
		return demoEvents(now), true
	}
	calendar.SortEvents(merged)
	return merged, false
}

func (uc *GetCalendarUseCase) Execute(ctx context.Context) *dto.CalendarResponse {
	events, demo := uc.Events(ctx)
	return &dto.CalendarResponse{Events: dto.ToEventDTOs(events), IsDemo: demo}
}
