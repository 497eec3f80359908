package usecases

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lumenhq/lumen/internal/domain/news"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// GetNewsUseCase merges the configured RSS feeds into one headline list.
type GetNewsUseCase struct {
	settings     CategoryReader
	source       HeadlineSource
	fetcher      *resilient.Fetcher
	defaultFeeds []string
	logger       logger.Interface
}

func NewGetNewsUseCase(
	settings CategoryReader,
	source HeadlineSource,
	fetcher *resilient.Fetcher,
	defaultFeeds []string,
	logger logger.Interface,
) *GetNewsUseCase {
	return &GetNewsUseCase{
		settings:     settings,
		source:       source,
		fetcher:      fetcher,
		defaultFeeds: defaultFeeds,
		logger:       logger,
	}
}

func (uc *GetNewsUseCase) Execute(ctx context.Context) news.Headlines {
	values, err := uc.settings.CategoryValues(ctx, setting.CategoryNews)
	if err != nil {
		uc.logger.Warnw("failed to read news settings, using defaults", "error", err)
	}
	feeds := news.ParseFeeds(values[news.KeyFeeds])
	if len(feeds) == 0 {
		feeds = uc.defaultFeeds
	}
	limit := news.ParseLimit(values[news.KeyLimit])

	var (
		mu    sync.Mutex
		items []news.Item
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFeeds)
	for _, url := range feeds {
		g.Go(func() error {
			got, _ := resilient.Fetch(gctx, uc.fetcher, url, func(ctx context.Context) ([]news.Item, error) {
				return uc.source.Fetch(ctx, url)
			}, nil)
			mu.Lock()
			items = append(items, got...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if len(items) == 0 {
		return news.DemoHeadlines(biztime.NowUTC())
	}
	return news.Headlines{Items: news.Newest(items, limit)}
}
