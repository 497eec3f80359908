// Package resilient wraps every live call to a third-party API with a timeout,
// a per-adapter circuit breaker, request coalescing and an optional response
// cache. Callers always get a value back: the live one or their fallback.
package resilient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"

	"github.com/lumenhq/lumen/internal/infrastructure/cache"
	"github.com/lumenhq/lumen/internal/infrastructure/metrics"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// ErrNotConfigured is returned by live functions when credentials or settings
// the adapter needs are absent. It selects the fallback without tripping the breaker.
var ErrNotConfigured = errors.New("adapter not configured")

const defaultTimeout = 10 * time.Second

type Options struct {
	// Name labels metrics and logs, e.g. "weather".
	Name    string
	Timeout time.Duration
	// TTL of cached live results. Zero disables caching.
	TTL   time.Duration
	Cache cache.Cache

	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// Fetcher holds the per-adapter resilience state. Share one per adapter.
type Fetcher struct {
	name    string
	timeout time.Duration
	ttl     time.Duration
	cache   cache.Cache
	breaker *gobreaker.CircuitBreaker[any]
	group   singleflight.Group
	logger  logger.Interface
}

func NewFetcher(opts Options, log logger.Interface) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.FailureThreshold == 0 {
		opts.FailureThreshold = defaultFailureThreshold
	}
	if opts.OpenTimeout <= 0 {
		opts.OpenTimeout = defaultOpenTimeout
	}
	log = log.With("adapter", opts.Name)
	return &Fetcher{
		name:    opts.Name,
		timeout: opts.Timeout,
		ttl:     opts.TTL,
		cache:   opts.Cache,
		breaker: newBreaker(opts.Name, opts.FailureThreshold, opts.OpenTimeout, log),
		logger:  log,
	}
}

func (f *Fetcher) Name() string {
	return f.name
}

func (f *Fetcher) State() gobreaker.State {
	return f.breaker.State()
}

// Invalidate drops a cached result so the next Fetch goes live.
func (f *Fetcher) Invalidate(ctx context.Context, key string) {
	if f.cache == nil {
		return
	}
	if err := f.cache.Delete(ctx, f.cacheKey(key)); err != nil {
		f.logger.Warnw("failed to invalidate cached response", "key", key, "error", err)
	}
}

func (f *Fetcher) cacheKey(key string) string {
	return f.name + ":" + key
}

// Fetch returns a cached or live value for key. On any failure it logs the
// cause and returns (fallback, true). Concurrent callers with the same key
// share one live call, which is detached from the first caller's cancellation
// and bounded by the adapter timeout.
func Fetch[T any](ctx context.Context, f *Fetcher, key string, live func(ctx context.Context) (T, error), fallback T) (T, bool) {
	if v, ok := lookup[T](ctx, f, key); ok {
		metrics.AdapterRequests.WithLabelValues(f.name, "cache").Inc()
		return v, false
	}

	res, err, _ := f.group.Do(key, func() (any, error) {
		v, err := f.breaker.Execute(func() (any, error) {
			callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
			defer cancel()

			start := time.Now()
			v, err := live(callCtx)
			metrics.AdapterDuration.WithLabelValues(f.name).Observe(time.Since(start).Seconds())
			if err != nil {
				return nil, err
			}
			return v, nil
		})
		if err != nil {
			return nil, err
		}
		store(context.WithoutCancel(ctx), f, key, v)
		return v, nil
	})
	if err != nil {
		f.fail(key, err)
		return fallback, true
	}

	v, ok := res.(T)
	if !ok {
		f.fail(key, fmt.Errorf("unexpected result type %T", res))
		return fallback, true
	}
	metrics.AdapterRequests.WithLabelValues(f.name, "live").Inc()
	return v, false
}

func (f *Fetcher) fail(key string, err error) {
	metrics.AdapterRequests.WithLabelValues(f.name, "fallback").Inc()
	metrics.AdapterFallbacks.WithLabelValues(f.name).Inc()

	switch {
	case errors.Is(err, ErrNotConfigured):
		f.logger.Debugw("adapter not configured, using fallback", "key", key)
	case isRejected(err):
		f.logger.Debugw("circuit open, using fallback", "key", key, "error", err)
	default:
		f.logger.Warnw("live fetch failed, using fallback", "key", key, "error", err)
	}
}

func lookup[T any](ctx context.Context, f *Fetcher, key string) (T, bool) {
	var zero T
	if f.cache == nil || f.ttl <= 0 {
		return zero, false
	}
	data, ok, err := f.cache.Get(ctx, f.cacheKey(key))
	if err != nil {
		f.logger.Warnw("cache read failed", "key", key, "error", err)
		return zero, false
	}
	if !ok {
		return zero, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		f.logger.Warnw("discarding undecodable cache entry", "key", key, "error", err)
		return zero, false
	}
	return v, true
}

func store(ctx context.Context, f *Fetcher, key string, v any) {
	if f.cache == nil || f.ttl <= 0 {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		f.logger.Warnw("failed to encode response for cache", "key", key, "error", err)
		return
	}
	if err := f.cache.Set(ctx, f.cacheKey(key), data, f.ttl); err != nil {
		f.logger.Warnw("cache write failed", "key", key, "error", err)
	}
}
