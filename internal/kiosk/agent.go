package kiosk

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/lumenhq/lumen/internal/shared/logger"
)

// Agent runs the reload poller and the heartbeat reporter side by side.
type Agent struct {
	cfg       *Config
	source    VersionSource
	reloader  Reloader
	indicator Reloader
	heartbeat *HeartbeatReporter
	clock     Clock
	logger    logger.Interface
}

// NewAgent wires the agent from config.
func NewAgent(cfg *Config, log logger.Interface) (*Agent, error) {
	return newAgent(cfg, SystemClock(), log)
}

func newAgent(cfg *Config, clock Clock, log logger.Interface) (*Agent, error) {
	reloader, err := NewReloader(cfg)
	if err != nil {
		return nil, err
	}

	a := &Agent{
		cfg:      cfg,
		source:   NewHTTPVersionSource(cfg.ServerURL, cfg.RequestTimeout()),
		reloader: reloader,
		clock:    clock,
		logger:   log,
	}
	if cfg.Reload.IndicatorURL != "" {
		a.indicator = NewHTTPReloader(cfg.Reload.IndicatorURL, cfg.ReloadTimeout())
	}
	a.heartbeat = NewHeartbeatReporter(
		cfg.ServerURL,
		SystemGauges{},
		cfg.HeartbeatInterval(),
		cfg.RequestTimeout(),
		a.clock,
		log.Named("heartbeat"),
	)
	return a, nil
}

// NewReloader builds the reload hook selected by cfg.Reload.Mode.
func NewReloader(cfg *Config) (Reloader, error) {
	switch cfg.Reload.Mode {
	case ReloadModeHTTP:
		return NewHTTPReloader(cfg.Reload.URL, cfg.ReloadTimeout()), nil
	case ReloadModeCommand:
		return NewCommandReloader(cfg.Reload.Command, cfg.ReloadTimeout())
	default:
		return nil, errors.New("unknown reload mode " + cfg.Reload.Mode)
	}
}

// Run blocks until ctx is done. Each successful reload ends a poller session;
// the next session captures the reloaded build as its baseline.
func (a *Agent) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.heartbeat.Run(ctx)
	})

	g.Go(func() error {
		for {
			poller := NewPoller(a.source, a.reloader, PollerOptions{
				Interval:       a.cfg.PollInterval(),
				GraceDelay:     a.cfg.GraceDelay(),
				DevReloadAfter: a.cfg.DevReloadAfter(),
				OnUpdate:       a.showUpdating,
				Clock:          a.clock,
			}, a.logger.Named("poller"))

			if err := poller.Run(ctx); err != nil {
				return err
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *Agent) showUpdating(ctx context.Context, from, to string) {
	if a.indicator == nil {
		return
	}
	if err := a.indicator.Reload(ctx); err != nil {
		a.logger.Warnw("failed to show update indicator", "error", err, "to", to)
	}
}
