// Package kiosk is the agent that runs beside the mirror's kiosk browser. It
// reloads the browser when the server is redeployed and reports host gauges.
package kiosk

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/version"
)

type State int32

const (
	StateUninitialized State = iota
	StateBaselineCaptured
	StatePolling
	StateUpdateDetected
	StateReloading
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateBaselineCaptured:
		return "baseline-captured"
	case StatePolling:
		return "polling"
	case StateUpdateDetected:
		return "update-detected"
	case StateReloading:
		return "reloading"
	default:
		return "unknown"
	}
}

const (
	DefaultPollInterval   = 30 * time.Second
	DefaultGraceDelay     = 2 * time.Second
	DefaultDevReloadAfter = 60 * time.Second
)

// Reloader performs the full page reload of the display.
type Reloader interface {
	Reload(ctx context.Context) error
}

// PollerOptions configures a Poller. Zero durations take the defaults.
type PollerOptions struct {
	Interval       time.Duration
	GraceDelay     time.Duration
	DevReloadAfter time.Duration
	// OnUpdate runs as soon as a new build is seen, before the grace delay.
	OnUpdate func(ctx context.Context, from, to string)
	Clock    Clock
}

// Poller watches the server's build identity and reloads the display once it
// changes. All transitions happen on the goroutine running Run.
type Poller struct {
	source   VersionSource
	reloader Reloader
	opts     PollerOptions
	logger   logger.Interface

	state    atomic.Int32
	baseline string
	// reloadAt fires the pending reload; nil until one is scheduled.
	reloadAt <-chan time.Time
}

func NewPoller(source VersionSource, reloader Reloader, opts PollerOptions, log logger.Interface) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = DefaultPollInterval
	}
	if opts.GraceDelay <= 0 {
		opts.GraceDelay = DefaultGraceDelay
	}
	if opts.DevReloadAfter <= 0 {
		opts.DevReloadAfter = DefaultDevReloadAfter
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	return &Poller{
		source:   source,
		reloader: reloader,
		opts:     opts,
		logger:   log,
	}
}

// State returns the current state. Safe from any goroutine.
func (p *Poller) State() State {
	return State(p.state.Load())
}

// Baseline returns the captured build identity, empty before the first fetch.
// Only meaningful on the Run goroutine or after Run returned.
func (p *Poller) Baseline() string {
	return p.baseline
}

// Run fetches immediately and then on every interval until a reload
// succeeded or ctx is done. It returns nil after the reload; the caller
// starts a fresh Poller for the reloaded page.
func (p *Poller) Run(ctx context.Context) error {
	ticker := p.opts.Clock.NewTicker(p.opts.Interval)
	defer ticker.Stop()

	p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			p.poll(ctx)
		case <-p.reloadAt:
			if p.reload(ctx) {
				return nil
			}
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	switch p.State() {
	case StateUpdateDetected, StateReloading:
		return
	case StateBaselineCaptured, StatePolling:
		// the development reload bypasses comparison entirely
		if p.baseline == version.DevelopmentBuild {
			return
		}
	}

	info, err := p.source.BuildInfo(ctx)
	if err != nil {
		p.logger.Warnw("failed to fetch build identity", "error", err, "state", p.State().String())
		return
	}

	switch p.State() {
	case StateUninitialized:
		p.baseline = info.BuildTime
		if p.baseline == version.DevelopmentBuild {
			p.logger.Infow("development build, scheduling periodic reload", "after", p.opts.DevReloadAfter)
			p.reloadAt = p.opts.Clock.After(p.opts.DevReloadAfter)
		} else {
			p.logger.Infow("captured build baseline", "build_time", p.baseline)
		}
		p.setState(StateBaselineCaptured)

	case StateBaselineCaptured, StatePolling:
		if info.BuildTime == p.baseline {
			p.setState(StatePolling)
			return
		}
		p.logger.Infow("new build detected", "from", p.baseline, "to", info.BuildTime)
		if p.opts.OnUpdate != nil {
			p.opts.OnUpdate(ctx, p.baseline, info.BuildTime)
		}
		p.reloadAt = p.opts.Clock.After(p.opts.GraceDelay)
		p.setState(StateUpdateDetected)
	}
}

// reload reports whether the display was reloaded. A failure keeps the
// detected update pending and retries after one poll interval.
func (p *Poller) reload(ctx context.Context) bool {
	p.setState(StateReloading)
	if err := p.reloader.Reload(ctx); err != nil {
		p.logger.Errorw("failed to reload display, retrying", "error", err, "retry_in", p.opts.Interval)
		p.reloadAt = p.opts.Clock.After(p.opts.Interval)
		p.setState(StateUpdateDetected)
		return false
	}
	p.logger.Infow("display reloaded")
	return true
}

func (p *Poller) setState(s State) {
	p.state.Store(int32(s))
}
