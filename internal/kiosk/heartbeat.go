package kiosk

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/httpclient"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

const DefaultHeartbeatInterval = 60 * time.Second

// GaugeReader samples the host gauges sent with each heartbeat.
type GaugeReader interface {
	Read(ctx context.Context) (mirror.Heartbeat, error)
}

// SystemGauges reads uptime, memory use and the one-minute load average of
// the host the agent runs on.
type SystemGauges struct{}

func (SystemGauges) Read(ctx context.Context) (mirror.Heartbeat, error) {
	uptime, err := host.UptimeWithContext(ctx)
	if err != nil {
		return mirror.Heartbeat{}, fmt.Errorf("failed to read uptime: %w", err)
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return mirror.Heartbeat{}, fmt.Errorf("failed to read memory: %w", err)
	}
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return mirror.Heartbeat{}, fmt.Errorf("failed to read load average: %w", err)
	}

	return mirror.Heartbeat{
		Uptime:      int64(uptime),
		MemoryUsage: math.Round(vm.UsedPercent*10) / 10,
		CPUUsage:    avg.Load1,
	}, nil
}

// HeartbeatReporter posts host gauges to the server on a fixed interval.
type HeartbeatReporter struct {
	url      string
	client   *http.Client
	gauges   GaugeReader
	interval time.Duration
	clock    Clock
	logger   logger.Interface
}

func NewHeartbeatReporter(serverURL string, gauges GaugeReader, interval, timeout time.Duration, clock Clock, log logger.Interface) *HeartbeatReporter {
	if interval <= 0 {
		interval = DefaultHeartbeatInterval
	}
	if clock == nil {
		clock = SystemClock()
	}
	return &HeartbeatReporter{
		url:      strings.TrimRight(serverURL, "/") + "/api/mirror/heartbeat",
		client:   httpclient.New(timeout),
		gauges:   gauges,
		interval: interval,
		clock:    clock,
		logger:   log,
	}
}

// Run reports immediately and then every interval until ctx is done.
func (r *HeartbeatReporter) Run(ctx context.Context) error {
	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	r.report(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			r.report(ctx)
		}
	}
}

func (r *HeartbeatReporter) report(ctx context.Context) {
	if err := r.Send(ctx); err != nil {
		r.logger.Warnw("failed to send heartbeat", "error", err)
	}
}

// Send samples the gauges and posts one heartbeat. Unreadable gauges are sent
// as zero so the ping still counts.
func (r *HeartbeatReporter) Send(ctx context.Context) error {
	hb, err := r.gauges.Read(ctx)
	if err != nil {
		r.logger.Debugw("failed to read host gauges", "error", err)
		hb = mirror.Heartbeat{}
	}

	var resp struct {
		Success bool `json:"success"`
	}
	if err := httpclient.PostJSON(ctx, r.client, r.url, nil, hb, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("server did not record heartbeat")
	}
	return nil
}
