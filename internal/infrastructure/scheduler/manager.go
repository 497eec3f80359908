// Package scheduler runs the server's periodic jobs using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/lumenhq/lumen/internal/infrastructure/metrics"
	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

const (
	JobOfflineDetector = "mirror-offline-detector"
	JobCacheWarmer     = "cache-warmer"

	offlineDetectorInterval = 30 * time.Second
	defaultWarmInterval     = 10 * time.Minute
)

// OfflineDetector marks the display offline when its heartbeat is stale.
type OfflineDetector interface {
	DetectOffline(ctx context.Context) error
}

// CacheWarmer prefetches upstream data so display reads hit a warm cache.
type CacheWarmer interface {
	Warm(ctx context.Context)
}

// SchedulerManager owns the single gocron scheduler of the process.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	// Track whether the scheduler has been started
	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance in the
// household timezone.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// ========================================
// Mirror Jobs
// ========================================

// RegisterOfflineDetector checks display liveness every 30 seconds.
func (m *SchedulerManager) RegisterOfflineDetector(detector OfflineDetector) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(offlineDetectorInterval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), offlineDetectorInterval)
			defer cancel()
			m.detectOffline(ctx, detector)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("mirror", "liveness"),
		gocron.WithName(JobOfflineDetector),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered offline detector job", "interval", offlineDetectorInterval.String())
	return nil
}

func (m *SchedulerManager) detectOffline(ctx context.Context, detector OfflineDetector) {
	if err := detector.DetectOffline(ctx); err != nil {
		metrics.JobRuns.WithLabelValues(JobOfflineDetector, "error").Inc()
		m.logger.Errorw("failed to detect offline mirror", "error", err)
		return
	}
	metrics.JobRuns.WithLabelValues(JobOfflineDetector, "success").Inc()
}

// RegisterCacheWarmer refreshes display caches every interval, starting
// immediately so the first display read after boot is warm.
func (m *SchedulerManager) RegisterCacheWarmer(warmer CacheWarmer, interval time.Duration) error {
	if interval <= 0 {
		interval = defaultWarmInterval
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			m.warm(ctx, warmer)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("display", "cache"),
		gocron.WithName(JobCacheWarmer),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered cache warmer job", "interval", interval.String())
	return nil
}

func (m *SchedulerManager) warm(ctx context.Context, warmer CacheWarmer) {
	startTime := biztime.NowUTC()
	warmer.Warm(ctx)
	metrics.JobRuns.WithLabelValues(JobCacheWarmer, "success").Inc()
	m.logger.Debugw("display caches warmed", "duration", time.Since(startTime))
}

// ========================================
// Lifecycle
// ========================================

// Start starts the scheduler. Calling it twice is a no-op.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// JobNames lists the registered jobs.
func (m *SchedulerManager) JobNames() []string {
	jobs := m.scheduler.Jobs()
	names := make([]string, 0, len(jobs))
	for _, j := range jobs {
		names = append(names, j.Name())
	}
	return names
}
