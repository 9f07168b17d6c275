package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/guardkit/pkg/cache"
)

// Advisory thresholds. A report crossing one of these produces a
// recommendation string.
const (
	minHealthySuccessRate = 0.90
	slowAverageDuration   = 10 * time.Millisecond
	minHealthyHitRate     = 0.50
	hitRateSampleFloor    = 100
	highCacheUtilization  = 0.90
	lowCacheUtilization   = 0.10
)

// CacheStatsSource supplies per-cache statistics for reports. A
// *cache.Manager satisfies it.
type CacheStatsSource interface {
	Stats() map[string]cache.Stats
}

// Report combines a metrics snapshot with cache statistics and the advisory
// recommendations derived from both.
type Report struct {
	GeneratedAt     time.Time
	Metrics         Metrics
	Caches          map[string]cache.Stats
	Recommendations []string
}

// Monitor periodically turns a Collector's counters into reports and logs
// them. It holds no global state; construct one per observed validation
// stack and share it through application wiring.
type Monitor struct {
	collector *Collector
	caches    CacheStatsSource
	logger    *slog.Logger
	interval  time.Duration

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// MonitorOption configures a Monitor.
type MonitorOption func(*monitorOptions)

type monitorOptions struct {
	caches   CacheStatsSource
	logger   *slog.Logger
	interval time.Duration
}

// WithCacheStats attaches a source of per-cache statistics, enabling the
// cache-utilization rules in reports.
func WithCacheStats(src CacheStatsSource) MonitorOption {
	return func(o *monitorOptions) {
		o.caches = src
	}
}

// WithLogger sets the logger used by the reporting loop.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) MonitorOption {
	return func(o *monitorOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithReportInterval sets how often the background loop emits a report.
// Defaults to one minute.
func WithReportInterval(interval time.Duration) MonitorOption {
	return func(o *monitorOptions) {
		if interval > 0 {
			o.interval = interval
		}
	}
}

// NewMonitor creates a monitor over the given collector. The collector must
// not be nil, otherwise it panics.
func NewMonitor(collector *Collector, opts ...MonitorOption) *Monitor {
	if collector == nil {
		panic("metrics: monitor requires a collector")
	}

	options := &monitorOptions{
		logger:   slog.Default(),
		interval: time.Minute,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Monitor{
		collector: collector,
		caches:    options.caches,
		logger:    options.logger,
		interval:  options.interval,
	}
}

// Report builds a report from the current counters and cache statistics.
// Safe to call at any time, whether or not the background loop is running.
func (m *Monitor) Report() Report {
	report := Report{
		GeneratedAt: time.Now(),
		Metrics:     m.collector.Snapshot(),
	}
	if m.caches != nil {
		report.Caches = m.caches.Stats()
	}
	report.Recommendations = recommend(report.Metrics, report.Caches)
	return report
}

// Start launches the periodic reporting loop in the background.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.cancel != nil {
		m.mu.Unlock()
		return ErrMonitorStarted
	}
	m.ctx, m.cancel = context.WithCancel(ctx)
	m.wg.Add(1)
	m.mu.Unlock()

	go m.run()

	m.logger.Info("performance monitor started",
		slog.Duration("interval", m.interval))

	return nil
}

// Stop shuts down the reporting loop and waits for it to exit.
func (m *Monitor) Stop() error {
	m.mu.Lock()
	if m.cancel == nil {
		m.mu.Unlock()
		return ErrMonitorNotStarted
	}
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	cancel()
	m.wg.Wait()

	m.logger.Info("performance monitor stopped")

	return nil
}

// Run starts the monitor and returns a function suitable for errgroup.
func (m *Monitor) Run(ctx context.Context) func() error {
	return func() error {
		if err := m.Start(ctx); err != nil {
			return err
		}

		<-ctx.Done()

		return m.Stop()
	}
}

func (m *Monitor) run() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.logReport(m.Report())
		}
	}
}

func (m *Monitor) logReport(report Report) {
	m.logger.Info("validation performance report",
		slog.Int64("total_validations", report.Metrics.TotalValidations),
		slog.Float64("success_rate", report.Metrics.SuccessRate()),
		slog.Float64("cache_hit_rate", report.Metrics.CacheHitRate()),
		slog.Duration("avg_duration", report.Metrics.AverageDuration()),
		slog.Duration("max_duration", report.Metrics.MaxDuration),
		slog.Int("caches", len(report.Caches)))

	for _, rec := range report.Recommendations {
		m.logger.Warn("performance recommendation",
			slog.String("advice", rec))
	}
}

// recommend applies the advisory rule set. Cache rules run in sorted name
// order so the output is stable.
func recommend(m Metrics, caches map[string]cache.Stats) []string {
	var recs []string

	if m.TotalValidations > 0 && m.SuccessRate() < minHealthySuccessRate {
		recs = append(recs, fmt.Sprintf(
			"success rate %.0f%% is below %.0f%%: check input data quality",
			m.SuccessRate()*100, minHealthySuccessRate*100))
	}

	if m.AverageDuration() > slowAverageDuration {
		recs = append(recs, fmt.Sprintf(
			"average validation duration %s exceeds %s: simplify rules or enable caching",
			m.AverageDuration(), slowAverageDuration))
	}

	if m.TotalValidations > hitRateSampleFloor && m.CacheHitRate() < minHealthyHitRate {
		recs = append(recs, fmt.Sprintf(
			"cache hit rate %.0f%% is below %.0f%%: tune cache capacity or key derivation",
			m.CacheHitRate()*100, minHealthyHitRate*100))
	}

	names := make([]string, 0, len(caches))
	for name := range caches {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		stats := caches[name]
		switch {
		case stats.Utilization() > highCacheUtilization:
			recs = append(recs, fmt.Sprintf(
				"cache %q is over %.0f%% full: increase its capacity", name, highCacheUtilization*100))
		case stats.Utilization() < lowCacheUtilization && stats.Size > 0:
			recs = append(recs, fmt.Sprintf(
				"cache %q is under %.0f%% utilized: consider a smaller capacity", name, lowCacheUtilization*100))
		}
	}

	return recs
}
