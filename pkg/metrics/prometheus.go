package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const promNamespace = "guardkit"

// PrometheusCollector exposes a Collector, and optionally per-cache
// statistics, as Prometheus metrics. It implements prometheus.Collector with
// const metrics built from snapshots at scrape time, so it adds no overhead
// to the validation hot path.
//
// The caller owns the registry and the exposition endpoint:
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(metrics.NewPrometheusCollector(collector, manager))
type PrometheusCollector struct {
	collector *Collector
	caches    CacheStatsSource

	validationsDesc *prometheus.Desc
	successfulDesc  *prometheus.Desc
	hitsDesc        *prometheus.Desc
	missesDesc      *prometheus.Desc
	minDurationDesc *prometheus.Desc
	maxDurationDesc *prometheus.Desc
	avgDurationDesc *prometheus.Desc
	cacheSizeDesc   *prometheus.Desc
	cacheCapDesc    *prometheus.Desc
	cacheEvictsDesc *prometheus.Desc
}

// NewPrometheusCollector creates a bridge over the given collector. The
// collector must not be nil, otherwise it panics; caches may be nil to skip
// per-cache metrics.
func NewPrometheusCollector(collector *Collector, caches CacheStatsSource) *PrometheusCollector {
	if collector == nil {
		panic("metrics: prometheus collector requires a collector")
	}

	return &PrometheusCollector{
		collector: collector,
		caches:    caches,
		validationsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(promNamespace, "", "validations_total"),
			"Total number of validations recorded.",
			nil, nil,
		),
		successfulDesc: prometheus.NewDesc(
			prometheus.BuildFQName(promNamespace, "", "validations_successful_total"),
			"Number of validations that reported valid input.",
			nil, nil,
		),
		hitsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(promNamespace, "", "cache_hits_total"),
			"Number of validations answered from cache.",
			nil, nil,
		),
		missesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(promNamespace, "", "cache_misses_total"),
			"Number of validations that required a fresh run.",
			nil, nil,
		),
		minDurationDesc: prometheus.NewDesc(
			prometheus.BuildFQName(promNamespace, "", "validation_duration_min_seconds"),
			"Shortest recorded validation duration.",
			nil, nil,
		),
		maxDurationDesc: prometheus.NewDesc(
			prometheus.BuildFQName(promNamespace, "", "validation_duration_max_seconds"),
			"Longest recorded validation duration.",
			nil, nil,
		),
		avgDurationDesc: prometheus.NewDesc(
			prometheus.BuildFQName(promNamespace, "", "validation_duration_avg_seconds"),
			"Mean recorded validation duration.",
			nil, nil,
		),
		cacheSizeDesc: prometheus.NewDesc(
			prometheus.BuildFQName(promNamespace, "", "cache_entries"),
			"Entries currently held by a named cache.",
			[]string{"cache"}, nil,
		),
		cacheCapDesc: prometheus.NewDesc(
			prometheus.BuildFQName(promNamespace, "", "cache_capacity"),
			"Configured capacity of a named cache.",
			[]string{"cache"}, nil,
		),
		cacheEvictsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(promNamespace, "", "cache_evictions_total"),
			"Entries evicted from a named cache by capacity pressure.",
			[]string{"cache"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (p *PrometheusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- p.validationsDesc
	ch <- p.successfulDesc
	ch <- p.hitsDesc
	ch <- p.missesDesc
	ch <- p.minDurationDesc
	ch <- p.maxDurationDesc
	ch <- p.avgDurationDesc
	ch <- p.cacheSizeDesc
	ch <- p.cacheCapDesc
	ch <- p.cacheEvictsDesc
}

// Collect implements prometheus.Collector.
func (p *PrometheusCollector) Collect(ch chan<- prometheus.Metric) {
	snap := p.collector.Snapshot()

	ch <- prometheus.MustNewConstMetric(p.validationsDesc,
		prometheus.CounterValue, float64(snap.TotalValidations))
	ch <- prometheus.MustNewConstMetric(p.successfulDesc,
		prometheus.CounterValue, float64(snap.SuccessfulValidations))
	ch <- prometheus.MustNewConstMetric(p.hitsDesc,
		prometheus.CounterValue, float64(snap.CacheHits))
	ch <- prometheus.MustNewConstMetric(p.missesDesc,
		prometheus.CounterValue, float64(snap.CacheMisses))
	ch <- prometheus.MustNewConstMetric(p.minDurationDesc,
		prometheus.GaugeValue, snap.MinDuration.Seconds())
	ch <- prometheus.MustNewConstMetric(p.maxDurationDesc,
		prometheus.GaugeValue, snap.MaxDuration.Seconds())
	ch <- prometheus.MustNewConstMetric(p.avgDurationDesc,
		prometheus.GaugeValue, snap.AverageDuration().Seconds())

	if p.caches == nil {
		return
	}
	for name, stats := range p.caches.Stats() {
		ch <- prometheus.MustNewConstMetric(p.cacheSizeDesc,
			prometheus.GaugeValue, float64(stats.Size), name)
		ch <- prometheus.MustNewConstMetric(p.cacheCapDesc,
			prometheus.GaugeValue, float64(stats.Capacity), name)
		ch <- prometheus.MustNewConstMetric(p.cacheEvictsDesc,
			prometheus.CounterValue, float64(stats.Evictions), name)
	}
}
