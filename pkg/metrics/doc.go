// Package metrics collects validation performance counters and turns them
// into actionable reports.
//
// The package has three pieces. Collector sits on the validation hot path
// and accumulates lock-free counters: totals, successes, cache hits and
// misses, and duration extremes. Monitor periodically snapshots a collector,
// joins it with per-cache statistics, applies a small advisory rule set, and
// logs the result. PrometheusCollector bridges the same counters into a
// prometheus.Registry for scraping.
//
// Nothing here is a global: each piece is constructed explicitly and wired
// through application setup, so tests and independent validator stacks get
// isolated counters.
//
// # Recording
//
//	collector := metrics.NewCollector()
//
//	start := time.Now()
//	valid := schema(value)
//	collector.Record(time.Since(start), valid, false)
//
// # Reporting
//
//	monitor := metrics.NewMonitor(collector,
//	    metrics.WithCacheStats(manager),
//	    metrics.WithReportInterval(30*time.Second),
//	    metrics.WithLogger(logger),
//	)
//
//	if err := monitor.Start(ctx); err != nil {
//	    return err
//	}
//	defer monitor.Stop()
//
// Reports can also be generated on demand with monitor.Report(), whether or
// not the background loop is running.
//
// # Recommendations
//
// A report includes plain-language recommendations when counters cross
// advisory thresholds: low success rate, slow average duration, a cold cache
// over a meaningful sample, and per-cache capacity pressure in either
// direction. The strings are for operators, not machines; they carry no
// structured codes.
//
// # Prometheus
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(metrics.NewPrometheusCollector(collector, manager))
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// The bridge reads snapshots at scrape time and emits const metrics, adding
// no cost to validation calls between scrapes.
package metrics
