package metrics

import (
	"math"
	"sync/atomic"
	"time"
)

// Metrics is a point-in-time snapshot of validation counters taken from a
// Collector. Rates and averages are computed on demand so the snapshot stays
// a plain value.
type Metrics struct {
	TotalValidations      int64
	SuccessfulValidations int64
	CacheHits             int64
	CacheMisses           int64
	TotalDuration         time.Duration
	MinDuration           time.Duration
	MaxDuration           time.Duration
}

// FailedValidations reports how many recorded validations were unsuccessful.
func (m Metrics) FailedValidations() int64 {
	return m.TotalValidations - m.SuccessfulValidations
}

// AverageDuration reports the mean duration across recorded validations,
// or 0 when nothing has been recorded.
func (m Metrics) AverageDuration() time.Duration {
	if m.TotalValidations == 0 {
		return 0
	}
	return m.TotalDuration / time.Duration(m.TotalValidations)
}

// SuccessRate reports the fraction of successful validations, between 0 and
// 1. An empty snapshot reports 0.
func (m Metrics) SuccessRate() float64 {
	if m.TotalValidations == 0 {
		return 0
	}
	return float64(m.SuccessfulValidations) / float64(m.TotalValidations)
}

// CacheHitRate reports the fraction of validations answered from a cache,
// between 0 and 1. Uncached runs count as misses, so the rate reflects how
// much work the cache actually absorbed.
func (m Metrics) CacheHitRate() float64 {
	lookups := m.CacheHits + m.CacheMisses
	if lookups == 0 {
		return 0
	}
	return float64(m.CacheHits) / float64(lookups)
}

// Collector accumulates validation counters. All methods are safe for
// concurrent use; recording is lock-free so it can sit on the hot path of
// every validation call.
type Collector struct {
	total       atomic.Int64
	successful  atomic.Int64
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
	totalNanos  atomic.Int64
	minNanos    atomic.Int64
	maxNanos    atomic.Int64
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	c := &Collector{}
	c.minNanos.Store(math.MaxInt64)
	return c
}

// Record adds one validation outcome to the running totals. cacheHit is true
// when the result came from a cache rather than a fresh run.
func (c *Collector) Record(duration time.Duration, success, cacheHit bool) {
	c.total.Add(1)
	if success {
		c.successful.Add(1)
	}
	if cacheHit {
		c.cacheHits.Add(1)
	} else {
		c.cacheMisses.Add(1)
	}

	ns := duration.Nanoseconds()
	c.totalNanos.Add(ns)

	for {
		cur := c.minNanos.Load()
		if ns >= cur || c.minNanos.CompareAndSwap(cur, ns) {
			break
		}
	}
	for {
		cur := c.maxNanos.Load()
		if ns <= cur || c.maxNanos.CompareAndSwap(cur, ns) {
			break
		}
	}
}

// Snapshot returns the current counters. Fields are loaded individually, so
// a snapshot taken during concurrent recording may be off by in-flight
// updates; totals are exact once recording quiesces.
func (c *Collector) Snapshot() Metrics {
	m := Metrics{
		TotalValidations:      c.total.Load(),
		SuccessfulValidations: c.successful.Load(),
		CacheHits:             c.cacheHits.Load(),
		CacheMisses:           c.cacheMisses.Load(),
		TotalDuration:         time.Duration(c.totalNanos.Load()),
		MaxDuration:           time.Duration(c.maxNanos.Load()),
	}
	if minNs := c.minNanos.Load(); minNs != math.MaxInt64 {
		m.MinDuration = time.Duration(minNs)
	}
	return m
}

// Reset zeroes every counter. Intended for test isolation and for operators
// who want a fresh observation window.
func (c *Collector) Reset() {
	c.total.Store(0)
	c.successful.Store(0)
	c.cacheHits.Store(0)
	c.cacheMisses.Store(0)
	c.totalNanos.Store(0)
	c.minNanos.Store(math.MaxInt64)
	c.maxNanos.Store(0)
}
