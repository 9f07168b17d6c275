package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit/pkg/metrics"
)

func TestPrometheusCollector_Collect(t *testing.T) {
	c := metrics.NewCollector()
	c.Record(2*time.Millisecond, true, true)
	c.Record(4*time.Millisecond, true, false)
	c.Record(6*time.Millisecond, false, false)

	pc := metrics.NewPrometheusCollector(c, stubStats{
		"users":  {Size: 10, Capacity: 100, Evictions: 2},
		"events": {Size: 5, Capacity: 50},
	})

	// 7 global metrics plus 3 per cache.
	assert.Equal(t, 13, testutil.CollectAndCount(pc))

	expected := `
		# HELP guardkit_validations_total Total number of validations recorded.
		# TYPE guardkit_validations_total counter
		guardkit_validations_total 3
		# HELP guardkit_validations_successful_total Number of validations that reported valid input.
		# TYPE guardkit_validations_successful_total counter
		guardkit_validations_successful_total 2
		# HELP guardkit_cache_hits_total Number of validations answered from cache.
		# TYPE guardkit_cache_hits_total counter
		guardkit_cache_hits_total 1
		# HELP guardkit_cache_misses_total Number of validations that required a fresh run.
		# TYPE guardkit_cache_misses_total counter
		guardkit_cache_misses_total 2
	`
	require.NoError(t, testutil.CollectAndCompare(pc, strings.NewReader(expected),
		"guardkit_validations_total",
		"guardkit_validations_successful_total",
		"guardkit_cache_hits_total",
		"guardkit_cache_misses_total",
	))
}

func TestPrometheusCollector_PerCacheMetrics(t *testing.T) {
	c := metrics.NewCollector()

	pc := metrics.NewPrometheusCollector(c, stubStats{
		"users": {Size: 10, Capacity: 100, Evictions: 2},
	})

	expected := `
		# HELP guardkit_cache_entries Entries currently held by a named cache.
		# TYPE guardkit_cache_entries gauge
		guardkit_cache_entries{cache="users"} 10
		# HELP guardkit_cache_capacity Configured capacity of a named cache.
		# TYPE guardkit_cache_capacity gauge
		guardkit_cache_capacity{cache="users"} 100
		# HELP guardkit_cache_evictions_total Entries evicted from a named cache by capacity pressure.
		# TYPE guardkit_cache_evictions_total counter
		guardkit_cache_evictions_total{cache="users"} 2
	`
	require.NoError(t, testutil.CollectAndCompare(pc, strings.NewReader(expected),
		"guardkit_cache_entries",
		"guardkit_cache_capacity",
		"guardkit_cache_evictions_total",
	))
}

func TestPrometheusCollector_WithoutCaches(t *testing.T) {
	c := metrics.NewCollector()
	c.Record(time.Millisecond, true, false)

	pc := metrics.NewPrometheusCollector(c, nil)

	assert.Equal(t, 7, testutil.CollectAndCount(pc))
}

func TestPrometheusCollector_RegistersCleanly(t *testing.T) {
	reg := prometheus.NewRegistry()
	pc := metrics.NewPrometheusCollector(metrics.NewCollector(), nil)

	require.NoError(t, reg.Register(pc))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNewPrometheusCollector_NilCollector(t *testing.T) {
	assert.Panics(t, func() {
		metrics.NewPrometheusCollector(nil, nil)
	})
}
