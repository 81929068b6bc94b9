// Package metrics provides Prometheus metrics collection for the favicon cache.
package metrics

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Tier and result label values.
const (
	TierMemory = "memory"
	TierDisk   = "disk"

	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultInvalid = "invalid"
)

var (
	// CacheLookupsTotal tracks cache lookups by tier and result.
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favicache_cache_lookups_total",
			Help: "Total number of favicon cache lookups",
		},
		[]string{"tier", "result"},
	)

	// SourceAttemptsTotal tracks network source attempts by source name and result.
	SourceAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favicache_source_attempts_total",
			Help: "Total number of favicon source fetch attempts",
		},
		[]string{"source", "result"},
	)

	// FetchDuration tracks the duration of full source chain walks.
	FetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "favicache_fetch_duration_seconds",
			Help:    "Duration of favicon source chain walks in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// MemoryEntries tracks the current memory tier entry count.
	MemoryEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "favicache_memory_entries",
			Help: "Current number of icons held in memory",
		},
	)

	// MemoryBytes tracks the current memory tier approximate size.
	MemoryBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "favicache_memory_bytes",
			Help: "Approximate bytes held by in-memory icons",
		},
	)

	// MemoryEvictionsTotal tracks icons pushed out of the memory tier by its bounds.
	MemoryEvictionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "favicache_memory_evictions_total",
			Help: "Total number of icons evicted from memory",
		},
	)

	// DiskErrorsTotal tracks swallowed disk tier failures by operation.
	DiskErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favicache_disk_errors_total",
			Help: "Total number of disk cache I/O failures",
		},
		[]string{"op"},
	)
)

// RecordCacheLookup records a lookup against one cache tier.
func RecordCacheLookup(tier, result string) {
	CacheLookupsTotal.WithLabelValues(tier, result).Inc()
}

// RecordSourceAttempt records the outcome of one source candidate.
func RecordSourceAttempt(source, result string) {
	SourceAttemptsTotal.WithLabelValues(source, result).Inc()
}

// ObserveFetch records the duration of a source chain walk.
func ObserveFetch(d time.Duration) {
	FetchDuration.Observe(d.Seconds())
}

// UpdateMemoryMetrics updates memory tier gauges.
func UpdateMemoryMetrics(entries int, bytes int64) {
	MemoryEntries.Set(float64(entries))
	MemoryBytes.Set(float64(bytes))
}

// RecordMemoryEviction records one icon evicted from the memory tier.
func RecordMemoryEviction() {
	MemoryEvictionsTotal.Inc()
}

// RecordDiskError records a swallowed disk failure.
func RecordDiskError(op string) {
	DiskErrorsTotal.WithLabelValues(op).Inc()
}

// Sample is one labelled counter value.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Snapshot gathers the favicache counters from the given gatherer,
// sorted by metric name then label values.
func Snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, mf := range families {
		if mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		switch mf.GetName() {
		case "favicache_cache_lookups_total", "favicache_source_attempts_total",
			"favicache_memory_evictions_total", "favicache_disk_errors_total":
		default:
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			samples = append(samples, Sample{
				Name:   mf.GetName(),
				Labels: labels,
				Value:  m.GetCounter().GetValue(),
			})
		}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return labelKey(samples[i].Labels) < labelKey(samples[j].Labels)
	})
	return samples, nil
}

func labelKey(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += k + "=" + labels[k] + ","
	}
	return out
}
