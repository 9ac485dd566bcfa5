package store

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus counters an FSStore updates as chunks
// flow through it: how many bytes/chunks actually hit disk versus how
// many were recognized as duplicates and skipped. This is the
// dedup-ratio signal a CDC-backed backup or sync tool is built to
// produce in the first place.
type Metrics struct {
	storedChunks  prometheus.Counter
	storedBytes   prometheus.Counter
	dedupedChunks prometheus.Counter
	dedupedBytes  prometheus.Counter
}

// NewMetrics creates a standalone Metrics instance, not registered with
// any Prometheus registry. Use NewMetricsFor instead to get counters
// registered with a registry and exposed on a /metrics endpoint.
func NewMetrics() *Metrics {
	return &Metrics{
		storedChunks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cdcflow",
			Subsystem: "store",
			Name:      "chunks_stored_total",
			Help:      "Number of chunks written to the store.",
		}),
		storedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cdcflow",
			Subsystem: "store",
			Name:      "bytes_stored_total",
			Help:      "Number of chunk bytes written to the store.",
		}),
		dedupedChunks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cdcflow",
			Subsystem: "store",
			Name:      "chunks_deduplicated_total",
			Help:      "Number of chunks recognized as duplicates and skipped.",
		}),
		dedupedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cdcflow",
			Subsystem: "store",
			Name:      "bytes_deduplicated_total",
			Help:      "Number of chunk bytes saved by deduplication.",
		}),
	}
}

// NewMetricsFor creates a Metrics instance and registers its counters
// with reg so they are served on reg's /metrics endpoint.
func NewMetricsFor(reg prometheus.Registerer) *Metrics {
	m := NewMetrics()
	reg.MustRegister(m.storedChunks, m.storedBytes, m.dedupedChunks, m.dedupedBytes)
	return m
}
