// Package metrics provides Prometheus instrumentation for split runs.
//
// A split run is a short-lived batch process, so metrics are not served over
// HTTP. Instead each run owns a private registry whose final state can be
// exported in the node_exporter textfile collector format, to be picked up
// from a configured directory after the process exits.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RunMetrics collects the counters of a single split run.
//
// A nil *RunMetrics is valid and records nothing, so callers never need to
// branch on whether metrics collection is enabled.
type RunMetrics struct {
	registry *prometheus.Registry

	filesTransferred *prometheus.CounterVec
	bytesTransferred prometheus.Counter
	fileSize         prometheus.Histogram
	transferDuration prometheus.Histogram
	dirsCreated      prometheus.Counter
	runInfo          *prometheus.GaugeVec
}

// NewRunMetrics creates a fresh registry and the collectors for one run.
func NewRunMetrics(runID, mode string) *RunMetrics {
	reg := prometheus.NewRegistry()

	m := &RunMetrics{
		registry: reg,
		filesTransferred: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "dirsplit_files_transferred_total",
				Help: "Total number of files transferred, by shard directory",
			},
			[]string{"shard"},
		),
		bytesTransferred: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "dirsplit_bytes_transferred_total",
				Help: "Total number of bytes transferred into shard directories",
			},
		),
		fileSize: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name: "dirsplit_transferred_file_size_bytes",
				Help: "Distribution of transferred file sizes",
				Buckets: []float64{
					4096,      // 4KB - small files
					32768,     // 32KB
					131072,    // 128KB
					1048576,   // 1MB
					10485760,  // 10MB
					104857600, // 100MB - large files
				},
			},
		),
		transferDuration: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name: "dirsplit_transfer_duration_seconds",
				Help: "Duration of individual file transfers",
				Buckets: []float64{
					0.0001, // 100us - rename on same filesystem
					0.001,  // 1ms
					0.01,   // 10ms
					0.1,    // 100ms - copies of larger files
					1,      // 1s
					10,     // 10s
				},
			},
		),
		dirsCreated: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "dirsplit_shard_directories_created_total",
				Help: "Number of shard directories created by provisioning",
			},
		),
		runInfo: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dirsplit_run_info",
				Help: "Constant gauge carrying the run identifier and transfer mode as labels",
			},
			[]string{"run_id", "mode"},
		),
	}

	m.runInfo.WithLabelValues(runID, mode).Set(1)

	return m
}

// ObserveTransfer records a completed file transfer into the given shard.
func (m *RunMetrics) ObserveTransfer(shard string, bytes int64, duration time.Duration) {
	if m == nil {
		return
	}

	m.filesTransferred.WithLabelValues(shard).Inc()
	m.transferDuration.Observe(duration.Seconds())

	if bytes > 0 {
		m.bytesTransferred.Add(float64(bytes))
		m.fileSize.Observe(float64(bytes))
	}
}

// RecordDirsCreated records the number of shard directories provisioning
// actually created (pre-existing directories are not counted).
func (m *RunMetrics) RecordDirsCreated(n int) {
	if m == nil || n <= 0 {
		return
	}

	m.dirsCreated.Add(float64(n))
}

// Registry returns the run's private registry.
// Returns nil on a nil receiver.
func (m *RunMetrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// WriteToTextfile exports the run's final metric state to the given path in
// the textfile collector format. A nil receiver writes nothing.
func (m *RunMetrics) WriteToTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
