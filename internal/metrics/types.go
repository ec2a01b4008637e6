package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Actions             *prometheus.CounterVec
	ValidationRejected  *prometheus.CounterVec
	RemoteFailures      *prometheus.CounterVec
	SnapshotWriteFailed prometheus.Counter
	NotifSent           prometheus.Counter
	NotifFailed         prometheus.Counter
	ActionDuration      *prometheus.HistogramVec
	StartupTimeSeconds  prometheus.Gauge
}
