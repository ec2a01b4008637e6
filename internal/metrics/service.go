package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pitchside_actions_total",
			Help: "The total number of orchestrated actions, by action.",
		}, []string{"action"}),
		ValidationRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pitchside_validation_rejections_total",
			Help: "The total number of actions rejected by local precondition checks.",
		}, []string{"action"}),
		RemoteFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pitchside_remote_failures_total",
			Help: "The total number of remote booking service failures, by operation.",
		}, []string{"op"}),
		SnapshotWriteFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pitchside_snapshot_write_failures_total",
			Help: "The total number of best-effort snapshot writes that failed.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pitchside_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pitchside_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		ActionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pitchside_action_duration_seconds",
			Help:    "The duration of individual orchestrated actions.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"action"}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pitchside_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Actions,
		s.ValidationRejected,
		s.RemoteFailures,
		s.SnapshotWriteFailed,
		s.NotifSent,
		s.NotifFailed,
		s.ActionDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncActions(action string) {
	s.Actions.WithLabelValues(action).Inc()
}

func (s *Service) IncValidationRejected(action string) {
	s.ValidationRejected.WithLabelValues(action).Inc()
}

func (s *Service) IncRemoteFailures(op string) {
	s.RemoteFailures.WithLabelValues(op).Inc()
}

func (s *Service) IncSnapshotWriteFailed() {
	s.SnapshotWriteFailed.Inc()
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) ObserveActionDuration(action string, duration float64) {
	s.ActionDuration.WithLabelValues(action).Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
