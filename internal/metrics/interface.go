package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncActions(action string)
	IncValidationRejected(action string)
	IncRemoteFailures(op string)
	IncSnapshotWriteFailed()
	IncNotifSent()
	IncNotifFailed()
	ObserveActionDuration(action string, duration float64)
	SetStartupTime(duration float64)
}
