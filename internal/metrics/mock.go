package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	actions             map[string]int
	validationRejected  map[string]int
	remoteFailures      map[string]int
	snapshotWriteFailed int
	notifSent           int
	notifFailed         int
	actionDurations     []float64
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		actions:            make(map[string]int),
		validationRejected: make(map[string]int),
		remoteFailures:     make(map[string]int),
	}
}

func (m *Mock) IncActions(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions[action]++
}

func (m *Mock) IncValidationRejected(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validationRejected[action]++
}

func (m *Mock) IncRemoteFailures(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remoteFailures[op]++
}

func (m *Mock) IncSnapshotWriteFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshotWriteFailed++
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) ObserveActionDuration(action string, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actionDurations = append(m.actionDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Actions returns the number of times IncActions was called for the action.
func (m *Mock) ActionCount(action string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.actions[action]
}

// RemoteFailureCount returns the number of times IncRemoteFailures was called for the op.
func (m *Mock) RemoteFailureCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remoteFailures[op]
}

// SnapshotWriteFailures returns the number of times IncSnapshotWriteFailed was called.
func (m *Mock) SnapshotWriteFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotWriteFailed
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailed returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}
