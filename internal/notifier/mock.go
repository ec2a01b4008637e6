package notifier

import (
	"sync"
	"time"

	"github.com/mauv0809/pitchside/internal/booking"
)

// MockNotifier is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	// Spies for method calls
	SendSlotOpenNotificationFunc    func(r *booking.Reservation, userIDs []string, dryRun bool) error
	SendSuspensionNotificationFunc  func(userID string, until time.Time, reason string, dryRun bool) error
	SendGameSummaryNotificationFunc func(r *booking.Reservation, dryRun bool) error

	// Call records
	SlotOpenCalls    []SlotOpenCall
	SuspensionCalls  []SuspensionCall
	GameSummaryCalls []*booking.Reservation
}

// SlotOpenCall holds the arguments for a call to SendSlotOpenNotification.
type SlotOpenCall struct {
	Reservation *booking.Reservation
	UserIDs     []string
}

// SuspensionCall holds the arguments for a call to SendSuspensionNotification.
type SuspensionCall struct {
	UserID string
	Until  time.Time
	Reason string
}

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

// Reset clears all call records.
func (m *MockNotifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlotOpenCalls = nil
	m.SuspensionCalls = nil
	m.GameSummaryCalls = nil
}

func (m *MockNotifier) SendSlotOpenNotification(r *booking.Reservation, userIDs []string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlotOpenCalls = append(m.SlotOpenCalls, SlotOpenCall{Reservation: r, UserIDs: userIDs})
	if m.SendSlotOpenNotificationFunc != nil {
		return m.SendSlotOpenNotificationFunc(r, userIDs, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendSuspensionNotification(userID string, until time.Time, reason string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SuspensionCalls = append(m.SuspensionCalls, SuspensionCall{UserID: userID, Until: until, Reason: reason})
	if m.SendSuspensionNotificationFunc != nil {
		return m.SendSuspensionNotificationFunc(userID, until, reason, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendGameSummaryNotification(r *booking.Reservation, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GameSummaryCalls = append(m.GameSummaryCalls, r)
	if m.SendGameSummaryNotificationFunc != nil {
		return m.SendGameSummaryNotificationFunc(r, dryRun)
	}
	return nil
}
