package remote

import (
	"context"
	"sync"

	"github.com/mauv0809/pitchside/internal/booking"
)

// MockClient is a mock implementation of the BookingClient interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	ListReservationsFunc  func(ctx context.Context) ([]*booking.Reservation, error)
	JoinFunc              func(ctx context.Context, reservationID string) error
	CancelFunc            func(ctx context.Context, reservationID string) error
	JoinWaitlistFunc      func(ctx context.Context, reservationID string) error
	LeaveWaitlistFunc     func(ctx context.Context, reservationID string) error
	DeleteReservationFunc func(ctx context.Context, reservationID string) error
	KickPlayerFunc        func(ctx context.Context, reservationID, userID string) error
	SuspendPlayerFunc     func(ctx context.Context, userID, reason string, days int) error
	AddGameSummaryFunc    func(ctx context.Context, reservationID string, summary GameSummary) error

	// Call records
	ListReservationsCalls int
	JoinCalls             []string
	CancelCalls           []string
	JoinWaitlistCalls     []string
	LeaveWaitlistCalls    []string
	DeleteCalls           []string
	KickCalls             []KickCall
	SuspendCalls          []SuspendCall
	SummaryCalls          []SummaryCall
}

// KickCall holds the arguments for a call to KickPlayer.
type KickCall struct {
	ReservationID string
	UserID        string
}

// SuspendCall holds the arguments for a call to SuspendPlayer.
type SuspendCall struct {
	UserID string
	Reason string
	Days   int
}

// SummaryCall holds the arguments for a call to AddGameSummary.
type SummaryCall struct {
	ReservationID string
	Summary       GameSummary
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListReservationsCalls = 0
	m.JoinCalls = nil
	m.CancelCalls = nil
	m.JoinWaitlistCalls = nil
	m.LeaveWaitlistCalls = nil
	m.DeleteCalls = nil
	m.KickCalls = nil
	m.SuspendCalls = nil
	m.SummaryCalls = nil
}

func (m *MockClient) ListReservations(ctx context.Context) ([]*booking.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListReservationsCalls++
	if m.ListReservationsFunc != nil {
		return m.ListReservationsFunc(ctx)
	}
	return nil, nil
}

func (m *MockClient) Join(ctx context.Context, reservationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.JoinCalls = append(m.JoinCalls, reservationID)
	if m.JoinFunc != nil {
		return m.JoinFunc(ctx, reservationID)
	}
	return nil
}

func (m *MockClient) Cancel(ctx context.Context, reservationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CancelCalls = append(m.CancelCalls, reservationID)
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, reservationID)
	}
	return nil
}

func (m *MockClient) JoinWaitlist(ctx context.Context, reservationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.JoinWaitlistCalls = append(m.JoinWaitlistCalls, reservationID)
	if m.JoinWaitlistFunc != nil {
		return m.JoinWaitlistFunc(ctx, reservationID)
	}
	return nil
}

func (m *MockClient) LeaveWaitlist(ctx context.Context, reservationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LeaveWaitlistCalls = append(m.LeaveWaitlistCalls, reservationID)
	if m.LeaveWaitlistFunc != nil {
		return m.LeaveWaitlistFunc(ctx, reservationID)
	}
	return nil
}

func (m *MockClient) DeleteReservation(ctx context.Context, reservationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, reservationID)
	if m.DeleteReservationFunc != nil {
		return m.DeleteReservationFunc(ctx, reservationID)
	}
	return nil
}

func (m *MockClient) KickPlayer(ctx context.Context, reservationID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.KickCalls = append(m.KickCalls, KickCall{ReservationID: reservationID, UserID: userID})
	if m.KickPlayerFunc != nil {
		return m.KickPlayerFunc(ctx, reservationID, userID)
	}
	return nil
}

func (m *MockClient) SuspendPlayer(ctx context.Context, userID, reason string, days int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SuspendCalls = append(m.SuspendCalls, SuspendCall{UserID: userID, Reason: reason, Days: days})
	if m.SuspendPlayerFunc != nil {
		return m.SuspendPlayerFunc(ctx, userID, reason, days)
	}
	return nil
}

func (m *MockClient) AddGameSummary(ctx context.Context, reservationID string, summary GameSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SummaryCalls = append(m.SummaryCalls, SummaryCall{ReservationID: reservationID, Summary: summary})
	if m.AddGameSummaryFunc != nil {
		return m.AddGameSummaryFunc(ctx, reservationID, summary)
	}
	return nil
}
