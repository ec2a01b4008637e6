package store

import (
	"sync"

	"github.com/mauv0809/pitchside/internal/booking"
)

// MockStore is a mock implementation of the ReservationStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	LoadFunc                func()
	FlushFunc               func()
	PitchesFunc             func() []booking.Pitch
	PitchFunc               func(id string) (booking.Pitch, bool)
	AddPitchFunc            func(p booking.Pitch) error
	DeletePitchFunc         func(id string) error
	ReplacePitchesFunc      func(pitches []booking.Pitch)
	ReservationsFunc        func() []*booking.Reservation
	ReservationFunc         func(id string) (*booking.Reservation, bool)
	AddReservationFunc      func(r *booking.Reservation) error
	DeleteReservationFunc   func(id string) error
	UpdateReservationFunc   func(id string, mutate func(*booking.Reservation) error) error
	ReplaceReservationsFunc func(reservations []*booking.Reservation)
	SuspensionFunc          func(userID string) (booking.Suspension, bool)
	SuspensionsFunc         func() []booking.Suspension
	SetSuspensionFunc       func(s booking.Suspension)
	RemoveSuspensionFunc    func(userID string)
	ReplaceSuspensionsFunc  func(suspensions []booking.Suspension)

	// Call records
	UpdateReservationCalls   []string
	DeleteReservationCalls   []string
	ReplaceReservationsCalls [][]*booking.Reservation
	SetSuspensionCalls       []booking.Suspension
	RemoveSuspensionCalls    []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateReservationCalls = nil
	m.DeleteReservationCalls = nil
	m.ReplaceReservationsCalls = nil
	m.SetSuspensionCalls = nil
	m.RemoveSuspensionCalls = nil
}

func (m *MockStore) Load() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadFunc != nil {
		m.LoadFunc()
	}
}

func (m *MockStore) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FlushFunc != nil {
		m.FlushFunc()
	}
}

func (m *MockStore) Pitches() []booking.Pitch {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PitchesFunc != nil {
		return m.PitchesFunc()
	}
	return nil
}

func (m *MockStore) Pitch(id string) (booking.Pitch, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PitchFunc != nil {
		return m.PitchFunc(id)
	}
	return booking.Pitch{}, false
}

func (m *MockStore) AddPitch(p booking.Pitch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddPitchFunc != nil {
		return m.AddPitchFunc(p)
	}
	return nil
}

func (m *MockStore) DeletePitch(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeletePitchFunc != nil {
		return m.DeletePitchFunc(id)
	}
	return nil
}

func (m *MockStore) ReplacePitches(pitches []booking.Pitch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReplacePitchesFunc != nil {
		m.ReplacePitchesFunc(pitches)
	}
}

func (m *MockStore) Reservations() []*booking.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReservationsFunc != nil {
		return m.ReservationsFunc()
	}
	return nil
}

func (m *MockStore) Reservation(id string) (*booking.Reservation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReservationFunc != nil {
		return m.ReservationFunc(id)
	}
	return nil, false
}

func (m *MockStore) AddReservation(r *booking.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddReservationFunc != nil {
		return m.AddReservationFunc(r)
	}
	return nil
}

func (m *MockStore) DeleteReservation(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteReservationCalls = append(m.DeleteReservationCalls, id)
	if m.DeleteReservationFunc != nil {
		return m.DeleteReservationFunc(id)
	}
	return nil
}

func (m *MockStore) UpdateReservation(id string, mutate func(*booking.Reservation) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateReservationCalls = append(m.UpdateReservationCalls, id)
	if m.UpdateReservationFunc != nil {
		return m.UpdateReservationFunc(id, mutate)
	}
	return nil
}

func (m *MockStore) ReplaceReservations(reservations []*booking.Reservation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceReservationsCalls = append(m.ReplaceReservationsCalls, reservations)
	if m.ReplaceReservationsFunc != nil {
		m.ReplaceReservationsFunc(reservations)
	}
}

func (m *MockStore) Suspension(userID string) (booking.Suspension, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SuspensionFunc != nil {
		return m.SuspensionFunc(userID)
	}
	return booking.Suspension{}, false
}

func (m *MockStore) Suspensions() []booking.Suspension {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SuspensionsFunc != nil {
		return m.SuspensionsFunc()
	}
	return nil
}

func (m *MockStore) SetSuspension(s booking.Suspension) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetSuspensionCalls = append(m.SetSuspensionCalls, s)
	if m.SetSuspensionFunc != nil {
		m.SetSuspensionFunc(s)
	}
}

func (m *MockStore) RemoveSuspension(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveSuspensionCalls = append(m.RemoveSuspensionCalls, userID)
	if m.RemoveSuspensionFunc != nil {
		m.RemoveSuspensionFunc(userID)
	}
}

func (m *MockStore) ReplaceSuspensions(suspensions []booking.Suspension) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReplaceSuspensionsFunc != nil {
		m.ReplaceSuspensionsFunc(suspensions)
	}
}
