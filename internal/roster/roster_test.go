package roster_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/mauv0809/pitchside/internal/booking"
	"github.com/mauv0809/pitchside/internal/metrics"
	"github.com/mauv0809/pitchside/internal/roster"
	"github.com/mauv0809/pitchside/internal/snapshot"
	"github.com/mauv0809/pitchside/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRoster(t *testing.T, now time.Time) (*roster.Manager, store.ReservationStore) {
	t.Helper()

	s := store.New(snapshot.NewMock(), metrics.NewMock())
	s.Load()
	m := roster.NewWithClock(s, func() time.Time { return now })
	return m, s
}

// seatPlayers fills n seats of the reservation.
func seatPlayers(t *testing.T, m *roster.Manager, reservationID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, m.JoinGame(reservationID, fmt.Sprintf("filler-%d", i), fmt.Sprintf("Filler %d", i)))
	}
}

func TestJoinGame(t *testing.T) {
	m, s := setupTestRoster(t, time.Now())

	require.NoError(t, m.JoinGame("res-seed-1", "p1", "Player One"))

	r, ok := s.Reservation("res-seed-1")
	require.True(t, ok)
	assert.True(t, r.HasJoined("p1"))
	assert.Equal(t, 1, r.JoinedCount())
	assert.Equal(t, "Player One", r.Lineup[0].PlayerName)
}

func TestJoinGameIsIdempotent(t *testing.T) {
	m, s := setupTestRoster(t, time.Now())

	require.NoError(t, m.JoinGame("res-seed-1", "p1", "Player One"))
	require.NoError(t, m.JoinGame("res-seed-1", "p1", "Player One"))

	r, _ := s.Reservation("res-seed-1")
	assert.Equal(t, 1, r.JoinedCount())
}

func TestJoinGameBufferCap(t *testing.T) {
	m, s := setupTestRoster(t, time.Now())

	// res-seed-1 takes 10 players plus the overbooking buffer.
	seatPlayers(t, m, "res-seed-1", 10+booking.BufferSlots)

	err := m.JoinGame("res-seed-1", "one-too-many", "Late Larry")
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)

	r, _ := s.Reservation("res-seed-1")
	assert.Equal(t, 10+booking.BufferSlots, r.JoinedCount())
	assert.Equal(t, booking.StatusFull, r.Status)
}

func TestJoinGameMarksFullAtMaxPlayers(t *testing.T) {
	m, s := setupTestRoster(t, time.Now())

	seatPlayers(t, m, "res-seed-1", 10)

	r, _ := s.Reservation("res-seed-1")
	assert.Equal(t, booking.StatusFull, r.Status)

	// Buffer seats are still joinable once the game reads full.
	require.NoError(t, m.JoinGame("res-seed-1", "buffer-1", "Buffer One"))
}

func TestJoinGameRejectsTerminalStates(t *testing.T) {
	m, s := setupTestRoster(t, time.Now())

	require.NoError(t, s.UpdateReservation("res-seed-1", func(r *booking.Reservation) error {
		r.Status = booking.StatusCompleted
		return nil
	}))

	err := m.JoinGame("res-seed-1", "p1", "Player One")
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestJoinGameRejectsSuspendedUser(t *testing.T) {
	m, s := setupTestRoster(t, time.Now())

	s.SetSuspension(booking.Suspension{UserID: "p1", Until: time.Now().Add(time.Hour).Unix()})

	err := m.JoinGame("res-seed-1", "p1", "Player One")
	var suspendedErr *booking.SuspendedError
	require.ErrorAs(t, err, &suspendedErr)
	assert.Equal(t, "p1", suspendedErr.UserID)
}

func TestJoinGameConsumesWaitlistEntry(t *testing.T) {
	m, s := setupTestRoster(t, time.Now())

	require.NoError(t, s.UpdateReservation("res-seed-1", func(r *booking.Reservation) error {
		r.WaitingList = []string{"p1", "p2"}
		return nil
	}))

	require.NoError(t, m.JoinGame("res-seed-1", "p1", "Player One"))

	r, _ := s.Reservation("res-seed-1")
	assert.True(t, r.HasJoined("p1"))
	assert.Equal(t, []string{"p2"}, r.WaitingList)
}

func TestJoinGamePropagatesStoreError(t *testing.T) {
	mockStore := store.NewMock()
	mockStore.UpdateReservationFunc = func(id string, mutate func(*booking.Reservation) error) error {
		return booking.NewValidationError("reservation %s not found", id)
	}
	m := roster.New(mockStore)

	err := m.JoinGame("missing", "p1", "Player One")

	var verr *booking.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"missing"}, mockStore.UpdateReservationCalls)
}

func TestLeaveGame(t *testing.T) {
	m, s := setupTestRoster(t, time.Now())

	seatPlayers(t, m, "res-seed-1", 10)
	penalty, err := m.LeaveGame("res-seed-1", "filler-0")
	require.NoError(t, err)
	assert.False(t, penalty)

	r, _ := s.Reservation("res-seed-1")
	assert.False(t, r.HasJoined("filler-0"))
	assert.Equal(t, 9, r.JoinedCount())
	assert.Equal(t, booking.StatusOpen, r.Status)
	// Nobody gets promoted off the waiting list automatically.
	assert.Empty(t, r.WaitingList)
}

func TestLeaveGameNotInLineupIsNoOp(t *testing.T) {
	m, _ := setupTestRoster(t, time.Now())

	penalty, err := m.LeaveGame("res-seed-1", "stranger")
	require.NoError(t, err)
	assert.False(t, penalty)
}

func TestLeaveGamePenaltyWindow(t *testing.T) {
	kickOff := time.Date(2026, 3, 14, 19, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		now     time.Time
		penalty bool
	}{
		{"well before kick-off", kickOff.Add(-3 * time.Hour), false},
		{"window opens", kickOff.Add(-booking.PenaltyWindow), true},
		{"inside window", kickOff.Add(-30 * time.Minute), true},
		{"after kick-off", kickOff.Add(10 * time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, s := setupTestRoster(t, tt.now)
			require.NoError(t, s.AddReservation(&booking.Reservation{
				ID:         "res-penalty",
				PitchID:    "pitch-camp-nou",
				Date:       "2026-03-14",
				Time:       "19:00 - 20:00",
				MaxPlayers: 10,
			}))
			require.NoError(t, m.JoinGame("res-penalty", "p1", "Player One"))

			penalty, err := m.LeaveGame("res-penalty", "p1")
			require.NoError(t, err)
			assert.Equal(t, tt.penalty, penalty)
		})
	}
}

func TestIsPenaltyUnparsableSlotNeverFlags(t *testing.T) {
	r := booking.Reservation{Date: "2026-03-14", Time: "whenever"}
	assert.False(t, roster.IsPenalty(r, time.Now()))

	r.Time = ""
	assert.False(t, roster.IsPenalty(r, time.Now()))
}

func TestHasJoinedOnDate(t *testing.T) {
	m, s := setupTestRoster(t, time.Now())

	require.NoError(t, m.JoinGame("res-seed-1", "p1", "Player One"))

	r, _ := s.Reservation("res-seed-1")
	assert.True(t, m.HasJoinedOnDate(r.Date, "p1"))
	assert.False(t, m.HasJoinedOnDate(r.Date, "p2"))

	r2, _ := s.Reservation("res-seed-2")
	assert.False(t, m.HasJoinedOnDate(r2.Date, "p1"))
}

func TestHasJoinedOnDateIgnoresHistoricalGames(t *testing.T) {
	m, s := setupTestRoster(t, time.Now())

	require.NoError(t, m.JoinGame("res-seed-1", "p1", "Player One"))
	require.NoError(t, s.UpdateReservation("res-seed-1", func(r *booking.Reservation) error {
		r.Status = booking.StatusCompleted
		return nil
	}))

	r, _ := s.Reservation("res-seed-1")
	assert.False(t, m.HasJoinedOnDate(r.Date, "p1"))
}
