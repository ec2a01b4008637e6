package roster

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pitchside/internal/booking"
)

// New creates a new roster Manager.
func New(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// NewWithClock creates a Manager with a fixed clock. Useful for tests.
func NewWithClock(store Store, now func() time.Time) *Manager {
	return &Manager{store: store, now: now}
}

// JoinGame seats the user in the reservation's lineup. Joining is a no-op
// when the user already holds a seat. Suspensions are re-checked here even
// though the orchestrator checks them first.
func (m *Manager) JoinGame(reservationID, userID, playerName string) error {
	now := m.now()
	if susp, ok := m.store.Suspension(userID); ok && susp.Active(now) {
		return &booking.SuspendedError{UserID: userID, Until: time.Unix(susp.Until, 0)}
	}

	return m.store.UpdateReservation(reservationID, func(r *booking.Reservation) error {
		switch r.Status {
		case booking.StatusCompleted:
			return booking.NewValidationError("game has already been played")
		case booking.StatusCancelled:
			return booking.NewValidationError("game has been cancelled")
		case booking.StatusOpen, booking.StatusFull:
		}

		if r.HasJoined(userID) {
			log.Debug("User already joined, nothing to do", "reservationID", reservationID, "userID", userID)
			return nil
		}
		if r.JoinedCount() >= r.MaxPlayers+booking.BufferSlots {
			return booking.NewValidationError("game is fully booked")
		}

		// Claiming a seat consumes any waiting list entry the user holds.
		for i, id := range r.WaitingList {
			if id == userID {
				r.WaitingList = append(r.WaitingList[:i], r.WaitingList[i+1:]...)
				break
			}
		}

		r.Lineup = append(r.Lineup, booking.LineupPlayer{
			UserID:     userID,
			Status:     booking.PlayerJoined,
			JoinedAt:   now.Unix(),
			PlayerName: playerName,
		})
		r.RecomputeStatus()
		log.Info("Player joined game", "reservationID", reservationID, "userID", userID, "joined", r.JoinedCount(), "status", r.Status)
		return nil
	})
}

// LeaveGame removes the user's lineup entries and recomputes the status.
// It reports whether the departure falls inside the penalty window; any
// resulting sanction is the caller's business. The waiting list is not
// auto-promoted.
func (m *Manager) LeaveGame(reservationID, userID string) (penalty bool, err error) {
	now := m.now()
	err = m.store.UpdateReservation(reservationID, func(r *booking.Reservation) error {
		kept := r.Lineup[:0]
		removed := false
		for _, p := range r.Lineup {
			if p.UserID == userID {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		if !removed {
			log.Debug("User not in lineup, nothing to do", "reservationID", reservationID, "userID", userID)
			return nil
		}
		r.Lineup = kept
		penalty = IsPenalty(*r, now)
		r.RecomputeStatus()
		log.Info("Player left game", "reservationID", reservationID, "userID", userID, "joined", r.JoinedCount(), "status", r.Status, "penalty", penalty)
		return nil
	})
	return penalty, err
}

// HasJoinedOnDate reports whether the user holds a joined seat in any open
// or full reservation on the given calendar day. Completed and cancelled
// games never count.
func (m *Manager) HasJoinedOnDate(date, userID string) bool {
	for _, r := range m.store.Reservations() {
		switch r.Status {
		case booking.StatusOpen, booking.StatusFull:
			if r.Date == date && r.HasJoined(userID) {
				return true
			}
		case booking.StatusCompleted, booking.StatusCancelled:
		}
	}
	return false
}

// IsPenalty reports whether leaving the reservation at the given time falls
// inside the penalty window before kick-off. A slot label that cannot be
// parsed never flags.
func IsPenalty(r booking.Reservation, now time.Time) bool {
	start, ok := startTime(r)
	if !ok {
		return false
	}
	return !now.Before(start.Add(-booking.PenaltyWindow)) && now.Before(start)
}

// startTime combines the reservation date with the leading HH:MM of the
// slot label, e.g. "2026-03-14" + "19:00 - 20:00".
func startTime(r booking.Reservation) (time.Time, bool) {
	fields := strings.Fields(r.Time)
	if len(fields) == 0 {
		return time.Time{}, false
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", r.Date+" "+fields[0], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}
