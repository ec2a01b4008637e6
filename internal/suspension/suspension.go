package suspension

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pitchside/internal/booking"
)

// New creates a new suspension Enforcer.
func New(store Store) *Enforcer {
	return &Enforcer{store: store, now: time.Now}
}

// NewWithClock creates an Enforcer with a fixed clock. Useful for tests.
func NewWithClock(store Store, now func() time.Time) *Enforcer {
	return &Enforcer{store: store, now: now}
}

// IsSuspended reports whether the user holds an active suspension and, if
// so, when it ends. An expired record is removed on the spot.
func (e *Enforcer) IsSuspended(userID string) (bool, time.Time) {
	susp, ok := e.store.Suspension(userID)
	if !ok {
		return false, time.Time{}
	}
	if !susp.Active(e.now()) {
		e.store.RemoveSuspension(userID)
		log.Debug("Dropped expired suspension", "userID", userID)
		return false, time.Time{}
	}
	return true, time.Unix(susp.Until, 0)
}

// Suspend bans the user for the given number of days, replacing any prior
// suspension, and purges them from every open or full reservation's lineup
// and waiting list. This is the one admin action that cascades across
// multiple reservations.
func (e *Enforcer) Suspend(userID string, durationDays int, reason string) booking.Suspension {
	until := e.now().AddDate(0, 0, durationDays)
	susp := booking.Suspension{
		UserID: userID,
		Until:  until.Unix(),
		Reason: reason,
	}
	e.store.SetSuspension(susp)
	log.Info("Suspended player", "userID", userID, "until", until.Format("2006-01-02"), "reason", reason)

	for _, r := range e.store.Reservations() {
		switch r.Status {
		case booking.StatusCompleted, booking.StatusCancelled:
			continue
		case booking.StatusOpen, booking.StatusFull:
		}
		if !r.HasJoined(userID) && !r.OnWaitingList(userID) {
			continue
		}
		err := e.store.UpdateReservation(r.ID, func(res *booking.Reservation) error {
			kept := res.Lineup[:0]
			for _, p := range res.Lineup {
				if p.UserID == userID {
					continue
				}
				kept = append(kept, p)
			}
			res.Lineup = kept

			for i, id := range res.WaitingList {
				if id == userID {
					res.WaitingList = append(res.WaitingList[:i], res.WaitingList[i+1:]...)
					break
				}
			}
			res.RecomputeStatus()
			return nil
		})
		if err != nil {
			log.Error("Failed to purge suspended player from reservation", "error", err, "reservationID", r.ID, "userID", userID)
			continue
		}
		log.Info("Purged suspended player from reservation", "reservationID", r.ID, "userID", userID)
	}

	return susp
}

// PurgeExpired drops every suspension that has already run out.
func (e *Enforcer) PurgeExpired() {
	now := e.now()
	for _, susp := range e.store.Suspensions() {
		if !susp.Active(now) {
			e.store.RemoveSuspension(susp.UserID)
			log.Debug("Dropped expired suspension", "userID", susp.UserID)
		}
	}
}
