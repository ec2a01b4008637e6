package waitlist

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/pitchside/internal/booking"
	"github.com/mauv0809/pitchside/internal/notifier"
	"github.com/mauv0809/pitchside/internal/pubsub"
)

// New creates a new waitlist Manager.
func New(store Store, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Manager {
	return &Manager{
		store:    store,
		notifier: notifier,
		pubsub:   pubsub,
	}
}

// Join appends the user to the reservation's waiting list. Only full games
// take queue entries, and the queue is capped at MaxWaitingList.
func (m *Manager) Join(reservationID, userID string) error {
	return m.store.UpdateReservation(reservationID, func(r *booking.Reservation) error {
		switch r.Status {
		case booking.StatusOpen:
			return booking.NewValidationError("game still has open seats, join the lineup instead")
		case booking.StatusCompleted:
			return booking.NewValidationError("game has already been played")
		case booking.StatusCancelled:
			return booking.NewValidationError("game has been cancelled")
		case booking.StatusFull:
		}

		if r.HasJoined(userID) {
			return booking.NewValidationError("you already hold a seat in this game")
		}
		if r.OnWaitingList(userID) {
			return booking.NewValidationError("you are already on the waiting list")
		}
		if len(r.WaitingList) >= booking.MaxWaitingList {
			return booking.NewValidationError("the waiting list is full")
		}

		r.WaitingList = append(r.WaitingList, userID)
		log.Info("Player joined waiting list", "reservationID", reservationID, "userID", userID, "position", len(r.WaitingList))
		return nil
	})
}

// Leave removes the user from the waiting list. No-op when not queued.
func (m *Manager) Leave(reservationID, userID string) error {
	return m.store.UpdateReservation(reservationID, func(r *booking.Reservation) error {
		for i, id := range r.WaitingList {
			if id == userID {
				r.WaitingList = append(r.WaitingList[:i], r.WaitingList[i+1:]...)
				log.Info("Player left waiting list", "reservationID", reservationID, "userID", userID)
				return nil
			}
		}
		log.Debug("User not on waiting list, nothing to do", "reservationID", reservationID, "userID", userID)
		return nil
	})
}

// Notify emits a slot-open notification intent for every queued user.
// Membership is never mutated here: a freed seat must be claimed with an
// explicit join, so no one gets seated without their live confirmation.
// Delivery is fire-and-forget; failures are logged, not returned.
func (m *Manager) Notify(reservationID string, dryRun bool) {
	r, ok := m.store.Reservation(reservationID)
	if !ok {
		log.Warn("Cannot notify waiting list of unknown reservation", "reservationID", reservationID)
		return
	}
	if len(r.WaitingList) == 0 {
		log.Debug("Waiting list is empty, nothing to notify", "reservationID", reservationID)
		return
	}

	event := pubsub.SlotOpenEvent{
		ReservationID: r.ID,
		PitchName:     r.PitchName,
		Date:          r.Date,
		Time:          r.Time,
		UserIDs:       append([]string(nil), r.WaitingList...),
	}
	if !dryRun {
		if err := m.pubsub.SendMessage(pubsub.EventSlotOpen, event); err != nil {
			log.Error("Failed to publish slot-open event", "error", err, "reservationID", reservationID)
		}
	}
	if err := m.notifier.SendSlotOpenNotification(r, event.UserIDs, dryRun); err != nil {
		log.Error("Failed to send slot-open notification", "error", err, "reservationID", reservationID)
	}
	log.Info("Notified waiting list", "reservationID", reservationID, "queued", len(event.UserIDs))
}
