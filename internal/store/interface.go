package store

import "github.com/mauv0809/pitchside/internal/booking"

// ReservationStore is the single source of truth for reservations, pitches
// and suspensions. All reads return copies; mutations go through the store
// so they can be serialized and persisted.
type ReservationStore interface {
	Load()
	Flush()

	Pitches() []booking.Pitch
	Pitch(id string) (booking.Pitch, bool)
	AddPitch(p booking.Pitch) error
	DeletePitch(id string) error
	ReplacePitches(pitches []booking.Pitch)

	Reservations() []*booking.Reservation
	Reservation(id string) (*booking.Reservation, bool)
	AddReservation(r *booking.Reservation) error
	DeleteReservation(id string) error
	UpdateReservation(id string, mutate func(*booking.Reservation) error) error
	ReplaceReservations(reservations []*booking.Reservation)

	Suspension(userID string) (booking.Suspension, bool)
	Suspensions() []booking.Suspension
	SetSuspension(s booking.Suspension)
	RemoveSuspension(userID string)
	ReplaceSuspensions(suspensions []booking.Suspension)
}
