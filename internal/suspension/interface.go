package suspension

import "github.com/mauv0809/pitchside/internal/booking"

// Store defines the reservation store operations required by the enforcer.
type Store interface {
	Suspension(userID string) (booking.Suspension, bool)
	Suspensions() []booking.Suspension
	SetSuspension(s booking.Suspension)
	RemoveSuspension(userID string)
	Reservations() []*booking.Reservation
	UpdateReservation(id string, mutate func(*booking.Reservation) error) error
}
