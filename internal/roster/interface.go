package roster

import "github.com/mauv0809/pitchside/internal/booking"

// Store defines the reservation store operations required by the roster manager.
type Store interface {
	Reservation(id string) (*booking.Reservation, bool)
	Reservations() []*booking.Reservation
	UpdateReservation(id string, mutate func(*booking.Reservation) error) error
	Suspension(userID string) (booking.Suspension, bool)
}
