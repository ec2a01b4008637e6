package waitlist

import "github.com/mauv0809/pitchside/internal/booking"

// Store defines the reservation store operations required by the waitlist manager.
type Store interface {
	Reservation(id string) (*booking.Reservation, bool)
	UpdateReservation(id string, mutate func(*booking.Reservation) error) error
}
