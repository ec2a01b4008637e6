package remote

import (
	"context"

	"github.com/mauv0809/pitchside/internal/booking"
)

// BookingClient defines the interface for interacting with the remote booking service.
// This allows for mock implementations to be used in tests.
type BookingClient interface {
	ListReservations(ctx context.Context) ([]*booking.Reservation, error)
	Join(ctx context.Context, reservationID string) error
	Cancel(ctx context.Context, reservationID string) error
	JoinWaitlist(ctx context.Context, reservationID string) error
	LeaveWaitlist(ctx context.Context, reservationID string) error
	DeleteReservation(ctx context.Context, reservationID string) error
	KickPlayer(ctx context.Context, reservationID, userID string) error
	SuspendPlayer(ctx context.Context, userID, reason string, days int) error
	AddGameSummary(ctx context.Context, reservationID string, summary GameSummary) error
}
