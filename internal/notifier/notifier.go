package notifier

import (
	"time"

	"github.com/mauv0809/pitchside/internal/booking"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For players queued on a game that just freed a seat
	SendSlotOpenNotification(r *booking.Reservation, userIDs []string, dryRun bool) error
	// For a player who has just been suspended
	SendSuspensionNotification(userID string, until time.Time, reason string, dryRun bool) error
	// For completed games with a summary attached
	SendGameSummaryNotification(r *booking.Reservation, dryRun bool) error
}
