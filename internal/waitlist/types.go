package waitlist

import (
	"github.com/mauv0809/pitchside/internal/notifier"
	"github.com/mauv0809/pitchside/internal/pubsub"
)

// Manager owns the bounded FIFO waiting list attached to each reservation.
type Manager struct {
	store    Store
	notifier notifier.Notifier
	pubsub   pubsub.PubSubClient
}
