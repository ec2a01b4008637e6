package orchestrator

import (
	"github.com/mauv0809/pitchside/internal/booking"
	"github.com/mauv0809/pitchside/internal/metrics"
	"github.com/mauv0809/pitchside/internal/notifier"
	"github.com/mauv0809/pitchside/internal/pubsub"
	"github.com/mauv0809/pitchside/internal/remote"
	"github.com/mauv0809/pitchside/internal/roster"
	"github.com/mauv0809/pitchside/internal/store"
	"github.com/mauv0809/pitchside/internal/suspension"
	"github.com/mauv0809/pitchside/internal/waitlist"
)

// Actor is the user on whose behalf an action runs.
type Actor struct {
	ID   string
	Name string
	Role booking.Role
}

// Orchestrator wraps a remote-service call and the corresponding local
// mutation into one logical unit. The store is local-first but must reflect
// the remote system of record, so nothing is mutated locally until the
// remote call has succeeded.
type Orchestrator struct {
	store       store.ReservationStore
	roster      *roster.Manager
	waitlist    *waitlist.Manager
	suspensions *suspension.Enforcer
	remote      remote.BookingClient
	notifier    notifier.Notifier
	pubsub      pubsub.PubSubClient
	metrics     metrics.Metrics
}

// Action names used for metrics labels.
const (
	actionJoin          = "join"
	actionLeave         = "leave"
	actionJoinWaitlist  = "join_waitlist"
	actionLeaveWaitlist = "leave_waitlist"
	actionDelete        = "delete"
	actionKick          = "kick"
	actionSuspend       = "suspend"
	actionSummary       = "summary"
)
