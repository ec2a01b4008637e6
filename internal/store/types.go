package store

import (
	"sync"
	"time"

	"github.com/mauv0809/pitchside/internal/booking"
	"github.com/mauv0809/pitchside/internal/metrics"
	"github.com/mauv0809/pitchside/internal/snapshot"
)

// Snapshot keys in the durable key-value layer.
const (
	KeyPitches      = "pitches"
	KeyReservations = "reservations"
	KeySuspensions  = "suspendedPlayers"
)

// store holds the authoritative in-memory collections. Durability is
// best-effort: a failed snapshot write never rolls back a mutation.
type store struct {
	kv      snapshot.KV
	metrics metrics.Metrics
	now     func() time.Time

	mu           sync.RWMutex
	pitches      map[string]booking.Pitch
	reservations map[string]*booking.Reservation
	// Keyed by user ID so "at most one active suspension per user" is
	// structural rather than convention-based.
	suspensions map[string]booking.Suspension
}
