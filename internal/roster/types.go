package roster

import "time"

// Manager owns the join/leave lifecycle of a reservation's lineup.
type Manager struct {
	store Store
	now   func() time.Time
}
