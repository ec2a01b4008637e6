package suspension

import "time"

// Enforcer applies and checks time-bounded bans. Expiry is lazy: an expired
// record is dropped the first time it is looked at.
type Enforcer struct {
	store Store
	now   func() time.Time
}
