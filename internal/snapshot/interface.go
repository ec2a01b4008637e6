package snapshot

// KV is the durable key-value layer the reservation store persists its
// snapshots to. Absence of a key is not an error.
type KV interface {
	// Get unmarshals the snapshot stored under key into v. It returns false
	// when the key is absent or the stored content is corrupt.
	Get(key string, v any) (bool, error)
	Put(key string, v any) error
	Delete(key string) error
}
