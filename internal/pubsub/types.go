package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventSlotOpen        EventType = "waitlist-slot-open"
	EventPlayerSuspended EventType = "player-suspended"
	EventGameCompleted   EventType = "game-completed"
)

// SlotOpenEvent is the payload fanned out to every queued player when a
// seat frees up in a previously full game.
type SlotOpenEvent struct {
	ReservationID string   `msgpack:"reservation_id"`
	PitchName     string   `msgpack:"pitch_name"`
	Date          string   `msgpack:"date"`
	Time          string   `msgpack:"time"`
	UserIDs       []string `msgpack:"user_ids"`
}
