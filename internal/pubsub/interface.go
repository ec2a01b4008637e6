package pubsub

// PubSubClient publishes notification-intent events to interested consumers.
type PubSubClient interface {
	SendMessage(topic EventType, data any) error
	ProcessMessage(data []byte, returnValue any) error
}
