// Package bus defines the message bus the event gate publishes valid events to.
package bus

import "context"

// Message is one event publication.
type Message struct {
	// RoutingKey selects the consumers, e.g. BLK.0x<topic0>
	RoutingKey string
	// Payload is marshalled to JSON
	Payload any
	// RequestID correlates every message published for one processed log
	RequestID string
	// MessageID identifies the message for broker side deduplication
	MessageID string
}

// Publisher delivers messages at least once.
type Publisher interface {
	// Publish returns only after the broker accepted the message.
	Publish(ctx context.Context, msg Message) error
	Ping(ctx context.Context) error
	Close() error
}
