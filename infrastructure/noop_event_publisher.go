package infrastructure

import (
	"unionlotto/domain/events"

	log "github.com/sirupsen/logrus"
)

// NoopEventPublisher is an event publisher that does nothing
// Used when NATS is not configured and by the CLI
type NoopEventPublisher struct{}

// NewNoopEventPublisher creates a new no-op event publisher
func NewNoopEventPublisher() *NoopEventPublisher {
	return &NoopEventPublisher{}
}

// Publish drops the event
func (n *NoopEventPublisher) Publish(event events.Event) error {
	log.WithField("eventType", event.Type()).Debug("Dropping event, no message bus configured")
	return nil
}
