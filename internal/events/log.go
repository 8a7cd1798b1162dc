package events

import (
	"context"
	"log"
)

// LogPublisher is the default publisher when no broker is configured; it just
// logs each event.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	if event.OrderID != 0 {
		log.Printf("event %s: order %d", event.Type, event.OrderID)
		return nil
	}
	log.Printf("event %s: %s", event.Type, event.ProductName)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
