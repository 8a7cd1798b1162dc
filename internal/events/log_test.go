package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogPublisher_NeverFails(t *testing.T) {
	p := NewLogPublisher()

	err := p.Publish(context.Background(), Event{
		Type:        EventCartItemAdded,
		ProductName: "Mug",
		OccurredAt:  time.Now(),
	})
	assert.NoError(t, err)

	err = p.Publish(context.Background(), Event{
		Type:       EventOrderPlaced,
		OrderID:    1700000000000,
		OccurredAt: time.Now(),
	})
	assert.NoError(t, err)

	assert.NoError(t, p.Close())
}
