// Package events carries the notification side effects of ledger mutations
// ("added to cart", "order placed") to whatever consumes them. Publishing is
// best effort: a publish failure is logged by the caller and never fails or
// corrupts the mutation that produced the event.
package events

import (
	"context"
	"time"
)

type EventType string

const (
	EventCartItemAdded   EventType = "cart_item_added"
	EventOrderPlaced     EventType = "order_placed"
	EventWishlistToggled EventType = "wishlist_toggled"
)

type Event struct {
	Type        EventType `json:"type"`
	ProductName string    `json:"product_name,omitempty"`
	OrderID     int64     `json:"order_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
