package domain

import "time"

type OrderStatus string

// Placed is the only status checkout produces. Further statuses would need
// transition rules that do not exist yet.
const OrderStatusPlaced OrderStatus = "Placed"

// Order is an immutable snapshot of the cart at checkout time. ID is the
// creation timestamp in unix milliseconds, bumped when two checkouts land in
// the same millisecond so ids stay strictly monotonic. Total is computed from
// base-currency prices only, never from converted display values.
type Order struct {
	ID        int64       `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Status    OrderStatus `json:"status"`
	Lines     []CartLine  `json:"lines"`
	Total     float64     `json:"total"`
}
