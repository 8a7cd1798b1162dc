package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopease/storefront/internal/domain"
	"github.com/shopease/storefront/internal/events"
)

// Cart returns a copy of the current cart lines.
func (s *Storefront) Cart() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]domain.CartLine, len(s.cart))
	copy(lines, s.cart)
	return lines
}

// CartCount is the total quantity across all lines, the nav badge number.
func (s *Storefront) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.cart {
		count += line.Quantity
	}
	return count
}

// CartTotal is the cart total in the base currency.
func (s *Storefront) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartTotal(s.cart)
}

func cartTotal(lines []domain.CartLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.LineTotal()
	}
	return total
}

// AddToCart increments the line for the named product, creating it with
// quantity 1 when absent. Repeated calls accumulate, so N calls end at
// quantity N. Emits a cart_item_added notification.
func (s *Storefront) AddToCart(ctx context.Context, name string) (domain.CartLine, error) {
	product, ok := s.catalog.Get(name)
	if !ok {
		return domain.CartLine{}, ErrUnknownProduct
	}

	s.mu.Lock()
	var line domain.CartLine
	found := false
	for i := range s.cart {
		if s.cart[i].Product.Name == name {
			s.cart[i].Quantity++
			line = s.cart[i]
			found = true
			break
		}
	}
	if !found {
		line = domain.CartLine{Product: product, Quantity: 1}
		s.cart = append(s.cart, line)
	}
	s.mu.Unlock()

	s.publish(ctx, events.Event{
		Type:        events.EventCartItemAdded,
		ProductName: name,
		OccurredAt:  time.Now(),
	})
	return line, nil
}

// DecrementOrRemove lowers the line quantity by one, removing the line when it
// would drop below one. No-op for an absent line.
func (s *Storefront) DecrementOrRemove(_ context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Product.Name != name {
			continue
		}
		if s.cart[i].Quantity > 1 {
			s.cart[i].Quantity--
		} else {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
		}
		return
	}
}

// RemoveLine removes the line regardless of quantity. No-op when absent.
func (s *Storefront) RemoveLine(_ context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Product.Name == name {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// Checkout snapshots the cart into a new order, persists it and clears the
// cart. Both happen under the ledger lock so no caller can observe the order
// existing alongside a still-populated cart, or the reverse; a repository failure
// leaves the cart untouched.
func (s *Storefront) Checkout(ctx context.Context) (*domain.Order, error) {
	s.mu.Lock()

	if len(s.cart) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}

	lines := make([]domain.CartLine, len(s.cart))
	copy(lines, s.cart)

	order := &domain.Order{
		ID:        s.nextOrderID(),
		CreatedAt: time.Now(),
		Status:    domain.OrderStatusPlaced,
		Lines:     lines,
		Total:     cartTotal(lines),
	}

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.cart = nil
	s.mu.Unlock()

	s.publish(ctx, events.Event{
		Type:       events.EventOrderPlaced,
		OrderID:    order.ID,
		OccurredAt: order.CreatedAt,
	})
	return order, nil
}

// nextOrderID issues creation-timestamp ids, bumped past the previous id when
// two checkouts land in the same millisecond. Caller holds the lock.
func (s *Storefront) nextOrderID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastOrderID {
		id = s.lastOrderID + 1
	}
	s.lastOrderID = id
	return id
}

// Orders lists the order history, most recent first.
func (s *Storefront) Orders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListOrders(ctx)
}
