package repository

import (
	"context"

	"github.com/shopease/storefront/internal/domain"
)

// OrderRepository is the append-only order history. Orders are snapshots and
// are never mutated after creation; listing is most-recent-first.
type OrderRepository interface {
	SaveOrder(ctx context.Context, order *domain.Order) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
}
