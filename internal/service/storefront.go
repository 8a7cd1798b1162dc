// Package service owns the mutable storefront state: the cart, wishlist and
// order ledgers plus the process-wide currency selection. The presentation
// layer calls these methods and re-renders from the results; it never touches
// the state directly. One mutex serializes all mutations, which preserves the
// run-to-completion semantics the ledger rules assume even though Go handlers
// run concurrently.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/shopease/storefront/internal/catalog"
	"github.com/shopease/storefront/internal/domain"
	"github.com/shopease/storefront/internal/events"
	"github.com/shopease/storefront/internal/repository"
	"github.com/shopease/storefront/internal/store"
)

// CatalogLoader re-fetches the product feed. sheets.Client implements it; a
// nil loader disables refresh.
type CatalogLoader interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}

type Storefront struct {
	mu sync.Mutex

	catalog *catalog.Catalog
	loader  CatalogLoader
	sfg     singleflight.Group

	cart     []domain.CartLine
	wishlist []domain.Product
	currency domain.Currency

	orders    repository.OrderRepository
	kv        store.Store
	publisher events.Publisher

	lastOrderID int64
}

// New builds the state container and hydrates the persisted wishlist and
// currency selection from the kv store. Hydration problems are logged and
// degrade to defaults; they never fail startup.
func New(ctx context.Context, cat *catalog.Catalog, loader CatalogLoader, orders repository.OrderRepository, kv store.Store, publisher events.Publisher) *Storefront {
	s := &Storefront{
		catalog:   cat,
		loader:    loader,
		currency:  domain.BaseCurrency,
		orders:    orders,
		kv:        kv,
		publisher: publisher,
	}
	s.hydrate(ctx)
	return s
}

func (s *Storefront) hydrate(ctx context.Context) {
	if raw, err := s.kv.Get(ctx, store.KeyCurrency); err == nil {
		if cur := domain.Currency(raw); cur.Valid() {
			s.currency = cur
		} else {
			log.Printf("ignoring persisted unknown currency %q", raw)
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("failed to load persisted currency: %v", err)
	}

	if raw, err := s.kv.Get(ctx, store.KeyWishlist); err == nil {
		var wishlist []domain.Product
		if err := json.Unmarshal([]byte(raw), &wishlist); err != nil {
			log.Printf("failed to decode persisted wishlist: %v", err)
		} else {
			s.wishlist = wishlist
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("failed to load persisted wishlist: %v", err)
	}
}

// Catalog exposes the product list for queries; catalog reads need no ledger
// lock.
func (s *Storefront) Catalog() *catalog.Catalog {
	return s.catalog
}

// RefreshCatalog re-runs the feed ingestion and swaps the product list.
// Concurrent refreshes collapse into a single fetch. Returns the new catalog
// size.
func (s *Storefront) RefreshCatalog(ctx context.Context) (int, error) {
	if s.loader == nil {
		return s.catalog.Len(), nil
	}
	v, err, _ := s.sfg.Do("catalog-refresh", func() (interface{}, error) {
		products, err := s.loader.Fetch(ctx)
		if err != nil {
			return 0, err
		}
		s.catalog.Replace(products)
		return len(products), nil
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// Currency returns the current display currency selection.
func (s *Storefront) Currency() domain.Currency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

// SetCurrency validates and switches the display currency, persisting the
// selection. The caller is expected to re-render every visible view.
func (s *Storefront) SetCurrency(ctx context.Context, cur domain.Currency) error {
	if !cur.Valid() {
		return ErrUnknownCurrency
	}

	s.mu.Lock()
	s.currency = cur
	s.mu.Unlock()

	if err := s.kv.Set(ctx, store.KeyCurrency, string(cur)); err != nil {
		log.Printf("failed to persist currency selection: %v", err)
	}
	return nil
}

// publish sends a notification event, best effort.
func (s *Storefront) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("failed to publish %s event: %v", event.Type, err)
	}
}
