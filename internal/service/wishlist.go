package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/shopease/storefront/internal/domain"
	"github.com/shopease/storefront/internal/events"
	"github.com/shopease/storefront/internal/store"
)

// Wishlist returns a copy of the wishlist entries.
func (s *Storefront) Wishlist() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]domain.Product, len(s.wishlist))
	copy(entries, s.wishlist)
	return entries
}

// ToggleWishlist flips membership for the named product: present removes,
// absent adds. Set semantics by name, so toggling twice restores the original
// state. The wishlist snapshot is persisted as the last action of every
// mutation. Returns whether the product is now on the wishlist.
func (s *Storefront) ToggleWishlist(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()

	added := false
	removed := false
	for i := range s.wishlist {
		if s.wishlist[i].Name == name {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		// Entries are snapshots: a product can only join the wishlist while
		// the catalog knows it, but it stays removable after a feed change.
		product, ok := s.catalog.Get(name)
		if !ok {
			s.mu.Unlock()
			return false, ErrUnknownProduct
		}
		s.wishlist = append(s.wishlist, product)
		added = true
	}

	snapshot, err := json.Marshal(s.wishlist)
	s.mu.Unlock()
	if err != nil {
		log.Printf("failed to encode wishlist: %v", err)
	} else if err := s.kv.Set(ctx, store.KeyWishlist, string(snapshot)); err != nil {
		log.Printf("failed to persist wishlist: %v", err)
	}

	s.publish(ctx, events.Event{
		Type:        events.EventWishlistToggled,
		ProductName: name,
		OccurredAt:  time.Now(),
	})
	return added, nil
}
