// Package store is the local persistence collaborator: a small key-value
// string store holding the wishlist snapshot and the currency selection. It is
// read once at startup and written on every relevant mutation.
package store

import (
	"context"
	"errors"
)

// Store is key-value string storage.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Keys used by the storefront.
const (
	KeyWishlist = "wishlist"
	KeyCurrency = "currency"
)

var ErrNotFound = errors.New("key not found")
