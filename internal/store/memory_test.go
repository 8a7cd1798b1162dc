package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, KeyCurrency)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyCurrency, "USD"))

	v, err := s.Get(ctx, KeyCurrency)
	require.NoError(t, err)
	assert.Equal(t, "USD", v)
}
