// Package catalog holds the product list after ingestion and derives the
// filtered/sorted views the presentation layer renders. Queries re-filter and
// re-sort the full list on every call; at catalog sizes fed from a spreadsheet
// that O(n log n) per call is a deliberate simplicity tradeoff over
// incremental indexing.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shopease/storefront/internal/domain"
)

type SortKey string

const (
	SortByName    SortKey = "name" // default
	SortPriceAsc  SortKey = "price-low-high"
	SortPriceDesc SortKey = "price-high-low"
)

// Query selects and orders a view of the catalog. Search is a case-insensitive
// substring match on product name. Category is an exact match, empty meaning
// all. An unknown or empty sort key falls back to name ordering.
type Query struct {
	Search   string
	Category string
	Sort     SortKey
}

// Catalog is the authoritative product list. Products are immutable; the list
// itself is only ever swapped wholesale via Replace.
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
	byName   map[string]domain.Product
}

func New(products []domain.Product) *Catalog {
	c := &Catalog{}
	c.Replace(products)
	return c
}

// Replace swaps the full product list, used at startup and on feed refresh.
func (c *Catalog) Replace(products []domain.Product) {
	byName := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byName[p.Name] = p
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
	c.byName = byName
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// Get looks a product up by name, the join key shared with the ledgers.
func (c *Catalog) Get(name string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byName[name]
	return p, ok
}

// Query returns the filtered, ordered view. The result is a fresh slice; the
// caller may not mutate catalog state through it.
func (c *Catalog) Query(q Query) []domain.Product {
	c.mu.RLock()
	filtered := make([]domain.Product, 0, len(c.products))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range c.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		filtered = append(filtered, p)
	}
	c.mu.RUnlock()

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	default:
		// Collators keep internal buffers, so build one per call instead of
		// sharing across goroutines.
		col := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(filtered, func(i, j int) bool {
			return col.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	}
	return filtered
}

// Categories returns the distinct product categories, sorted, for the
// category filter control.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	seen := make(map[string]struct{}, len(c.products))
	for _, p := range c.products {
		seen[p.Category] = struct{}{}
	}
	c.mu.RUnlock()

	cats := make([]string, 0, len(seen))
	for cat := range seen {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
