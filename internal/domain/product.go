package domain

// Sentinel values applied by the feed mapping when a sheet cell is empty.
// A product whose name resolves to MissingName is discarded during ingestion.
const (
	MissingName        = "N/A"
	DefaultDescription = "No details provided."
	DefaultImage       = "placeholder.jpg"
	DefaultCategory    = "Misc"
)

// Product is a catalog entry. Name is the join key used everywhere (cart,
// wishlist, orders); products carry no numeric identifier. Price is stored in
// the base currency. Immutable after ingestion.
type Product struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Gallery     []string `json:"gallery,omitempty"`
}
