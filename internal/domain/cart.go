package domain

// CartLine holds a product snapshot plus a quantity. Quantity is always >= 1;
// a line whose quantity would drop to zero is removed instead.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns the line total in the base currency.
func (l CartLine) LineTotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
