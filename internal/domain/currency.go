package domain

// Currency is a display currency code. All prices are stored in the base
// currency; other currencies are display-only conversions.
type Currency string

const (
	CurrencyINR Currency = "INR" // base
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// BaseCurrency is the currency products are priced in.
const BaseCurrency = CurrencyINR

func (c Currency) Valid() bool {
	switch c {
	case CurrencyINR, CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	}
	return false
}
