// Package currency converts base-currency amounts into display values using a
// fixed rate table. Conversions are display-only; all arithmetic on stored
// prices and order totals happens in the base currency.
package currency

import (
	"fmt"
	"math"

	"github.com/shopease/storefront/internal/domain"
)

// rates maps each supported currency to its multiplier relative to 1 INR.
var rates = map[domain.Currency]float64{
	domain.CurrencyINR: 1,
	domain.CurrencyUSD: 0.012,
	domain.CurrencyEUR: 0.011,
	domain.CurrencyGBP: 0.0095,
}

// Rate returns the conversion multiplier for the target currency. Unknown
// currencies fall back to 1 rather than erroring, so a bad selection degrades
// to base-currency display instead of breaking rendering.
func Rate(target domain.Currency) float64 {
	if r, ok := rates[target]; ok {
		return r
	}
	return 1
}

// Convert converts a base-currency amount into the target currency.
func Convert(amountInBase float64, target domain.Currency) float64 {
	return amountInBase * Rate(target)
}

// Format converts and renders an amount for display, e.g. "USD 2.40".
// The base currency is zero-decimal and rounds to the nearest integer;
// everything else gets exactly two decimal digits.
func Format(amountInBase float64, target domain.Currency) string {
	converted := Convert(amountInBase, target)
	if target == domain.BaseCurrency {
		return fmt.Sprintf("%s %d", target, int64(math.Round(converted)))
	}
	return fmt.Sprintf("%s %.2f", target, converted)
}
