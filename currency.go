package stock

import (
	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultRate is the built-in exchange rate: shillings per one dollar. The
// rate is a manually entered constant, never fetched from anywhere.
const DefaultRate = 130.0

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// USDFromKsh converts a shilling price to dollars at the given rate, rounded
// to two decimals. A non-positive rate yields zero rather than a division
// error.
func USDFromKsh(v, rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return decimal.NewFromFloat(v).Div(decimal.NewFromFloat(rate)).Round(2).InexactFloat64()
}

// KshFromUSD converts a dollar price back to shillings at the given rate,
// rounded to two decimals.
func KshFromUSD(v, rate float64) float64 {
	return decimal.NewFromFloat(v).Mul(decimal.NewFromFloat(rate)).Round(2).InexactFloat64()
}

// minorUnits turns a major-unit amount into cents for the money formatter.
func minorUnits(v float64) int64 {
	return decimal.NewFromFloat(v).Shift(2).Round(0).IntPart()
}

// FormatKsh renders a shilling amount for display.
func FormatKsh(v float64) string {
	return money.New(minorUnits(v), "KES").Display()
}

// FormatUSD renders a dollar amount for display.
func FormatUSD(v float64) string {
	return money.New(minorUnits(v), "USD").Display()
}
