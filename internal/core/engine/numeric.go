// Package engine holds the pure computation core of the goal tree and the
// allocation ledger: rollups, split planning, allocation planning and the
// consistency rules they share. Nothing in this package performs I/O, keeps
// state between calls, or mutates the slices it is given.
package engine

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)
)

// RatioPlaces is the number of decimal places kept for informational ratios.
const RatioPlaces int32 = 2

// RoundHalfUp rounds to the nearest integer, ties towards positive infinity.
func RoundHalfUp(v decimal.Decimal) int64 {
	return v.Add(half).Floor().IntPart()
}

// Progress returns round_half_up(actual / target * 100), or 0 when target is not positive.
func Progress(actual, target decimal.Decimal) int64 {
	if !target.IsPositive() {
		return 0
	}
	return RoundHalfUp(actual.Mul(hundred).Div(target))
}

// Ratio returns part / whole * 100 rounded to RatioPlaces, or 0 when whole is not positive.
func Ratio(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole).Round(RatioPlaces)
}
