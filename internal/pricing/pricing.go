// Package pricing computes booking totals. The server is the sole
// source of truth for price: booking requests carry a client-side total
// only so it can be checked against the recomputation here.
package pricing

import (
	"fmt"

	"cinebook/internal/shared/apperrors"

	"github.com/shopspring/decimal"
)

// ConvenienceFee is the fixed per-seat surcharge, in the same currency
// unit as the show's base seat price.
var ConvenienceFee = decimal.NewFromInt(15)

// Total computes seatCount × basePrice + seatCount × ConvenienceFee.
// All seats of a show cost the same base price; there is no seat-class
// pricing. No rounding happens here; amounts are stored and rendered
// with two fractional digits at the edges.
func Total(seatCount int, basePrice decimal.Decimal) (decimal.Decimal, error) {
	if seatCount < 1 {
		return decimal.Zero, fmt.Errorf("%w: seat count must be at least 1, got %d", apperrors.ErrInvalidInput, seatCount)
	}
	if basePrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: base seat price must not be negative, got %s", apperrors.ErrInvalidInput, basePrice)
	}

	n := decimal.NewFromInt(int64(seatCount))
	return n.Mul(basePrice).Add(n.Mul(ConvenienceFee)), nil
}
