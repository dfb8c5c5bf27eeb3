package coupon

import (
	"context"

	"github.com/shopspring/decimal"
)

// Evaluator defines the interface for coupon evaluation.
type Evaluator interface {
	// Evaluate validates a coupon code against the subtotal and returns the
	// discount amount in major currency units.
	// A code is accepted when:
	// - An active coupon exists under its canonical (upper-case) form
	// - The coupon's expiry, if set, is not in the past
	Evaluate(ctx context.Context, code string, subtotal decimal.Decimal) (decimal.Decimal, error)
}
