package pricing

import (
	"context"

	"kart-checkout/internal/model"
)

// Calculator defines the interface for cart pricing.
type Calculator interface {
	// Quote sums the cart into a subtotal and applies the optional coupon's
	// discount to produce the payable total. All amounts are in major
	// currency units; minor-unit conversion happens only at the
	// payment-gateway boundary.
	Quote(ctx context.Context, items []model.CartItem, couponCode *string) (*model.Quote, error)
}
