package pricing

import (
	"context"

	"kart-checkout/internal/coupon"
	"kart-checkout/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// calculator implements Calculator.
type calculator struct {
	evaluator coupon.Evaluator
	logger    zerolog.Logger
}

// NewCalculator creates a new pricing calculator.
func NewCalculator(evaluator coupon.Evaluator, logger zerolog.Logger) Calculator {
	return &calculator{
		evaluator: evaluator,
		logger:    logger.With().Str("component", "pricing").Logger(),
	}
}

// Quote computes {subtotal, discount, total} for the cart.
func (c *calculator) Quote(ctx context.Context, items []model.CartItem, couponCode *string) (*model.Quote, error) {
	if len(items) == 0 {
		return nil, model.ErrEmptyCart
	}

	subtotal := decimal.Zero
	for i, item := range items {
		if item.Quantity < 1 || item.Price.IsNegative() {
			c.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Str("price", item.Price.String()).
				Msg("invalid cart line")
			return nil, model.ErrInvalidQuantity
		}
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	discount := decimal.Zero
	if couponCode != nil && *couponCode != "" {
		var err error
		discount, err = c.evaluator.Evaluate(ctx, *couponCode, subtotal)
		if err != nil {
			// No silent fallback to full price; checkout aborts.
			return nil, err
		}
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	// A zero-value order must never reach the payment gateway.
	if !total.IsPositive() {
		c.logger.Warn().
			Str("subtotal", subtotal.String()).
			Str("discount", discount.String()).
			Msg("cart priced to non-positive total")
		return nil, model.ErrNonPositiveTotal
	}

	return &model.Quote{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
	}, nil
}
