package coupon

import (
	"context"
	"strings"
	"time"

	"kart-checkout/internal/model"
	"kart-checkout/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// evaluator implements Evaluator against the coupons table.
type evaluator struct {
	repo   repository.CouponRepository
	now    func() time.Time
	logger zerolog.Logger
}

// NewEvaluator creates a new coupon evaluator.
func NewEvaluator(repo repository.CouponRepository, logger zerolog.Logger) Evaluator {
	return &evaluator{
		repo:   repo,
		now:    time.Now,
		logger: logger.With().Str("component", "coupon-evaluator").Logger(),
	}
}

// Evaluate validates a coupon code and computes the discount amount.
// The computation is pure; coupon data is owned by the admin collaborator and
// never written here.
func (e *evaluator) Evaluate(ctx context.Context, code string, subtotal decimal.Decimal) (decimal.Decimal, error) {
	canonical := strings.ToUpper(strings.TrimSpace(code))
	if canonical == "" {
		return decimal.Zero, model.ErrInvalidCoupon
	}

	coupon, err := e.repo.GetByCode(ctx, canonical)
	if err != nil {
		return decimal.Zero, err
	}

	if coupon == nil || !coupon.IsActive {
		e.logger.Debug().
			Str("coupon_code", canonical).
			Bool("found", coupon != nil).
			Msg("coupon rejected")
		return decimal.Zero, model.ErrInvalidCoupon
	}

	if coupon.Expired(e.now()) {
		e.logger.Debug().
			Str("coupon_code", canonical).
			Time("expires_at", *coupon.ExpiresAt).
			Msg("coupon expired")
		return decimal.Zero, model.ErrExpiredCoupon
	}

	discount := subtotal.Mul(coupon.DiscountPercentage).Div(oneHundred)

	// Clamp so the resulting total can never go negative.
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	e.logger.Debug().
		Str("coupon_code", canonical).
		Str("discount", discount.String()).
		Msg("coupon evaluated")

	return discount, nil
}
