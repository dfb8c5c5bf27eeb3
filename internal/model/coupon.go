package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon represents a percentage discount code. Coupons are created and
// managed by the admin collaborator; this service only reads them.
type Coupon struct {
	Code               string          `json:"code" db:"code"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage" db:"discount_percentage"`
	IsActive           bool            `json:"isActive" db:"is_active"`
	ExpiresAt          *time.Time      `json:"expiresAt,omitempty" db:"expires_at"`
}

// Expired reports whether the coupon has an expiry strictly before now.
// A nil expiry never expires.
func (c *Coupon) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}
