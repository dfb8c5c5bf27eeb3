package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem represents a single priced line in a checkout request.
// Prices are in major currency units; conversion to minor units happens only
// at the payment-gateway boundary.
type CartItem struct {
	ProductID string          `json:"productId"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Variant   *string         `json:"variant,omitempty"`
}

// Order represents a finalized customer order.
type Order struct {
	ID              string          `json:"id" db:"id"`
	UserID          int64           `json:"userId" db:"user_id"`
	Items           []CartItem      `json:"items" db:"items"`
	Subtotal        decimal.Decimal `json:"subtotal" db:"subtotal"`
	Discount        decimal.Decimal `json:"discount" db:"discount"`
	Total           decimal.Decimal `json:"total" db:"total"`
	Status          OrderStatus     `json:"status" db:"status"`
	CouponCode      *string         `json:"couponCode,omitempty" db:"coupon_code"`
	PaymentMethod   string          `json:"paymentMethod" db:"payment_method"`
	ShippingAddress string          `json:"shippingAddress" db:"shipping_address"`
	TransactionID   *string         `json:"transactionId,omitempty" db:"transaction_id"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
}

// PendingOrder represents an order that has a gateway order created but no
// confirmed payment yet. It is keyed by the gateway-assigned order id.
type PendingOrder struct {
	GatewayOrderID string          `json:"gatewayOrderId" db:"gateway_order_id"`
	UserID         int64           `json:"userId" db:"user_id"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	Currency       string          `json:"currency" db:"currency"`
	Receipt        string          `json:"receipt" db:"receipt"`
	IdempotencyKey *string         `json:"-" db:"idempotency_key"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}

// CheckoutRequest represents the request payload for creating an order.
type CheckoutRequest struct {
	UserID     int64      `json:"userId"`
	Items      []CartItem `json:"cartItems"`
	CouponCode *string    `json:"couponCode,omitempty"`
}

// CheckoutResponse represents the response payload after a gateway order has
// been created for the cart.
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}

// Quote is the priced view of a cart: subtotal, coupon discount, and the
// payable total, all in major currency units.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}
