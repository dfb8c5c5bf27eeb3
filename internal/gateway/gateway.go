package gateway

import (
	"context"

	"github.com/shopspring/decimal"
)

// OrderRequest is the payload submitted to the payment gateway to create an
// order. Amounts are in minor currency units.
type OrderRequest struct {
	AmountMinor int64  `json:"amount"`
	Currency    string `json:"currency"`
	Receipt     string `json:"receipt"`
	AutoCapture bool   `json:"payment_capture"`
}

// OrderResponse holds the gateway-assigned order reference.
type OrderResponse struct {
	GatewayOrderID string `json:"id"`
}

// Client defines the interface to the payment gateway.
type Client interface {
	// CreateOrder submits an order to the gateway and returns the
	// gateway-assigned order id. Gateway-side faults surface as
	// model.ErrPaymentGateway; the underlying message is logged, not
	// returned.
	CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error)
}

var hundred = decimal.NewFromInt(100)

// MinorUnits converts a major-unit amount to integer minor units, rounding
// half away from zero. The currency is assumed to have 2 decimal places.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}
