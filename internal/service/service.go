package service

import (
	"context"

	"kart-checkout/internal/model"
)

// CheckoutService defines the order checkout operation.
type CheckoutService interface {
	// Checkout prices the cart, creates a payment-gateway order for the
	// payable total, and records the pending order. authUserID is the
	// identity resolved from the caller's verified session token; the
	// request's own user id must match it.
	//
	// idempotencyKey, when non-empty, maps retried requests onto the
	// gateway order created by the first attempt.
	Checkout(ctx context.Context, authUserID int64, idempotencyKey string, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
}

// PaymentService answers payment-status reconciliation queries.
type PaymentService interface {
	// Status reports the combined order/payment status for a gateway order.
	// It is read-only; status transitions are driven by the gateway
	// callback collaborator.
	Status(ctx context.Context, userID int64, gatewayOrderID, transactionID string) (*model.PaymentStatusResult, error)
}
