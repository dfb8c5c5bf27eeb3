package repository

import (
	"context"

	"kart-checkout/internal/model"
)

// CouponRepository defines read access to admin-managed coupon codes.
type CouponRepository interface {
	// GetByCode retrieves a coupon by its canonical (upper-case) code.
	// Returns nil when no such coupon exists.
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)
}

// OrderRepository is the order record store. It is the sole owner of order
// rows; callers never mutate order fields except through UpdateStatus.
type OrderRepository interface {
	// CreatePendingOrder inserts a pending order keyed by the gateway order id.
	CreatePendingOrder(ctx context.Context, order *model.PendingOrder) error

	// FindPendingOrder retrieves a pending order for the user, or nil.
	FindPendingOrder(ctx context.Context, userID int64, gatewayOrderID string) (*model.PendingOrder, error)

	// FindPendingOrderByKey retrieves the pending order previously created
	// under the given idempotency key, or nil.
	FindPendingOrderByKey(ctx context.Context, userID int64, idempotencyKey string) (*model.PendingOrder, error)

	// GetOrder retrieves a finalized order scoped to the user, or nil.
	GetOrder(ctx context.Context, userID int64, orderID string) (*model.Order, error)

	// UpdateStatus sets the status of a finalized order. Fails with
	// model.ErrOrderNotFound when no row matches.
	UpdateStatus(ctx context.Context, userID int64, orderID string, status model.OrderStatus) error
}

// TransactionRepository defines read access to the append-only payment
// transaction log written by the gateway callback path.
type TransactionRepository interface {
	// Get retrieves a transaction by id scoped to its order id.
	// Returns nil when the callback has not recorded one yet.
	Get(ctx context.Context, transactionID, orderID string) (*model.PaymentTransaction, error)
}
