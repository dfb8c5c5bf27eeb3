package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kart-checkout/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// CreatePendingOrder inserts a pending order keyed by the gateway order id.
// The unique constraint on (user_id, idempotency_key) is what prevents a
// retried checkout from recording two gateway orders under one key.
func (r *orderRepository) CreatePendingOrder(ctx context.Context, order *model.PendingOrder) error {
	query := `
		INSERT INTO pending_orders (gateway_order_id, user_id, amount, currency, receipt, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		order.GatewayOrderID,
		order.UserID,
		order.Amount,
		order.Currency,
		order.Receipt,
		order.IdempotencyKey,
		order.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("gateway_order_id", order.GatewayOrderID).
			Int64("user_id", order.UserID).
			Msg("failed to create pending order")
		return fmt.Errorf("failed to create pending order: %w", err)
	}

	r.logger.Debug().
		Str("gateway_order_id", order.GatewayOrderID).
		Int64("user_id", order.UserID).
		Msg("pending order created")

	return nil
}

// FindPendingOrder retrieves a pending order for the user, or nil.
func (r *orderRepository) FindPendingOrder(ctx context.Context, userID int64, gatewayOrderID string) (*model.PendingOrder, error) {
	query := `
		SELECT gateway_order_id, user_id, amount, currency, receipt, idempotency_key, created_at
		FROM pending_orders
		WHERE user_id = $1 AND gateway_order_id = $2
	`

	return r.scanPendingOrder(ctx, query, userID, gatewayOrderID)
}

// FindPendingOrderByKey retrieves the pending order created under the given
// idempotency key, or nil.
func (r *orderRepository) FindPendingOrderByKey(ctx context.Context, userID int64, idempotencyKey string) (*model.PendingOrder, error) {
	query := `
		SELECT gateway_order_id, user_id, amount, currency, receipt, idempotency_key, created_at
		FROM pending_orders
		WHERE user_id = $1 AND idempotency_key = $2
	`

	return r.scanPendingOrder(ctx, query, userID, idempotencyKey)
}

func (r *orderRepository) scanPendingOrder(ctx context.Context, query string, args ...any) (*model.PendingOrder, error) {
	var order model.PendingOrder
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&order.GatewayOrderID,
		&order.UserID,
		&order.Amount,
		&order.Currency,
		&order.Receipt,
		&order.IdempotencyKey,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query pending order")
		return nil, fmt.Errorf("failed to query pending order: %w", err)
	}

	return &order, nil
}

// GetOrder retrieves a finalized order scoped to the user, or nil.
func (r *orderRepository) GetOrder(ctx context.Context, userID int64, orderID string) (*model.Order, error) {
	query := `
		SELECT id, user_id, items, subtotal, discount, total, status,
		       coupon_code, payment_method, shipping_address, transaction_id, created_at
		FROM orders
		WHERE user_id = $1 AND id = $2
	`

	var (
		order     model.Order
		rawItems  []byte
		rawStatus string
	)
	err := r.pool.QueryRow(ctx, query, userID, orderID).Scan(
		&order.ID,
		&order.UserID,
		&rawItems,
		&order.Subtotal,
		&order.Discount,
		&order.Total,
		&rawStatus,
		&order.CouponCode,
		&order.PaymentMethod,
		&order.ShippingAddress,
		&order.TransactionID,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().
				Int64("user_id", userID).
				Str("order_id", orderID).
				Msg("order not found")
			return nil, nil
		}
		r.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Str("order_id", orderID).
			Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	// Malformed item payloads fail here rather than propagating undefined
	// fields to callers.
	if err := json.Unmarshal(rawItems, &order.Items); err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to decode order items")
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}

	order.Status = model.ParseOrderStatus(rawStatus)

	return &order, nil
}

// UpdateStatus sets the status of a finalized order.
func (r *orderRepository) UpdateStatus(ctx context.Context, userID int64, orderID string, status model.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $3
		WHERE user_id = $1 AND id = $2
	`

	tag, err := r.pool.Exec(ctx, query, userID, orderID, string(status))
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Str("order_id", orderID).
			Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().
			Int64("user_id", userID).
			Str("order_id", orderID).
			Msg("order not found for status update")
		return model.ErrOrderNotFound
	}

	r.logger.Debug().
		Str("order_id", orderID).
		Str("status", string(status)).
		Msg("order status updated")

	return nil
}
