package repository

import (
	"context"
	"errors"
	"fmt"

	"kart-checkout/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// transactionRepository implements TransactionRepository using PostgreSQL.
type transactionRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewTransactionRepository creates a new PostgreSQL-backed transaction repository.
func NewTransactionRepository(pool *pgxpool.Pool, logger zerolog.Logger) TransactionRepository {
	return &transactionRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "transaction").Logger(),
	}
}

// Get retrieves a transaction by id scoped to its order id.
func (r *transactionRepository) Get(ctx context.Context, transactionID, orderID string) (*model.PaymentTransaction, error) {
	query := `
		SELECT transaction_id, order_id, user_id, status, failure_reason, created_at
		FROM payment_transactions
		WHERE transaction_id = $1 AND order_id = $2
	`

	var (
		txn       model.PaymentTransaction
		rawStatus string
	)
	err := r.pool.QueryRow(ctx, query, transactionID, orderID).Scan(
		&txn.TransactionID,
		&txn.OrderID,
		&txn.UserID,
		&rawStatus,
		&txn.FailureReason,
		&txn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().
				Str("transaction_id", transactionID).
				Str("order_id", orderID).
				Msg("transaction not found")
			return nil, nil
		}
		r.logger.Error().
			Err(err).
			Str("transaction_id", transactionID).
			Msg("failed to query transaction")
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	txn.Status = model.ParsePaymentStatus(rawStatus)

	return &txn, nil
}
