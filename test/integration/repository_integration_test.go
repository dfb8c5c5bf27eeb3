package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"kart-checkout/internal/model"
	"kart-checkout/internal/repository"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCoupon(t *testing.T, db *TestDB, coupon model.Coupon) {
	t.Helper()

	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO coupons (code, discount_percentage, is_active, expires_at) VALUES ($1, $2, $3, $4)`,
		coupon.Code, coupon.DiscountPercentage, coupon.IsActive, coupon.ExpiresAt,
	)
	require.NoError(t, err)
}

func seedOrder(t *testing.T, db *TestDB, order model.Order) {
	t.Helper()

	items, err := json.Marshal(order.Items)
	require.NoError(t, err)

	_, err = db.Pool.Exec(context.Background(),
		`INSERT INTO orders (id, user_id, items, subtotal, discount, total, status, coupon_code, payment_method, shipping_address, transaction_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		order.ID, order.UserID, items, order.Subtotal, order.Discount, order.Total,
		string(order.Status), order.CouponCode, order.PaymentMethod, order.ShippingAddress,
		order.TransactionID, order.CreatedAt,
	)
	require.NoError(t, err)
}

func seedTransaction(t *testing.T, db *TestDB, txn model.PaymentTransaction) {
	t.Helper()

	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO payment_transactions (transaction_id, order_id, user_id, status, failure_reason, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		txn.TransactionID, txn.OrderID, txn.UserID, string(txn.Status), txn.FailureReason, txn.CreatedAt,
	)
	require.NoError(t, err)
}

func fakeOrder(userID int64, status model.OrderStatus) model.Order {
	subtotal := decimal.NewFromFloat(gofakeit.Price(10, 500)).Round(2)
	return model.Order{
		ID:              "order_" + uuid.NewString(),
		UserID:          userID,
		Items:           []model.CartItem{{ProductID: gofakeit.UUID(), Price: subtotal, Quantity: 1}},
		Subtotal:        subtotal,
		Discount:        decimal.Zero,
		Total:           subtotal,
		Status:          status,
		PaymentMethod:   "card",
		ShippingAddress: gofakeit.Address().Address,
		CreatedAt:       time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestCouponRepository_GetByCode(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewCouponRepository(db.Pool, logger)
	ctx := context.Background()

	expiry := time.Now().Add(24 * time.Hour).UTC()
	seedCoupon(t, db, model.Coupon{
		Code:               "SAVE10",
		DiscountPercentage: decimal.NewFromInt(10),
		IsActive:           true,
		ExpiresAt:          &expiry,
	})

	t.Run("existing coupon", func(t *testing.T) {
		coupon, err := repo.GetByCode(ctx, "SAVE10")

		require.NoError(t, err)
		require.NotNil(t, coupon)
		assert.Equal(t, "SAVE10", coupon.Code)
		assert.True(t, coupon.DiscountPercentage.Equal(decimal.NewFromInt(10)))
		assert.True(t, coupon.IsActive)
		require.NotNil(t, coupon.ExpiresAt)
	})

	t.Run("missing coupon returns nil", func(t *testing.T) {
		coupon, err := repo.GetByCode(ctx, "NOPE")

		require.NoError(t, err)
		assert.Nil(t, coupon)
	})
}

func TestOrderRepository_PendingOrders(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewOrderRepository(db.Pool, logger)
	ctx := context.Background()

	key := "idem-" + uuid.NewString()
	pending := &model.PendingOrder{
		GatewayOrderID: "order_" + uuid.NewString(),
		UserID:         5,
		Amount:         decimal.NewFromFloat(180.00),
		Currency:       "INR",
		Receipt:        "rcpt_5_1700000000",
		IdempotencyKey: &key,
		CreatedAt:      time.Now().UTC().Truncate(time.Millisecond),
	}

	require.NoError(t, repo.CreatePendingOrder(ctx, pending))

	t.Run("find by gateway order id", func(t *testing.T) {
		got, err := repo.FindPendingOrder(ctx, 5, pending.GatewayOrderID)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, pending.GatewayOrderID, got.GatewayOrderID)
		assert.True(t, got.Amount.Equal(pending.Amount))
		require.NotNil(t, got.IdempotencyKey)
		assert.Equal(t, key, *got.IdempotencyKey)
	})

	t.Run("find by idempotency key", func(t *testing.T) {
		got, err := repo.FindPendingOrderByKey(ctx, 5, key)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, pending.GatewayOrderID, got.GatewayOrderID)
	})

	t.Run("wrong user sees nothing", func(t *testing.T) {
		got, err := repo.FindPendingOrder(ctx, 6, pending.GatewayOrderID)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate idempotency key rejected", func(t *testing.T) {
		dup := &model.PendingOrder{
			GatewayOrderID: "order_" + uuid.NewString(),
			UserID:         5,
			Amount:         decimal.NewFromInt(99),
			Currency:       "INR",
			Receipt:        "rcpt_5_1700000001",
			IdempotencyKey: &key,
			CreatedAt:      time.Now().UTC(),
		}

		err := repo.CreatePendingOrder(ctx, dup)
		assert.Error(t, err)
	})
}

func TestOrderRepository_GetOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewOrderRepository(db.Pool, logger)
	ctx := context.Background()

	order := fakeOrder(5, model.OrderStatusProcessing)
	seedOrder(t, db, order)

	t.Run("existing order", func(t *testing.T) {
		got, err := repo.GetOrder(ctx, 5, order.ID)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, order.ID, got.ID)
		assert.Equal(t, model.OrderStatusProcessing, got.Status)
		assert.True(t, got.Total.Equal(order.Total))
		require.Len(t, got.Items, 1)
		assert.Equal(t, order.Items[0].ProductID, got.Items[0].ProductID)
	})

	t.Run("order scoped to its user", func(t *testing.T) {
		got, err := repo.GetOrder(ctx, 99, order.ID)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown status parses to unrecognized", func(t *testing.T) {
		odd := fakeOrder(5, model.OrderStatus("shipped_v2"))
		seedOrder(t, db, odd)

		got, err := repo.GetOrder(ctx, 5, odd.ID)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, model.OrderStatusUnrecognized, got.Status)
	})
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewOrderRepository(db.Pool, logger)
	ctx := context.Background()

	order := fakeOrder(5, model.OrderStatusProcessing)
	seedOrder(t, db, order)

	t.Run("updates existing order", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, 5, order.ID, model.OrderStatusPaid))

		got, err := repo.GetOrder(ctx, 5, order.ID)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusPaid, got.Status)
	})

	t.Run("missing order fails", func(t *testing.T) {
		err := repo.UpdateStatus(ctx, 5, "order_never_issued", model.OrderStatusPaid)
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})

	t.Run("wrong user cannot update", func(t *testing.T) {
		err := repo.UpdateStatus(ctx, 99, order.ID, model.OrderStatusFailed)
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})
}

func TestTransactionRepository_Get(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewTransactionRepository(db.Pool, logger)
	ctx := context.Background()

	reason := "card declined"
	txn := model.PaymentTransaction{
		TransactionID: "txn_" + uuid.NewString(),
		OrderID:       "order_" + uuid.NewString(),
		UserID:        5,
		Status:        model.PaymentStatusFailed,
		FailureReason: &reason,
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}
	seedTransaction(t, db, txn)

	t.Run("existing transaction", func(t *testing.T) {
		got, err := repo.Get(ctx, txn.TransactionID, txn.OrderID)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, model.PaymentStatusFailed, got.Status)
		require.NotNil(t, got.FailureReason)
		assert.Equal(t, reason, *got.FailureReason)
	})

	t.Run("missing transaction returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, "txn_missing", txn.OrderID)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown status parses to unrecognized", func(t *testing.T) {
		odd := model.PaymentTransaction{
			TransactionID: "txn_" + uuid.NewString(),
			OrderID:       "order_" + uuid.NewString(),
			UserID:        5,
			Status:        model.PaymentStatus("authorized_v3"),
			CreatedAt:     time.Now().UTC(),
		}
		seedTransaction(t, db, odd)

		got, err := repo.Get(ctx, odd.TransactionID, odd.OrderID)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, model.PaymentStatusUnrecognized, got.Status)
	})
}
