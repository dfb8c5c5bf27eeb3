package coupon

import (
	"context"
	"errors"
	"testing"
	"time"

	"kart-checkout/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCouponRepository is a mock implementation of CouponRepository.
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coupon), args.Error(1)
}

func newTestEvaluator(repo *MockCouponRepository, now time.Time) Evaluator {
	e := NewEvaluator(repo, zerolog.Nop()).(*evaluator)
	e.now = func() time.Time { return now }
	return e
}

func TestEvaluator_Evaluate_Success(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo := new(MockCouponRepository)
	repo.On("GetByCode", ctx, "SAVE10").Return(&model.Coupon{
		Code:               "SAVE10",
		DiscountPercentage: decimal.NewFromInt(10),
		IsActive:           true,
	}, nil)

	e := newTestEvaluator(repo, now)

	discount, err := e.Evaluate(ctx, "SAVE10", decimal.NewFromInt(200))

	require.NoError(t, err)
	assert.True(t, discount.Equal(decimal.NewFromInt(20)), "expected 20, got %s", discount)
	repo.AssertExpectations(t)
}

func TestEvaluator_Evaluate_CanonicalisesCode(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo := new(MockCouponRepository)
	// Lookup must see the upper-cased, trimmed form.
	repo.On("GetByCode", ctx, "SAVE10").Return(&model.Coupon{
		Code:               "SAVE10",
		DiscountPercentage: decimal.NewFromInt(10),
		IsActive:           true,
	}, nil)

	e := newTestEvaluator(repo, now)

	_, err := e.Evaluate(ctx, "  save10 ", decimal.NewFromInt(100))

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEvaluator_Evaluate_UnknownCode(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	repo := new(MockCouponRepository)
	repo.On("GetByCode", ctx, "NOPE").Return(nil, nil)

	e := newTestEvaluator(repo, now)

	_, err := e.Evaluate(ctx, "nope", decimal.NewFromInt(100))

	assert.ErrorIs(t, err, model.ErrInvalidCoupon)
}

func TestEvaluator_Evaluate_InactiveCoupon(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	repo := new(MockCouponRepository)
	repo.On("GetByCode", ctx, "OLD").Return(&model.Coupon{
		Code:               "OLD",
		DiscountPercentage: decimal.NewFromInt(50),
		IsActive:           false,
	}, nil)

	e := newTestEvaluator(repo, now)

	_, err := e.Evaluate(ctx, "OLD", decimal.NewFromInt(100))

	assert.ErrorIs(t, err, model.ErrInvalidCoupon)
}

func TestEvaluator_Evaluate_ExpiredCoupon(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expired := now.Add(-time.Hour)

	repo := new(MockCouponRepository)
	// Active flag does not save an expired coupon.
	repo.On("GetByCode", ctx, "GONE").Return(&model.Coupon{
		Code:               "GONE",
		DiscountPercentage: decimal.NewFromInt(10),
		IsActive:           true,
		ExpiresAt:          &expired,
	}, nil)

	e := newTestEvaluator(repo, now)

	_, err := e.Evaluate(ctx, "GONE", decimal.NewFromInt(100))

	assert.ErrorIs(t, err, model.ErrExpiredCoupon)
}

func TestEvaluator_Evaluate_NilExpiryNeverExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	repo := new(MockCouponRepository)
	repo.On("GetByCode", ctx, "FOREVER").Return(&model.Coupon{
		Code:               "FOREVER",
		DiscountPercentage: decimal.NewFromInt(5),
		IsActive:           true,
	}, nil)

	e := newTestEvaluator(repo, now)

	discount, err := e.Evaluate(ctx, "FOREVER", decimal.NewFromInt(100))

	require.NoError(t, err)
	assert.True(t, discount.Equal(decimal.NewFromInt(5)))
}

func TestEvaluator_Evaluate_DiscountClampedToSubtotal(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCouponRepository)
	repo.On("GetByCode", ctx, "BIG").Return(&model.Coupon{
		Code:               "BIG",
		DiscountPercentage: decimal.NewFromInt(100),
		IsActive:           true,
	}, nil)

	e := newTestEvaluator(repo, time.Now())

	discount, err := e.Evaluate(ctx, "BIG", decimal.NewFromInt(40))

	require.NoError(t, err)
	assert.True(t, discount.Equal(decimal.NewFromInt(40)), "discount must never exceed the subtotal")
}

func TestEvaluator_Evaluate_EmptyCode(t *testing.T) {
	e := newTestEvaluator(new(MockCouponRepository), time.Now())

	_, err := e.Evaluate(context.Background(), "   ", decimal.NewFromInt(100))

	assert.ErrorIs(t, err, model.ErrInvalidCoupon)
}

func TestEvaluator_Evaluate_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repoErr := errors.New("connection reset")

	repo := new(MockCouponRepository)
	repo.On("GetByCode", ctx, "SAVE10").Return(nil, repoErr)

	e := newTestEvaluator(repo, time.Now())

	_, err := e.Evaluate(ctx, "SAVE10", decimal.NewFromInt(100))

	assert.ErrorIs(t, err, repoErr)
}
