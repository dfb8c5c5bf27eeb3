package service

import (
	"context"
	"fmt"
	"time"

	"kart-checkout/internal/gateway"
	"kart-checkout/internal/model"
	"kart-checkout/internal/pricing"
	"kart-checkout/internal/repository"

	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	orderRepo  repository.OrderRepository
	calculator pricing.Calculator
	gateway    gateway.Client
	currency   string
	now        func() time.Time
	logger     zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	calculator pricing.Calculator,
	gatewayClient gateway.Client,
	currency string,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:  orderRepo,
		calculator: calculator,
		gateway:    gatewayClient,
		currency:   currency,
		now:        time.Now,
		logger:     logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout prices the cart, creates a gateway order, and records it pending.
func (s *checkoutService) Checkout(ctx context.Context, authUserID int64, idempotencyKey string, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if req == nil {
		return nil, model.ErrEmptyCart
	}

	// The session token is ground truth; a body claiming another user is
	// rejected before anything reaches the gateway.
	if req.UserID != authUserID {
		s.logger.Warn().
			Int64("auth_user_id", authUserID).
			Int64("request_user_id", req.UserID).
			Msg("checkout user id does not match session")
		return nil, model.ErrIdentityMismatch
	}

	// A retried request under the same key returns the gateway order the
	// first attempt created, without a second gateway call.
	if idempotencyKey != "" {
		existing, err := s.orderRepo.FindPendingOrderByKey(ctx, authUserID, idempotencyKey)
		if err != nil {
			return nil, fmt.Errorf("failed to check idempotency key: %w", err)
		}
		if existing != nil {
			s.logger.Info().
				Str("gateway_order_id", existing.GatewayOrderID).
				Str("idempotency_key", idempotencyKey).
				Msg("checkout replayed from idempotency key")
			return &model.CheckoutResponse{OrderID: existing.GatewayOrderID}, nil
		}
	}

	quote, err := s.calculator.Quote(ctx, req.Items, req.CouponCode)
	if err != nil {
		return nil, err
	}

	now := s.now()
	receipt := fmt.Sprintf("rcpt_%d_%d", authUserID, now.UnixNano())

	gatewayResp, err := s.gateway.CreateOrder(ctx, gateway.OrderRequest{
		AmountMinor: gateway.MinorUnits(quote.Total),
		Currency:    s.currency,
		Receipt:     receipt,
		AutoCapture: true,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", authUserID).
			Str("receipt", receipt).
			Msg("failed to create gateway order")
		return nil, err
	}

	pending := &model.PendingOrder{
		GatewayOrderID: gatewayResp.GatewayOrderID,
		UserID:         authUserID,
		Amount:         quote.Total,
		Currency:       s.currency,
		Receipt:        receipt,
		CreatedAt:      now,
	}
	if idempotencyKey != "" {
		pending.IdempotencyKey = &idempotencyKey
	}

	if err := s.orderRepo.CreatePendingOrder(ctx, pending); err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", authUserID).
			Str("gateway_order_id", gatewayResp.GatewayOrderID).
			Msg("failed to record pending order")
		return nil, fmt.Errorf("failed to record pending order: %w", err)
	}

	s.logger.Info().
		Int64("user_id", authUserID).
		Str("gateway_order_id", gatewayResp.GatewayOrderID).
		Str("total", quote.Total.String()).
		Str("discount", quote.Discount.String()).
		Msg("checkout completed")

	return &model.CheckoutResponse{OrderID: gatewayResp.GatewayOrderID}, nil
}
