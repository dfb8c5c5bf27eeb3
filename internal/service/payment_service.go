package service

import (
	"context"

	"kart-checkout/internal/model"
	"kart-checkout/internal/repository"

	"github.com/rs/zerolog"
)

// paymentService implements PaymentService.
type paymentService struct {
	orderRepo repository.OrderRepository
	txnRepo   repository.TransactionRepository
	logger    zerolog.Logger
}

// NewPaymentService creates a new payment status service.
func NewPaymentService(
	orderRepo repository.OrderRepository,
	txnRepo repository.TransactionRepository,
	logger zerolog.Logger,
) PaymentService {
	return &paymentService{
		orderRepo: orderRepo,
		txnRepo:   txnRepo,
		logger:    logger.With().Str("service", "payment").Logger(),
	}
}

// Status reconciles the order record store with the transaction log.
//
// A pending order short-circuits to payment_pending: until the gateway
// callback promotes it to a finalized order there is nothing further to
// reconcile, whatever the transaction log says. Otherwise the finalized
// order's status and the transaction's status are reported independently;
// callers poll until they converge.
func (s *paymentService) Status(ctx context.Context, userID int64, gatewayOrderID, transactionID string) (*model.PaymentStatusResult, error) {
	pending, err := s.orderRepo.FindPendingOrder(ctx, userID, gatewayOrderID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		s.logger.Debug().
			Str("gateway_order_id", gatewayOrderID).
			Msg("order still pending payment")
		return &model.PaymentStatusResult{
			OrderID:       gatewayOrderID,
			TransactionID: transactionID,
			OrderStatus:   model.OrderStatusPaymentPending,
			PaymentStatus: model.PaymentStatusUnknown,
		}, nil
	}

	order, err := s.orderRepo.GetOrder(ctx, userID, gatewayOrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		s.logger.Debug().
			Int64("user_id", userID).
			Str("gateway_order_id", gatewayOrderID).
			Msg("no order for status query")
		return nil, model.ErrOrderNotFound
	}

	// A missing transaction row is not an error; the gateway callback may
	// not have arrived yet.
	paymentStatus := model.PaymentStatusUnknown
	txn, err := s.txnRepo.Get(ctx, transactionID, gatewayOrderID)
	if err != nil {
		return nil, err
	}
	if txn != nil {
		paymentStatus = txn.Status
	}

	return &model.PaymentStatusResult{
		OrderID:       gatewayOrderID,
		TransactionID: transactionID,
		OrderStatus:   order.Status,
		PaymentStatus: paymentStatus,
	}, nil
}
