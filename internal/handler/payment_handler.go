package handler

import (
	"net/http"

	"kart-checkout/internal/middleware"
	"kart-checkout/internal/model"
	"kart-checkout/internal/service"

	"github.com/rs/zerolog"
)

// PaymentHandler handles payment-status HTTP requests.
type PaymentHandler struct {
	service service.PaymentService
	logger  zerolog.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(service service.PaymentService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger.With().Str("handler", "payment").Logger(),
	}
}

// Status handles GET /api/payments/status requests.
func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrUnauthorised.Message, h.logger)
		return
	}

	orderID := r.URL.Query().Get("orderId")
	transactionID := r.URL.Query().Get("transactionId")
	if orderID == "" || transactionID == "" {
		writeError(w, http.StatusBadRequest, "orderId and transactionId are required", h.logger)
		return
	}

	result, err := h.service.Status(r.Context(), userID, orderID, transactionID)
	if err != nil {
		status, message := statusFor(err)
		h.logger.Warn().
			Err(err).
			Int64("user_id", userID).
			Str("order_id", orderID).
			Int("status", status).
			Msg("payment status query failed")
		writeError(w, status, message, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
