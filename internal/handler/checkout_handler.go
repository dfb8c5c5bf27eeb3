package handler

import (
	"encoding/json"
	"net/http"

	"kart-checkout/internal/middleware"
	"kart-checkout/internal/model"
	"kart-checkout/internal/service"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles checkout HTTP requests.
type CheckoutHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// Create handles POST /api/checkout requests.
func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrUnauthorised.Message, h.logger)
		return
	}

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	idempotencyKey := r.Header.Get("Idempotency-Key")

	resp, err := h.service.Checkout(r.Context(), userID, idempotencyKey, &req)
	if err != nil {
		status, message := statusFor(err)
		h.logger.Warn().
			Err(err).
			Int64("user_id", userID).
			Int("status", status).
			Msg("checkout rejected")
		writeError(w, status, message, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
