package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"kart-checkout/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// statusFor maps a domain error to its HTTP status and user-facing message.
// Unexpected errors map to a generic 500; the underlying cause is logged by
// the caller, never exposed.
func statusFor(err error) (int, string) {
	var derr *model.DomainError
	if !errors.As(err, &derr) {
		return http.StatusInternalServerError, "internal server error"
	}

	switch derr.Code {
	case model.ErrCodeEmptyCart, model.ErrCodeInvalidQuantity, model.ErrCodeNonPositiveTotal,
		model.ErrCodeInvalidCoupon, model.ErrCodeExpiredCoupon, model.ErrCodeMissingField:
		return http.StatusBadRequest, derr.Message
	case model.ErrCodeUnauthorised, model.ErrCodeInvalidToken, model.ErrCodeTokenExpired:
		return http.StatusUnauthorized, derr.Message
	case model.ErrCodeIdentityMismatch:
		return http.StatusForbidden, derr.Message
	case model.ErrCodeOrderNotFound:
		return http.StatusNotFound, derr.Message
	case model.ErrCodePaymentGateway:
		// The gateway's own message stays in the logs.
		return http.StatusInternalServerError, "payment could not be initiated"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
