package router

import (
	"net/http"

	"kart-checkout/internal/handler"
	"kart-checkout/internal/middleware"
	"kart-checkout/internal/session"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	checkoutHandler *handler.CheckoutHandler,
	paymentHandler *handler.PaymentHandler,
	verifier session.Verifier,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Register checkout route (both with and without trailing slash)
	mux.HandleFunc("/api/checkout", checkoutHandler.Create)
	mux.HandleFunc("/api/checkout/", checkoutHandler.Create)

	// Register payment status route
	mux.HandleFunc("/api/payments/status", paymentHandler.Status)

	// Apply middleware in order: Recovery -> Logging -> CORS -> SessionAuth
	var h http.Handler = mux
	h = middleware.SessionAuth(verifier, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
