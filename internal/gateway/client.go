package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"kart-checkout/internal/model"

	"github.com/rs/zerolog"
)

// restClient implements Client over the gateway's REST order API.
type restClient struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewRESTClient creates a payment-gateway client. The httpClient owns
// timeouts; the gateway client itself never retries.
func NewRESTClient(baseURL, keyID, keySecret string, httpClient *http.Client, logger zerolog.Logger) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &restClient{
		baseURL:    baseURL,
		keyID:      keyID,
		keySecret:  keySecret,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "payment-gateway").Logger(),
	}
}

// CreateOrder submits an order to the gateway.
func (c *restClient) CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gateway order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error().Err(err).Msg("gateway order request failed")
		return nil, model.ErrPaymentGateway
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Keep the gateway's message for diagnostics; callers only ever see
		// the generic domain error.
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("gateway_response", string(raw)).
			Str("receipt", req.Receipt).
			Msg("gateway rejected order")
		return nil, model.ErrPaymentGateway
	}

	var orderResp OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orderResp); err != nil {
		c.logger.Error().Err(err).Msg("failed to decode gateway response")
		return nil, model.ErrPaymentGateway
	}

	if orderResp.GatewayOrderID == "" {
		c.logger.Error().Str("receipt", req.Receipt).Msg("gateway response missing order id")
		return nil, model.ErrPaymentGateway
	}

	c.logger.Debug().
		Str("gateway_order_id", orderResp.GatewayOrderID).
		Int64("amount_minor", req.AmountMinor).
		Str("currency", req.Currency).
		Msg("gateway order created")

	return &orderResp, nil
}
