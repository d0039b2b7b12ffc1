// Package payment holds the outbound client for the crypto payment
// provider's invoice API.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"charity-donation-service/internal/core/ports"
	"charity-donation-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.InvoiceClient against a NowPayments-style API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a provider client with a request timeout.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// NewClientWithHTTP creates a provider client with a custom HTTP client.
func NewClientWithHTTP(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

// invoiceRequest is the provider's invoice-creation payload.
type invoiceRequest struct {
	PriceAmount      decimal.Decimal `json:"price_amount"`
	PriceCurrency    string          `json:"price_currency"`
	OrderID          string          `json:"order_id"`
	OrderDescription string          `json:"order_description,omitempty"`
	IPNCallbackURL   string          `json:"ipn_callback_url,omitempty"`
	SuccessURL       string          `json:"success_url,omitempty"`
	CancelURL        string          `json:"cancel_url,omitempty"`
}

// invoiceResponse is the provider's success body. The id arrives as a
// JSON number or string depending on the endpoint version.
type invoiceResponse struct {
	ID         json.Number `json:"id"`
	InvoiceURL string      `json:"invoice_url"`
}

// errorResponse is the provider's failure body.
type errorResponse struct {
	Message string `json:"message"`
}

// CreateInvoice creates a hosted invoice and returns its id and URL.
// Transport failures map to PRV_002; provider rejections map to PRV_001
// carrying the provider's own message.
func (c *Client) CreateInvoice(ctx context.Context, apiKey string, req ports.InvoiceRequest) (*ports.Invoice, error) {
	body, err := json.Marshal(invoiceRequest{
		PriceAmount:      req.PriceAmount,
		PriceCurrency:    req.PriceCurrency,
		OrderID:          req.OrderID,
		OrderDescription: req.OrderDescription,
		IPNCallbackURL:   req.IPNCallbackURL,
		SuccessURL:       req.SuccessURL,
		CancelURL:        req.CancelURL,
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal invoice request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/invoice", bytes.NewReader(body))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build invoice request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, apperror.ErrProviderUnreachable(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, apperror.ErrProviderUnreachable(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var provErr errorResponse
		_ = json.Unmarshal(respBody, &provErr)
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("order_id", req.OrderID).
			Str("provider_message", provErr.Message).
			Msg("provider rejected invoice creation")
		return nil, apperror.ErrProviderRejected(provErr.Message)
	}

	var inv invoiceResponse
	if err := json.Unmarshal(respBody, &inv); err != nil {
		return nil, apperror.ErrProviderUnreachable(fmt.Errorf("decode response: %w", err))
	}
	if inv.ID.String() == "" || inv.InvoiceURL == "" {
		return nil, apperror.ErrProviderRejected("invoice response missing id or url")
	}

	return &ports.Invoice{
		ID:         inv.ID.String(),
		InvoiceURL: inv.InvoiceURL,
	}, nil
}
