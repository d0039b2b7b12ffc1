package payment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"charity-donation-service/internal/core/ports"
	"charity-donation-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvoiceReq() ports.InvoiceRequest {
	return ports.InvoiceRequest{
		OrderID:          "DON-1700000000-a1b2c3d4",
		PriceAmount:      decimal.NewFromInt(50),
		PriceCurrency:    "usd",
		OrderDescription: "Donation to Clean Water",
		IPNCallbackURL:   "https://charity.example.com/api/v1/webhooks/crypto",
	}
}

func TestClient_CreateInvoice_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/invoice", r.URL.Path)
		assert.Equal(t, "NP-KEY", r.Header.Get("x-api-key"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "DON-1700000000-a1b2c3d4", req["order_id"])
		assert.Equal(t, "usd", req["price_currency"])

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":5077125051,"invoice_url":"https://pay.example.com/i/5077125051"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	invoice, err := client.CreateInvoice(context.Background(), "NP-KEY", testInvoiceReq())
	require.NoError(t, err)
	assert.Equal(t, "5077125051", invoice.ID)
	assert.Equal(t, "https://pay.example.com/i/5077125051", invoice.InvoiceURL)
}

func TestClient_CreateInvoice_StringID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":"inv_abc","invoice_url":"https://pay.example.com/i/inv_abc"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	invoice, err := client.CreateInvoice(context.Background(), "NP-KEY", testInvoiceReq())
	require.NoError(t, err)
	assert.Equal(t, "inv_abc", invoice.ID)
}

func TestClient_CreateInvoice_ProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"price_amount is too small"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	_, err := client.CreateInvoice(context.Background(), "NP-KEY", testInvoiceReq())
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "PRV_001", appErr.Code)
	assert.Equal(t, "price_amount is too small", appErr.Message)
}

type failingHTTPClient struct{}

func (failingHTTPClient) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestClient_CreateInvoice_Unreachable(t *testing.T) {
	client := NewClientWithHTTP("https://api.example.com", failingHTTPClient{}, zerolog.Nop())

	_, err := client.CreateInvoice(context.Background(), "NP-KEY", testInvoiceReq())
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "PRV_002", appErr.Code)
}

func TestClient_CreateInvoice_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"invoice_url":""}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	_, err := client.CreateInvoice(context.Background(), "NP-KEY", testInvoiceReq())
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "PRV_001", appErr.Code)
}
