package handler

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"

	"charity-donation-service/internal/adapter/http/dto"
	"charity-donation-service/internal/core/ports"
	"charity-donation-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderIPNSignature carries the crypto provider's HMAC over the IPN body.
const HeaderIPNSignature = "x-nowpayments-sig"

// WebhookHandler handles inbound provider notifications. Every endpoint
// acks with 200 no matter what happens internally: a non-2xx makes the
// provider retry, and retrying a failed update does not help anyone.
// Failures are logged instead.
type WebhookHandler struct {
	webhookSvc  ports.WebhookService
	settingsSvc ports.SettingsService
	log         zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookSvc ports.WebhookService, settingsSvc ports.SettingsService, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc, settingsSvc: settingsSvc, log: log}
}

// CryptoIPN handles POST /api/v1/webhooks/crypto.
func (h *WebhookHandler) CryptoIPN(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.log.Warn().Err(err).Msg("crypto ipn: unreadable body")
		response.Ack(c)
		return
	}

	if !h.signatureOK(c, raw) {
		response.Ack(c)
		return
	}

	var req dto.CryptoWebhookRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		h.log.Warn().Err(err).Msg("crypto ipn: malformed body")
		response.Ack(c)
		return
	}

	err = h.webhookSvc.ApplyCryptoUpdate(c.Request.Context(), ports.CryptoPaymentUpdate{
		PaymentID:     req.PaymentID.String(),
		PaymentStatus: req.PaymentStatus,
		OrderID:       req.OrderID,
		PayAmount:     dto.DecimalFromNumber(req.PayAmount),
		PayCurrency:   req.PayCurrency,
	})
	if err != nil {
		h.log.Error().Err(err).Str("order_id", req.OrderID).Msg("crypto ipn: update failed")
	}
	response.Ack(c)
}

// LegacyIPN handles POST /api/v1/webhooks/crypto/legacy.
func (h *WebhookHandler) LegacyIPN(c *gin.Context) {
	var req dto.LegacyWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn().Err(err).Msg("legacy ipn: malformed body")
		response.Ack(c)
		return
	}

	priceAmount := dto.DecimalFromNumber(&req.PriceAmount)
	if priceAmount == nil {
		h.log.Warn().Str("price_amount", req.PriceAmount.String()).Msg("legacy ipn: unparseable price amount")
		response.Ack(c)
		return
	}

	err := h.webhookSvc.IngestLegacyDonation(c.Request.Context(), ports.LegacyDonationEvent{
		PaymentID:     req.PaymentID.String(),
		PaymentStatus: req.PaymentStatus,
		PriceAmount:   *priceAmount,
		PriceCurrency: req.PriceCurrency,
		PayAmount:     dto.DecimalFromNumber(req.PayAmount),
		PayCurrency:   req.PayCurrency,
	})
	if err != nil {
		h.log.Error().Err(err).Str("payment_id", req.PaymentID.String()).Msg("legacy ipn: ingest failed")
	}
	response.Ack(c)
}

// CardWebhook handles POST /api/v1/webhooks/card.
func (h *WebhookHandler) CardWebhook(c *gin.Context) {
	var req dto.CardWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn().Err(err).Msg("card webhook: malformed body")
		response.Ack(c)
		return
	}

	err := h.webhookSvc.ApplyCardUpdate(c.Request.Context(), ports.CardPaymentUpdate{
		TransactionID: req.Data.ID,
		Status:        req.Data.Status,
		CorrelationID: req.Data.ExternalTransactionID,
		BaseAmount:    dto.DecimalFromNumber(req.Data.BaseCurrencyAmount),
		BaseCurrency:  req.Data.BaseCurrencyCode,
	})
	if err != nil {
		h.log.Error().Err(err).Str("correlation_id", req.Data.ExternalTransactionID).Msg("card webhook: update failed")
	}
	response.Ack(c)
}

// signatureOK verifies the IPN HMAC when a secret is configured and the
// provider signed the request. Unsigned requests pass through: the legacy
// provider version never sent the header.
func (h *WebhookHandler) signatureOK(c *gin.Context, raw []byte) bool {
	sig := c.GetHeader(HeaderIPNSignature)
	if sig == "" {
		return true
	}

	settings, err := h.settingsSvc.ProviderSettings(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("crypto ipn: settings lookup failed, skipping signature check")
		return true
	}
	if settings.IPNSecret == "" {
		return true
	}

	expected, err := ipnSignature(raw, settings.IPNSecret)
	if err != nil {
		h.log.Warn().Err(err).Msg("crypto ipn: cannot compute signature")
		return false
	}
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		h.log.Warn().Str("signature", sig).Msg("crypto ipn: signature mismatch, update dropped")
		return false
	}
	return true
}

// ipnSignature computes the provider's HMAC-SHA512 over the body with its
// JSON keys re-serialized in sorted order, matching how the provider signs.
func ipnSignature(raw []byte, secret string) (string, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", err
	}
	sorted, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(sorted)
	return hex.EncodeToString(mac.Sum(nil)), nil
}
