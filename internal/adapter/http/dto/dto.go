package dto

import (
	"encoding/json"

	"charity-donation-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateDonationRequest is the public checkout request body.
type CreateDonationRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Currency   string          `json:"currency" binding:"omitempty,len=3"`
	DonorName  string          `json:"donor_name" binding:"omitempty,max=100"`
	DonorEmail string          `json:"donor_email" binding:"required,email"`
	CauseName  string          `json:"cause_name" binding:"omitempty,max=200"`
	SuccessURL string          `json:"success_url" binding:"omitempty,safe_url"`
	CancelURL  string          `json:"cancel_url" binding:"omitempty,safe_url"`
}

// CreateDonationResponse is returned to the donor-facing frontend.
type CreateDonationResponse struct {
	PaymentURL string `json:"payment_url"`
	PaymentID  string `json:"payment_id"`
	OrderID    string `json:"order_id"`
}

// CryptoWebhookRequest is the crypto provider's IPN body. Numeric fields
// arrive as either JSON numbers or strings depending on provider version,
// so they are decoded leniently.
type CryptoWebhookRequest struct {
	PaymentID     json.Number  `json:"payment_id"`
	PaymentStatus string       `json:"payment_status"`
	OrderID       string       `json:"order_id"`
	PayAmount     *json.Number `json:"pay_amount"`
	PayCurrency   string       `json:"pay_currency"`
}

// LegacyWebhookRequest is the fire-and-forget legacy IPN body.
type LegacyWebhookRequest struct {
	PaymentID     json.Number  `json:"payment_id"`
	PaymentStatus string       `json:"payment_status"`
	PriceAmount   json.Number  `json:"price_amount"`
	PriceCurrency string       `json:"price_currency"`
	PayAmount     *json.Number `json:"pay_amount"`
	PayCurrency   string       `json:"pay_currency"`
}

// CardWebhookRequest is the card on-ramp provider's webhook envelope.
type CardWebhookRequest struct {
	Type string          `json:"type"`
	Data CardWebhookData `json:"data"`
}

// CardWebhookData is the payload nested inside a card webhook.
type CardWebhookData struct {
	ID                    string       `json:"id"`
	Status                string       `json:"status"`
	ExternalTransactionID string       `json:"externalTransactionId"`
	BaseCurrencyAmount    *json.Number `json:"baseCurrencyAmount"`
	BaseCurrencyCode      string       `json:"baseCurrencyCode"`
}

// DecimalFromNumber converts an optional lenient numeric into a decimal.
// Unparseable values collapse to nil rather than failing the webhook.
func DecimalFromNumber(n *json.Number) *decimal.Decimal {
	if n == nil || n.String() == "" {
		return nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return nil
	}
	return &d
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the successful admin login response.
type LoginResponse struct {
	Token  string            `json:"token"`
	Expiry int64             `json:"expiry"` // Unix timestamp
	User   *domain.AdminUser `json:"user"`
}

// ProviderSettingsRequest is the admin settings update body. Secret fields
// are pointers: nil means keep the stored value.
type ProviderSettingsRequest struct {
	APIKey         *string          `json:"api_key"`
	IPNSecret      *string          `json:"ipn_secret"`
	WithdrawalMode string           `json:"withdrawal_mode" binding:"omitempty,oneof=manual automatic"`
	MinWithdrawal  *decimal.Decimal `json:"min_withdrawal"`
	AutoTransfer   *bool            `json:"auto_transfer"`
}

// ProviderSettingsResponse exposes settings without the secrets themselves.
type ProviderSettingsResponse struct {
	Provider       string          `json:"provider"`
	HasAPIKey      bool            `json:"has_api_key"`
	HasIPNSecret   bool            `json:"has_ipn_secret"`
	WithdrawalMode string          `json:"withdrawal_mode"`
	MinWithdrawal  decimal.Decimal `json:"min_withdrawal"`
	AutoTransfer   bool            `json:"auto_transfer"`
}

// NewProviderSettingsResponse masks the stored secrets.
func NewProviderSettingsResponse(s *domain.ProviderSettings) ProviderSettingsResponse {
	return ProviderSettingsResponse{
		Provider:       s.Provider,
		HasAPIKey:      s.APIKey != "",
		HasIPNSecret:   s.IPNSecret != "",
		WithdrawalMode: string(s.WithdrawalMode),
		MinWithdrawal:  s.MinWithdrawal,
		AutoTransfer:   s.AutoTransfer,
	}
}

// WalletRequest is the admin wallet configuration body. Mnemonic is
// write-only: it is encrypted on receipt and never returned.
type WalletRequest struct {
	Address           string `json:"address" binding:"required"`
	Mnemonic          string `json:"mnemonic"`
	SettlementAddress string `json:"settlement_address" binding:"required"`
	Network           string `json:"network" binding:"omitempty,max=50"`
	Currency          string `json:"currency" binding:"omitempty,max=10"`
	AutoTransfer      bool   `json:"auto_transfer"`
}

// BankAccountRequest is the admin bank account create/update body.
type BankAccountRequest struct {
	BankName      string `json:"bank_name" binding:"required,max=100"`
	AccountName   string `json:"account_name" binding:"required,max=100"`
	AccountNumber string `json:"account_number" binding:"required,max=50"`
	Branch        string `json:"branch" binding:"omitempty,max=100"`
	SwiftCode     string `json:"swift_code" binding:"omitempty,max=20"`
	Currency      string `json:"currency" binding:"omitempty,len=3"`
	IsDefault     bool   `json:"is_default"`
}

// WithdrawalCreateRequest is the admin withdrawal request body.
type WithdrawalCreateRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Currency      string          `json:"currency" binding:"omitempty,len=3"`
	BankAccountID *string         `json:"bank_account_id"`
	Note          string          `json:"note" binding:"omitempty,max=500"`
}

// StatsResponse is the admin dashboard aggregate payload.
type StatsResponse struct {
	TotalDonations     int64           `json:"total_donations"`
	CompletedDonations int64           `json:"completed_donations"`
	TotalUSD           decimal.Decimal `json:"total_usd"`
}

// TransferResponse reports the outcome of a manual settlement trigger.
type TransferResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
