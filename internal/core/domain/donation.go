package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// legacyCryptoUSDRate is the flat conversion the legacy webhook path applies
// to non-USD price amounts when normalizing to USD.
var legacyCryptoUSDRate = decimal.NewFromFloat(0.04)

// Donation is the legacy fire-and-forget record created straight from a
// provider webhook, without a prior pending transaction. It only exists for
// the admin listing and the aggregate stats.
type Donation struct {
	ID                uuid.UUID        `json:"id"`
	Amount            decimal.Decimal  `json:"amount"`
	Currency          string           `json:"currency"`
	AmountUSD         decimal.Decimal  `json:"amount_usd"`
	PaymentMethod     string           `json:"payment_method"`
	Status            PaymentStatus    `json:"status"`
	ProviderPaymentID string           `json:"provider_payment_id,omitempty"`
	CryptoAmount      *decimal.Decimal `json:"crypto_amount,omitempty"`
	CryptoCurrency    *string          `json:"crypto_currency,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

// NormalizeUSD converts a priced amount to the USD figure used by the
// aggregate stats. USD passes through; anything else uses the flat legacy
// rate the original ingestion applied.
func NormalizeUSD(amount decimal.Decimal, currency string) decimal.Decimal {
	if currency == "USD" || currency == "usd" {
		return amount
	}
	return amount.Mul(legacyCryptoUSDRate)
}
