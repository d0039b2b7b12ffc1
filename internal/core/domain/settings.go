package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalMode controls how collected funds leave the custodial wallet.
type WithdrawalMode string

const (
	WithdrawalModeManual    WithdrawalMode = "manual"
	WithdrawalModeAutomatic WithdrawalMode = "automatic"
)

// ProviderSettings is the singleton configuration record for a payment
// provider. There is at most one active record per provider name; it is
// lazily created with defaults on first read.
type ProviderSettings struct {
	ID             uuid.UUID       `json:"id"`
	Provider       string          `json:"provider"`
	APIKey         string          `json:"-"` // never exposed through the API
	IPNSecret      string          `json:"-"`
	WithdrawalMode WithdrawalMode  `json:"withdrawal_mode"`
	MinWithdrawal  decimal.Decimal `json:"min_withdrawal"`
	AutoTransfer   bool            `json:"auto_transfer"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Configured reports whether the provider can be called at all.
func (s *ProviderSettings) Configured() bool {
	return s != nil && s.APIKey != ""
}

// DefaultProviderSettings returns the record created on first read.
func DefaultProviderSettings(provider string) *ProviderSettings {
	now := time.Now().UTC()
	return &ProviderSettings{
		ID:             uuid.New(),
		Provider:       provider,
		WithdrawalMode: WithdrawalModeManual,
		MinWithdrawal:  decimal.NewFromInt(100),
		AutoTransfer:   false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
