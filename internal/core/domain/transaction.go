package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle state of a donation payment.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusConfirming PaymentStatus = "confirming"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusExpired    PaymentStatus = "expired"
)

// Terminal returns true if no further provider updates are expected.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed || s == PaymentStatusExpired
}

// PaymentStatusFromProvider maps a crypto-provider IPN status string to the
// internal enumeration. The second return value is false for statuses the
// provider never documented; callers should log and skip those.
func PaymentStatusFromProvider(s string) (PaymentStatus, bool) {
	switch s {
	case "waiting":
		return PaymentStatusPending, true
	case "confirming", "confirmed", "sending", "partially_paid":
		return PaymentStatusConfirming, true
	case "finished":
		return PaymentStatusCompleted, true
	case "failed", "refunded":
		return PaymentStatusFailed, true
	case "expired":
		return PaymentStatusExpired, true
	}
	return PaymentStatusPending, false
}

// PaymentStatusFromCardProvider maps the card on-ramp provider's webhook
// status vocabulary to the internal enumeration.
func PaymentStatusFromCardProvider(s string) (PaymentStatus, bool) {
	switch s {
	case "waitingPayment", "waitingAuthorization", "pending":
		return PaymentStatusPending, true
	case "completed":
		return PaymentStatusCompleted, true
	case "failed":
		return PaymentStatusFailed, true
	}
	return PaymentStatusPending, false
}

// DonationTransaction is a donor payment tracked against the external
// provider. OrderID is the sole correlation key between the outbound
// invoice creation and inbound webhook updates.
type DonationTransaction struct {
	ID                uuid.UUID        `json:"id"`
	OrderID           string           `json:"order_id"`
	ProviderPaymentID string           `json:"provider_payment_id,omitempty"`
	Amount            decimal.Decimal  `json:"amount"`
	Currency          string           `json:"currency"`
	Status            PaymentStatus    `json:"status"`
	DonorName         string           `json:"donor_name"`
	DonorEmail        string           `json:"donor_email"`
	CauseName         string           `json:"cause_name,omitempty"`
	PayAmount         *decimal.Decimal `json:"pay_amount,omitempty"`
	PayCurrency       *string          `json:"pay_currency,omitempty"`
	Transferred       bool             `json:"transferred"`
	TransferredAt     *time.Time       `json:"transferred_at,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// Transferable reports whether the settlement worker can act on this
// transaction: completed, not yet moved, and with an observed paid amount.
func (t *DonationTransaction) Transferable() bool {
	return t.Status == PaymentStatusCompleted && !t.Transferred && t.PayAmount != nil
}
