package domain

import (
	"time"

	"github.com/google/uuid"
)

// BankAccount is an operator payout destination. At most one record has
// IsDefault=true; flipping the default is a single atomic write.
type BankAccount struct {
	ID            uuid.UUID `json:"id"`
	BankName      string    `json:"bank_name"`
	AccountName   string    `json:"account_name"`
	AccountNumber string    `json:"account_number"`
	Branch        string    `json:"branch,omitempty"`
	SwiftCode     string    `json:"swift_code,omitempty"`
	Currency      string    `json:"currency"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
}
