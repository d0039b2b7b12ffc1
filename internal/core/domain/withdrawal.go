package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalStatus is the review state of an operator withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusPaid     WithdrawalStatus = "paid"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
)

// Withdrawal is an operator request to move collected funds to a bank
// account. Created pending; review happens outside this system.
type Withdrawal struct {
	ID            uuid.UUID        `json:"id"`
	Amount        decimal.Decimal  `json:"amount"`
	Currency      string           `json:"currency"`
	BankAccountID *uuid.UUID       `json:"bank_account_id,omitempty"`
	Status        WithdrawalStatus `json:"status"`
	Note          string           `json:"note,omitempty"`
	RequestedBy   uuid.UUID        `json:"requested_by"`
	CreatedAt     time.Time        `json:"created_at"`
}
