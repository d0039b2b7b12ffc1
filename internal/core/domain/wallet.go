package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustodialWallet is the blockchain account this system holds keys for.
// Donor funds land on Address; settlement moves them to SettlementAddress.
// At most one wallet record has Active=true at any time.
type CustodialWallet struct {
	ID                uuid.UUID `json:"id"`
	Address           string    `json:"address"`
	MnemonicEnc       string    `json:"-"` // AES-256-GCM under the process key
	SettlementAddress string    `json:"settlement_address"`
	Network           string    `json:"network"`
	Currency          string    `json:"currency"`
	Active            bool      `json:"active"`
	AutoTransfer      bool      `json:"auto_transfer"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HasKeyMaterial reports whether the wallet can sign transfers.
func (w *CustodialWallet) HasKeyMaterial() bool {
	return w != nil && w.MnemonicEnc != ""
}
