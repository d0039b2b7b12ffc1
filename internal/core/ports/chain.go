package ports

import (
	"context"
	"crypto/ed25519"
)

// ChainClient submits value transfers to the blockchain network holding
// the custodial wallet.
type ChainClient interface {
	// Balance returns the account balance in the chain's smallest unit.
	Balance(ctx context.Context, address string) (uint64, error)
	// Transfer builds, signs and submits a transfer of lamports from the
	// key's account to the destination address. Returns the transaction
	// signature used to track confirmation.
	Transfer(ctx context.Context, key ed25519.PrivateKey, to string, lamports uint64) (string, error)
	// WaitForConfirmation blocks until the signature is confirmed, the
	// transaction errors on-chain, or ctx expires.
	WaitForConfirmation(ctx context.Context, signature string) error
}
