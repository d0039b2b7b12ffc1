package service

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"time"

	"charity-donation-service/internal/core/ports"
	"charity-donation-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tyler-smith/go-bip39"
)

// lamportsPerSOL is the chain's smallest-unit scale.
var lamportsPerSOL = decimal.NewFromInt(1_000_000_000)

// SettlementServiceImpl implements ports.SettlementService. Automatic
// settlements run on a single background worker fed by a bounded queue;
// manual triggers call Settle directly.
type SettlementServiceImpl struct {
	txRepo      ports.TransactionRepository
	settingsSvc ports.SettingsService
	encSvc      ports.EncryptionService
	chain       ports.ChainClient
	jobs        chan string
	jobTimeout  time.Duration
	log         zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	txRepo ports.TransactionRepository,
	settingsSvc ports.SettingsService,
	encSvc ports.EncryptionService,
	chain ports.ChainClient,
	queueSize int,
	jobTimeout time.Duration,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		txRepo:      txRepo,
		settingsSvc: settingsSvc,
		encSvc:      encSvc,
		chain:       chain,
		jobs:        make(chan string, queueSize),
		jobTimeout:  jobTimeout,
		log:         log,
	}
}

// Start launches the settlement worker. It drains the queue until ctx is
// cancelled; a failed job is logged and dropped, never retried blindly.
func (s *SettlementServiceImpl) Start(ctx context.Context) {
	go func() {
		s.log.Info().Msg("settlement worker started")
		for {
			select {
			case <-ctx.Done():
				s.log.Info().Msg("settlement worker stopped")
				return
			case orderID := <-s.jobs:
				jobCtx, cancel := context.WithTimeout(ctx, s.jobTimeout)
				if err := s.Settle(jobCtx, orderID); err != nil {
					s.log.Error().Err(err).Str("order_id", orderID).Msg("automatic settlement failed")
				}
				cancel()
			}
		}
	}()
}

// Enqueue schedules an asynchronous settlement. Returns false when the
// queue is full; the transfer can still be triggered manually.
func (s *SettlementServiceImpl) Enqueue(orderID string) bool {
	select {
	case s.jobs <- orderID:
		return true
	default:
		return false
	}
}

// Settle moves the observed paid amount for one completed transaction
// from the custodial wallet to the settlement address, then marks the
// transaction transferred. The conditional mark makes repeats and racing
// workers safe: whoever loses the flag race treats the job as done.
func (s *SettlementServiceImpl) Settle(ctx context.Context, orderID string) error {
	wallet, err := s.settingsSvc.Wallet(ctx)
	if err != nil {
		return err
	}
	if !wallet.HasKeyMaterial() || wallet.SettlementAddress == "" {
		return apperror.ErrWalletNotConfigured()
	}

	txn, err := s.txRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get transaction: %w", err))
	}
	if txn == nil {
		return apperror.ErrNotFound("transaction")
	}
	if txn.Transferred {
		return apperror.ErrAlreadyTransferred()
	}
	if !txn.Transferable() {
		return apperror.ErrNothingToTransfer()
	}

	lamports := txn.PayAmount.Mul(lamportsPerSOL).IntPart()
	if lamports <= 0 {
		return apperror.ErrNothingToTransfer()
	}

	key, err := s.signingKey(wallet.MnemonicEnc)
	if err != nil {
		return err
	}

	signature, err := s.chain.Transfer(ctx, key, wallet.SettlementAddress, uint64(lamports))
	if err != nil {
		return apperror.ErrTransferFailed(err)
	}

	s.log.Info().
		Str("order_id", orderID).
		Str("signature", signature).
		Int64("lamports", lamports).
		Msg("settlement transfer submitted")

	if err := s.chain.WaitForConfirmation(ctx, signature); err != nil {
		return apperror.ErrTransferFailed(fmt.Errorf("confirmation: %w", err))
	}

	marked, err := s.txRepo.MarkTransferred(ctx, txn.ID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("mark transferred: %w", err))
	}
	if !marked {
		// A concurrent settlement won the flag. The funds moved once; the
		// losing caller reports the conflict rather than inventing success.
		return apperror.ErrAlreadyTransferred()
	}

	s.log.Info().
		Str("order_id", orderID).
		Str("signature", signature).
		Msg("settlement confirmed")
	return nil
}

// signingKey decrypts the stored mnemonic and derives the wallet's
// ed25519 signing key from the BIP-39 seed.
func (s *SettlementServiceImpl) signingKey(mnemonicEnc string) (ed25519.PrivateKey, error) {
	mnemonic, err := s.encSvc.Decrypt(mnemonicEnc)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt mnemonic: %w", err))
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, apperror.ErrInvalidMnemonic()
	}

	seed := bip39.NewSeed(mnemonic, "")
	return ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize]), nil
}
