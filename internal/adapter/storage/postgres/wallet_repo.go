package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charity-donation-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `id, address, mnemonic_enc, settlement_address, network,
	currency, active, auto_transfer, created_at, updated_at`

// GetActive fetches the single active wallet, or nil if none is configured.
func (r *WalletRepo) GetActive(ctx context.Context) (*domain.CustodialWallet, error) {
	query := fmt.Sprintf(`SELECT %s FROM custodial_wallets WHERE active = TRUE LIMIT 1`, walletColumns)
	return r.scanWallet(r.pool.QueryRow(ctx, query))
}

// GetByID fetches a wallet by id.
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustodialWallet, error) {
	query := fmt.Sprintf(`SELECT %s FROM custodial_wallets WHERE id = $1`, walletColumns)
	return r.scanWallet(r.pool.QueryRow(ctx, query, id))
}

// Save upserts a wallet configuration row.
func (r *WalletRepo) Save(ctx context.Context, w *domain.CustodialWallet) error {
	query := `INSERT INTO custodial_wallets (id, address, mnemonic_enc, settlement_address, network,
		currency, active, auto_transfer, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			address = EXCLUDED.address,
			mnemonic_enc = EXCLUDED.mnemonic_enc,
			settlement_address = EXCLUDED.settlement_address,
			network = EXCLUDED.network,
			currency = EXCLUDED.currency,
			auto_transfer = EXCLUDED.auto_transfer,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.Address, w.MnemonicEnc, w.SettlementAddress, w.Network,
		w.Currency, w.Active, w.AutoTransfer, w.CreatedAt, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save custodial wallet: %w", err)
	}
	return nil
}

// SetActive flips the active flag to the given wallet in one statement,
// so there is no window in which zero or two wallets are active.
func (r *WalletRepo) SetActive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE custodial_wallets SET active = (id = $1), updated_at = $2`

	_, err := r.pool.Exec(ctx, query, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set active wallet: %w", err)
	}
	return nil
}

func (r *WalletRepo) scanWallet(row pgx.Row) (*domain.CustodialWallet, error) {
	w := &domain.CustodialWallet{}
	err := row.Scan(
		&w.ID, &w.Address, &w.MnemonicEnc, &w.SettlementAddress, &w.Network,
		&w.Currency, &w.Active, &w.AutoTransfer, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan custodial wallet: %w", err)
	}
	return w, nil
}
