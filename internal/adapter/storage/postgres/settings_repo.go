package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charity-donation-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SettingsRepo implements ports.SettingsRepository.
type SettingsRepo struct {
	pool Pool
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(pool Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

const settingsColumns = `id, provider, api_key, ipn_secret, withdrawal_mode,
	min_withdrawal, auto_transfer, created_at, updated_at`

// GetOrCreate returns the singleton settings row for a provider, inserting
// defaults on first read. The unique constraint on provider keeps this safe
// under concurrent first reads.
func (r *SettingsRepo) GetOrCreate(ctx context.Context, provider string) (*domain.ProviderSettings, error) {
	defaults := domain.DefaultProviderSettings(provider)

	insert := `INSERT INTO provider_settings (id, provider, api_key, ipn_secret, withdrawal_mode,
		min_withdrawal, auto_transfer, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (provider) DO NOTHING`

	_, err := r.pool.Exec(ctx, insert,
		defaults.ID, defaults.Provider, defaults.APIKey, defaults.IPNSecret,
		defaults.WithdrawalMode, defaults.MinWithdrawal, defaults.AutoTransfer,
		defaults.CreatedAt, defaults.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert default provider settings: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM provider_settings WHERE provider = $1`, settingsColumns)
	return r.scanSettings(r.pool.QueryRow(ctx, query, provider))
}

// Update persists admin edits to the settings row.
func (r *SettingsRepo) Update(ctx context.Context, s *domain.ProviderSettings) error {
	query := `UPDATE provider_settings
		SET api_key = $2, ipn_secret = $3, withdrawal_mode = $4,
		    min_withdrawal = $5, auto_transfer = $6, updated_at = $7
		WHERE provider = $1`

	tag, err := r.pool.Exec(ctx, query,
		s.Provider, s.APIKey, s.IPNSecret, s.WithdrawalMode,
		s.MinWithdrawal, s.AutoTransfer, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update provider settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("provider settings not found: %s", s.Provider)
	}
	return nil
}

func (r *SettingsRepo) scanSettings(row pgx.Row) (*domain.ProviderSettings, error) {
	s := &domain.ProviderSettings{}
	err := row.Scan(
		&s.ID, &s.Provider, &s.APIKey, &s.IPNSecret, &s.WithdrawalMode,
		&s.MinWithdrawal, &s.AutoTransfer, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan provider settings: %w", err)
	}
	return s, nil
}
