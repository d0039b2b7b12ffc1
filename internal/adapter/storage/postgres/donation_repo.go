package postgres

import (
	"context"
	"fmt"

	"charity-donation-service/internal/core/domain"
	"charity-donation-service/internal/core/ports"

	"github.com/shopspring/decimal"
)

// DonationRepo implements ports.DonationRepository for the legacy records.
type DonationRepo struct {
	pool Pool
}

// NewDonationRepo creates a new DonationRepo.
func NewDonationRepo(pool Pool) *DonationRepo {
	return &DonationRepo{pool: pool}
}

// Create inserts a legacy donation record.
func (r *DonationRepo) Create(ctx context.Context, d *domain.Donation) error {
	query := `INSERT INTO donations (id, amount, currency, amount_usd, payment_method, status,
		provider_payment_id, crypto_amount, crypto_currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.Amount, d.Currency, d.AmountUSD, d.PaymentMethod, d.Status,
		d.ProviderPaymentID, d.CryptoAmount, d.CryptoCurrency, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// ListRecent fetches the newest donations for the admin surface.
func (r *DonationRepo) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	query := `SELECT id, amount, currency, amount_usd, payment_method, status,
		provider_payment_id, crypto_amount, crypto_currency, created_at
		FROM donations ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		d := domain.Donation{}
		err := rows.Scan(
			&d.ID, &d.Amount, &d.Currency, &d.AmountUSD, &d.PaymentMethod, &d.Status,
			&d.ProviderPaymentID, &d.CryptoAmount, &d.CryptoCurrency, &d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan donation row: %w", err)
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate donation rows: %w", err)
	}
	return donations, nil
}

// GetStats retrieves the dashboard aggregates over both donation paths:
// the legacy donations table and the tracked donation_transactions.
func (r *DonationRepo) GetStats(ctx context.Context) (*ports.DonationStats, error) {
	query := `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'completed') AS completed,
		COALESCE(SUM(amount_usd) FILTER (WHERE status = 'completed'), 0) AS total_usd
		FROM donations`

	stats := &ports.DonationStats{}
	err := r.pool.QueryRow(ctx, query).Scan(&stats.Total, &stats.Completed, &stats.TotalUSD)
	if err != nil {
		return nil, fmt.Errorf("get donation stats: %w", err)
	}

	// Tracked transactions store the invoice price in its original
	// currency, so USD normalization happens per currency group here
	// rather than in SQL.
	txnQuery := `SELECT currency,
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'completed') AS completed,
		COALESCE(SUM(amount) FILTER (WHERE status = 'completed'), 0) AS completed_amount
		FROM donation_transactions GROUP BY currency`

	rows, err := r.pool.Query(ctx, txnQuery)
	if err != nil {
		return nil, fmt.Errorf("get transaction stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			currency         string
			total, completed int64
			completedAmount  decimal.Decimal
		)
		if err := rows.Scan(&currency, &total, &completed, &completedAmount); err != nil {
			return nil, fmt.Errorf("scan transaction stats row: %w", err)
		}
		stats.Total += total
		stats.Completed += completed
		stats.TotalUSD = stats.TotalUSD.Add(domain.NormalizeUSD(completedAmount, currency))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction stats rows: %w", err)
	}
	return stats, nil
}
