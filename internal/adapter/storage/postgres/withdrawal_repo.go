package postgres

import (
	"context"
	"fmt"

	"charity-donation-service/internal/core/domain"
)

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

func (r *WithdrawalRepo) Create(ctx context.Context, w *domain.Withdrawal) error {
	query := `INSERT INTO withdrawals (id, amount, currency, bank_account_id, status, note, requested_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.Amount, w.Currency, w.BankAccountID, w.Status, w.Note, w.RequestedBy, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create withdrawal: %w", err)
	}
	return nil
}

func (r *WithdrawalRepo) ListRecent(ctx context.Context, limit int) ([]domain.Withdrawal, error) {
	query := `SELECT id, amount, currency, bank_account_id, status, note, requested_by, created_at
		FROM withdrawals ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		w := domain.Withdrawal{}
		err := rows.Scan(&w.ID, &w.Amount, &w.Currency, &w.BankAccountID, &w.Status, &w.Note, &w.RequestedBy, &w.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}
