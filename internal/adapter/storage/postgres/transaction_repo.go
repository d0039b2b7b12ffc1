package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charity-donation-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const txnColumns = `id, order_id, provider_payment_id, amount, currency, status,
	donor_name, donor_email, cause_name, pay_amount, pay_currency,
	transferred, transferred_at, created_at, updated_at`

// Create inserts a pending transaction inside an open database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.DonationTransaction) error {
	query := `INSERT INTO donation_transactions (id, order_id, provider_payment_id, amount, currency, status,
		donor_name, donor_email, cause_name, pay_amount, pay_currency, transferred, transferred_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.OrderID, t.ProviderPaymentID, t.Amount, t.Currency, t.Status,
		t.DonorName, t.DonorEmail, t.CauseName, t.PayAmount, t.PayCurrency,
		t.Transferred, t.TransferredAt, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert donation transaction: %w", err)
	}
	return nil
}

// SetProviderPayment records the provider payment id after invoice creation.
func (r *TransactionRepo) SetProviderPayment(ctx context.Context, tx pgx.Tx, id uuid.UUID, providerPaymentID string) error {
	query := `UPDATE donation_transactions SET provider_payment_id = $1, updated_at = $2 WHERE id = $3`

	tag, err := tx.Exec(ctx, query, providerPaymentID, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set provider payment id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("donation transaction not found: %s", id)
	}
	return nil
}

// GetByOrderID fetches a transaction by its correlation key.
func (r *TransactionRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.DonationTransaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM donation_transactions WHERE order_id = $1`, txnColumns)
	return r.scanTransaction(r.pool.QueryRow(ctx, query, orderID))
}

// ApplyProviderUpdate overwrites status and observed paid amount in one
// statement. Webhook delivery is last-write-wins; repeats are harmless.
func (r *TransactionRepo) ApplyProviderUpdate(ctx context.Context, orderID string, status domain.PaymentStatus, payAmount *decimal.Decimal, payCurrency *string) (bool, error) {
	query := `UPDATE donation_transactions
		SET status = $2,
		    pay_amount = COALESCE($3, pay_amount),
		    pay_currency = COALESCE($4, pay_currency),
		    updated_at = $5
		WHERE order_id = $1`

	tag, err := r.pool.Exec(ctx, query, orderID, status, payAmount, payCurrency, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("apply provider update: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkTransferred sets the transferred flag with a conditional write, so a
// concurrent worker or a repeated manual trigger cannot double-mark.
func (r *TransactionRepo) MarkTransferred(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE donation_transactions
		SET transferred = TRUE, transferred_at = $2, updated_at = $2
		WHERE id = $1 AND transferred = FALSE`

	tag, err := r.pool.Exec(ctx, query, id, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("mark transferred: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListRecent fetches the newest transactions for the admin surface.
func (r *TransactionRepo) ListRecent(ctx context.Context, limit int) ([]domain.DonationTransaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM donation_transactions ORDER BY created_at DESC LIMIT $1`, txnColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list donation transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.DonationTransaction
	for rows.Next() {
		t := domain.DonationTransaction{}
		err := rows.Scan(
			&t.ID, &t.OrderID, &t.ProviderPaymentID, &t.Amount, &t.Currency, &t.Status,
			&t.DonorName, &t.DonorEmail, &t.CauseName, &t.PayAmount, &t.PayCurrency,
			&t.Transferred, &t.TransferredAt, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan donation transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate donation transaction rows: %w", err)
	}
	return txns, nil
}

// scanTransaction is a helper to scan a single row.
func (r *TransactionRepo) scanTransaction(row pgx.Row) (*domain.DonationTransaction, error) {
	t := &domain.DonationTransaction{}
	err := row.Scan(
		&t.ID, &t.OrderID, &t.ProviderPaymentID, &t.Amount, &t.Currency, &t.Status,
		&t.DonorName, &t.DonorEmail, &t.CauseName, &t.PayAmount, &t.PayCurrency,
		&t.Transferred, &t.TransferredAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan donation transaction: %w", err)
	}
	return t, nil
}
