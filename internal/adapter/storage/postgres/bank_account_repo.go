package postgres

import (
	"context"
	"fmt"

	"charity-donation-service/internal/core/domain"

	"github.com/google/uuid"
)

// BankAccountRepo implements ports.BankAccountRepository.
type BankAccountRepo struct {
	pool Pool
}

// NewBankAccountRepo creates a new BankAccountRepo.
func NewBankAccountRepo(pool Pool) *BankAccountRepo {
	return &BankAccountRepo{pool: pool}
}

const bankAccountColumns = `id, bank_name, account_name, account_number, branch,
	swift_code, currency, is_default, created_at`

func (r *BankAccountRepo) Create(ctx context.Context, a *domain.BankAccount) error {
	query := `INSERT INTO bank_accounts (id, bank_name, account_name, account_number, branch,
		swift_code, currency, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.BankName, a.AccountName, a.AccountNumber, a.Branch,
		a.SwiftCode, a.Currency, a.IsDefault, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create bank account: %w", err)
	}
	return nil
}

func (r *BankAccountRepo) Update(ctx context.Context, a *domain.BankAccount) error {
	query := `UPDATE bank_accounts SET bank_name = $2, account_name = $3, account_number = $4,
		branch = $5, swift_code = $6, currency = $7 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		a.ID, a.BankName, a.AccountName, a.AccountNumber, a.Branch, a.SwiftCode, a.Currency,
	)
	if err != nil {
		return fmt.Errorf("update bank account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update bank account: no row with id %s", a.ID)
	}
	return nil
}

func (r *BankAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM bank_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bank account: %w", err)
	}
	return nil
}

func (r *BankAccountRepo) List(ctx context.Context) ([]domain.BankAccount, error) {
	query := fmt.Sprintf(`SELECT %s FROM bank_accounts ORDER BY created_at DESC`, bankAccountColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.BankAccount
	for rows.Next() {
		a := domain.BankAccount{}
		err := rows.Scan(
			&a.ID, &a.BankName, &a.AccountName, &a.AccountNumber, &a.Branch,
			&a.SwiftCode, &a.Currency, &a.IsDefault, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// SetDefault marks one account as the default and clears the flag on the
// rest in a single statement.
func (r *BankAccountRepo) SetDefault(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE bank_accounts SET is_default = (id = $1)`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("set default bank account: %w", err)
	}
	return nil
}
