package ports

import (
	"context"

	"charity-donation-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines persistence for donation transactions.
type TransactionRepository interface {
	// Create inserts a pending transaction inside an open database
	// transaction, so invoice creation can roll it back atomically.
	Create(ctx context.Context, tx pgx.Tx, t *domain.DonationTransaction) error
	// SetProviderPayment records the provider's payment id after a
	// successful invoice call, still inside the same database transaction.
	SetProviderPayment(ctx context.Context, tx pgx.Tx, id uuid.UUID, providerPaymentID string) error
	GetByOrderID(ctx context.Context, orderID string) (*domain.DonationTransaction, error)
	// ApplyProviderUpdate overwrites status and observed paid amount for
	// the transaction matching orderID. Returns false when no transaction
	// matched, which callers treat as a no-op for unknown correlation ids.
	ApplyProviderUpdate(ctx context.Context, orderID string, status domain.PaymentStatus, payAmount *decimal.Decimal, payCurrency *string) (bool, error)
	// MarkTransferred flips the transferred flag with a conditional write;
	// returns false if it was already set (lost race or repeat run).
	MarkTransferred(ctx context.Context, id uuid.UUID) (bool, error)
	ListRecent(ctx context.Context, limit int) ([]domain.DonationTransaction, error)
}

// DonationRepository defines persistence for the legacy donation records.
type DonationRepository interface {
	Create(ctx context.Context, d *domain.Donation) error
	ListRecent(ctx context.Context, limit int) ([]domain.Donation, error)
	GetStats(ctx context.Context) (*DonationStats, error)
}

// DonationStats holds the admin dashboard aggregates.
type DonationStats struct {
	Total     int64
	Completed int64
	TotalUSD  decimal.Decimal
}

// SettingsRepository defines persistence for provider settings singletons.
type SettingsRepository interface {
	// GetOrCreate returns the settings row for the provider, lazily
	// inserting defaults on first read.
	GetOrCreate(ctx context.Context, provider string) (*domain.ProviderSettings, error)
	Update(ctx context.Context, s *domain.ProviderSettings) error
}

// WalletRepository defines persistence for custodial wallet configuration.
type WalletRepository interface {
	GetActive(ctx context.Context) (*domain.CustodialWallet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CustodialWallet, error)
	Save(ctx context.Context, w *domain.CustodialWallet) error
	// SetActive makes the given wallet the single active one. Implemented
	// as one conditional statement, not unset-all-then-set.
	SetActive(ctx context.Context, id uuid.UUID) error
}

// BankAccountRepository defines persistence for payout bank accounts.
type BankAccountRepository interface {
	Create(ctx context.Context, a *domain.BankAccount) error
	Update(ctx context.Context, a *domain.BankAccount) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.BankAccount, error)
	// SetDefault makes the given account the single default, atomically.
	SetDefault(ctx context.Context, id uuid.UUID) error
}

// WithdrawalRepository defines persistence for withdrawal requests.
type WithdrawalRepository interface {
	Create(ctx context.Context, w *domain.Withdrawal) error
	ListRecent(ctx context.Context, limit int) ([]domain.Withdrawal, error)
}

// UserRepository defines persistence for admin users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.AdminUser) error
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
