package ports

import (
	"context"
	"time"

	"charity-donation-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption of secret
// material at rest (custodial wallet mnemonics).
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// HashService handles admin password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles admin JWT operations.
type TokenService interface {
	Generate(userID uuid.UUID, email string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// --- Service Ports (Business Logic) ---

// CheckoutService creates payable invoices with the external provider.
type CheckoutService interface {
	CreateDonationInvoice(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResult, error)
}

// CreateInvoiceRequest holds validated donor input for invoice creation.
type CreateInvoiceRequest struct {
	Amount     decimal.Decimal
	Currency   string
	DonorName  string
	DonorEmail string
	CauseName  string
	SuccessURL string
	CancelURL  string
}

// InvoiceResult is returned to the donor-facing caller.
type InvoiceResult struct {
	PaymentURL string
	PaymentID  string
	OrderID    string
}

// CryptoPaymentUpdate is the normalized content of a crypto-provider IPN.
type CryptoPaymentUpdate struct {
	PaymentID     string
	PaymentStatus string
	OrderID       string
	PayAmount     *decimal.Decimal
	PayCurrency   string
}

// LegacyDonationEvent is the fire-and-forget legacy webhook payload.
type LegacyDonationEvent struct {
	PaymentID     string
	PaymentStatus string
	PriceAmount   decimal.Decimal
	PriceCurrency string
	PayAmount     *decimal.Decimal
	PayCurrency   string
}

// CardPaymentUpdate is the normalized content of a card on-ramp webhook.
type CardPaymentUpdate struct {
	TransactionID string
	Status        string
	CorrelationID string
	BaseAmount    *decimal.Decimal
	BaseCurrency  string
}

// WebhookService applies asynchronous provider notifications. All methods
// return errors for logging only; handlers must always ack the provider.
type WebhookService interface {
	ApplyCryptoUpdate(ctx context.Context, u CryptoPaymentUpdate) error
	IngestLegacyDonation(ctx context.Context, e LegacyDonationEvent) error
	ApplyCardUpdate(ctx context.Context, u CardPaymentUpdate) error
}

// SettlementService moves observed donor funds from the custodial wallet
// to the settlement wallet.
type SettlementService interface {
	// Enqueue schedules an asynchronous settlement attempt. Returns false
	// if the queue is full (the job can be retriggered manually).
	Enqueue(orderID string) bool
	// Settle runs one settlement synchronously.
	Settle(ctx context.Context, orderID string) error
}

// SettingsService is the cache-aware access point for runtime settings.
type SettingsService interface {
	ProviderSettings(ctx context.Context) (*domain.ProviderSettings, error)
	UpdateProviderSettings(ctx context.Context, s *domain.ProviderSettings) error
	Wallet(ctx context.Context) (*domain.CustodialWallet, error)
	// UpdateWallet persists wallet config; a non-empty mnemonic is
	// validated and encrypted before it is stored.
	UpdateWallet(ctx context.Context, w *domain.CustodialWallet, mnemonic string) error
}

// SettingsCache is the Redis-backed settings cache with explicit
// invalidation on admin update.
type SettingsCache interface {
	Get(ctx context.Context, provider string) (*domain.ProviderSettings, error)
	Set(ctx context.Context, s *domain.ProviderSettings, ttl time.Duration) error
	Invalidate(ctx context.Context, provider string) error
}

// AuthService defines admin authentication.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Verify(ctx context.Context, userID uuid.UUID) (*domain.AdminUser, error)
}

// LoginResult holds a successful login outcome.
type LoginResult struct {
	Token  string
	Expiry time.Time
	User   *domain.AdminUser
}

// TreasuryService manages payout bank accounts and withdrawal requests.
type TreasuryService interface {
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
	CreateBankAccount(ctx context.Context, a *domain.BankAccount) error
	UpdateBankAccount(ctx context.Context, a *domain.BankAccount) error
	DeleteBankAccount(ctx context.Context, id uuid.UUID) error
	// SetDefaultBankAccount makes the account the single default.
	SetDefaultBankAccount(ctx context.Context, id uuid.UUID) error
	// RequestWithdrawal records a withdrawal request after enforcing the
	// configured minimum threshold.
	RequestWithdrawal(ctx context.Context, req WithdrawalRequest) (*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context, limit int) ([]domain.Withdrawal, error)
}

// WithdrawalRequest holds validated admin input for a withdrawal.
type WithdrawalRequest struct {
	Amount        decimal.Decimal
	Currency      string
	BankAccountID *uuid.UUID
	Note          string
	RequestedBy   uuid.UUID
}

// ReportingService serves the read-only admin query surface.
type ReportingService interface {
	ListTransactions(ctx context.Context, limit int) ([]domain.DonationTransaction, error)
	ListDonations(ctx context.Context, limit int) ([]domain.Donation, error)
	Stats(ctx context.Context) (*DonationStats, error)
}
