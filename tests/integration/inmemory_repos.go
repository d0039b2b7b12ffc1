package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"charity-donation-service/internal/core/domain"
	"charity-donation-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions map[string]*domain.DonationTransaction // keyed by order id
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{transactions: make(map[string]*domain.DonationTransaction)}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.DonationTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.transactions[t.OrderID]; exists {
		return fmt.Errorf("duplicate order id")
	}
	cp := *t
	r.transactions[t.OrderID] = &cp
	return nil
}

func (r *inMemoryTransactionRepo) SetProviderPayment(ctx context.Context, tx pgx.Tx, id uuid.UUID, providerPaymentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.transactions {
		if t.ID == id {
			t.ProviderPaymentID = providerPaymentID
			return nil
		}
	}
	return fmt.Errorf("transaction not found")
}

func (r *inMemoryTransactionRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.DonationTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transactions[orderID]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) ApplyProviderUpdate(ctx context.Context, orderID string, status domain.PaymentStatus, payAmount *decimal.Decimal, payCurrency *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[orderID]
	if !ok {
		return false, nil
	}
	t.Status = status
	if payAmount != nil {
		t.PayAmount = payAmount
	}
	if payCurrency != nil {
		t.PayCurrency = payCurrency
	}
	return true, nil
}

func (r *inMemoryTransactionRepo) MarkTransferred(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.transactions {
		if t.ID == id {
			if t.Transferred {
				return false, nil
			}
			t.Transferred = true
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryTransactionRepo) ListRecent(ctx context.Context, limit int) ([]domain.DonationTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.DonationTransaction, 0, len(r.transactions))
	for _, t := range r.transactions {
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// --- In-Memory Donation Repo ---

type inMemoryDonationRepo struct {
	mu        sync.RWMutex
	donations []*domain.Donation
	txns      *inMemoryTransactionRepo
}

func newInMemoryDonationRepo(txns *inMemoryTransactionRepo) *inMemoryDonationRepo {
	return &inMemoryDonationRepo{txns: txns}
}

func (r *inMemoryDonationRepo) Create(ctx context.Context, d *domain.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.donations = append(r.donations, &cp)
	return nil
}

func (r *inMemoryDonationRepo) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Donation, 0, len(r.donations))
	for i := len(r.donations) - 1; i >= 0; i-- {
		result = append(result, *r.donations[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *inMemoryDonationRepo) GetStats(ctx context.Context) (*ports.DonationStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &ports.DonationStats{TotalUSD: decimal.Zero}
	for _, d := range r.donations {
		stats.Total++
		if d.Status == domain.PaymentStatusCompleted {
			stats.Completed++
			stats.TotalUSD = stats.TotalUSD.Add(d.AmountUSD)
		}
	}
	txns, _ := r.txns.ListRecent(ctx, 0)
	for _, t := range txns {
		stats.Total++
		if t.Status == domain.PaymentStatusCompleted {
			stats.Completed++
			stats.TotalUSD = stats.TotalUSD.Add(domain.NormalizeUSD(t.Amount, t.Currency))
		}
	}
	return stats, nil
}

// --- In-Memory Settings Repo ---

type inMemorySettingsRepo struct {
	mu       sync.RWMutex
	settings map[string]*domain.ProviderSettings
}

func newInMemorySettingsRepo() *inMemorySettingsRepo {
	return &inMemorySettingsRepo{settings: make(map[string]*domain.ProviderSettings)}
}

func (r *inMemorySettingsRepo) GetOrCreate(ctx context.Context, provider string) (*domain.ProviderSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settings[provider]
	if !ok {
		s = domain.DefaultProviderSettings(provider)
		r.settings[provider] = s
	}
	cp := *s
	return &cp, nil
}

func (r *inMemorySettingsRepo) Update(ctx context.Context, s *domain.ProviderSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.settings[s.Provider] = &cp
	return nil
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.CustodialWallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.CustodialWallet)}
}

func (r *inMemoryWalletRepo) GetActive(ctx context.Context) (*domain.CustodialWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.Active {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustodialWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) Save(ctx context.Context, w *domain.CustodialWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	if existing, ok := r.wallets[w.ID]; ok {
		cp.Active = existing.Active
	}
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) SetActive(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Mirrors the single-statement flip: target on, everything else off.
	for wid, w := range r.wallets {
		w.Active = wid == id
	}
	return nil
}

// --- In-Memory Bank Account Repo ---

type inMemoryBankAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.BankAccount
}

func newInMemoryBankAccountRepo() *inMemoryBankAccountRepo {
	return &inMemoryBankAccountRepo{accounts: make(map[uuid.UUID]*domain.BankAccount)}
}

func (r *inMemoryBankAccountRepo) Create(ctx context.Context, a *domain.BankAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *inMemoryBankAccountRepo) Update(ctx context.Context, a *domain.BankAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.accounts[a.ID]
	if !ok {
		return fmt.Errorf("bank account not found")
	}
	// The UPDATE statement never touches is_default or created_at.
	cp := *a
	cp.IsDefault = existing.IsDefault
	cp.CreatedAt = existing.CreatedAt
	r.accounts[a.ID] = &cp
	return nil
}

func (r *inMemoryBankAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, id)
	return nil
}

func (r *inMemoryBankAccountRepo) List(ctx context.Context) ([]domain.BankAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.BankAccount, 0, len(r.accounts))
	for _, a := range r.accounts {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *inMemoryBankAccountRepo) SetDefault(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for aid, a := range r.accounts {
		a.IsDefault = aid == id
	}
	return nil
}

// --- In-Memory Withdrawal Repo ---

type inMemoryWithdrawalRepo struct {
	mu          sync.RWMutex
	withdrawals []*domain.Withdrawal
}

func newInMemoryWithdrawalRepo() *inMemoryWithdrawalRepo {
	return &inMemoryWithdrawalRepo{}
}

func (r *inMemoryWithdrawalRepo) Create(ctx context.Context, w *domain.Withdrawal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.withdrawals = append(r.withdrawals, &cp)
	return nil
}

func (r *inMemoryWithdrawalRepo) ListRecent(ctx context.Context, limit int) ([]domain.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Withdrawal, 0, len(r.withdrawals))
	for i := len(r.withdrawals) - 1; i >= 0; i-- {
		result = append(result, *r.withdrawals[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.AdminUser
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[uuid.UUID]*domain.AdminUser)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return fmt.Errorf("email already exists")
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *inMemoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
