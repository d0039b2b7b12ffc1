package postgres

import (
	"context"
	"testing"
	"time"

	"charity-donation-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWallet() *domain.CustodialWallet {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.CustodialWallet{
		ID:                uuid.New(),
		Address:           "4Nd1mY5jkYtzsaUQ37D1rQ9qUzYm8XaRk9PhDG1Vt3cV",
		MnemonicEnc:       "ZW5jcnlwdGVkLW1uZW1vbmlj",
		SettlementAddress: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
		Network:           "mainnet",
		Currency:          "sol",
		Active:            true,
		AutoTransfer:      true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func walletRow(w *domain.CustodialWallet) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "address", "mnemonic_enc", "settlement_address", "network",
		"currency", "active", "auto_transfer", "created_at", "updated_at"}).AddRow(
		w.ID, w.Address, w.MnemonicEnc, w.SettlementAddress, w.Network,
		w.Currency, w.Active, w.AutoTransfer, w.CreatedAt, w.UpdatedAt,
	)
}

func TestWalletRepo_GetActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectQuery("SELECT .+ FROM custodial_wallets WHERE active = TRUE").
		WillReturnRows(walletRow(w))

	result, err := repo.GetActive(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.ID, result.ID)
	assert.Equal(t, w.Address, result.Address)
	assert.True(t, result.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetActive_NoneConfigured(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM custodial_wallets WHERE active = TRUE").
		WillReturnRows(pgxmock.NewRows([]string{"id", "address", "mnemonic_enc", "settlement_address", "network",
			"currency", "active", "auto_transfer", "created_at", "updated_at"}))

	result, err := repo.GetActive(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectExec("INSERT INTO custodial_wallets").
		WithArgs(
			w.ID, w.Address, w.MnemonicEnc, w.SettlementAddress, w.Network,
			w.Currency, w.Active, w.AutoTransfer, w.CreatedAt, pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Save(context.Background(), w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_SetActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()

	// One statement flips every row: the target on, everything else off.
	mock.ExpectExec(`UPDATE custodial_wallets SET active = \(id = \$1\)`).
		WithArgs(id, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	err = repo.SetActive(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
