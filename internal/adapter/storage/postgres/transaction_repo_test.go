package postgres

import (
	"context"
	"testing"
	"time"

	"charity-donation-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDonationTxn() *domain.DonationTransaction {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.DonationTransaction{
		ID:         uuid.New(),
		OrderID:    "DON-1700000000-a1b2c3d4",
		Amount:     decimal.NewFromInt(50),
		Currency:   "USD",
		Status:     domain.PaymentStatusPending,
		DonorName:  "Jane Donor",
		DonorEmail: "jane@example.com",
		CauseName:  "Clean Water",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func donationTxnColumns() []string {
	return []string{"id", "order_id", "provider_payment_id", "amount", "currency", "status",
		"donor_name", "donor_email", "cause_name", "pay_amount", "pay_currency",
		"transferred", "transferred_at", "created_at", "updated_at"}
}

func donationTxnRow(t *domain.DonationTransaction) *pgxmock.Rows {
	return pgxmock.NewRows(donationTxnColumns()).AddRow(
		t.ID, t.OrderID, t.ProviderPaymentID, t.Amount, t.Currency, t.Status,
		t.DonorName, t.DonorEmail, t.CauseName, t.PayAmount, t.PayCurrency,
		t.Transferred, t.TransferredAt, t.CreatedAt, t.UpdatedAt,
	)
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestDonationTxn()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO donation_transactions").
		WithArgs(
			txn.ID, txn.OrderID, txn.ProviderPaymentID, txn.Amount, txn.Currency, txn.Status,
			txn.DonorName, txn.DonorEmail, txn.CauseName, txn.PayAmount, txn.PayCurrency,
			txn.Transferred, txn.TransferredAt, txn.CreatedAt, txn.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), dbTx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_SetProviderPayment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE donation_transactions SET provider_payment_id").
		WithArgs("5077125051", pgxmock.AnyArg(), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.SetProviderPayment(context.Background(), dbTx, id, "5077125051")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByOrderID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestDonationTxn()

	mock.ExpectQuery("SELECT .+ FROM donation_transactions WHERE order_id").
		WithArgs(txn.OrderID).
		WillReturnRows(donationTxnRow(txn))

	result, err := repo.GetByOrderID(context.Background(), txn.OrderID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.ID, result.ID)
	assert.Equal(t, txn.OrderID, result.OrderID)
	assert.True(t, txn.Amount.Equal(result.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByOrderID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM donation_transactions WHERE order_id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(donationTxnColumns()))

	result, err := repo.GetByOrderID(context.Background(), "DON-unknown")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ApplyProviderUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	payAmount := decimal.NewFromFloat(0.42)
	payCurrency := "sol"

	mock.ExpectExec("UPDATE donation_transactions").
		WithArgs("DON-1700000000-a1b2c3d4", domain.PaymentStatusCompleted, &payAmount, &payCurrency, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	matched, err := repo.ApplyProviderUpdate(context.Background(), "DON-1700000000-a1b2c3d4",
		domain.PaymentStatusCompleted, &payAmount, &payCurrency)
	require.NoError(t, err)
	assert.True(t, matched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ApplyProviderUpdate_UnknownOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectExec("UPDATE donation_transactions").
		WithArgs("DON-unknown", domain.PaymentStatusFailed, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	matched, err := repo.ApplyProviderUpdate(context.Background(), "DON-unknown",
		domain.PaymentStatusFailed, nil, nil)
	require.NoError(t, err)
	assert.False(t, matched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_MarkTransferred(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE donation_transactions").
		WithArgs(id, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	marked, err := repo.MarkTransferred(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, marked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_MarkTransferred_AlreadyDone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE donation_transactions").
		WithArgs(id, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	marked, err := repo.MarkTransferred(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, marked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListRecent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	a := newTestDonationTxn()
	b := newTestDonationTxn()
	b.OrderID = "DON-1700000001-e5f6a7b8"

	rows := donationTxnRow(a).AddRow(
		b.ID, b.OrderID, b.ProviderPaymentID, b.Amount, b.Currency, b.Status,
		b.DonorName, b.DonorEmail, b.CauseName, b.PayAmount, b.PayCurrency,
		b.Transferred, b.TransferredAt, b.CreatedAt, b.UpdatedAt,
	)

	mock.ExpectQuery("SELECT .+ FROM donation_transactions ORDER BY created_at DESC").
		WithArgs(50).
		WillReturnRows(rows)

	result, err := repo.ListRecent(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, a.OrderID, result[0].OrderID)
	assert.Equal(t, b.OrderID, result[1].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
