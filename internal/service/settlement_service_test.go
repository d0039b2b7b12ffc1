package service

import (
	"context"
	"crypto/ed25519"
	"testing"
	"time"

	"charity-donation-service/internal/core/domain"
	"charity-donation-service/internal/core/ports/mocks"
	"charity-donation-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

type settlementTestDeps struct {
	svc         *SettlementServiceImpl
	txRepo      *mocks.MockTransactionRepository
	settingsSvc *mocks.MockSettingsService
	encSvc      *mocks.MockEncryptionService
	chain       *mocks.MockChainClient
	ctrl        *gomock.Controller
}

func setupSettlementService(t *testing.T, queueSize int) *settlementTestDeps {
	ctrl := gomock.NewController(t)
	d := &settlementTestDeps{
		txRepo:      mocks.NewMockTransactionRepository(ctrl),
		settingsSvc: mocks.NewMockSettingsService(ctrl),
		encSvc:      mocks.NewMockEncryptionService(ctrl),
		chain:       mocks.NewMockChainClient(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewSettlementService(
		d.txRepo, d.settingsSvc, d.encSvc, d.chain,
		queueSize, time.Minute, newTestLogger(),
	)
	return d
}

func settlementWallet() *domain.CustodialWallet {
	return &domain.CustodialWallet{
		ID:                uuid.New(),
		Address:           "4Nd1mY5jkYtzsaUQ37D1rQ9qUzYm8XaRk9PhDG1Vt3cV",
		MnemonicEnc:       "encrypted-mnemonic",
		SettlementAddress: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
		Currency:          "sol",
		Active:            true,
	}
}

func transferableTxn(orderID string) *domain.DonationTransaction {
	payAmount := decimal.NewFromFloat(0.5)
	return &domain.DonationTransaction{
		ID:        uuid.New(),
		OrderID:   orderID,
		Status:    domain.PaymentStatusCompleted,
		PayAmount: &payAmount,
	}
}

func TestSettlementService_Settle_Success(t *testing.T) {
	d := setupSettlementService(t, 4)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := settlementWallet()
	txn := transferableTxn("DON-1")

	d.settingsSvc.EXPECT().Wallet(ctx).Return(wallet, nil)
	d.txRepo.EXPECT().GetByOrderID(ctx, "DON-1").Return(txn, nil)
	d.encSvc.EXPECT().Decrypt("encrypted-mnemonic").Return(testMnemonic, nil)
	d.chain.EXPECT().
		Transfer(ctx, gomock.AssignableToTypeOf(ed25519.PrivateKey{}), wallet.SettlementAddress, uint64(500_000_000)).
		Return("sig-abc", nil)
	d.chain.EXPECT().WaitForConfirmation(ctx, "sig-abc").Return(nil)
	d.txRepo.EXPECT().MarkTransferred(ctx, txn.ID).Return(true, nil)

	err := d.svc.Settle(ctx, "DON-1")
	assert.NoError(t, err)
}

func TestSettlementService_Settle_AlreadyTransferred(t *testing.T) {
	d := setupSettlementService(t, 4)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txn := transferableTxn("DON-1")
	txn.Transferred = true

	d.settingsSvc.EXPECT().Wallet(ctx).Return(settlementWallet(), nil)
	d.txRepo.EXPECT().GetByOrderID(ctx, "DON-1").Return(txn, nil)

	err := d.svc.Settle(ctx, "DON-1")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "TRF_002", appErr.Code)
}

func TestSettlementService_Settle_NotCompleted(t *testing.T) {
	d := setupSettlementService(t, 4)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txn := transferableTxn("DON-1")
	txn.Status = domain.PaymentStatusConfirming

	d.settingsSvc.EXPECT().Wallet(ctx).Return(settlementWallet(), nil)
	d.txRepo.EXPECT().GetByOrderID(ctx, "DON-1").Return(txn, nil)

	err := d.svc.Settle(ctx, "DON-1")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VAL_003", appErr.Code)
}

func TestSettlementService_Settle_UnknownOrder(t *testing.T) {
	d := setupSettlementService(t, 4)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.settingsSvc.EXPECT().Wallet(ctx).Return(settlementWallet(), nil)
	d.txRepo.EXPECT().GetByOrderID(ctx, "DON-unknown").Return(nil, nil)

	err := d.svc.Settle(ctx, "DON-unknown")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "NF_001", appErr.Code)
}

func TestSettlementService_Settle_WalletWithoutKeyMaterial(t *testing.T) {
	d := setupSettlementService(t, 4)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := settlementWallet()
	wallet.MnemonicEnc = ""

	d.settingsSvc.EXPECT().Wallet(ctx).Return(wallet, nil)

	err := d.svc.Settle(ctx, "DON-1")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "CFG_002", appErr.Code)
}

func TestSettlementService_Settle_InvalidMnemonic(t *testing.T) {
	d := setupSettlementService(t, 4)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.settingsSvc.EXPECT().Wallet(ctx).Return(settlementWallet(), nil)
	d.txRepo.EXPECT().GetByOrderID(ctx, "DON-1").Return(transferableTxn("DON-1"), nil)
	d.encSvc.EXPECT().Decrypt("encrypted-mnemonic").Return("not a mnemonic", nil)

	err := d.svc.Settle(ctx, "DON-1")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "CFG_003", appErr.Code)
}

func TestSettlementService_Settle_MarkRaceLost(t *testing.T) {
	d := setupSettlementService(t, 4)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := settlementWallet()
	txn := transferableTxn("DON-1")

	d.settingsSvc.EXPECT().Wallet(ctx).Return(wallet, nil)
	d.txRepo.EXPECT().GetByOrderID(ctx, "DON-1").Return(txn, nil)
	d.encSvc.EXPECT().Decrypt("encrypted-mnemonic").Return(testMnemonic, nil)
	d.chain.EXPECT().Transfer(ctx, gomock.Any(), wallet.SettlementAddress, gomock.Any()).Return("sig-abc", nil)
	d.chain.EXPECT().WaitForConfirmation(ctx, "sig-abc").Return(nil)
	d.txRepo.EXPECT().MarkTransferred(ctx, txn.ID).Return(false, nil)

	err := d.svc.Settle(ctx, "DON-1")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "TRF_002", appErr.Code)
}

func TestSettlementService_Enqueue_FullQueue(t *testing.T) {
	d := setupSettlementService(t, 1)
	defer d.ctrl.Finish()

	// Worker not started: the buffered slot fills and stays full.
	assert.True(t, d.svc.Enqueue("DON-1"))
	assert.False(t, d.svc.Enqueue("DON-2"))
}

func TestSettlementService_Worker_DrainsQueue(t *testing.T) {
	d := setupSettlementService(t, 4)
	defer d.ctrl.Finish()

	wallet := settlementWallet()
	txn := transferableTxn("DON-1")
	done := make(chan struct{})

	d.settingsSvc.EXPECT().Wallet(gomock.Any()).Return(wallet, nil)
	d.txRepo.EXPECT().GetByOrderID(gomock.Any(), "DON-1").Return(txn, nil)
	d.encSvc.EXPECT().Decrypt("encrypted-mnemonic").Return(testMnemonic, nil)
	d.chain.EXPECT().Transfer(gomock.Any(), gomock.Any(), wallet.SettlementAddress, gomock.Any()).Return("sig-abc", nil)
	d.chain.EXPECT().WaitForConfirmation(gomock.Any(), "sig-abc").Return(nil)
	d.txRepo.EXPECT().MarkTransferred(gomock.Any(), txn.ID).DoAndReturn(
		func(context.Context, uuid.UUID) (bool, error) {
			close(done)
			return true, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.svc.Start(ctx)

	require.True(t, d.svc.Enqueue("DON-1"))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("settlement job was not processed")
	}
}
