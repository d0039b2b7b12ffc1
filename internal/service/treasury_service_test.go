package service

import (
	"context"
	"testing"

	"charity-donation-service/internal/core/domain"
	"charity-donation-service/internal/core/ports"
	"charity-donation-service/internal/core/ports/mocks"
	"charity-donation-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type treasuryTestDeps struct {
	svc            *TreasuryServiceImpl
	bankRepo       *mocks.MockBankAccountRepository
	withdrawalRepo *mocks.MockWithdrawalRepository
	settingsSvc    *mocks.MockSettingsService
	ctrl           *gomock.Controller
}

func setupTreasuryService(t *testing.T) *treasuryTestDeps {
	ctrl := gomock.NewController(t)
	d := &treasuryTestDeps{
		bankRepo:       mocks.NewMockBankAccountRepository(ctrl),
		withdrawalRepo: mocks.NewMockWithdrawalRepository(ctrl),
		settingsSvc:    mocks.NewMockSettingsService(ctrl),
		ctrl:           ctrl,
	}
	d.svc = NewTreasuryService(d.bankRepo, d.withdrawalRepo, d.settingsSvc, newTestLogger())
	return d
}

func TestTreasuryService_RequestWithdrawal_Success(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	settings := configuredSettings() // MinWithdrawal defaults to 100
	adminID := uuid.New()

	d.settingsSvc.EXPECT().ProviderSettings(ctx).Return(settings, nil)
	d.withdrawalRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	w, err := d.svc.RequestWithdrawal(ctx, ports.WithdrawalRequest{
		Amount:      decimal.NewFromInt(250),
		Currency:    "USD",
		RequestedBy: adminID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusPending, w.Status)
	assert.Equal(t, adminID, w.RequestedBy)
}

func TestTreasuryService_RequestWithdrawal_BelowMinimum(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.settingsSvc.EXPECT().ProviderSettings(ctx).Return(configuredSettings(), nil)

	_, err := d.svc.RequestWithdrawal(ctx, ports.WithdrawalRequest{
		Amount: decimal.NewFromInt(50),
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VAL_004", appErr.Code)
}

func TestTreasuryService_RequestWithdrawal_NonPositive(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.RequestWithdrawal(context.Background(), ports.WithdrawalRequest{
		Amount: decimal.Zero,
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestTreasuryService_CreateBankAccount_DefaultFlag(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := &domain.BankAccount{
		BankName:      "First National",
		AccountName:   "Charity Org",
		AccountNumber: "0123456789",
		Currency:      "USD",
		IsDefault:     true,
	}

	d.bankRepo.EXPECT().Create(ctx, account).Return(nil)
	d.bankRepo.EXPECT().SetDefault(ctx, gomock.Any()).Return(nil)

	err := d.svc.CreateBankAccount(ctx, account)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, account.ID)
}

func TestTreasuryService_CreateBankAccount_NonDefault(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := &domain.BankAccount{BankName: "First National", Currency: "USD"}

	d.bankRepo.EXPECT().Create(ctx, account).Return(nil)
	// No SetDefault call expected.

	err := d.svc.CreateBankAccount(ctx, account)
	assert.NoError(t, err)
}

func TestTreasuryService_UpdateBankAccount_PromotesDefault(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := &domain.BankAccount{
		ID:        uuid.New(),
		BankName:  "First National",
		Currency:  "USD",
		IsDefault: true,
	}

	d.bankRepo.EXPECT().Update(ctx, account).Return(nil)
	d.bankRepo.EXPECT().SetDefault(ctx, account.ID).Return(nil)

	err := d.svc.UpdateBankAccount(ctx, account)
	assert.NoError(t, err)
}

func TestTreasuryService_UpdateBankAccount_NonDefault(t *testing.T) {
	d := setupTreasuryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := &domain.BankAccount{ID: uuid.New(), BankName: "First National", Currency: "USD"}

	d.bankRepo.EXPECT().Update(ctx, account).Return(nil)
	// No SetDefault call expected.

	err := d.svc.UpdateBankAccount(ctx, account)
	assert.NoError(t, err)
}
