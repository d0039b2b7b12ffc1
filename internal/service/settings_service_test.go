package service

import (
	"context"
	"errors"
	"testing"

	"charity-donation-service/internal/core/domain"
	"charity-donation-service/internal/core/ports/mocks"
	"charity-donation-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type settingsTestDeps struct {
	svc          *SettingsServiceImpl
	settingsRepo *mocks.MockSettingsRepository
	walletRepo   *mocks.MockWalletRepository
	cache        *mocks.MockSettingsCache
	encSvc       *mocks.MockEncryptionService
	ctrl         *gomock.Controller
}

func setupSettingsService(t *testing.T) *settingsTestDeps {
	ctrl := gomock.NewController(t)
	d := &settingsTestDeps{
		settingsRepo: mocks.NewMockSettingsRepository(ctrl),
		walletRepo:   mocks.NewMockWalletRepository(ctrl),
		cache:        mocks.NewMockSettingsCache(ctrl),
		encSvc:       mocks.NewMockEncryptionService(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewSettingsService(
		d.settingsRepo, d.walletRepo, d.cache, d.encSvc,
		"nowpayments", newTestLogger(),
	)
	return d
}

func TestSettingsService_ProviderSettings_CacheHit(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	cached := configuredSettings()

	d.cache.EXPECT().Get(ctx, "nowpayments").Return(cached, nil)

	got, err := d.svc.ProviderSettings(ctx)
	require.NoError(t, err)
	assert.Same(t, cached, got)
}

func TestSettingsService_ProviderSettings_CacheMiss(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	fromDB := configuredSettings()

	d.cache.EXPECT().Get(ctx, "nowpayments").Return(nil, nil)
	d.settingsRepo.EXPECT().GetOrCreate(ctx, "nowpayments").Return(fromDB, nil)
	d.cache.EXPECT().Set(ctx, fromDB, settingsCacheTTL).Return(nil)

	got, err := d.svc.ProviderSettings(ctx)
	require.NoError(t, err)
	assert.Same(t, fromDB, got)
}

func TestSettingsService_ProviderSettings_CacheFailureFallsThrough(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	fromDB := configuredSettings()

	d.cache.EXPECT().Get(ctx, "nowpayments").Return(nil, errors.New("redis down"))
	d.settingsRepo.EXPECT().GetOrCreate(ctx, "nowpayments").Return(fromDB, nil)
	d.cache.EXPECT().Set(ctx, fromDB, settingsCacheTTL).Return(errors.New("redis down"))

	got, err := d.svc.ProviderSettings(ctx)
	require.NoError(t, err)
	assert.Same(t, fromDB, got)
}

func TestSettingsService_UpdateProviderSettings_Invalidates(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	settings := configuredSettings()

	d.settingsRepo.EXPECT().Update(ctx, settings).Return(nil)
	d.cache.EXPECT().Invalidate(ctx, "nowpayments").Return(nil)

	err := d.svc.UpdateProviderSettings(ctx, settings)
	assert.NoError(t, err)
}

func TestSettingsService_Wallet_NoneConfigured(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.walletRepo.EXPECT().GetActive(ctx).Return(nil, nil)

	_, err := d.svc.Wallet(ctx)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "CFG_002", appErr.Code)
}

func TestSettingsService_UpdateWallet_NewWalletWithMnemonic(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	w := &domain.CustodialWallet{
		Address:           "4Nd1mY5jkYtzsaUQ37D1rQ9qUzYm8XaRk9PhDG1Vt3cV",
		SettlementAddress: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
		Currency:          "sol",
		AutoTransfer:      true,
	}

	d.encSvc.EXPECT().Encrypt(testMnemonic).Return("encrypted", nil)
	d.walletRepo.EXPECT().Save(ctx, w).Return(nil)
	d.walletRepo.EXPECT().SetActive(ctx, gomock.Any()).Return(nil)

	err := d.svc.UpdateWallet(ctx, w, testMnemonic)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, w.ID)
	assert.Equal(t, "encrypted", w.MnemonicEnc)
}

func TestSettingsService_UpdateWallet_InvalidMnemonic(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	err := d.svc.UpdateWallet(context.Background(), &domain.CustodialWallet{}, "twelve bogus words that do not form a valid mnemonic at all ok")
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "CFG_003", appErr.Code)
}

func TestSettingsService_UpdateWallet_KeepsExistingKeyMaterial(t *testing.T) {
	d := setupSettingsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	w := &domain.CustodialWallet{ID: id, Address: "addr"}
	existing := &domain.CustodialWallet{ID: id, MnemonicEnc: "old-encrypted"}

	d.walletRepo.EXPECT().GetByID(ctx, id).Return(existing, nil)
	d.walletRepo.EXPECT().Save(ctx, w).Return(nil)
	d.walletRepo.EXPECT().SetActive(ctx, id).Return(nil)

	err := d.svc.UpdateWallet(ctx, w, "")
	require.NoError(t, err)
	assert.Equal(t, "old-encrypted", w.MnemonicEnc)
}
