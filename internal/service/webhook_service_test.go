package service

import (
	"context"
	"testing"

	"charity-donation-service/internal/core/domain"
	"charity-donation-service/internal/core/ports"
	"charity-donation-service/internal/core/ports/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type webhookTestDeps struct {
	svc          *WebhookServiceImpl
	txRepo       *mocks.MockTransactionRepository
	donationRepo *mocks.MockDonationRepository
	settingsSvc  *mocks.MockSettingsService
	settlement   *mocks.MockSettlementService
	ctrl         *gomock.Controller
}

func setupWebhookService(t *testing.T) *webhookTestDeps {
	ctrl := gomock.NewController(t)
	d := &webhookTestDeps{
		txRepo:       mocks.NewMockTransactionRepository(ctrl),
		donationRepo: mocks.NewMockDonationRepository(ctrl),
		settingsSvc:  mocks.NewMockSettingsService(ctrl),
		settlement:   mocks.NewMockSettlementService(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewWebhookService(d.txRepo, d.donationRepo, d.settingsSvc, d.settlement, newTestLogger())
	return d
}

func TestWebhookService_ApplyCryptoUpdate_Finished_EnqueuesSettlement(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payAmount := decimal.NewFromFloat(0.42)

	settings := configuredSettings()
	settings.AutoTransfer = true
	wallet := &domain.CustodialWallet{AutoTransfer: true, MnemonicEnc: "enc"}

	d.txRepo.EXPECT().
		ApplyProviderUpdate(ctx, "DON-1", domain.PaymentStatusCompleted, &payAmount, gomock.Any()).
		Return(true, nil)
	d.settingsSvc.EXPECT().ProviderSettings(ctx).Return(settings, nil)
	d.settingsSvc.EXPECT().Wallet(ctx).Return(wallet, nil)
	d.settlement.EXPECT().Enqueue("DON-1").Return(true)

	err := d.svc.ApplyCryptoUpdate(ctx, ports.CryptoPaymentUpdate{
		PaymentID:     "5077125051",
		PaymentStatus: "finished",
		OrderID:       "DON-1",
		PayAmount:     &payAmount,
		PayCurrency:   "sol",
	})
	assert.NoError(t, err)
}

func TestWebhookService_ApplyCryptoUpdate_AutoTransferDisabled(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := &domain.CustodialWallet{AutoTransfer: false}

	d.txRepo.EXPECT().
		ApplyProviderUpdate(ctx, "DON-1", domain.PaymentStatusCompleted, gomock.Any(), gomock.Any()).
		Return(true, nil)
	d.settingsSvc.EXPECT().ProviderSettings(ctx).Return(configuredSettings(), nil)
	d.settingsSvc.EXPECT().Wallet(ctx).Return(wallet, nil)
	// No Enqueue call expected.

	err := d.svc.ApplyCryptoUpdate(ctx, ports.CryptoPaymentUpdate{
		PaymentStatus: "finished",
		OrderID:       "DON-1",
	})
	assert.NoError(t, err)
}

func TestWebhookService_ApplyCryptoUpdate_NonTerminalStatus(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.txRepo.EXPECT().
		ApplyProviderUpdate(ctx, "DON-1", domain.PaymentStatusConfirming, gomock.Any(), gomock.Any()).
		Return(true, nil)
	// Confirming never triggers settlement.

	err := d.svc.ApplyCryptoUpdate(ctx, ports.CryptoPaymentUpdate{
		PaymentStatus: "confirming",
		OrderID:       "DON-1",
	})
	assert.NoError(t, err)
}

func TestWebhookService_ApplyCryptoUpdate_UnknownStatusIgnored(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	err := d.svc.ApplyCryptoUpdate(context.Background(), ports.CryptoPaymentUpdate{
		PaymentStatus: "something_new",
		OrderID:       "DON-1",
	})
	assert.NoError(t, err)
}

func TestWebhookService_ApplyCryptoUpdate_UnknownOrderIgnored(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.txRepo.EXPECT().
		ApplyProviderUpdate(ctx, "DON-unknown", domain.PaymentStatusCompleted, gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := d.svc.ApplyCryptoUpdate(ctx, ports.CryptoPaymentUpdate{
		PaymentStatus: "finished",
		OrderID:       "DON-unknown",
	})
	assert.NoError(t, err)
}

func TestWebhookService_IngestLegacyDonation_NormalizesUSD(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	var created *domain.Donation
	d.donationRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, don *domain.Donation) error {
			created = don
			return nil
		})

	payAmount := decimal.NewFromFloat(0.3)
	err := d.svc.IngestLegacyDonation(ctx, ports.LegacyDonationEvent{
		PaymentID:     "123",
		PaymentStatus: "finished",
		PriceAmount:   decimal.NewFromInt(500),
		PriceCurrency: "ZMW",
		PayAmount:     &payAmount,
		PayCurrency:   "sol",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.PaymentStatusCompleted, created.Status)
	assert.True(t, decimal.NewFromInt(20).Equal(created.AmountUSD), "got %s", created.AmountUSD)
	require.NotNil(t, created.CryptoCurrency)
	assert.Equal(t, "sol", *created.CryptoCurrency)
}

func TestWebhookService_ApplyCardUpdate(t *testing.T) {
	d := setupWebhookService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	baseAmount := decimal.NewFromInt(25)

	d.txRepo.EXPECT().
		ApplyProviderUpdate(ctx, "DON-2", domain.PaymentStatusCompleted, &baseAmount, gomock.Any()).
		Return(true, nil)
	d.settingsSvc.EXPECT().ProviderSettings(ctx).Return(configuredSettings(), nil).AnyTimes()
	d.settingsSvc.EXPECT().Wallet(ctx).Return(&domain.CustodialWallet{}, nil).AnyTimes()

	err := d.svc.ApplyCardUpdate(ctx, ports.CardPaymentUpdate{
		TransactionID: "card-tx-9",
		Status:        "completed",
		CorrelationID: "DON-2",
		BaseAmount:    &baseAmount,
		BaseCurrency:  "USD",
	})
	assert.NoError(t, err)
}
