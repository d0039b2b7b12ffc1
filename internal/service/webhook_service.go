package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charity-donation-service/internal/core/domain"
	"charity-donation-service/internal/core/ports"
	"charity-donation-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WebhookServiceImpl implements ports.WebhookService. Every apply method
// is idempotent: provider notifications can arrive repeated, delayed or
// out of order, and each one simply overwrites with its own content.
type WebhookServiceImpl struct {
	txRepo       ports.TransactionRepository
	donationRepo ports.DonationRepository
	settingsSvc  ports.SettingsService
	settlement   ports.SettlementService
	log          zerolog.Logger
}

// NewWebhookService creates a new WebhookServiceImpl.
func NewWebhookService(
	txRepo ports.TransactionRepository,
	donationRepo ports.DonationRepository,
	settingsSvc ports.SettingsService,
	settlement ports.SettlementService,
	log zerolog.Logger,
) *WebhookServiceImpl {
	return &WebhookServiceImpl{
		txRepo:       txRepo,
		donationRepo: donationRepo,
		settingsSvc:  settingsSvc,
		settlement:   settlement,
		log:          log,
	}
}

// ApplyCryptoUpdate applies a crypto-provider IPN to the transaction
// matching its order id. Unknown order ids and unknown statuses are
// logged no-ops.
func (s *WebhookServiceImpl) ApplyCryptoUpdate(ctx context.Context, u ports.CryptoPaymentUpdate) error {
	status, ok := domain.PaymentStatusFromProvider(u.PaymentStatus)
	if !ok {
		s.log.Warn().
			Str("order_id", u.OrderID).
			Str("provider_status", u.PaymentStatus).
			Msg("unknown provider payment status, ignoring")
		return nil
	}

	var payCurrency *string
	if u.PayCurrency != "" {
		payCurrency = &u.PayCurrency
	}

	matched, err := s.txRepo.ApplyProviderUpdate(ctx, u.OrderID, status, u.PayAmount, payCurrency)
	if err != nil {
		return fmt.Errorf("apply crypto update: %w", err)
	}
	if !matched {
		s.log.Warn().
			Str("order_id", u.OrderID).
			Str("payment_id", u.PaymentID).
			Msg("webhook for unknown order id, ignoring")
		return nil
	}

	s.log.Info().
		Str("order_id", u.OrderID).
		Str("status", string(status)).
		Msg("provider payment update applied")

	if status == domain.PaymentStatusCompleted {
		s.maybeEnqueueSettlement(ctx, u.OrderID)
	}
	return nil
}

// maybeEnqueueSettlement schedules an automatic settlement when both the
// provider settings and the active wallet have auto transfer enabled.
func (s *WebhookServiceImpl) maybeEnqueueSettlement(ctx context.Context, orderID string) {
	settings, err := s.settingsSvc.ProviderSettings(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("order_id", orderID).Msg("settings lookup failed, skipping auto settlement")
		return
	}
	wallet, err := s.settingsSvc.Wallet(ctx)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "CFG_002" {
			// No wallet configured means no automatic settlement.
			return
		}
		s.log.Error().Err(err).Str("order_id", orderID).Msg("wallet lookup failed, skipping auto settlement")
		return
	}
	if !wallet.AutoTransfer || !settings.AutoTransfer {
		return
	}

	if !s.settlement.Enqueue(orderID) {
		s.log.Warn().Str("order_id", orderID).Msg("settlement queue full, transfer must be triggered manually")
	}
}

// IngestLegacyDonation records a fire-and-forget donation straight from
// the webhook, with no prior pending transaction to correlate against.
func (s *WebhookServiceImpl) IngestLegacyDonation(ctx context.Context, e ports.LegacyDonationEvent) error {
	status, ok := domain.PaymentStatusFromProvider(e.PaymentStatus)
	if !ok {
		status = domain.PaymentStatusPending
	}

	d := &domain.Donation{
		ID:                uuid.New(),
		Amount:            e.PriceAmount,
		Currency:          e.PriceCurrency,
		AmountUSD:         domain.NormalizeUSD(e.PriceAmount, e.PriceCurrency),
		PaymentMethod:     "crypto",
		Status:            status,
		ProviderPaymentID: e.PaymentID,
		CryptoAmount:      e.PayAmount,
		CreatedAt:         time.Now().UTC(),
	}
	if e.PayCurrency != "" {
		d.CryptoCurrency = &e.PayCurrency
	}

	if err := s.donationRepo.Create(ctx, d); err != nil {
		return fmt.Errorf("ingest legacy donation: %w", err)
	}

	s.log.Info().
		Str("payment_id", e.PaymentID).
		Str("status", string(status)).
		Str("amount_usd", d.AmountUSD.String()).
		Msg("legacy donation recorded")
	return nil
}

// ApplyCardUpdate applies a card on-ramp webhook, correlated by the same
// order id the checkout handed to the provider.
func (s *WebhookServiceImpl) ApplyCardUpdate(ctx context.Context, u ports.CardPaymentUpdate) error {
	status, ok := domain.PaymentStatusFromCardProvider(u.Status)
	if !ok {
		s.log.Warn().
			Str("correlation_id", u.CorrelationID).
			Str("card_status", u.Status).
			Msg("unknown card payment status, ignoring")
		return nil
	}

	var payCurrency *string
	if u.BaseCurrency != "" {
		payCurrency = &u.BaseCurrency
	}

	matched, err := s.txRepo.ApplyProviderUpdate(ctx, u.CorrelationID, status, u.BaseAmount, payCurrency)
	if err != nil {
		return fmt.Errorf("apply card update: %w", err)
	}
	if !matched {
		s.log.Warn().
			Str("correlation_id", u.CorrelationID).
			Str("transaction_id", u.TransactionID).
			Msg("card webhook for unknown order id, ignoring")
		return nil
	}

	s.log.Info().
		Str("correlation_id", u.CorrelationID).
		Str("status", string(status)).
		Msg("card payment update applied")
	return nil
}
