package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charity-donation-service/internal/core/domain"
	"charity-donation-service/internal/core/ports"
	"charity-donation-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CheckoutServiceImpl implements ports.CheckoutService.
type CheckoutServiceImpl struct {
	txRepo      ports.TransactionRepository
	settingsSvc ports.SettingsService
	invoices    ports.InvoiceClient
	transactor  ports.DBTransactor
	callbackURL string
	log         zerolog.Logger
}

// NewCheckoutService creates a new CheckoutServiceImpl.
func NewCheckoutService(
	txRepo ports.TransactionRepository,
	settingsSvc ports.SettingsService,
	invoices ports.InvoiceClient,
	transactor ports.DBTransactor,
	callbackURL string,
	log zerolog.Logger,
) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		txRepo:      txRepo,
		settingsSvc: settingsSvc,
		invoices:    invoices,
		transactor:  transactor,
		callbackURL: callbackURL,
		log:         log,
	}
}

// CreateDonationInvoice validates donor input, records a pending
// transaction and creates the provider invoice. The pending row and the
// provider call live inside one database transaction, so a rejected or
// unreachable provider leaves no orphaned record behind.
func (s *CheckoutServiceImpl) CreateDonationInvoice(ctx context.Context, req ports.CreateInvoiceRequest) (*ports.InvoiceResult, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if strings.TrimSpace(req.DonorEmail) == "" {
		return nil, apperror.ErrMissingDonorEmail()
	}

	settings, err := s.settingsSvc.ProviderSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.Configured() {
		return nil, apperror.ErrProviderNotConfigured()
	}

	now := time.Now().UTC()
	orderID := newOrderID(now)

	txn := &domain.DonationTransaction{
		ID:         uuid.New(),
		OrderID:    orderID,
		Amount:     req.Amount,
		Currency:   strings.ToUpper(req.Currency),
		Status:     domain.PaymentStatusPending,
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		CauseName:  req.CauseName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create pending transaction: %w", err))
	}

	invoice, err := s.invoices.CreateInvoice(ctx, settings.APIKey, ports.InvoiceRequest{
		OrderID:          orderID,
		PriceAmount:      req.Amount,
		PriceCurrency:    "usd",
		OrderDescription: fmt.Sprintf("Donation to %s", req.CauseName),
		SuccessURL:       req.SuccessURL,
		CancelURL:        req.CancelURL,
		IPNCallbackURL:   s.callbackURL,
	})
	if err != nil {
		// Rollback drops the pending row together with the failed call.
		return nil, err
	}

	if err := s.txRepo.SetProviderPayment(ctx, dbTx, txn.ID, invoice.ID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("set provider payment: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_id", orderID).
		Str("payment_id", invoice.ID).
		Str("amount", req.Amount.String()).
		Msg("donation invoice created")

	return &ports.InvoiceResult{
		PaymentURL: invoice.InvoiceURL,
		PaymentID:  invoice.ID,
		OrderID:    orderID,
	}, nil
}

// newOrderID builds the correlation key carried through provider webhooks.
func newOrderID(now time.Time) string {
	return fmt.Sprintf("DON-%d-%s", now.Unix(), uuid.NewString()[:8])
}
