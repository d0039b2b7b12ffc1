package service

import (
	"context"
	"fmt"
	"time"

	"charity-donation-service/internal/core/domain"
	"charity-donation-service/internal/core/ports"
	"charity-donation-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TreasuryServiceImpl implements ports.TreasuryService.
type TreasuryServiceImpl struct {
	bankRepo       ports.BankAccountRepository
	withdrawalRepo ports.WithdrawalRepository
	settingsSvc    ports.SettingsService
	log            zerolog.Logger
}

// NewTreasuryService creates a new TreasuryServiceImpl.
func NewTreasuryService(
	bankRepo ports.BankAccountRepository,
	withdrawalRepo ports.WithdrawalRepository,
	settingsSvc ports.SettingsService,
	log zerolog.Logger,
) *TreasuryServiceImpl {
	return &TreasuryServiceImpl{
		bankRepo:       bankRepo,
		withdrawalRepo: withdrawalRepo,
		settingsSvc:    settingsSvc,
		log:            log,
	}
}

func (s *TreasuryServiceImpl) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	accounts, err := s.bankRepo.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return accounts, nil
}

func (s *TreasuryServiceImpl) CreateBankAccount(ctx context.Context, a *domain.BankAccount) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now().UTC()

	if err := s.bankRepo.Create(ctx, a); err != nil {
		return apperror.InternalError(fmt.Errorf("create bank account: %w", err))
	}
	if a.IsDefault {
		if err := s.bankRepo.SetDefault(ctx, a.ID); err != nil {
			return apperror.InternalError(fmt.Errorf("set default bank account: %w", err))
		}
	}
	return nil
}

func (s *TreasuryServiceImpl) UpdateBankAccount(ctx context.Context, a *domain.BankAccount) error {
	if err := s.bankRepo.Update(ctx, a); err != nil {
		return apperror.InternalError(fmt.Errorf("update bank account: %w", err))
	}
	// Same promotion rule as the create path. A false flag leaves the
	// current default alone; demotion happens by promoting another account.
	if a.IsDefault {
		if err := s.bankRepo.SetDefault(ctx, a.ID); err != nil {
			return apperror.InternalError(fmt.Errorf("set default bank account: %w", err))
		}
	}
	return nil
}

func (s *TreasuryServiceImpl) DeleteBankAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.bankRepo.Delete(ctx, id); err != nil {
		return apperror.InternalError(fmt.Errorf("delete bank account: %w", err))
	}
	return nil
}

func (s *TreasuryServiceImpl) SetDefaultBankAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.bankRepo.SetDefault(ctx, id); err != nil {
		return apperror.InternalError(fmt.Errorf("set default bank account: %w", err))
	}
	return nil
}

// RequestWithdrawal records a pending withdrawal after checking the
// configured minimum threshold.
func (s *TreasuryServiceImpl) RequestWithdrawal(ctx context.Context, req ports.WithdrawalRequest) (*domain.Withdrawal, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	settings, err := s.settingsSvc.ProviderSettings(ctx)
	if err != nil {
		return nil, err
	}
	if req.Amount.LessThan(settings.MinWithdrawal) {
		return nil, apperror.ErrBelowMinimumWithdrawal()
	}

	w := &domain.Withdrawal{
		ID:            uuid.New(),
		Amount:        req.Amount,
		Currency:      req.Currency,
		BankAccountID: req.BankAccountID,
		Status:        domain.WithdrawalStatusPending,
		Note:          req.Note,
		RequestedBy:   req.RequestedBy,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.withdrawalRepo.Create(ctx, w); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create withdrawal: %w", err))
	}

	s.log.Info().
		Str("withdrawal_id", w.ID.String()).
		Str("amount", w.Amount.String()).
		Msg("withdrawal requested")
	return w, nil
}

func (s *TreasuryServiceImpl) ListWithdrawals(ctx context.Context, limit int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.ListRecent(ctx, clampLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return withdrawals, nil
}
