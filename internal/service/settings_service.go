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
	"github.com/tyler-smith/go-bip39"
)

const settingsCacheTTL = 5 * time.Minute

// SettingsServiceImpl implements ports.SettingsService with a read-through
// Redis cache in front of the provider settings row. Cache failures are
// logged and degrade to database reads.
type SettingsServiceImpl struct {
	settingsRepo ports.SettingsRepository
	walletRepo   ports.WalletRepository
	cache        ports.SettingsCache
	encSvc       ports.EncryptionService
	provider     string
	log          zerolog.Logger
}

// NewSettingsService creates a new SettingsServiceImpl.
func NewSettingsService(
	settingsRepo ports.SettingsRepository,
	walletRepo ports.WalletRepository,
	cache ports.SettingsCache,
	encSvc ports.EncryptionService,
	provider string,
	log zerolog.Logger,
) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
		walletRepo:   walletRepo,
		cache:        cache,
		encSvc:       encSvc,
		provider:     provider,
		log:          log,
	}
}

// ProviderSettings returns the singleton settings record, served from
// cache when possible and lazily created on first read.
func (s *SettingsServiceImpl) ProviderSettings(ctx context.Context) (*domain.ProviderSettings, error) {
	cached, err := s.cache.Get(ctx, s.provider)
	if err != nil {
		s.log.Warn().Err(err).Msg("settings cache read failed, falling through to DB")
	}
	if cached != nil {
		return cached, nil
	}

	settings, err := s.settingsRepo.GetOrCreate(ctx, s.provider)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get provider settings: %w", err))
	}

	if err := s.cache.Set(ctx, settings, settingsCacheTTL); err != nil {
		s.log.Warn().Err(err).Msg("settings cache write failed")
	}
	return settings, nil
}

// UpdateProviderSettings persists admin edits and drops the cache entry.
func (s *SettingsServiceImpl) UpdateProviderSettings(ctx context.Context, settings *domain.ProviderSettings) error {
	settings.Provider = s.provider
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return apperror.InternalError(fmt.Errorf("update provider settings: %w", err))
	}
	if err := s.cache.Invalidate(ctx, s.provider); err != nil {
		s.log.Warn().Err(err).Msg("settings cache invalidation failed")
	}
	return nil
}

// Wallet returns the active custodial wallet, or an error when none is
// configured.
func (s *SettingsServiceImpl) Wallet(ctx context.Context) (*domain.CustodialWallet, error) {
	wallet, err := s.walletRepo.GetActive(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get active wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotConfigured()
	}
	return wallet, nil
}

// UpdateWallet persists wallet configuration and makes it the single
// active record. A non-empty mnemonic is validated and encrypted before
// storage; an empty one keeps the existing key material.
func (s *SettingsServiceImpl) UpdateWallet(ctx context.Context, w *domain.CustodialWallet, mnemonic string) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
		w.CreatedAt = time.Now().UTC()
	}

	if mnemonic != "" {
		if !bip39.IsMnemonicValid(mnemonic) {
			return apperror.ErrInvalidMnemonic()
		}
		enc, err := s.encSvc.Encrypt(mnemonic)
		if err != nil {
			return apperror.ErrEncryptionFailure(fmt.Errorf("encrypt mnemonic: %w", err))
		}
		w.MnemonicEnc = enc
	} else if existing, err := s.walletRepo.GetByID(ctx, w.ID); err == nil && existing != nil {
		w.MnemonicEnc = existing.MnemonicEnc
	}

	if err := s.walletRepo.Save(ctx, w); err != nil {
		return apperror.InternalError(fmt.Errorf("save wallet: %w", err))
	}
	if err := s.walletRepo.SetActive(ctx, w.ID); err != nil {
		return apperror.InternalError(fmt.Errorf("activate wallet: %w", err))
	}

	s.log.Info().
		Str("wallet_id", w.ID.String()).
		Str("address", w.Address).
		Msg("custodial wallet updated")
	return nil
}
