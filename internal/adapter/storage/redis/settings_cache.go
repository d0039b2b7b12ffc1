package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"charity-donation-service/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// SettingsCache implements ports.SettingsCache using Redis.
type SettingsCache struct {
	client *goredis.Client
	prefix string
}

// NewSettingsCache creates a new Redis-backed settings cache.
func NewSettingsCache(client *goredis.Client) *SettingsCache {
	return &SettingsCache{
		client: client,
		prefix: "settings:",
	}
}

// cachedSettings mirrors domain.ProviderSettings with the secret fields
// included. The domain struct hides them from API marshalling, but the
// cache must round-trip them.
type cachedSettings struct {
	ID             uuid.UUID             `json:"id"`
	Provider       string                `json:"provider"`
	APIKey         string                `json:"api_key"`
	IPNSecret      string                `json:"ipn_secret"`
	WithdrawalMode domain.WithdrawalMode `json:"withdrawal_mode"`
	MinWithdrawal  decimal.Decimal       `json:"min_withdrawal"`
	AutoTransfer   bool                  `json:"auto_transfer"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// Get retrieves cached settings for a provider.
// Returns nil, nil on a cache miss.
func (c *SettingsCache) Get(ctx context.Context, provider string) (*domain.ProviderSettings, error) {
	val, err := c.client.Get(ctx, c.prefix+provider).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis settings get: %w", err)
	}

	var cs cachedSettings
	if err := json.Unmarshal(val, &cs); err != nil {
		return nil, fmt.Errorf("redis settings decode: %w", err)
	}
	return &domain.ProviderSettings{
		ID:             cs.ID,
		Provider:       cs.Provider,
		APIKey:         cs.APIKey,
		IPNSecret:      cs.IPNSecret,
		WithdrawalMode: cs.WithdrawalMode,
		MinWithdrawal:  cs.MinWithdrawal,
		AutoTransfer:   cs.AutoTransfer,
		CreatedAt:      cs.CreatedAt,
		UpdatedAt:      cs.UpdatedAt,
	}, nil
}

// Set stores settings with a TTL.
func (c *SettingsCache) Set(ctx context.Context, s *domain.ProviderSettings, ttl time.Duration) error {
	val, err := json.Marshal(cachedSettings{
		ID:             s.ID,
		Provider:       s.Provider,
		APIKey:         s.APIKey,
		IPNSecret:      s.IPNSecret,
		WithdrawalMode: s.WithdrawalMode,
		MinWithdrawal:  s.MinWithdrawal,
		AutoTransfer:   s.AutoTransfer,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("redis settings encode: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+s.Provider, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis settings set: %w", err)
	}
	return nil
}

// Invalidate drops the cached settings after an admin update.
func (c *SettingsCache) Invalidate(ctx context.Context, provider string) error {
	if err := c.client.Del(ctx, c.prefix+provider).Err(); err != nil {
		return fmt.Errorf("redis settings del: %w", err)
	}
	return nil
}
