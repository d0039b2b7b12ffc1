package handler

import (
	"charity-donation-service/internal/adapter/http/middleware"
	redisStore "charity-donation-service/internal/adapter/storage/redis"
	"charity-donation-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CheckoutSvc    ports.CheckoutService
	WebhookSvc     ports.WebhookService
	SettlementSvc  ports.SettlementService
	SettingsSvc    ports.SettingsService
	AuthSvc        ports.AuthService
	ReportingSvc   ports.ReportingService
	TreasurySvc    ports.TreasuryService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public checkout ---
	checkoutHandler := NewCheckoutHandler(deps.CheckoutSvc)
	v1.POST("/donations", rl("donations"), checkoutHandler.CreateDonation)

	// --- Provider webhooks (no auth, always ack) ---
	webhookHandler := NewWebhookHandler(deps.WebhookSvc, deps.SettingsSvc, deps.Logger)
	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("/crypto", webhookHandler.CryptoIPN)
		webhooks.POST("/crypto/legacy", webhookHandler.LegacyIPN)
		webhooks.POST("/card", webhookHandler.CardWebhook)
	}

	// --- Admin surface (JWT-authenticated) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	authHandler := NewAuthHandler(deps.AuthSvc)
	dashboardHandler := NewDashboardHandler(deps.ReportingSvc)
	settingsHandler := NewSettingsHandler(deps.SettingsSvc, deps.SettlementSvc)
	treasuryHandler := NewTreasuryHandler(deps.TreasurySvc)

	admin := v1.Group("/admin")
	{
		admin.POST("/auth/login", rl("auth_login"), authHandler.Login)

		authed := admin.Group("", jwtAuth)
		{
			authed.GET("/auth/verify", rl("admin"), authHandler.Verify)

			authed.GET("/transactions", rl("admin"), dashboardHandler.ListTransactions)
			authed.GET("/donations", rl("admin"), dashboardHandler.ListDonations)
			authed.GET("/donations/stats", rl("admin"), dashboardHandler.GetStats)

			authed.GET("/settings/provider", rl("admin"), settingsHandler.GetProviderSettings)
			authed.PUT("/settings/provider", rl("admin"), settingsHandler.UpdateProviderSettings)
			authed.GET("/settings/wallet", rl("admin"), settingsHandler.GetWallet)
			authed.PUT("/settings/wallet", rl("admin"), settingsHandler.UpdateWallet)

			authed.POST("/transfers/:orderID", rl("transfers"), settingsHandler.TriggerTransfer)

			authed.GET("/bank-accounts", rl("admin"), treasuryHandler.ListBankAccounts)
			authed.POST("/bank-accounts", rl("admin"), treasuryHandler.CreateBankAccount)
			authed.PUT("/bank-accounts/:id", rl("admin"), treasuryHandler.UpdateBankAccount)
			authed.DELETE("/bank-accounts/:id", rl("admin"), treasuryHandler.DeleteBankAccount)
			authed.POST("/bank-accounts/:id/default", rl("admin"), treasuryHandler.SetDefaultBankAccount)

			authed.GET("/withdrawals", rl("admin"), treasuryHandler.ListWithdrawals)
			authed.POST("/withdrawals", rl("admin"), treasuryHandler.CreateWithdrawal)
		}
	}

	return r
}
