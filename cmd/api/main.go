package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"charity-donation-service/config"
	"charity-donation-service/internal/adapter/chain"
	httpHandler "charity-donation-service/internal/adapter/http/handler"
	"charity-donation-service/internal/adapter/payment"
	pgStorage "charity-donation-service/internal/adapter/storage/postgres"
	redisStorage "charity-donation-service/internal/adapter/storage/redis"
	"charity-donation-service/internal/core/ports"
	"charity-donation-service/internal/service"
	"charity-donation-service/pkg/logger"
)

// providerName is the crypto payment provider this deployment talks to.
const providerName = "nowpayments"

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Charity Donation Service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	txRepo := pgStorage.NewTransactionRepo(pool)
	donationRepo := pgStorage.NewDonationRepo(pool)
	settingsRepo := pgStorage.NewSettingsRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	bankRepo := pgStorage.NewBankAccountRepo(pool)
	withdrawalRepo := pgStorage.NewWithdrawalRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	settingsCache := redisStorage.NewSettingsCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize outbound clients
	invoiceClient := payment.NewClient(cfg.Provider.BaseURL, cfg.Provider.Timeout, log)
	chainClient := chain.NewClient(cfg.Chain.RPCURL, cfg.Chain.Timeout, cfg.Chain.ConfirmInterval, log)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	settingsSvc := service.NewSettingsService(settingsRepo, walletRepo, settingsCache, encSvc, providerName, log)
	settlementSvc := service.NewSettlementService(
		txRepo,
		settingsSvc,
		encSvc,
		chainClient,
		cfg.Settlement.QueueSize,
		cfg.Settlement.JobTimeout,
		log,
	)
	checkoutSvc := service.NewCheckoutService(txRepo, settingsSvc, invoiceClient, transactor, cfg.Provider.CallbackURL, log)
	webhookSvc := service.NewWebhookService(txRepo, donationRepo, settingsSvc, settlementSvc, log)
	authSvc := service.NewAuthService(userRepo, hashSvc, tokenSvc)
	reportingSvc := service.NewReportingService(txRepo, donationRepo)
	treasurySvc := service.NewTreasuryService(bankRepo, withdrawalRepo, settingsSvc, log)

	// Start the settlement worker
	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	settlementSvc.Start(workerCtx)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CheckoutSvc:    checkoutSvc,
		WebhookSvc:     webhookSvc,
		SettlementSvc:  settlementSvc,
		SettingsSvc:    settingsSvc,
		AuthSvc:        authSvc,
		ReportingSvc:   reportingSvc,
		TreasurySvc:    treasurySvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Stop the settlement worker after in-flight requests drain
	stopWorker()

	log.Info().Msg("Server exited")
}
