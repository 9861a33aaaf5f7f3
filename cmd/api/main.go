package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scriptmarket/internal/auth"
	"scriptmarket/internal/client"
	"scriptmarket/internal/config"
	"scriptmarket/internal/handler"
	"scriptmarket/internal/logging"
	"scriptmarket/internal/middleware"
	"scriptmarket/internal/model"
	"scriptmarket/internal/repository"
	"scriptmarket/internal/server"
	"scriptmarket/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	// load .env into os.Environ
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	logging.SetGlobal(logger)

	if envErr != nil {
		logger.Debug().Msg("no .env file found (ok in prod)")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// prices render as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(logger.WithContext(context.Background()))
	defer cancel()

	db, err := client.InitDatabase(ctx, &cfg.Database, client.DefaultBackoff)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to init database")
	}

	scriptRepo := repository.NewScriptRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)

	catalogService := service.NewCatalogService(scriptRepo, favoriteRepo)
	if err := catalogService.Seed(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed catalog")
	}

	var cartRepo repository.CartRepository
	redisClient, err := client.NewRedisClient(ctx, &cfg.Redis)
	switch {
	case err != nil:
		logger.Warn().Err(err).Msg("redis unavailable, server-side cart disabled")
	case redisClient != nil:
		cartRepo = repository.NewCartRepository(redisClient, cfg.Redis.CartTTL)
		defer redisClient.Close()
	}

	var contentRepo repository.ContentRepository
	s3Client, err := client.NewS3Client(ctx, &cfg.S3)
	switch {
	case err != nil:
		logger.Warn().Err(err).Msg("object storage unavailable, serving rendered scripts")
	case s3Client != nil:
		contentRepo = repository.NewContentRepository(s3Client, cfg.S3.Bucket, cfg.S3.Prefix)
	}

	stripeClient := client.NewStripeClient(&cfg.Stripe, cfg.Payment.Currency, nil)
	paypalClient := client.NewPaypalClient(&cfg.Paypal, cfg.PaypalRedirectURL(), cfg.Payment.Currency)

	var checkoutProvider client.PaymentProvider = stripeClient
	if cfg.Payment.Provider == model.ProviderPaypal {
		checkoutProvider = paypalClient
	}
	if !checkoutProvider.Configured() {
		logger.Warn().Str("provider", checkoutProvider.Name()).Msg("payment provider not configured, checkout disabled")
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	services := server.Services{
		Catalog:  catalogService,
		Checkout: service.NewCheckoutService(checkoutProvider, cfg.Payment.Currency, cfg.BaseURL, cfg.AllowedOrigins),
		Payment: service.NewPaymentService(
			[]client.PaymentProvider{stripeClient, paypalClient},
			paypalClient,
			purchaseRepo,
			webhookEventRepo,
			cartRepo,
		),
		Library:  service.NewLibraryService(scriptRepo, purchaseRepo, contentRepo),
		Favorite: service.NewFavoriteService(favoriteRepo, scriptRepo),
		Auth:     service.NewAuthService(profileRepo, favoriteRepo, purchaseRepo, tokens),
		Health: service.NewHealthService(db, service.HealthOptions{
			PaymentProvider:   cfg.Payment.Provider,
			StripeConfigured:  stripeClient.Configured(),
			PaypalConfigured:  paypalClient.Configured(),
			RedisConfigured:   cartRepo != nil,
			StorageConfigured: contentRepo != nil,
		}),
	}
	if cartRepo != nil {
		services.Cart = service.NewCartService(cartRepo, scriptRepo)
	}
	if cfg.DemoPurchasesEnabled() {
		logger.Warn().Msg("demo purchases enabled, scripts can be unlocked without payment")
		services.Purchase = service.NewPurchaseService(purchaseRepo, scriptRepo)
	}

	srv := server.NewServer(logger, middleware.NewAuth(tokens, cfg.Auth.CookieName), services, server.Options{
		BaseURL:        cfg.BaseURL,
		AllowedOrigins: cfg.AllowedOrigins,
		Cookie: handler.CookieOptions{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure || cfg.IsProduction(),
		},
	})

	serverAddr := cfg.ServerAddress()
	logger.Info().Str("addr", serverAddr).Str("environment", cfg.Environment.Name).Msg("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info().Msg("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
