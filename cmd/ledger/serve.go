package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"donation-ledger/internal/adapter/chain"
	httpHandler "donation-ledger/internal/adapter/http/handler"
	"donation-ledger/internal/adapter/http/middleware"
	"donation-ledger/internal/adapter/metrics"
	pgStorage "donation-ledger/internal/adapter/storage/postgres"
	redisStorage "donation-ledger/internal/adapter/storage/redis"
	"donation-ledger/internal/core/ports"
	"donation-ledger/internal/service"
	"donation-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCommand(load loaderFunc) *cobra.Command {
	var openAPIPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			log.Info().
				Str("mode", cfg.Server.Mode).
				Int("port", cfg.Server.Port).
				Msg("Starting Donation Ledger")

			ctx := cmd.Context()

			pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
			if err != nil {
				return fmt.Errorf("connect postgres: %w", err)
			}
			defer pool.Close()

			if cfg.Database.AutoMigrate {
				if err := pgStorage.Migrate(ctx, pool, log); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}

			rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
			if err != nil {
				return fmt.Errorf("connect redis: %w", err)
			}
			defer rdb.Close()

			verifier, err := chain.Dial(ctx, cfg.Chain, log)
			if err != nil {
				return fmt.Errorf("dial chain rpc: %w", err)
			}
			defer verifier.Close()

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			ledgerMetrics := metrics.New(registry)

			// Repositories
			donorRepo := pgStorage.NewDonorRepo(pool)
			donationRepo := pgStorage.NewDonationRepo(pool)
			logRepo := pgStorage.NewContributionLogRepo(pool)
			candidateRepo := pgStorage.NewCandidateRepo(pool)
			transactor := pgStorage.NewTransactor(pool)

			// Services
			codes := service.NewReferralCodeService(donorRepo, ledgerMetrics, cfg.Referral.MaxAttempts, logger.Component(log, "referral_codes"))
			donors := service.NewDonorService(donorRepo, codes, cfg.Referral.MaxAttempts, logger.Component(log, "donor_registry"))
			ledger := service.NewDonationService(donationRepo, candidateRepo, donors, transactor, ledgerMetrics, logger.Component(log, "donation_ledger"))
			ingester := service.NewConfirmationService(
				logRepo, donationRepo, transactor, verifier,
				redisStorage.NewConfirmationCache(rdb), ledgerMetrics,
				cfg.Chain.ConfirmTimeout, cfg.Webhook.CacheTTL, logger.Component(log, "confirmation_ingester"),
			)
			stats := service.NewStatsService(donorRepo, donationRepo, logger.Component(log, "stats"))

			if cfg.Webhook.Secret == "" {
				log.Warn().Msg("webhook secret not set, confirmation webhooks will be rejected")
			}

			var openAPISpec []byte
			if openAPIPath != "" {
				if openAPISpec, err = os.ReadFile(openAPIPath); err != nil {
					log.Warn().Err(err).Msg("OpenAPI document not found, Swagger UI will be unavailable")
				}
			}

			gin.SetMode(cfg.Server.Mode)
			router := httpHandler.SetupRouter(httpHandler.RouterDeps{
				Registry:   donors,
				Ledger:     ledger,
				Ingester:   ingester,
				Stats:      stats,
				SigSvc:     service.NewWebhookSignatureService(),
				NonceStore: redisStorage.NewNonceStore(rdb),
				TokenSvc:   service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer),
				Webhook: middleware.WebhookAuthConfig{
					Secret:   cfg.Webhook.Secret,
					MaxSkew:  cfg.Webhook.MaxSkew,
					NonceTTL: cfg.Webhook.NonceTTL,
				},
				RateLimitStore: redisStorage.NewRateLimitStore(rdb),
				Observer:       ledgerMetrics,
				Gatherer:       registry,
				HealthCheckers: []ports.HealthChecker{
					pgStorage.NewHealthCheck(pool),
					redisStorage.NewHealthCheck(rdb),
					verifier,
				},
				OpenAPISpec: openAPISpec,
				Logger:      log,
			})

			addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
			srv := &http.Server{
				Addr:              addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", addr).Msg("HTTP server listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("http server: %w", err)
				}
			case <-sigCtx.Done():
			}
			log.Info().Msg("Shutting down server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Server forced to shutdown")
			}

			log.Info().Msg("Server exited")
			return nil
		},
	}

	cmd.Flags().StringVar(&openAPIPath, "openapi", "docs/api/openapi.yaml", "OpenAPI document served at /swagger")
	return cmd
}
