package handler

import (
	"donation-ledger/internal/adapter/http/middleware"
	redisStore "donation-ledger/internal/adapter/storage/redis"
	"donation-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

const maxRequestBody = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Registry       ports.DonorRegistry
	Ledger         ports.DonationLedger
	Ingester       ports.ConfirmationIngester
	Stats          ports.StatsAggregator
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	Webhook        middleware.WebhookAuthConfig
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	Observer       middleware.RequestObserver // nil = request metrics disabled
	Gatherer       prometheus.Gatherer        // nil = /metrics not served
	HealthCheckers []ports.HealthChecker
	OpenAPISpec    []byte
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Observer != nil {
		r.Use(middleware.Metrics(deps.Observer))
	}
	r.Use(middleware.MaxBodySize(maxRequestBody))
	r.Use(middleware.AuditLog(deps.Logger))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Gatherer != nil {
		r.GET("/metrics", Metrics(deps.Gatherer))
	}

	docs := NewAPIDocs(deps.OpenAPISpec)
	swagger := r.Group("/swagger")
	{
		swagger.GET("", docs.UI)
		swagger.GET("/spec", docs.Spec)
	}

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

	v1 := r.Group("/api/v1")

	donorHandler := NewDonorHandler(deps.Registry, deps.Stats)
	donors := v1.Group("/donors")
	{
		donors.POST("", rl("donors"), donorHandler.CreateDonor)
		donors.GET("/:id", rl("stats"), donorHandler.GetDonor)
		donors.GET("/:id/referral-stats", rl("stats"), donorHandler.GetReferralStats)
		donors.GET("/:id/stats", rl("stats"), donorHandler.GetAggregateStats)
	}

	referralHandler := NewReferralHandler(deps.Registry)
	v1.GET("/referrals/validate", rl("referrals_validate"), referralHandler.Validate)

	candidateHandler := NewCandidateHandler(deps.Ledger)
	v1.GET("/candidates", rl("stats"), candidateHandler.ListActive)

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	donationHandler := NewDonationHandler(deps.Ledger, deps.Logger)
	donations := v1.Group("/donations")
	{
		donations.POST("", rl("donations"), donationHandler.RecordDonation)
		donations.GET("/:id", rl("stats"), donationHandler.GetDonation)
		donations.PATCH("/:id/status", jwtAuth, rl("donations_status"), donationHandler.UpdateStatus)
	}

	webhookAuth := middleware.WebhookAuth(deps.Webhook, deps.SigSvc, deps.NonceStore, deps.Logger)
	webhookHandler := NewWebhookHandler(deps.Ingester)
	webhooks := v1.Group("/webhooks/blockchain", webhookAuth)
	{
		webhooks.POST("/contribution", rl("webhooks"), webhookHandler.Contribution)
	}

	return r
}
