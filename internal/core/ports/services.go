package ports

import (
	"context"
	"time"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// SignatureService handles HMAC-SHA256 signing and verification of webhooks.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(timestamp int64, nonce string, body string) string
}

// TokenService handles operator JWT operations.
type TokenService interface {
	Generate(operator string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Operator string
	Issuer   string
}

// ConfirmationCache is the Redis-layer fast path for processed confirmations.
type ConfirmationCache interface {
	Get(ctx context.Context, txHash string) (*domain.IngestResult, error) // nil on miss
	Set(ctx context.Context, result *domain.IngestResult, ttl time.Duration) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error)
	// Release forgets a nonce so the same request may be sent again.
	Release(ctx context.Context, scope string, nonce string) error
}

// ChainVerifier confirms a transaction on chain.
type ChainVerifier interface {
	// WaitForTransaction blocks until the transaction is mined or ctx ends.
	WaitForTransaction(ctx context.Context, txHash string) (*domain.ChainReceipt, error)
}

// LedgerMetrics records business counters.
type LedgerMetrics interface {
	DonationRecorded(referralAttributed bool)
	StatusTransitioned(to domain.DonationStatus)
	ConfirmationIngested(outcome string)
	ReferralCodeCollision()
}

// Ingestion outcomes reported to LedgerMetrics.
const (
	OutcomeLogged           = "logged"
	OutcomeMatched          = "matched"
	OutcomeAlreadyProcessed = "already_processed"
	OutcomeChainFailed      = "chain_failed"
	OutcomeChainUnavailable = "chain_unavailable"
)

// --- Service Ports (Business Logic) ---

// ReferralCodeGenerator issues unique referral codes.
type ReferralCodeGenerator interface {
	Generate(ctx context.Context, seedName string) (string, error)
}

// DonorRegistry creates and looks up donors.
type DonorRegistry interface {
	CreateOrGetDonor(ctx context.Context, in DonorInput) (*domain.Donor, error)
	ValidateReferralCode(ctx context.Context, code string) (*domain.ReferralValidation, error)
	GetDonor(ctx context.Context, id uuid.UUID) (*domain.Donor, error)
}

// DonorInput holds validated input for donor creation.
type DonorInput struct {
	Email         string
	FullName      string
	WalletAddress *string
	Phone         *string
}

// DonationLedger records donations and drives their status.
type DonationLedger interface {
	RecordDonation(ctx context.Context, in RecordDonationInput) (*domain.Donation, error)
	UpdateDonationStatus(ctx context.Context, id uuid.UUID, status domain.DonationStatus, extra *domain.StatusExtra) (*domain.Donation, error)
	GetDonation(ctx context.Context, id uuid.UUID) (*domain.Donation, error)
	ListActiveCandidates(ctx context.Context) ([]domain.Candidate, error)
}

// RecordDonationInput holds input for recording a donation.
type RecordDonationInput struct {
	Donor           DonorInput
	CandidateID     uuid.UUID
	Amount          string // decimal string
	TransactionHash *string
	ReferralCode    *string
	Network         string
	Currency        string
}

// ConfirmationIngester turns chain confirmations into contribution logs.
type ConfirmationIngester interface {
	IngestConfirmation(ctx context.Context, ev domain.ConfirmationEvent) (*domain.IngestResult, error)
}

// StatsAggregator computes read-only rollups.
type StatsAggregator interface {
	GetReferralStats(ctx context.Context, donorID uuid.UUID) (*domain.ReferralStats, error)
	GetDonorAggregateStats(ctx context.Context, donorID uuid.UUID) (*domain.AggregateStats, error)
}
