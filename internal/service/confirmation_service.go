package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	defaultConfirmTimeout = 30 * time.Second
	defaultResultCacheTTL = 24 * time.Hour
)

// ConfirmationService implements ports.ConfirmationIngester.
type ConfirmationService struct {
	logs           ports.ContributionLogRepository
	donations      ports.DonationRepository
	transactor     ports.DBTransactor
	chain          ports.ChainVerifier
	cache          ports.ConfirmationCache
	metrics        ports.LedgerMetrics
	confirmTimeout time.Duration
	cacheTTL       time.Duration
	log            zerolog.Logger
}

// NewConfirmationService creates a new ConfirmationService. confirmTimeout
// bounds each chain verification; cacheTTL is how long processed results
// stay in the Redis fast path.
func NewConfirmationService(
	logs ports.ContributionLogRepository,
	donations ports.DonationRepository,
	transactor ports.DBTransactor,
	chain ports.ChainVerifier,
	cache ports.ConfirmationCache,
	metrics ports.LedgerMetrics,
	confirmTimeout time.Duration,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *ConfirmationService {
	if confirmTimeout <= 0 {
		confirmTimeout = defaultConfirmTimeout
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultResultCacheTTL
	}
	return &ConfirmationService{
		logs:           logs,
		donations:      donations,
		transactor:     transactor,
		chain:          chain,
		cache:          cache,
		metrics:        metrics,
		confirmTimeout: confirmTimeout,
		cacheTTL:       cacheTTL,
		log:            log,
	}
}

// IngestConfirmation records a verified chain payment exactly once per
// transaction hash and completes the donation it belongs to, if any.
func (s *ConfirmationService) IngestConfirmation(ctx context.Context, ev domain.ConfirmationEvent) (*domain.IngestResult, error) {
	if err := validateConfirmation(ev); err != nil {
		return nil, err
	}
	hash := domain.NormalizeAddress(ev.TransactionHash)

	// Layer 1: Redis fast path
	cached, err := s.cache.Get(ctx, hash)
	if err != nil {
		s.log.Warn().Err(err).Str("tx_hash", hash).Msg("redis confirmation check failed, falling through to DB")
	}
	if cached != nil {
		cached.AlreadyProcessed = true
		s.metrics.ConfirmationIngested(ports.OutcomeAlreadyProcessed)
		return cached, nil
	}

	// Layer 2: contribution log
	existing, err := s.logs.GetByTransactionHash(ctx, hash)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("lookup contribution log: %w", err))
	}
	if existing != nil {
		return s.alreadyProcessed(existing), nil
	}

	receipt, err := s.verify(ctx, hash)
	if err != nil {
		return nil, err
	}

	amountEth, _ := domain.WeiToEth(ev.ValueWei) // validated above
	now := time.Now().UTC()
	entry := &domain.ContributionLog{
		ID:                 uuid.New(),
		TransactionHash:    hash,
		ContributorAddress: domain.NormalizeAddress(ev.From),
		ContractAddress:    domain.NormalizeAddress(ev.To),
		AmountWei:          strings.TrimSpace(ev.ValueWei),
		AmountEth:          amountEth,
		BlockNumber:        ev.BlockNumber,
		GasUsed:            firstNonEmpty(ev.GasUsed, receipt.GasUsed),
		GasPrice:           firstNonEmpty(ev.GasPrice, receipt.GasPrice),
		Status:             domain.ContributionStatusCompleted,
		WebhookReceivedAt:  now,
		CreatedAt:          now,
	}
	if entry.BlockNumber == 0 {
		entry.BlockNumber = receipt.BlockNumber
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.logs.Create(ctx, dbTx, entry); err != nil {
		if errors.Is(err, domain.ErrDuplicateTransactionHash) {
			return s.lostInsertRace(ctx, dbTx, hash)
		}
		return nil, apperror.ErrDatastore(fmt.Errorf("insert contribution log: %w", err))
	}

	result := &domain.IngestResult{LogID: entry.ID, TransactionHash: hash}

	matched, err := s.donations.FindByWalletAndTxHash(ctx, dbTx, entry.ContributorAddress, hash)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("match donation: %w", err))
	}

	completed := false
	if matched == nil {
		s.log.Info().
			Str("tx_hash", hash).
			Str("from", entry.ContributorAddress).
			Msg("contribution logged without a matching donation")
	} else {
		id := matched.ID
		result.MatchedDonationID = &id
		completed, err = s.completeMatched(ctx, dbTx, matched, entry, now)
		if err != nil {
			return nil, err
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("commit tx: %w", err))
	}

	if completed {
		s.metrics.StatusTransitioned(domain.DonationStatusCompleted)
	}
	if matched != nil {
		s.metrics.ConfirmationIngested(ports.OutcomeMatched)
	} else {
		s.metrics.ConfirmationIngested(ports.OutcomeLogged)
	}

	// Post-process: cache in Redis (best-effort)
	if err := s.cache.Set(ctx, result, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("tx_hash", hash).Msg("failed to cache confirmation in redis")
	}

	s.log.Info().
		Str("log_id", entry.ID.String()).
		Str("tx_hash", hash).
		Str("amount_eth", amountEth.String()).
		Bool("matched", matched != nil).
		Msg("contribution confirmed")

	return result, nil
}

// verify waits for the chain receipt within confirmTimeout.
func (s *ConfirmationService) verify(ctx context.Context, hash string) (*domain.ChainReceipt, error) {
	verifyCtx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
	defer cancel()

	receipt, err := s.chain.WaitForTransaction(verifyCtx, hash)
	if err != nil {
		s.metrics.ConfirmationIngested(ports.OutcomeChainUnavailable)
		s.log.Warn().Err(err).Str("tx_hash", hash).Msg("chain verification did not complete")
		return nil, apperror.ErrExternalService("chain", err)
	}
	if !receipt.Success {
		s.metrics.ConfirmationIngested(ports.OutcomeChainFailed)
		s.log.Warn().Str("tx_hash", hash).Msg("transaction reverted on chain, not logging")
		return nil, apperror.ErrChainTransactionFailed()
	}
	return receipt, nil
}

// completeMatched moves a pending matched donation to completed. A donation
// that already reached a terminal status is left untouched.
func (s *ConfirmationService) completeMatched(
	ctx context.Context,
	dbTx pgx.Tx,
	donation *domain.Donation,
	entry *domain.ContributionLog,
	now time.Time,
) (bool, error) {
	if donation.IsTerminal() {
		s.log.Info().
			Str("donation_id", donation.ID.String()).
			Str("status", string(donation.Status)).
			Msg("matched donation already terminal, leaving status unchanged")
		return false, nil
	}

	block := entry.BlockNumber
	updated, err := s.donations.TransitionStatus(ctx, dbTx, domain.StatusTransition{
		DonationID:  donation.ID,
		To:          domain.DonationStatusCompleted,
		ConfirmedAt: &now,
		Extra: domain.StatusExtra{
			BlockNumber: &block,
			GasUsed:     entry.GasUsed,
			GasPrice:    entry.GasPrice,
		},
		At: now,
	})
	if err != nil {
		return false, apperror.ErrDatastore(fmt.Errorf("complete donation: %w", err))
	}
	return updated != nil, nil
}

// lostInsertRace handles a concurrent ingestion that logged hash first.
func (s *ConfirmationService) lostInsertRace(ctx context.Context, dbTx pgx.Tx, hash string) (*domain.IngestResult, error) {
	_ = dbTx.Rollback(ctx)

	existing, err := s.logs.GetByTransactionHash(ctx, hash)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("re-read contribution log: %w", err))
	}
	if existing == nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("contribution log %s missing after duplicate insert", hash))
	}
	return s.alreadyProcessed(existing), nil
}

func (s *ConfirmationService) alreadyProcessed(existing *domain.ContributionLog) *domain.IngestResult {
	s.metrics.ConfirmationIngested(ports.OutcomeAlreadyProcessed)
	s.log.Debug().Str("tx_hash", existing.TransactionHash).Msg("confirmation already processed")
	return &domain.IngestResult{
		LogID:            existing.ID,
		TransactionHash:  existing.TransactionHash,
		AlreadyProcessed: true,
	}
}

func validateConfirmation(ev domain.ConfirmationEvent) error {
	if !domain.IsTransactionHash(strings.TrimSpace(ev.TransactionHash)) {
		return apperror.Validation("transaction hash must be 0x followed by 64 hex characters")
	}
	if !domain.IsAddress(strings.TrimSpace(ev.From)) {
		return apperror.Validation("from must be a 0x-prefixed 20-byte address")
	}
	if !domain.IsAddress(strings.TrimSpace(ev.To)) {
		return apperror.Validation("to must be a 0x-prefixed 20-byte address")
	}
	if ev.BlockNumber < 0 {
		return apperror.Validation("block number must not be negative")
	}
	if _, err := domain.WeiToEth(ev.ValueWei); err != nil {
		return apperror.Validation(err.Error())
	}
	return nil
}

// firstNonEmpty prefers the event's value over the receipt's.
func firstNonEmpty(eventValue *string, receiptValue string) *string {
	if v := trimOptional(eventValue); v != nil {
		return v
	}
	if receiptValue == "" {
		return nil
	}
	return &receiptValue
}
