package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DonationService implements ports.DonationLedger.
type DonationService struct {
	donations  ports.DonationRepository
	candidates ports.CandidateRepository
	registry   ports.DonorRegistry
	transactor ports.DBTransactor
	metrics    ports.LedgerMetrics
	log        zerolog.Logger
}

// NewDonationService creates a new DonationService.
func NewDonationService(
	donations ports.DonationRepository,
	candidates ports.CandidateRepository,
	registry ports.DonorRegistry,
	transactor ports.DBTransactor,
	metrics ports.LedgerMetrics,
	log zerolog.Logger,
) *DonationService {
	return &DonationService{
		donations:  donations,
		candidates: candidates,
		registry:   registry,
		transactor: transactor,
		metrics:    metrics,
		log:        log,
	}
}

// RecordDonation stores a pending donation. An unknown referral code leaves
// the donation unattributed; it is not an error.
func (s *DonationService) RecordDonation(ctx context.Context, in ports.RecordDonationInput) (*domain.Donation, error) {
	amount, err := domain.ParseAmount(in.Amount)
	if err != nil {
		return nil, apperror.ErrInvalidAmount()
	}

	candidate, err := s.candidates.GetByID(ctx, in.CandidateID)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("get candidate: %w", err))
	}
	if candidate == nil {
		return nil, apperror.ErrNotFound("candidate")
	}

	donor, err := s.registry.CreateOrGetDonor(ctx, in.Donor)
	if err != nil {
		return nil, err
	}

	var (
		referrerID *uuid.UUID
		usedCode   *string
	)
	if code := trimOptional(in.ReferralCode); code != nil {
		normalized := domain.NormalizeReferralCode(*code)
		usedCode = &normalized

		validation, err := s.registry.ValidateReferralCode(ctx, normalized)
		if err != nil {
			return nil, err
		}
		if validation.IsValid {
			id := validation.Donor.ID
			referrerID = &id
			if id == donor.ID {
				s.log.Debug().Str("donor_id", donor.ID.String()).Msg("donor redeemed own referral code")
			}
		} else {
			s.log.Info().Str("referral_code", normalized).Msg("unknown referral code, donation left unattributed")
		}
	}

	network := strings.TrimSpace(in.Network)
	if network == "" {
		network = domain.DefaultNetwork
	}
	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	now := time.Now().UTC()
	donation := &domain.Donation{
		ID:              uuid.New(),
		DonorID:         donor.ID,
		CandidateID:     candidate.ID,
		Amount:          amount,
		Currency:        currency,
		Network:         network,
		TransactionHash: trimOptional(in.TransactionHash),
		Status:          domain.DonationStatusPending,
		ReferrerID:      referrerID,
		ReferralCode:    usedCode,
		DonationDate:    now,
		Metadata: domain.DonationMetadata{
			Network:            network,
			Currency:           currency,
			ReferralAttributed: referrerID != nil,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.donations.Create(ctx, donation); err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("insert donation: %w", err))
	}

	s.metrics.DonationRecorded(referrerID != nil)
	s.log.Info().
		Str("donation_id", donation.ID.String()).
		Str("donor_id", donor.ID.String()).
		Str("candidate_id", candidate.ID.String()).
		Str("amount", amount.String()).
		Bool("referral_attributed", referrerID != nil).
		Msg("donation recorded")

	return donation, nil
}

// UpdateDonationStatus moves a pending donation to status. Donations that
// already left pending are never overwritten.
func (s *DonationService) UpdateDonationStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.DonationStatus,
	extra *domain.StatusExtra,
) (*domain.Donation, error) {
	if !status.Valid() {
		return nil, apperror.ErrInvalidStatus(string(status))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()
	transition := domain.StatusTransition{DonationID: id, To: status, At: now}
	if extra != nil {
		transition.Extra = *extra
	}
	if status == domain.DonationStatusCompleted {
		transition.ConfirmedAt = &now
	}

	updated, err := s.donations.TransitionStatus(ctx, dbTx, transition)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("transition donation: %w", err))
	}
	if updated == nil {
		return nil, s.explainRejectedTransition(ctx, id)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("commit tx: %w", err))
	}

	s.metrics.StatusTransitioned(status)
	s.log.Info().
		Str("donation_id", id.String()).
		Str("status", string(status)).
		Msg("donation status updated")

	return updated, nil
}

// explainRejectedTransition turns a conditional update that matched no row
// into NotFound or Conflict.
func (s *DonationService) explainRejectedTransition(ctx context.Context, id uuid.UUID) error {
	current, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return apperror.ErrDatastore(fmt.Errorf("re-read donation: %w", err))
	}
	if current == nil {
		return apperror.ErrNotFound("donation")
	}
	if current.IsTerminal() {
		s.log.Warn().
			Str("donation_id", id.String()).
			Str("status", string(current.Status)).
			Msg("rejected transition of terminal donation")
		return apperror.ErrTerminalStatus(string(current.Status))
	}
	return apperror.ErrConflict("donation changed concurrently")
}

// GetDonation fetches a donation by id.
func (s *DonationService) GetDonation(ctx context.Context, id uuid.UUID) (*domain.Donation, error) {
	donation, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("get donation: %w", err))
	}
	if donation == nil {
		return nil, apperror.ErrNotFound("donation")
	}
	return donation, nil
}

// ListActiveCandidates returns the campaigns currently accepting donations.
func (s *DonationService) ListActiveCandidates(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := s.candidates.ListActive(ctx)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("list candidates: %w", err))
	}
	return candidates, nil
}
