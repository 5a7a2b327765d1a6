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
	"github.com/rs/zerolog"
)

// DonorService implements ports.DonorRegistry.
type DonorService struct {
	donors      ports.DonorRepository
	codes       ports.ReferralCodeGenerator
	maxAttempts int
	log         zerolog.Logger
}

// NewDonorService creates a new DonorService. maxAttempts bounds how many
// referral codes are tried when inserts race on the code's unique index.
func NewDonorService(
	donors ports.DonorRepository,
	codes ports.ReferralCodeGenerator,
	maxAttempts int,
	log zerolog.Logger,
) *DonorService {
	if maxAttempts < 1 {
		maxAttempts = defaultCodeTries
	}
	return &DonorService{
		donors:      donors,
		codes:       codes,
		maxAttempts: maxAttempts,
		log:         log,
	}
}

// CreateOrGetDonor returns the donor for in.Email, creating it if needed.
// Concurrent calls for one new email converge on a single row.
func (s *DonorService) CreateOrGetDonor(ctx context.Context, in ports.DonorInput) (*domain.Donor, error) {
	email := domain.NormalizeEmail(in.Email)
	if email == "" {
		return nil, apperror.Validation("email is required")
	}
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, apperror.Validation("full name is required")
	}
	wallet := trimOptional(in.WalletAddress)

	existing, err := s.donors.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("lookup donor: %w", err))
	}
	if existing != nil {
		return s.syncWallet(ctx, existing, wallet)
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		code, err := s.codes.Generate(ctx, fullName)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		donor := &domain.Donor{
			ID:            uuid.New(),
			Email:         email,
			FullName:      fullName,
			WalletAddress: wallet,
			Phone:         trimOptional(in.Phone),
			ReferralCode:  code,
			DonorType:     domain.DonorTypeIndividual,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		err = s.donors.Create(ctx, donor)
		switch {
		case err == nil:
			s.log.Info().
				Str("donor_id", donor.ID.String()).
				Str("referral_code", donor.ReferralCode).
				Msg("donor created")
			return donor, nil

		case errors.Is(err, domain.ErrDuplicateEmail):
			// Lost the race to a concurrent insert for the same email.
			winner, err := s.donors.GetByEmail(ctx, email)
			if err != nil {
				return nil, apperror.ErrDatastore(fmt.Errorf("re-read donor: %w", err))
			}
			if winner == nil {
				return nil, apperror.ErrDatastore(fmt.Errorf("donor %s missing after duplicate insert", email))
			}
			return s.syncWallet(ctx, winner, wallet)

		case errors.Is(err, domain.ErrDuplicateReferralCode):
			s.log.Debug().Int("attempt", attempt).Msg("referral code taken at insert, regenerating")

		default:
			return nil, apperror.ErrDatastore(fmt.Errorf("insert donor: %w", err))
		}
	}

	return nil, apperror.ErrCodeGenerationExhausted(s.maxAttempts)
}

// ValidateReferralCode resolves code to its active owner. Malformed and
// unknown codes are reported as invalid, not as errors.
func (s *DonorService) ValidateReferralCode(ctx context.Context, code string) (*domain.ReferralValidation, error) {
	code = domain.NormalizeReferralCode(code)
	if !domain.IsValidReferralCode(code) {
		return &domain.ReferralValidation{IsValid: false}, nil
	}

	donor, err := s.donors.GetByReferralCode(ctx, code)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("lookup referral code: %w", err))
	}
	if donor == nil {
		return &domain.ReferralValidation{IsValid: false}, nil
	}

	return &domain.ReferralValidation{
		IsValid: true,
		Donor: &domain.DonorSummary{
			ID:           donor.ID,
			Name:         donor.FullName,
			ReferralCode: donor.ReferralCode,
		},
	}, nil
}

// GetDonor fetches a donor by id.
func (s *DonorService) GetDonor(ctx context.Context, id uuid.UUID) (*domain.Donor, error) {
	donor, err := s.donors.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("get donor: %w", err))
	}
	if donor == nil {
		return nil, apperror.ErrNotFound("donor")
	}
	return donor, nil
}

func (s *DonorService) syncWallet(ctx context.Context, donor *domain.Donor, wallet *string) (*domain.Donor, error) {
	if !donor.NeedsWalletUpdate(wallet) {
		return donor, nil
	}

	updated, err := s.donors.UpdateWallet(ctx, donor.ID, *wallet, time.Now().UTC())
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("update donor wallet: %w", err))
	}
	if updated == nil {
		return nil, apperror.ErrNotFound("donor")
	}

	s.log.Info().Str("donor_id", donor.ID.String()).Msg("donor wallet updated")
	return updated, nil
}

// trimOptional trims s and maps blank values to nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
