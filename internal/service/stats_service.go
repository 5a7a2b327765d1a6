package service

import (
	"context"
	"fmt"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StatsService implements ports.StatsAggregator. Rollups are computed from
// donation rows on each call.
type StatsService struct {
	donors    ports.DonorRepository
	donations ports.DonationRepository
	log       zerolog.Logger
}

// NewStatsService creates a new StatsService.
func NewStatsService(donors ports.DonorRepository, donations ports.DonationRepository, log zerolog.Logger) *StatsService {
	return &StatsService{donors: donors, donations: donations, log: log}
}

// GetReferralStats summarizes donations attributed to donorID as referrer.
func (s *StatsService) GetReferralStats(ctx context.Context, donorID uuid.UUID) (*domain.ReferralStats, error) {
	donor, err := s.donor(ctx, donorID)
	if err != nil {
		return nil, err
	}

	totals, err := s.donations.ReferralTotals(ctx, donorID)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("referral totals: %w", err))
	}

	return &domain.ReferralStats{
		DonorID:              donor.ID,
		DonorName:            donor.FullName,
		DonorEmail:           donor.Email,
		ReferralCode:         donor.ReferralCode,
		TotalReferrals:       totals.Count,
		ConfirmedReferrals:   totals.Completed,
		PendingReferrals:     totals.Pending,
		FailedReferrals:      totals.Failed,
		RefundedReferrals:    totals.Refunded,
		TotalRaisedConfirmed: totals.SumCompleted,
		TotalRaisedAll:       totals.SumAll,
		LastReferralDate:     totals.LastDate,
		DonorCreatedAt:       donor.CreatedAt,
	}, nil
}

// GetDonorAggregateStats combines a donor's own confirmed giving with the
// confirmed giving they referred.
func (s *StatsService) GetDonorAggregateStats(ctx context.Context, donorID uuid.UUID) (*domain.AggregateStats, error) {
	donor, err := s.donor(ctx, donorID)
	if err != nil {
		return nil, err
	}

	own, err := s.donations.DonorTotals(ctx, donorID)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("donor totals: %w", err))
	}
	referred, err := s.donations.ReferralTotals(ctx, donorID)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("referral totals: %w", err))
	}

	wallet := ""
	if donor.WalletAddress != nil {
		wallet = *donor.WalletAddress
	}

	return &domain.AggregateStats{
		DonorID:                 donor.ID,
		DonorName:               donor.FullName,
		DonorEmail:              donor.Email,
		WalletAddress:           wallet,
		ReferralCode:            donor.ReferralCode,
		OwnDonationCount:        own.Count,
		OwnConfirmedCount:       own.Completed,
		OwnDonationsConfirmed:   own.SumCompleted,
		ReferralCount:           referred.Count,
		ReferralConfirmedCount:  referred.Completed,
		ReferralAmountConfirmed: referred.SumCompleted,
		TotalImpact:             own.SumCompleted.Add(referred.SumCompleted),
		DonorCreatedAt:          donor.CreatedAt,
	}, nil
}

func (s *StatsService) donor(ctx context.Context, id uuid.UUID) (*domain.Donor, error) {
	donor, err := s.donors.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatastore(fmt.Errorf("get donor: %w", err))
	}
	if donor == nil {
		return nil, apperror.ErrNotFound("donor")
	}
	return donor, nil
}
