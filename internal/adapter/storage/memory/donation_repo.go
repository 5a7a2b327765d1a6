package memory

import (
	"context"
	"strings"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DonationRepo implements ports.DonationRepository.
type DonationRepo struct {
	s *Store
}

func (r *DonationRepo) Create(_ context.Context, d *domain.Donation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.donations[d.ID] = cloneDonation(*d)
	return nil
}

func (r *DonationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.donations[id]
	if !ok {
		return nil, nil
	}
	out := cloneDonation(d)
	return &out, nil
}

// FindByWalletAndTxHash returns the oldest donation matching both keys.
func (r *DonationRepo) FindByWalletAndTxHash(_ context.Context, _ pgx.Tx, wallet, txHash string) (*domain.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found *domain.Donation
	for _, d := range r.s.donations {
		if d.TransactionHash == nil || !strings.EqualFold(*d.TransactionHash, txHash) {
			continue
		}
		donor, ok := r.s.donors[d.DonorID]
		if !ok || donor.WalletAddress == nil || !strings.EqualFold(*donor.WalletAddress, wallet) {
			continue
		}
		if found == nil || d.CreatedAt.Before(found.CreatedAt) {
			c := cloneDonation(d)
			found = &c
		}
	}
	return found, nil
}

// TransitionStatus applies t only to a pending donation.
func (r *DonationRepo) TransitionStatus(_ context.Context, tx pgx.Tx, t domain.StatusTransition) (*domain.Donation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.donations[t.DonationID]
	if !ok || d.Status != domain.DonationStatusPending {
		return nil, nil
	}
	prev := cloneDonation(d)

	d.Status = t.To
	if t.ConfirmedAt != nil {
		at := *t.ConfirmedAt
		d.ConfirmedAt = &at
	}
	if t.Extra.BlockNumber != nil {
		b := *t.Extra.BlockNumber
		d.BlockNumber = &b
	}
	if t.Extra.GasUsed != nil {
		d.GasUsed = cloneString(t.Extra.GasUsed)
	}
	if t.Extra.GasPrice != nil {
		d.GasPrice = cloneString(t.Extra.GasPrice)
	}
	d.UpdatedAt = t.At
	r.s.donations[d.ID] = d
	onRollback(tx, func() { r.s.donations[prev.ID] = prev })

	out := cloneDonation(d)
	return &out, nil
}

func (r *DonationRepo) ReferralTotals(_ context.Context, referrerID uuid.UUID) (*domain.DonationTotals, error) {
	return r.totals(func(d domain.Donation) bool {
		return d.ReferrerID != nil && *d.ReferrerID == referrerID
	}), nil
}

func (r *DonationRepo) DonorTotals(_ context.Context, donorID uuid.UUID) (*domain.DonationTotals, error) {
	return r.totals(func(d domain.Donation) bool { return d.DonorID == donorID }), nil
}

func (r *DonationRepo) totals(match func(domain.Donation) bool) *domain.DonationTotals {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t := &domain.DonationTotals{SumCompleted: decimal.Zero, SumAll: decimal.Zero}
	for _, d := range r.s.donations {
		if !match(d) {
			continue
		}
		t.Count++
		t.SumAll = t.SumAll.Add(d.Amount)
		switch d.Status {
		case domain.DonationStatusPending:
			t.Pending++
		case domain.DonationStatusCompleted:
			t.Completed++
			t.SumCompleted = t.SumCompleted.Add(d.Amount)
		case domain.DonationStatusFailed:
			t.Failed++
		case domain.DonationStatusRefunded:
			t.Refunded++
		}
		if t.LastDate == nil || d.DonationDate.After(*t.LastDate) {
			at := d.DonationDate
			t.LastDate = &at
		}
	}
	return t
}

func cloneDonation(d domain.Donation) domain.Donation {
	d.TransactionHash = cloneString(d.TransactionHash)
	d.ReferralCode = cloneString(d.ReferralCode)
	d.GasUsed = cloneString(d.GasUsed)
	d.GasPrice = cloneString(d.GasPrice)
	if d.ReferrerID != nil {
		id := *d.ReferrerID
		d.ReferrerID = &id
	}
	if d.ConfirmedAt != nil {
		at := *d.ConfirmedAt
		d.ConfirmedAt = &at
	}
	if d.BlockNumber != nil {
		b := *d.BlockNumber
		d.BlockNumber = &b
	}
	return d
}
