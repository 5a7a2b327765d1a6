package memory

import (
	"context"
	"time"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// DonorRepo implements ports.DonorRepository.
type DonorRepo struct {
	s *Store
}

// Create inserts a donor, enforcing unique email and referral code.
func (r *DonorRepo) Create(_ context.Context, d *domain.Donor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.donors {
		if existing.Email == d.Email {
			return domain.ErrDuplicateEmail
		}
		if existing.ReferralCode == d.ReferralCode {
			return domain.ErrDuplicateReferralCode
		}
	}
	r.s.donors[d.ID] = cloneDonor(*d)
	return nil
}

func (r *DonorRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.donors[id]
	if !ok {
		return nil, nil
	}
	out := cloneDonor(d)
	return &out, nil
}

func (r *DonorRepo) GetByEmail(_ context.Context, email string) (*domain.Donor, error) {
	return r.find(func(d domain.Donor) bool { return d.Email == email }), nil
}

// GetByReferralCode only returns active donors.
func (r *DonorRepo) GetByReferralCode(_ context.Context, code string) (*domain.Donor, error) {
	return r.find(func(d domain.Donor) bool { return d.ReferralCode == code && d.IsActive }), nil
}

func (r *DonorRepo) ReferralCodeExists(_ context.Context, code string) (bool, error) {
	return r.find(func(d domain.Donor) bool { return d.ReferralCode == code }) != nil, nil
}

func (r *DonorRepo) UpdateWallet(_ context.Context, id uuid.UUID, wallet string, at time.Time) (*domain.Donor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.donors[id]
	if !ok {
		return nil, nil
	}
	d.WalletAddress = &wallet
	d.UpdatedAt = at
	r.s.donors[id] = d
	out := cloneDonor(d)
	return &out, nil
}

// SetActive flips a donor's active flag.
func (r *DonorRepo) SetActive(id uuid.UUID, active bool) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if d, ok := r.s.donors[id]; ok {
		d.IsActive = active
		r.s.donors[id] = d
	}
}

func (r *DonorRepo) find(match func(domain.Donor) bool) *domain.Donor {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.donors {
		if match(d) {
			out := cloneDonor(d)
			return &out
		}
	}
	return nil
}

func cloneDonor(d domain.Donor) domain.Donor {
	d.WalletAddress = cloneString(d.WalletAddress)
	d.Phone = cloneString(d.Phone)
	return d
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
