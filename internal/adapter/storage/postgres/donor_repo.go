package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const donorColumns = `id, email, full_name, wallet_address, phone, referral_code, donor_type, is_active, created_at, updated_at`

// DonorRepo implements ports.DonorRepository.
type DonorRepo struct {
	pool Pool
}

// NewDonorRepo creates a new DonorRepo.
func NewDonorRepo(pool Pool) *DonorRepo {
	return &DonorRepo{pool: pool}
}

// Create inserts a new donor. Email and referral code collisions are
// reported as domain sentinels.
func (r *DonorRepo) Create(ctx context.Context, d *domain.Donor) error {
	query := `INSERT INTO donors (` + donorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.Email, d.FullName, d.WalletAddress, d.Phone,
		d.ReferralCode, d.DonorType, d.IsActive, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert donor: %w", err)
	}
	return nil
}

// GetByID fetches a donor by its UUID.
func (r *DonorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE id = $1`
	return r.scanDonor(r.pool.QueryRow(ctx, query, id), "get donor by id")
}

// GetByEmail fetches a donor by normalized email.
func (r *DonorRepo) GetByEmail(ctx context.Context, email string) (*domain.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE email = $1`
	return r.scanDonor(r.pool.QueryRow(ctx, query, email), "get donor by email")
}

// GetByReferralCode fetches an active donor by referral code.
func (r *DonorRepo) GetByReferralCode(ctx context.Context, code string) (*domain.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE referral_code = $1 AND is_active = TRUE`
	return r.scanDonor(r.pool.QueryRow(ctx, query, code), "get donor by referral_code")
}

// ReferralCodeExists reports whether any donor, active or not, holds code.
func (r *DonorRepo) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM donors WHERE referral_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check referral code: %w", err)
	}
	return exists, nil
}

// UpdateWallet replaces the donor's wallet address and returns the updated row.
func (r *DonorRepo) UpdateWallet(ctx context.Context, id uuid.UUID, wallet string, at time.Time) (*domain.Donor, error) {
	query := `UPDATE donors SET wallet_address = $2, updated_at = $3 WHERE id = $1
		RETURNING ` + donorColumns
	return r.scanDonor(r.pool.QueryRow(ctx, query, id, wallet, at), "update donor wallet")
}

func (r *DonorRepo) scanDonor(row pgx.Row, op string) (*domain.Donor, error) {
	d := &domain.Donor{}
	err := row.Scan(
		&d.ID, &d.Email, &d.FullName, &d.WalletAddress, &d.Phone,
		&d.ReferralCode, &d.DonorType, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}
