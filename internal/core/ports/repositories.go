package ports

import (
	"context"
	"time"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Lookups return (nil, nil) when the row does not exist.

// DonorRepository defines persistence operations for donors.
type DonorRepository interface {
	// Create inserts a donor. Unique violations surface as
	// domain.ErrDuplicateEmail or domain.ErrDuplicateReferralCode.
	Create(ctx context.Context, donor *domain.Donor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Donor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Donor, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.Donor, error)
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
	UpdateWallet(ctx context.Context, id uuid.UUID, wallet string, at time.Time) (*domain.Donor, error)
}

// DonationRepository defines persistence operations for donations.
// Methods accepting pgx.Tx run inside the caller's transaction.
type DonationRepository interface {
	Create(ctx context.Context, donation *domain.Donation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Donation, error)
	FindByWalletAndTxHash(ctx context.Context, tx pgx.Tx, wallet, txHash string) (*domain.Donation, error)
	// TransitionStatus applies t only while the stored status is pending.
	// It returns (nil, nil) when no pending row matched.
	TransitionStatus(ctx context.Context, tx pgx.Tx, t domain.StatusTransition) (*domain.Donation, error)
	// Read-side rollups
	ReferralTotals(ctx context.Context, referrerID uuid.UUID) (*domain.DonationTotals, error)
	DonorTotals(ctx context.Context, donorID uuid.UUID) (*domain.DonationTotals, error)
}

// ContributionLogRepository is the insert-only dedup ledger for confirmations.
type ContributionLogRepository interface {
	// Create returns domain.ErrDuplicateTransactionHash on a hash collision.
	Create(ctx context.Context, tx pgx.Tx, log *domain.ContributionLog) error
	GetByTransactionHash(ctx context.Context, txHash string) (*domain.ContributionLog, error)
}

// CandidateRepository reads campaigns owned by campaign management.
type CandidateRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
	ListActive(ctx context.Context) ([]domain.Candidate, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
