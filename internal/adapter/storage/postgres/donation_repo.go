package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const donationColumns = `id, donor_id, candidate_id, amount, currency, network, transaction_hash, status,
	referrer_id, referral_code, donation_date, confirmed_at, block_number, gas_used, gas_price,
	metadata, created_at, updated_at`

// Totals are computed over one of these columns.
const (
	totalsByReferrer = "referrer_id"
	totalsByDonor    = "donor_id"
)

// DonationRepo implements ports.DonationRepository.
type DonationRepo struct {
	pool Pool
}

// NewDonationRepo creates a new DonationRepo.
func NewDonationRepo(pool Pool) *DonationRepo {
	return &DonationRepo{pool: pool}
}

// Create inserts a new donation.
func (r *DonationRepo) Create(ctx context.Context, d *domain.Donation) error {
	meta, err := json.Marshal(d.Metadata)
	if err != nil {
		return fmt.Errorf("marshal donation metadata: %w", err)
	}

	query := `INSERT INTO donations (` + donationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err = r.pool.Exec(ctx, query,
		d.ID, d.DonorID, d.CandidateID, d.Amount, d.Currency, d.Network, d.TransactionHash, d.Status,
		d.ReferrerID, d.ReferralCode, d.DonationDate, d.ConfirmedAt, d.BlockNumber, d.GasUsed, d.GasPrice,
		meta, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// GetByID fetches a donation by its UUID.
func (r *DonationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1`
	return r.scanDonation(r.pool.QueryRow(ctx, query, id), "get donation by id")
}

// FindByWalletAndTxHash finds the donation a chain confirmation refers to.
// Both wallet and hash compare case-insensitively.
func (r *DonationRepo) FindByWalletAndTxHash(ctx context.Context, tx pgx.Tx, wallet, txHash string) (*domain.Donation, error) {
	query := `SELECT ` + qualified("d", donationColumns) + `
		FROM donations d JOIN donors dn ON dn.id = d.donor_id
		WHERE lower(dn.wallet_address) = lower($1) AND lower(d.transaction_hash) = lower($2)
		ORDER BY d.created_at
		LIMIT 1`
	return r.scanDonation(tx.QueryRow(ctx, query, wallet, txHash), "find donation by wallet and hash")
}

// TransitionStatus moves a pending donation to t.To. The WHERE clause on
// status serializes concurrent writers; it returns nil if no pending row matched.
func (r *DonationRepo) TransitionStatus(ctx context.Context, tx pgx.Tx, t domain.StatusTransition) (*domain.Donation, error) {
	query := `UPDATE donations SET
			status = $2,
			confirmed_at = COALESCE($3, confirmed_at),
			block_number = COALESCE($4, block_number),
			gas_used = COALESCE($5, gas_used),
			gas_price = COALESCE($6, gas_price),
			updated_at = $7
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + donationColumns

	return r.scanDonation(tx.QueryRow(ctx, query,
		t.DonationID, t.To, t.ConfirmedAt, t.Extra.BlockNumber, t.Extra.GasUsed, t.Extra.GasPrice, t.At,
	), "transition donation status")
}

// ReferralTotals aggregates donations attributed to referrerID.
func (r *DonationRepo) ReferralTotals(ctx context.Context, referrerID uuid.UUID) (*domain.DonationTotals, error) {
	return r.totals(ctx, totalsByReferrer, referrerID)
}

// DonorTotals aggregates the donor's own donations.
func (r *DonationRepo) DonorTotals(ctx context.Context, donorID uuid.UUID) (*domain.DonationTotals, error) {
	return r.totals(ctx, totalsByDonor, donorID)
}

func (r *DonationRepo) totals(ctx context.Context, column string, id uuid.UUID) (*domain.DonationTotals, error) {
	query := fmt.Sprintf(`SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'pending') AS pending,
		COUNT(*) FILTER (WHERE status = 'completed') AS completed,
		COUNT(*) FILTER (WHERE status = 'failed') AS failed,
		COUNT(*) FILTER (WHERE status = 'refunded') AS refunded,
		COALESCE(SUM(amount) FILTER (WHERE status = 'completed'), 0) AS sum_completed,
		COALESCE(SUM(amount), 0) AS sum_all,
		MAX(donation_date) AS last_date
		FROM donations WHERE %s = $1`, column)

	t := &domain.DonationTotals{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.Count, &t.Pending, &t.Completed, &t.Failed, &t.Refunded,
		&t.SumCompleted, &t.SumAll, &t.LastDate,
	)
	if err != nil {
		return nil, fmt.Errorf("donation totals by %s: %w", column, err)
	}
	return t, nil
}

func (r *DonationRepo) scanDonation(row pgx.Row, op string) (*domain.Donation, error) {
	d := &domain.Donation{}
	var meta []byte
	err := row.Scan(
		&d.ID, &d.DonorID, &d.CandidateID, &d.Amount, &d.Currency, &d.Network, &d.TransactionHash, &d.Status,
		&d.ReferrerID, &d.ReferralCode, &d.DonationDate, &d.ConfirmedAt, &d.BlockNumber, &d.GasUsed, &d.GasPrice,
		&meta, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &d.Metadata); err != nil {
			return nil, fmt.Errorf("%s: decode metadata: %w", op, err)
		}
	}
	return d, nil
}

// qualified prefixes each column in a comma-separated list with alias.
func qualified(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
