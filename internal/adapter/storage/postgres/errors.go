package postgres

import (
	"errors"

	"donation-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Unique constraint names declared in schema.sql.
const (
	constraintDonorEmail        = "donors_email_key"
	constraintDonorReferralCode = "donors_referral_code_key"
	constraintContributionHash  = "contribution_logs_transaction_hash_key"
)

// duplicateError maps a unique violation to its domain sentinel.
// It returns nil for any other error.
func duplicateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case constraintDonorEmail:
		return domain.ErrDuplicateEmail
	case constraintDonorReferralCode:
		return domain.ErrDuplicateReferralCode
	case constraintContributionHash:
		return domain.ErrDuplicateTransactionHash
	}
	return nil
}
