package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DonationStatus represents the lifecycle state of a donation.
type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusFailed    DonationStatus = "failed"
	DonationStatusRefunded  DonationStatus = "refunded"
)

// Defaults applied when a donation omits network or currency.
const (
	DefaultNetwork  = "ethereum"
	DefaultCurrency = "ETH"
)

// MaxAmountScale is the most fractional digits a donation amount may carry,
// matching the smallest ether unit.
const MaxAmountScale = 18

// ErrInvalidAmount is returned for amounts that are not positive decimals
// with at most MaxAmountScale fractional digits.
var ErrInvalidAmount = errors.New("amount must be a positive decimal with at most 18 fractional digits")

// ParseAmount parses a donation amount. Trailing fractional zeros do not
// count toward the scale.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	if !d.Equal(d.Truncate(MaxAmountScale)) {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// Valid reports whether s is one of the known statuses.
func (s DonationStatus) Valid() bool {
	switch s {
	case DonationStatusPending, DonationStatusCompleted, DonationStatusFailed, DonationStatusRefunded:
		return true
	}
	return false
}

// IsTerminal returns true for statuses that admit no further transition.
func (s DonationStatus) IsTerminal() bool {
	return s == DonationStatusCompleted ||
		s == DonationStatusFailed ||
		s == DonationStatusRefunded
}

// DonationMetadata is stored alongside the donation as JSON.
type DonationMetadata struct {
	Network            string `json:"network"`
	Currency           string `json:"currency"`
	ReferralAttributed bool   `json:"referral_attributed"`
}

// Donation is a single contribution from a donor to a candidate.
type Donation struct {
	ID              uuid.UUID        `json:"id"`
	DonorID         uuid.UUID        `json:"donor_id"`
	CandidateID     uuid.UUID        `json:"candidate_id"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	Network         string           `json:"network"`
	TransactionHash *string          `json:"transaction_hash,omitempty"`
	Status          DonationStatus   `json:"status"`
	ReferrerID      *uuid.UUID       `json:"referrer_id,omitempty"`
	ReferralCode    *string          `json:"referral_code,omitempty"`
	DonationDate    time.Time        `json:"donation_date"`
	ConfirmedAt     *time.Time       `json:"confirmed_at,omitempty"`
	BlockNumber     *int64           `json:"block_number,omitempty"`
	GasUsed         *string          `json:"gas_used,omitempty"`
	GasPrice        *string          `json:"gas_price,omitempty"`
	Metadata        DonationMetadata `json:"metadata"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// IsTerminal returns true if the donation can no longer change status.
func (d *Donation) IsTerminal() bool {
	return d.Status.IsTerminal()
}

// StatusExtra carries chain data recorded alongside a status change.
type StatusExtra struct {
	BlockNumber *int64
	GasUsed     *string
	GasPrice    *string
}

// StatusTransition is a conditional update: it applies only while the
// stored status is still pending.
type StatusTransition struct {
	DonationID  uuid.UUID
	To          DonationStatus
	ConfirmedAt *time.Time
	Extra       StatusExtra
	At          time.Time
}
