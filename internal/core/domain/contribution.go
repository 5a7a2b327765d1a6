package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// weiPerEthExp is the decimal exponent between wei and ether.
const weiPerEthExp = 18

// ContributionStatusCompleted is the only status written: unverified
// contributions are never logged.
const ContributionStatusCompleted = "completed"

var (
	txHashRe  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	// uint256 max has 78 decimal digits.
	weiRe = regexp.MustCompile(`^[0-9]{1,78}$`)
)

// ErrInvalidWei is returned for wei values that are not plain decimal
// integers within uint256 range.
var ErrInvalidWei = errors.New("wei amount must be a non-negative integer")

// ContributionLog is the dedup ledger for external confirmation events.
// One row per transaction hash; rows are never updated.
type ContributionLog struct {
	ID                 uuid.UUID       `json:"id"`
	TransactionHash    string          `json:"transaction_hash"`
	ContributorAddress string          `json:"contributor_address"`
	ContractAddress    string          `json:"contract_address"`
	AmountWei          string          `json:"amount_wei"`
	AmountEth          decimal.Decimal `json:"amount_eth"`
	BlockNumber        int64           `json:"block_number"`
	GasUsed            *string         `json:"gas_used,omitempty"`
	GasPrice           *string         `json:"gas_price,omitempty"`
	Status             string          `json:"status"`
	WebhookReceivedAt  time.Time       `json:"webhook_received_at"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ConfirmationEvent is an out-of-band notice that a chain payment was mined.
type ConfirmationEvent struct {
	TransactionHash string
	BlockNumber     int64
	From            string
	To              string
	ValueWei        string
	GasUsed         *string
	GasPrice        *string
}

// ChainReceipt is what the chain client reports for a mined transaction.
type ChainReceipt struct {
	Success         bool
	TransactionHash string
	BlockNumber     int64
	GasUsed         string
	GasPrice        string
}

// IngestResult is returned for both first-time and repeated deliveries.
type IngestResult struct {
	LogID             uuid.UUID  `json:"log_id"`
	TransactionHash   string     `json:"transaction_hash"`
	MatchedDonationID *uuid.UUID `json:"matched_donation_id,omitempty"`
	AlreadyProcessed  bool       `json:"already_processed"`
}

// IsTransactionHash reports whether s is a 0x-prefixed 32-byte hex hash.
func IsTransactionHash(s string) bool {
	return txHashRe.MatchString(s)
}

// IsAddress reports whether s is a 0x-prefixed 20-byte hex address.
func IsAddress(s string) bool {
	return addressRe.MatchString(s)
}

// NormalizeAddress lowercases a hex address or hash for storage and matching.
func NormalizeAddress(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsWei reports whether s is a base-10 digit string that fits in uint256.
// Signs, exponents and fractions are rejected.
func IsWei(s string) bool {
	return weiRe.MatchString(s)
}

// WeiToEth converts an integer wei string to an exact ether amount.
func WeiToEth(wei string) (decimal.Decimal, error) {
	wei = strings.TrimSpace(wei)
	if !IsWei(wei) {
		return decimal.Zero, ErrInvalidWei
	}
	v, err := decimal.NewFromString(wei)
	if err != nil {
		return decimal.Zero, ErrInvalidWei
	}
	return v.Shift(-weiPerEthExp), nil
}
