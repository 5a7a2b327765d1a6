package dto

import "encoding/json"

// CreateDonorRequest is the request body for donor registration.
type CreateDonorRequest struct {
	Email         string  `json:"email" binding:"required,email,max=255"`
	FullName      string  `json:"full_name" binding:"required,min=1,max=255"`
	WalletAddress *string `json:"wallet_address,omitempty" binding:"omitempty,eth_addr"`
	Phone         *string `json:"phone,omitempty" binding:"omitempty,max=32"`
}

// RecordDonationRequest is the request body for recording a donation.
// ReferralCode is not format-checked: unknown codes are accepted and left
// unattributed.
type RecordDonationRequest struct {
	DonorEmail      string  `json:"donor_email" binding:"required,email,max=255"`
	DonorName       string  `json:"donor_name" binding:"required,min=1,max=255"`
	WalletAddress   *string `json:"wallet_address,omitempty" binding:"omitempty,eth_addr"`
	Phone           *string `json:"phone,omitempty" binding:"omitempty,max=32"`
	CandidateID     string  `json:"candidate_id" binding:"required,uuid"`
	Amount          string  `json:"amount" binding:"required,decimal_amount"`
	TransactionHash *string `json:"transaction_hash,omitempty" binding:"omitempty,tx_hash"`
	ReferralCode    *string `json:"referral_code,omitempty" binding:"omitempty,max=64"`
	Network         string  `json:"network,omitempty" binding:"omitempty,max=32,safe_id"`
	Currency        string  `json:"currency,omitempty" binding:"omitempty,max=16,safe_id"`
}

// UpdateStatusRequest is the operator request to move a donation out of pending.
type UpdateStatusRequest struct {
	Status      string  `json:"status" binding:"required,oneof=pending completed failed refunded"`
	BlockNumber *int64  `json:"block_number,omitempty" binding:"omitempty,gte=0"`
	GasUsed     *string `json:"gas_used,omitempty" binding:"omitempty,numeric"`
	GasPrice    *string `json:"gas_price,omitempty" binding:"omitempty,numeric"`
}

// ContributionWebhookRequest is the chain listener's confirmation payload.
// Field names follow the listener's camelCase wire format.
type ContributionWebhookRequest struct {
	TransactionHash   string       `json:"transactionHash" binding:"required,tx_hash"`
	BlockNumber       int64        `json:"blockNumber" binding:"gte=0"`
	From              string       `json:"from" binding:"required,eth_addr"`
	To                string       `json:"to" binding:"required,eth_addr"`
	Value             string       `json:"value" binding:"required,wei"`
	GasUsed           *json.Number `json:"gasUsed,omitempty"`
	EffectiveGasPrice *json.Number `json:"effectiveGasPrice,omitempty"`
}

// ValidateReferralQuery binds GET /referrals/validate.
type ValidateReferralQuery struct {
	Code string `form:"code" binding:"required,max=64"`
}

// ReferralValidationResponse mirrors domain.ReferralValidation.
type ReferralValidationResponse struct {
	IsValid bool                   `json:"is_valid"`
	Donor   *ReferralDonorResponse `json:"donor"`
}

// ReferralDonorResponse is the public view of a referrer.
type ReferralDonorResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ReferralCode string `json:"referral_code"`
}

// IngestResponse is returned for every accepted webhook delivery.
type IngestResponse struct {
	Message           string  `json:"message"`
	LogID             string  `json:"log_id"`
	TransactionHash   string  `json:"transaction_hash"`
	MatchedDonationID *string `json:"matched_donation_id,omitempty"`
	AlreadyProcessed  bool    `json:"already_processed"`
}
