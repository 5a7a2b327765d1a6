package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReferralCodeLength is the fixed length of every issued referral code.
const ReferralCodeLength = 7

var referralCodeRe = regexp.MustCompile(`^[A-Z0-9]{7}$`)

// DonorTypeIndividual is the only donor type this service issues.
const DonorTypeIndividual = "individual"

// Donor is a person or entity that has donated or registered.
// Email and ReferralCode are unique; ReferralCode never changes once assigned.
type Donor struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	WalletAddress *string   `json:"wallet_address,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	ReferralCode  string    `json:"referral_code"`
	DonorType     string    `json:"donor_type"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NeedsWalletUpdate reports whether wallet should replace the stored address.
// Empty input never clears an existing address.
func (d *Donor) NeedsWalletUpdate(wallet *string) bool {
	if wallet == nil || *wallet == "" {
		return false
	}
	return d.WalletAddress == nil || *d.WalletAddress != *wallet
}

// DonorSummary is the public view of a referrer returned by code validation.
type DonorSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ReferralCode string    `json:"referral_code"`
}

// ReferralValidation is the outcome of looking up a referral code.
type ReferralValidation struct {
	IsValid bool          `json:"is_valid"`
	Donor   *DonorSummary `json:"donor"`
}

// NormalizeEmail lowercases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeReferralCode uppercases and trims a submitted code.
func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidReferralCode reports whether code has the issued format.
// It does not check that the code belongs to anyone.
func IsValidReferralCode(code string) bool {
	return referralCodeRe.MatchString(code)
}
