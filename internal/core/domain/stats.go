package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DonationTotals is a raw rollup over a set of donation rows.
type DonationTotals struct {
	Count        int64
	Pending      int64
	Completed    int64
	Failed       int64
	Refunded     int64
	SumCompleted decimal.Decimal
	SumAll       decimal.Decimal
	LastDate     *time.Time
}

// ReferralStats summarizes donations attributed to a referrer.
type ReferralStats struct {
	DonorID              uuid.UUID       `json:"donor_id"`
	DonorName            string          `json:"donor_name"`
	DonorEmail           string          `json:"donor_email"`
	ReferralCode         string          `json:"referral_code"`
	TotalReferrals       int64           `json:"total_referrals"`
	ConfirmedReferrals   int64           `json:"confirmed_referrals"`
	PendingReferrals     int64           `json:"pending_referrals"`
	FailedReferrals      int64           `json:"failed_referrals"`
	RefundedReferrals    int64           `json:"refunded_referrals"`
	TotalRaisedConfirmed decimal.Decimal `json:"total_raised_confirmed"`
	TotalRaisedAll       decimal.Decimal `json:"total_raised_all"`
	LastReferralDate     *time.Time      `json:"last_referral_date"`
	DonorCreatedAt       time.Time       `json:"donor_created_at"`
}

// AggregateStats combines a donor's own giving with what they referred.
type AggregateStats struct {
	DonorID                 uuid.UUID       `json:"donor_id"`
	DonorName               string          `json:"donor_name"`
	DonorEmail              string          `json:"donor_email"`
	WalletAddress           string          `json:"wallet_address"`
	ReferralCode            string          `json:"referral_code"`
	OwnDonationCount        int64           `json:"own_donation_count"`
	OwnConfirmedCount       int64           `json:"own_confirmed_count"`
	OwnDonationsConfirmed   decimal.Decimal `json:"own_donations_confirmed"`
	ReferralCount           int64           `json:"referral_count"`
	ReferralConfirmedCount  int64           `json:"referral_confirmed_count"`
	ReferralAmountConfirmed decimal.Decimal `json:"referral_amount_confirmed"`
	TotalImpact             decimal.Decimal `json:"total_impact"`
	DonorCreatedAt          time.Time       `json:"donor_created_at"`
}
