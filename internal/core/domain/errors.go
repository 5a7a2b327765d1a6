package domain

import "errors"

// Storage adapters translate unique-constraint violations into these so
// services can apply the idempotent-create pattern without knowing the driver.
var (
	ErrDuplicateEmail           = errors.New("donor email already registered")
	ErrDuplicateReferralCode    = errors.New("referral code already issued")
	ErrDuplicateTransactionHash = errors.New("transaction hash already logged")
)
