package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Candidate is the campaign a donation targets. Campaign management owns
// these rows; the ledger only reads them.
type Candidate struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	WalletAddress string          `json:"wallet_address"`
	Goal          decimal.Decimal `json:"campaign_goal"`
	Raised        decimal.Decimal `json:"total_raised"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
