package handler

import (
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// CandidateHandler lists campaigns open for donations.
type CandidateHandler struct {
	ledger ports.DonationLedger
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(ledger ports.DonationLedger) *CandidateHandler {
	return &CandidateHandler{ledger: ledger}
}

// ListActive handles GET /api/v1/candidates.
func (h *CandidateHandler) ListActive(c *gin.Context) {
	candidates, err := h.ledger.ListActiveCandidates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, candidates)
}
