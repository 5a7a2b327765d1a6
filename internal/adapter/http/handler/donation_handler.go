package handler

import (
	"donation-ledger/internal/adapter/http/dto"
	"donation-ledger/internal/adapter/http/middleware"
	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"
	"donation-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DonationHandler handles donation endpoints.
type DonationHandler struct {
	ledger ports.DonationLedger
	log    zerolog.Logger
}

// NewDonationHandler creates a new DonationHandler.
func NewDonationHandler(ledger ports.DonationLedger, log zerolog.Logger) *DonationHandler {
	return &DonationHandler{ledger: ledger, log: log}
}

// RecordDonation handles POST /api/v1/donations.
func (h *DonationHandler) RecordDonation(c *gin.Context) {
	var req dto.RecordDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid candidate id"))
		return
	}

	donation, err := h.ledger.RecordDonation(c.Request.Context(), ports.RecordDonationInput{
		Donor: ports.DonorInput{
			Email:         req.DonorEmail,
			FullName:      req.DonorName,
			WalletAddress: req.WalletAddress,
			Phone:         req.Phone,
		},
		CandidateID:     candidateID,
		Amount:          req.Amount,
		TransactionHash: req.TransactionHash,
		ReferralCode:    req.ReferralCode,
		Network:         req.Network,
		Currency:        req.Currency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, donation)
}

// GetDonation handles GET /api/v1/donations/:id.
func (h *DonationHandler) GetDonation(c *gin.Context) {
	id, err := pathID(c, "donation")
	if err != nil {
		response.Error(c, err)
		return
	}

	donation, err := h.ledger.GetDonation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, donation)
}

// UpdateStatus handles PATCH /api/v1/donations/:id/status (operator only).
func (h *DonationHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "donation")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	extra := &domain.StatusExtra{
		BlockNumber: req.BlockNumber,
		GasUsed:     req.GasUsed,
		GasPrice:    req.GasPrice,
	}

	donation, err := h.ledger.UpdateDonationStatus(c.Request.Context(), id, domain.DonationStatus(req.Status), extra)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.log.Info().
		Str("operator", c.GetString(middleware.CtxOperator)).
		Str("donation_id", id.String()).
		Str("status", req.Status).
		Msg("operator updated donation status")

	response.OK(c, donation)
}
