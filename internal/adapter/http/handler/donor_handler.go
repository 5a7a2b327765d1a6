package handler

import (
	"donation-ledger/internal/adapter/http/dto"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"
	"donation-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// DonorHandler handles donor registration, lookup and stats endpoints.
type DonorHandler struct {
	registry ports.DonorRegistry
	stats    ports.StatsAggregator
}

// NewDonorHandler creates a new DonorHandler.
func NewDonorHandler(registry ports.DonorRegistry, stats ports.StatsAggregator) *DonorHandler {
	return &DonorHandler{registry: registry, stats: stats}
}

// CreateDonor handles POST /api/v1/donors. Registering an existing email
// returns that donor with its original referral code.
func (h *DonorHandler) CreateDonor(c *gin.Context) {
	var req dto.CreateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	donor, err := h.registry.CreateOrGetDonor(c.Request.Context(), ports.DonorInput{
		Email:         req.Email,
		FullName:      req.FullName,
		WalletAddress: req.WalletAddress,
		Phone:         req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, donor)
}

// GetDonor handles GET /api/v1/donors/:id.
func (h *DonorHandler) GetDonor(c *gin.Context) {
	id, err := pathID(c, "donor")
	if err != nil {
		response.Error(c, err)
		return
	}

	donor, err := h.registry.GetDonor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, donor)
}

// GetReferralStats handles GET /api/v1/donors/:id/referral-stats.
func (h *DonorHandler) GetReferralStats(c *gin.Context) {
	id, err := pathID(c, "donor")
	if err != nil {
		response.Error(c, err)
		return
	}

	stats, err := h.stats.GetReferralStats(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stats)
}

// GetAggregateStats handles GET /api/v1/donors/:id/stats.
func (h *DonorHandler) GetAggregateStats(c *gin.Context) {
	id, err := pathID(c, "donor")
	if err != nil {
		response.Error(c, err)
		return
	}

	stats, err := h.stats.GetDonorAggregateStats(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stats)
}
