package handler

import (
	"donation-ledger/internal/adapter/http/dto"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"
	"donation-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReferralHandler handles referral code lookups.
type ReferralHandler struct {
	registry ports.DonorRegistry
}

// NewReferralHandler creates a new ReferralHandler.
func NewReferralHandler(registry ports.DonorRegistry) *ReferralHandler {
	return &ReferralHandler{registry: registry}
}

// Validate handles GET /api/v1/referrals/validate?code=.
// Unknown or malformed codes answer 200 with is_valid=false.
func (h *ReferralHandler) Validate(c *gin.Context) {
	var q dto.ValidateReferralQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	v, err := h.registry.ValidateReferralCode(c.Request.Context(), q.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ReferralValidationResponse{IsValid: v.IsValid}
	if v.Donor != nil {
		resp.Donor = &dto.ReferralDonorResponse{
			ID:           v.Donor.ID.String(),
			Name:         v.Donor.Name,
			ReferralCode: v.Donor.ReferralCode,
		}
	}
	response.OK(c, resp)
}
