package handler

import (
	"encoding/json"

	"donation-ledger/internal/adapter/http/dto"
	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"
	"donation-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// retryAfterSeconds is advertised to the sender on retryable failures.
const retryAfterSeconds = "30"

// WebhookHandler receives chain confirmation deliveries.
type WebhookHandler struct {
	ingester ports.ConfirmationIngester
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(ingester ports.ConfirmationIngester) *WebhookHandler {
	return &WebhookHandler{ingester: ingester}
}

// Contribution handles POST /api/v1/webhooks/blockchain/contribution.
// Repeat deliveries answer 200 with already_processed=true so the sender
// stops retrying; retryable failures carry retryable=true in the error body.
func (h *WebhookHandler) Contribution(c *gin.Context) {
	var req dto.ContributionWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.ingester.IngestConfirmation(c.Request.Context(), domain.ConfirmationEvent{
		TransactionHash: req.TransactionHash,
		BlockNumber:     req.BlockNumber,
		From:            req.From,
		To:              req.To,
		ValueWei:        req.Value,
		GasUsed:         numberString(req.GasUsed),
		GasPrice:        numberString(req.EffectiveGasPrice),
	})
	if err != nil {
		if apperror.IsRetryable(err) {
			c.Header("Retry-After", retryAfterSeconds)
		}
		response.Error(c, err)
		return
	}

	resp := dto.IngestResponse{
		Message:          "Contribution webhook processed successfully",
		LogID:            result.LogID.String(),
		TransactionHash:  result.TransactionHash,
		AlreadyProcessed: result.AlreadyProcessed,
	}
	if result.AlreadyProcessed {
		resp.Message = "Transaction already processed"
	}
	if result.MatchedDonationID != nil {
		id := result.MatchedDonationID.String()
		resp.MatchedDonationID = &id
	}
	response.OK(c, resp)
}

func numberString(n *json.Number) *string {
	if n == nil || *n == "" {
		return nil
	}
	s := n.String()
	return &s
}
