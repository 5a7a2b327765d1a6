package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuditAction names a ledger write in the audit stream.
type AuditAction string

const (
	AuditDonorRegistered       AuditAction = "donor_registered"
	AuditDonationRecorded      AuditAction = "donation_recorded"
	AuditDonationStatusChanged AuditAction = "donation_status_changed"
	AuditContributionReceived  AuditAction = "contribution_received"
)

// AuditLog emits one audit event per successful write. Events go to log
// under the "audit" component so they can be routed separately.
func AuditLog(log zerolog.Logger) gin.HandlerFunc {
	audit := log.With().Str("component", "audit").Logger()

	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		event := audit.Info().
			Str("action", string(action)).
			Str("resource_type", resourceType).
			Str("request_id", c.GetString(CtxRequestID)).
			Str("client_ip", c.ClientIP()).
			Int("status", c.Writer.Status())
		if id := c.Param("id"); id != "" {
			event = event.Str("resource_id", id)
		}
		if op := c.GetString(CtxOperator); op != "" {
			event = event.Str("operator", op)
		}
		event.Msg("audit")
	}
}

func mapRouteToAction(route, method string) (AuditAction, string) {
	switch {
	case route == "/api/v1/donors" && method == http.MethodPost:
		return AuditDonorRegistered, "donor"
	case route == "/api/v1/donations" && method == http.MethodPost:
		return AuditDonationRecorded, "donation"
	case route == "/api/v1/donations/:id/status" && method == http.MethodPatch:
		return AuditDonationStatusChanged, "donation"
	case route == "/api/v1/webhooks/blockchain/contribution" && method == http.MethodPost:
		return AuditContributionReceived, "contribution_log"
	}
	return "", ""
}
