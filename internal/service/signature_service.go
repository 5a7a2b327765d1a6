package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// WebhookSignatureService implements ports.SignatureService with HMAC-SHA256
// over a canonical TIMESTAMP|NONCE|BODY string.
type WebhookSignatureService struct{}

// NewWebhookSignatureService creates a new WebhookSignatureService.
func NewWebhookSignatureService() *WebhookSignatureService {
	return &WebhookSignatureService{}
}

// Sign returns the lowercase hex HMAC-SHA256 of payload.
func (s *WebhookSignatureService) Sign(secretKey string, payload string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares in constant time. Hex case in signature is ignored.
func (s *WebhookSignatureService) Verify(secretKey string, payload string, signature string) bool {
	expected := s.Sign(secretKey, payload)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

// BuildCanonicalString joins the signed parts of a webhook delivery.
func (s *WebhookSignatureService) BuildCanonicalString(timestamp int64, nonce string, body string) string {
	var b strings.Builder
	b.Grow(len(nonce) + len(body) + 24)
	b.WriteString(strconv.FormatInt(timestamp, 10))
	b.WriteByte('|')
	b.WriteString(nonce)
	b.WriteByte('|')
	b.WriteString(body)
	return b.String()
}
