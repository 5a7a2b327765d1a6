package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"donation-ledger/internal/core/ports"
	"donation-ledger/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testWebhookCfg = WebhookAuthConfig{
	Secret:   "whsec_test",
	MaxSkew:  5 * time.Minute,
	NonceTTL: 10 * time.Minute,
}

func webhookRouter(cfg WebhookAuthConfig, sigSvc ports.SignatureService, nonceStore ports.NonceStore, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.POST("/hook", WebhookAuth(cfg, sigSvc, nonceStore, zerolog.Nop()), handler)
	return router
}

func okHandler(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }

func signedRequest(ts int64, nonce, signature, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/hook", bytes.NewBufferString(body))
	req.Header.Set(HeaderWebhookSignature, signature)
	req.Header.Set(HeaderWebhookTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(HeaderWebhookNonce, nonce)
	return req
}

func TestWebhookAuth_MissingHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := webhookRouter(testWebhookCfg, mocks.NewMockSignatureService(ctrl), mocks.NewMockNonceStore(ctrl), okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/hook", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookAuth_NoSecretConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testWebhookCfg
	cfg.Secret = ""
	router := webhookRouter(cfg, mocks.NewMockSignatureService(ctrl), mocks.NewMockNonceStore(ctrl), okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(time.Now().Unix(), "n1", "sig", "{}"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookAuth_ExpiredTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := webhookRouter(testWebhookCfg, mocks.NewMockSignatureService(ctrl), mocks.NewMockNonceStore(ctrl), okHandler)

	for _, ts := range []int64{
		time.Now().Add(-10 * time.Minute).Unix(),
		time.Now().Add(10 * time.Minute).Unix(),
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, signedRequest(ts, "n1", "sig", "{}"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	}
}

func TestWebhookAuth_BadSignatureDoesNotBurnNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	sigSvc := mocks.NewMockSignatureService(ctrl)
	nonceStore := mocks.NewMockNonceStore(ctrl)
	now := time.Now().Unix()

	sigSvc.EXPECT().BuildCanonicalString(now, "n1", "{}").Return("canonical")
	sigSvc.EXPECT().Verify("whsec_test", "canonical", "forged").Return(false)

	w := httptest.NewRecorder()
	webhookRouter(testWebhookCfg, sigSvc, nonceStore, okHandler).ServeHTTP(w, signedRequest(now, "n1", "forged", "{}"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookAuth_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	sigSvc := mocks.NewMockSignatureService(ctrl)
	nonceStore := mocks.NewMockNonceStore(ctrl)
	now := time.Now().Unix()
	body := `{"transactionHash":"0xabc"}`

	sigSvc.EXPECT().BuildCanonicalString(now, "n-ok", body).Return("canonical")
	sigSvc.EXPECT().Verify("whsec_test", "canonical", "valid_sig").Return(true)
	nonceStore.EXPECT().CheckAndSet(gomock.Any(), webhookNonceScope, "n-ok", testWebhookCfg.NonceTTL).Return(true, nil)

	var seenBody string
	router := webhookRouter(testWebhookCfg, sigSvc, nonceStore, func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		seenBody = string(b)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, signedRequest(now, "n-ok", "valid_sig", body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, seenBody, "body must be readable again after verification")
}

func TestWebhookAuth_ReplayedNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	sigSvc := mocks.NewMockSignatureService(ctrl)
	nonceStore := mocks.NewMockNonceStore(ctrl)
	now := time.Now().Unix()

	sigSvc.EXPECT().BuildCanonicalString(now, "n-used", "{}").Return("canonical")
	sigSvc.EXPECT().Verify("whsec_test", "canonical", "valid_sig").Return(true)
	nonceStore.EXPECT().CheckAndSet(gomock.Any(), webhookNonceScope, "n-used", gomock.Any()).Return(false, nil)

	w := httptest.NewRecorder()
	webhookRouter(testWebhookCfg, sigSvc, nonceStore, okHandler).ServeHTTP(w, signedRequest(now, "n-used", "valid_sig", "{}"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SEC_003", resp["error_code"])
}

func TestWebhookAuth_NonceStoreDownAllows(t *testing.T) {
	ctrl := gomock.NewController(t)
	sigSvc := mocks.NewMockSignatureService(ctrl)
	nonceStore := mocks.NewMockNonceStore(ctrl)
	now := time.Now().Unix()

	sigSvc.EXPECT().BuildCanonicalString(now, "n1", "{}").Return("canonical")
	sigSvc.EXPECT().Verify("whsec_test", "canonical", "valid_sig").Return(true)
	nonceStore.EXPECT().CheckAndSet(gomock.Any(), webhookNonceScope, "n1", gomock.Any()).Return(false, errors.New("redis down"))

	w := httptest.NewRecorder()
	webhookRouter(testWebhookCfg, sigSvc, nonceStore, okHandler).ServeHTTP(w, signedRequest(now, "n1", "valid_sig", "{}"))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(tokenSvc *mocks.MockTokenService)
	}{
		{name: "missing header"},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "empty bearer", header: "Bearer "},
		{
			name:   "invalid token",
			header: "Bearer bad_token",
			setup: func(tokenSvc *mocks.MockTokenService) {
				tokenSvc.EXPECT().Validate("bad_token").Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tokenSvc := mocks.NewMockTokenService(ctrl)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			router := gin.New()
			router.GET("/test", JWTAuth(tokenSvc, zerolog.Nop()), okHandler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestJWTAuth_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("good_token").Return(&ports.TokenClaims{Operator: "ops", Issuer: "donation-ledger"}, nil)

	var captured string
	router := gin.New()
	router.GET("/test", JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		captured = c.GetString(CtxOperator)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer good_token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ops", captured)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRequestID)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Len(t, w.Body.String(), 36)
}

func TestRecovery_PanicRecovered(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zerolog.Nop()))
	router.GET("/panic", func(c *gin.Context) {
		panic("something went wrong")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_000", resp["error_code"])
}

type recordedRequest struct {
	method, route string
	status        int
}

type fakeObserver struct{ seen []recordedRequest }

func (f *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	f.seen = append(f.seen, recordedRequest{method, route, status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	obs := &fakeObserver{}
	router := gin.New()
	router.Use(Metrics(obs))
	router.GET("/api/v1/donations/:id", okHandler)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/donations/abc", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Len(t, obs.seen, 2)
	assert.Equal(t, recordedRequest{"GET", "/api/v1/donations/:id", http.StatusOK}, obs.seen[0])
	assert.Equal(t, recordedRequest{"GET", "unmatched", http.StatusNotFound}, obs.seen[1])
}

func TestAuditLog(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(AuditLog(zerolog.New(&buf)))
	router.PATCH("/api/v1/donations/:id/status", func(c *gin.Context) {
		c.Set(CtxOperator, "ops")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.POST("/api/v1/donations", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false})
	})
	router.GET("/api/v1/donations/:id", okHandler)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/api/v1/donations/d-1/status", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/donations", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/donations/d-1", nil))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "only successful writes are audited")

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &event))
	assert.Equal(t, "audit", event["component"])
	assert.Equal(t, string(AuditDonationStatusChanged), event["action"])
	assert.Equal(t, "d-1", event["resource_id"])
	assert.Equal(t, "ops", event["operator"])
}

func TestWebhookAuth_ServerErrorReleasesNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	sigSvc := mocks.NewMockSignatureService(ctrl)
	nonceStore := mocks.NewMockNonceStore(ctrl)
	now := time.Now().Unix()

	sigSvc.EXPECT().BuildCanonicalString(now, "n-retry", "{}").Return("canonical")
	sigSvc.EXPECT().Verify("whsec_test", "canonical", "valid_sig").Return(true)
	nonceStore.EXPECT().CheckAndSet(gomock.Any(), webhookNonceScope, "n-retry", gomock.Any()).Return(true, nil)
	nonceStore.EXPECT().Release(gomock.Any(), webhookNonceScope, "n-retry").Return(nil)

	unavailable := func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error_code": "EXT_001"})
	}
	w := httptest.NewRecorder()
	webhookRouter(testWebhookCfg, sigSvc, nonceStore, unavailable).ServeHTTP(w, signedRequest(now, "n-retry", "valid_sig", "{}"))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestWebhookAuth_ClientErrorKeepsNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	sigSvc := mocks.NewMockSignatureService(ctrl)
	nonceStore := mocks.NewMockNonceStore(ctrl)
	now := time.Now().Unix()

	sigSvc.EXPECT().BuildCanonicalString(now, "n-bad", "{}").Return("canonical")
	sigSvc.EXPECT().Verify("whsec_test", "canonical", "valid_sig").Return(true)
	nonceStore.EXPECT().CheckAndSet(gomock.Any(), webhookNonceScope, "n-bad", gomock.Any()).Return(true, nil)

	rejected := func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error_code": "EXT_002"})
	}
	w := httptest.NewRecorder()
	webhookRouter(testWebhookCfg, sigSvc, nonceStore, rejected).ServeHTTP(w, signedRequest(now, "n-bad", "valid_sig", "{}"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
