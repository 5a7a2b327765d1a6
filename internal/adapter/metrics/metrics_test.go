package metrics

import (
	"net/http"
	"testing"
	"time"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.LedgerMetrics = (*Ledger)(nil)

func TestLedger_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.DonationRecorded(true)
	m.DonationRecorded(true)
	m.DonationRecorded(false)
	m.StatusTransitioned(domain.DonationStatusCompleted)
	m.ConfirmationIngested(ports.OutcomeAlreadyProcessed)
	m.ReferralCodeCollision()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.donationsRecorded.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.donationsRecorded.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusTransitions.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ingestions.WithLabelValues("already_processed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.codeCollisions))
}

func TestLedger_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest(http.MethodPost, "/api/v1/donations", http.StatusCreated, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/v1/donations", "201")))
	n, err := testutil.GatherAndCount(reg, "donation_ledger_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
