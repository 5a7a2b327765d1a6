// Package metrics exposes ledger counters to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"donation-ledger/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "donation_ledger"

// Ledger implements ports.LedgerMetrics.
type Ledger struct {
	donationsRecorded *prometheus.CounterVec
	statusTransitions *prometheus.CounterVec
	ingestions        *prometheus.CounterVec
	codeCollisions    prometheus.Counter
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// New registers the ledger metrics with registry.
func New(registry prometheus.Registerer) *Ledger {
	factory := promauto.With(registry)

	return &Ledger{
		donationsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "donations_recorded_total",
			Help:      "Donations recorded, by whether a referrer was attributed",
		}, []string{"referral_attributed"}),
		statusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "donation_status_transitions_total",
			Help:      "Donation status transitions out of pending",
		}, []string{"to"}),
		ingestions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confirmations_ingested_total",
			Help:      "Chain confirmation events by outcome",
		}, []string{"outcome"}),
		codeCollisions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "referral_code_collisions_total",
			Help:      "Referral code candidates rejected as taken or reserved",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (l *Ledger) DonationRecorded(referralAttributed bool) {
	l.donationsRecorded.WithLabelValues(strconv.FormatBool(referralAttributed)).Inc()
}

func (l *Ledger) StatusTransitioned(to domain.DonationStatus) {
	l.statusTransitions.WithLabelValues(string(to)).Inc()
}

func (l *Ledger) ConfirmationIngested(outcome string) {
	l.ingestions.WithLabelValues(outcome).Inc()
}

func (l *Ledger) ReferralCodeCollision() {
	l.codeCollisions.Inc()
}

// ObserveRequest records one served HTTP request.
func (l *Ledger) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	l.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	l.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
