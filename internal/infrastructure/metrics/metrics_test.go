package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestExchangeMetrics_OfferLifecycle(t *testing.T) {
	m := NewExchangeMetrics(prometheus.NewRegistry())

	m.RecordOfferCreated("USD", 1_000)
	m.RecordOfferCompleted("USD", "release", 1_010, 42)
	m.RecordOfferCancelled("USD", "seller", 500, 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OffersCreatedTotal.WithLabelValues("USD")))
	assert.Equal(t, 1000.0, testutil.ToFloat64(m.OffersCreatedAmountTotal.WithLabelValues("USD")))
	assert.Equal(t, 1010.0, testutil.ToFloat64(m.EscrowReleasedAmount.WithLabelValues("release")))
	assert.Equal(t, 500.0, testutil.ToFloat64(m.EscrowReleasedAmount.WithLabelValues("refund")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OfferTransitionsTotal.WithLabelValues("CANCELLED")))
}

func TestExchangeMetrics_DisputeResolvedForcedLabel(t *testing.T) {
	m := NewExchangeMetrics(prometheus.NewRegistry())

	m.RecordDisputeResolved("REFUND", true)
	m.RecordDisputeResolved("FAVOR_BUYER", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DisputesResolvedTotal.WithLabelValues("REFUND", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DisputesResolvedTotal.WithLabelValues("FAVOR_BUYER", "false")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DisputesResolvedTotal.WithLabelValues("REFUND", "false")))
}

func TestNewExchangeMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewExchangeMetrics(reg)
	assert.Panics(t, func() { NewExchangeMetrics(reg) })
}
