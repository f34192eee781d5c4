package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Requests.WithLabelValues("/api/order", "GET", "200").Inc()
	m.Duration.WithLabelValues("/api/order", "GET").Observe(0.01)
	m.AuthRejected.WithLabelValues("expired").Inc()

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	expected := `
# HELP order_api_auth_rejected_total Requests rejected by the bearer token check, by reason.
# TYPE order_api_auth_rejected_total counter
order_api_auth_rejected_total{reason="expired"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "order_api_auth_rejected_total"))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
