package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsExist(t *testing.T) {
	assert.NotNil(t, RequestDuration)
	assert.NotNil(t, CacheHits)
	assert.NotNil(t, StoreOperations)
	assert.NotNil(t, LedgerMutations)
	assert.NotNil(t, DeleteGateRejections)
	assert.NotNil(t, LoginAttempts)
	assert.NotNil(t, AuditEventsDropped)
	assert.NotNil(t, ActiveConnections)
}

func TestLedgerMutations(t *testing.T) {
	counter := LedgerMutations.WithLabelValues("save_member", "success")
	before := testutil.ToFloat64(counter)

	counter.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestDeleteGateRejections(t *testing.T) {
	counter := DeleteGateRejections.WithLabelValues("payment")
	before := testutil.ToFloat64(counter)

	counter.Add(2)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestActiveConnections(t *testing.T) {
	ActiveConnections.Set(0)
	ActiveConnections.Inc()
	ActiveConnections.Inc()
	ActiveConnections.Dec()

	assert.Equal(t, float64(1), testutil.ToFloat64(ActiveConnections))
}

func TestRequestDuration(t *testing.T) {
	RequestDuration.WithLabelValues("/v1/members", "GET", "200").Observe(0.05)
	RequestDuration.WithLabelValues("/v1/payments", "PUT", "403").Observe(0.01)
}
