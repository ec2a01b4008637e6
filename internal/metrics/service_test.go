package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestServiceCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncActions("join")
	svc.IncActions("join")
	svc.IncValidationRejected("join")
	svc.IncRemoteFailures("leave")
	svc.IncSnapshotWriteFailed()
	svc.IncNotifSent()
	svc.IncNotifFailed()

	assert.Equal(t, float64(2), testutil.ToFloat64(svc.Actions.WithLabelValues("join")))
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.ValidationRejected.WithLabelValues("join")))
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.RemoteFailures.WithLabelValues("leave")))
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.SnapshotWriteFailed))
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.NotifSent))
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.NotifFailed))
}

func TestSetStartupTime(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.SetStartupTime(1.5)
	assert.Equal(t, 1.5, testutil.ToFloat64(svc.StartupTimeSeconds))
}
