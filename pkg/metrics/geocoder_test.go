package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveLookupCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewGeocoderMetrics(reg)

	m.ObserveLookup(20*time.Millisecond, true)
	m.ObserveLookup(5*time.Millisecond, false)
	m.ObserveLookup(5*time.Millisecond, false)

	if got := testutil.ToFloat64(m.success); got != 1 {
		t.Fatalf("expected 1 success, got %v", got)
	}
	if got := testutil.ToFloat64(m.failure); got != 2 {
		t.Fatalf("expected 2 failures, got %v", got)
	}
}

func TestObserveLookupNilSafe(t *testing.T) {
	var m *GeocoderMetrics
	m.ObserveLookup(time.Millisecond, true)

	unregistered := NewGeocoderMetrics(nil)
	unregistered.ObserveLookup(time.Millisecond, false)
}
