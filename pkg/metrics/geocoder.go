package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GeocoderMetrics records outcome and latency of outbound geocoding lookups.
type GeocoderMetrics struct {
	duration *prometheus.HistogramVec
	success  prometheus.Counter
	failure  prometheus.Counter
}

// NewGeocoderMetrics registers the geocoder metrics on the provided registerer.
func NewGeocoderMetrics(reg prometheus.Registerer) *GeocoderMetrics {
	if reg == nil {
		return &GeocoderMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "geocoder_lookup_duration_seconds",
		Help:    "Duration of geocoder lookups in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	success := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geocoder_lookup_success_total",
		Help: "Geocoder lookups that resolved a coordinate pair.",
	})
	failure := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geocoder_lookup_failure_total",
		Help: "Geocoder lookups absorbed as absent.",
	})
	reg.MustRegister(duration, success, failure)
	return &GeocoderMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveLookup records one lookup attempt.
func (g *GeocoderMetrics) ObserveLookup(duration time.Duration, resolved bool) {
	if g == nil {
		return
	}
	outcome := "failure"
	if resolved {
		outcome = "success"
	}
	if g.duration != nil {
		g.duration.WithLabelValues(outcome).Observe(duration.Seconds())
	}
	if resolved {
		if g.success != nil {
			g.success.Inc()
		}
		return
	}
	if g.failure != nil {
		g.failure.Inc()
	}
}
