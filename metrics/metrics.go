package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder collects the metrics of forecast card runs. A nil *Recorder is valid
// and records nothing.
type Recorder struct {
	registry      *prometheus.Registry
	runs          *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	rainyDays     prometheus.Gauge
	lastSuccess   prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forecastcard",
			Name:      "runs_total",
			Help:      "Forecast card runs by outcome",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "forecastcard",
			Name:      "fetch_duration_seconds",
			Help:      "Time spent fetching the forecast payload",
			Buckets:   prometheus.DefBuckets,
		}),
		rainyDays: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "forecastcard",
			Name:      "rainy_days",
			Help:      "Days with hourly rain in the last rendered forecast",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "forecastcard",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful render",
		}),
	}

	r.registry.MustRegister(r.runs, r.fetchDuration, r.rainyDays, r.lastSuccess)
	return r
}

// ObserveFetch records how long the forecast fetch took
func (r *Recorder) ObserveFetch(d time.Duration) {
	if r == nil {
		return
	}
	r.fetchDuration.Observe(d.Seconds())
}

// RecordSuccess records a completed run
func (r *Recorder) RecordSuccess(rainyDays int, at time.Time) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues("success").Inc()
	r.rainyDays.Set(float64(rainyDays))
	r.lastSuccess.Set(float64(at.Unix()))
}

// RecordFailure records a failed run under the failure kind
func (r *Recorder) RecordFailure(kind string) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(kind).Inc()
}

// Gatherer exposes the registry, mainly for tests
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the metrics in the format read by node_exporter's textfile collector
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
