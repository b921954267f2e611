// Package metrics exposes Prometheus instruments for the seeding pipeline and
// the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tradeseed"

// Recorder holds every instrument. It satisfies seed.Recorder.
type Recorder struct {
	stageDuration   *prometheus.HistogramVec
	stageFailures   *prometheus.CounterVec
	documentsSeeded *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	httpInFlight    prometheus.Gauge
}

// New registers the instruments on reg. A nil reg creates them unregistered.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		stageDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "seed_stage_duration_seconds",
				Help:      "Duration of seeding pipeline stages in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"stage"},
		),
		stageFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "seed_stage_failures_total",
				Help:      "Total number of failed seeding stages",
			},
			[]string{"stage"},
		),
		documentsSeeded: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "seed_documents_inserted_total",
				Help:      "Total number of documents inserted by the seeder",
			},
			[]string{"collection"},
		),
		httpRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"route", "method", "class"},
		),
		httpInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests",
			},
		),
	}
}

// ObserveStage records how long a pipeline stage took.
func (r *Recorder) ObserveStage(stage string, elapsed time.Duration) {
	r.stageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// StageFailed counts a failed pipeline stage.
func (r *Recorder) StageFailed(stage string) {
	r.stageFailures.WithLabelValues(stage).Inc()
}

// AddInserted adds n documents inserted into collection.
func (r *Recorder) AddInserted(collection string, n int) {
	r.documentsSeeded.WithLabelValues(collection).Add(float64(n))
}

// RequestStarted increments the in-flight gauge.
func (r *Recorder) RequestStarted() {
	r.httpInFlight.Inc()
}

// RequestFinished records a completed request and decrements the in-flight gauge.
func (r *Recorder) RequestFinished(route, method string, status int, elapsed time.Duration) {
	r.httpInFlight.Dec()
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(route, method, StatusClass(status)).Observe(elapsed.Seconds())
}

// StatusClass buckets an HTTP status code as "2xx", "4xx" and so on.
func StatusClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "1xx"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
