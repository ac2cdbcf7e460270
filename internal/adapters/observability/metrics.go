package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SyncRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nopsync", Name: "sync_records_total", Help: "Feed records by outcome."},
		[]string{"entity", "outcome"}, // outcome: inserted|updated|skipped|rejected|errored
	)
	SyncDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nopsync", Name: "sync_duration_seconds",
			Help:    "Duration of one sync batch.",
			Buckets: []float64{.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"entity"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nopsync", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nopsync", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nopsync", Name: "external_requests_total", Help: "Outbound requests."},
		[]string{"service", "endpoint", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nopsync", Name: "external_request_duration_seconds",
			Help:    "Outbound request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
	LockEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nopsync", Name: "lock_events_total", Help: "Run lock acquisitions, contentions and releases."},
		[]string{"lock", "event"}, // event: acquired|busy|released
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(SyncRecords, SyncDuration, HTTPRequests, HTTPLatency, ExternalRequests, ExternalLatency, LockEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveRecord(entity, outcome string) {
	SyncRecords.WithLabelValues(entity, outcome).Inc()
}

func ObserveSync(entity string, dur time.Duration) {
	SyncDuration.WithLabelValues(entity).Observe(dur.Seconds())
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveExternal(service, endpoint string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(service, endpoint).Observe(dur.Seconds())
}

func ObserveLock(lock, event string) { // event: acquired|busy|released
	LockEvents.WithLabelValues(lock, event).Inc()
}
