package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var HttpRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests received",
	},
	[]string{"endpoint", "status", "method"},
)

var HttpRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"endpoint", "method"},
)

var HttpErrorsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_errors_total",
		Help: "Total number of failed HTTP requests (4xx/5xx)",
	},
	[]string{"endpoint", "status", "method"},
)

var BirthCertificatesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "birth_certificates_generated_total",
		Help: "Birth certificate generation attempts by outcome",
	},
	[]string{"status"},
)

var CertificateRenderDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "certificate_render_duration_seconds",
		Help:    "Time spent rendering certificate images",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"background"},
)

var StaleDocumentsFailedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "stale_documents_failed_total",
		Help: "Documents moved to failed by the stale processing sweep",
	},
)

var registerOnce sync.Once

func InitAPIMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HttpRequestsTotal)
		prometheus.MustRegister(HttpRequestDuration)
		prometheus.MustRegister(HttpErrorsTotal)
		prometheus.MustRegister(BirthCertificatesTotal)
		prometheus.MustRegister(CertificateRenderDuration)
		prometheus.MustRegister(StaleDocumentsFailedTotal)
	})
}
