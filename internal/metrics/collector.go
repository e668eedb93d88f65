package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers Prometheus metrics for the HTTP surface and the AI
// generation path.
type Collector struct {
	httpRequests      *prometheus.CounterVec
	generationSuccess prometheus.Counter
	generationFail    prometheus.Counter
	generationLatency prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with the
// given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calendar_http_requests_total",
			Help: "HTTP requests by method, path pattern and status code.",
		}, []string{"method", "path", "status"}),
		generationSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calendar_generation_success_total",
			Help: "Successful AI idea generations.",
		}),
		generationFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calendar_generation_fail_total",
			Help: "Failed AI idea generations.",
		}),
		generationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "calendar_generation_latency_seconds",
			Help:    "AI generation latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.generationSuccess,
		c.generationFail,
		c.generationLatency,
	)

	return c
}

// RecordRequest counts one HTTP request.
func (c *Collector) RecordRequest(method, path string, status int) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// RecordGeneration records the outcome and latency of one AI generation.
func (c *Collector) RecordGeneration(success bool, latency time.Duration) {
	if success {
		c.generationSuccess.Inc()
	} else {
		c.generationFail.Inc()
	}
	c.generationLatency.Observe(latency.Seconds())
}

// Handler returns the HTTP handler serving Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
