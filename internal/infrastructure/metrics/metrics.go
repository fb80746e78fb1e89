// Package metrics provides Prometheus instrumentation for the budget service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, route, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comercial_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "comercial_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})

	// SimulationsStarted and SimulationsEnded count explicit session starts and
	// ends. Sessions dropped by the store TTL are never ended, so the difference
	// is an upper bound on open sessions.
	SimulationsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comercial_simulations_started_total",
		Help: "Simulation sessions started",
	})

	SimulationsEnded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comercial_simulations_ended_total",
		Help: "Simulation sessions ended explicitly",
	})

	QuotesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comercial_quotes_generated_total",
		Help: "Budgets persisted from a simulation",
	})

	ContractsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comercial_contracts_generated_total",
		Help: "Contracts generated from a reconciled simulation",
	})

	// PaymentsTotal counts contract payment charges by resulting status.
	PaymentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comercial_contract_payments_total",
		Help: "Contract payment charges by status",
	}, []string{"status"})

	// ProbeChecksTotal counts backend probe outcomes by endpoint.
	ProbeChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comercial_backend_probe_checks_total",
		Help: "Backend connectivity checks by endpoint and outcome",
	}, []string{"endpoint", "outcome"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request metrics for every gin route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start).Seconds()

		// Route pattern keeps label cardinality bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
	}
}

func ProbeOutcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
