// Package metrics exposes Prometheus instrumentation for outbound traffic
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusTransport is the status label used when no response was received
const StatusTransport = "transport"

var (
	downstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orggate",
		Subsystem: "downstream",
		Name:      "requests_total",
		Help:      "Downstream HTTP calls by service, operation and status",
	}, []string{"service", "op", "status"})

	downstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "orggate",
		Subsystem: "downstream",
		Name:      "request_seconds",
		Help:      "Downstream HTTP call latency by service and operation",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "op"})

	notifySends = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orggate",
		Subsystem: "notify",
		Name:      "sends_total",
		Help:      "Notification dispatches by template and result",
	}, []string{"template", "result"})
)

// ObserveDownstream records one downstream call
// status < 0 means the transport produced no response at all
func ObserveDownstream(service, op string, status int, d time.Duration) {
	lbl := StatusTransport
	if status >= 0 {
		lbl = strconv.Itoa(status)
	}
	downstreamRequests.WithLabelValues(service, op, lbl).Inc()
	downstreamLatency.WithLabelValues(service, op).Observe(d.Seconds())
}

// ObserveNotify records one notification dispatch attempt
func ObserveNotify(template string, ok bool) {
	result := "sent"
	if !ok {
		result = "failed"
	}
	notifySends.WithLabelValues(template, result).Inc()
}

// Handler returns the scrape endpoint handler
func Handler() http.Handler { return promhttp.Handler() }
