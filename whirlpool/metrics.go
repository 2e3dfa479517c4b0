package whirlpool

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Metrics holds the Prometheus collectors of a client.
type Metrics struct {
	RPCRequests        *prometheus.CounterVec
	RPCRequestDuration *prometheus.HistogramVec
	Quotes             *prometheus.CounterVec
}

// NewMetrics creates the client collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RPCRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "orca",
				Subsystem: "whirlpool",
				Name:      "rpc_requests_total",
				Help:      "Total number of RPC and Orca API requests",
			},
			[]string{"method", "status"},
		),
		RPCRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "orca",
				Subsystem: "whirlpool",
				Name:      "rpc_request_duration_seconds",
				Help:      "RPC and Orca API request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		Quotes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "orca",
				Subsystem: "whirlpool",
				Name:      "quotes_total",
				Help:      "Total number of quotes computed",
			},
			[]string{"kind", "status"},
		),
	}
}

// ObserveRequest records one request; a nil Metrics records nothing.
func (m *Metrics) ObserveRequest(method string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RPCRequests.WithLabelValues(method, statusLabel(err)).Inc()
	m.RPCRequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *Metrics) observeQuote(kind string, err error) {
	if m == nil {
		return
	}
	m.Quotes.WithLabelValues(kind, statusLabel(err)).Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return statusError
	}
	return statusOK
}
