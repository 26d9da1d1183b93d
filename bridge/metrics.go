package bridge

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the bridge server's prometheus instruments. Grounded on
// nabbar-golib/prometheus's pattern of registering a handful of named
// collectors behind a small struct rather than reaching for global
// package-level vars (see prometheus/prometheus_collect_test.go).
type Metrics struct {
	TunnelsOpen      prometheus.Gauge
	TunnelsTotal     prometheus.Counter
	TunnelsRejected  prometheus.Counter
	BytesUplink      prometheus.Counter
	BytesDownlink    prometheus.Counter
	GetLongPolls     prometheus.Counter
	GetIdleResponses prometheus.Counter
}

// NewMetrics registers the bridge server's collectors against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	fac := promauto.With(reg)

	return &Metrics{
		TunnelsOpen: fac.NewGauge(prometheus.GaugeOpts{
			Namespace: "bridge",
			Subsystem: "server",
			Name:      "tunnels_open",
			Help:      "Number of tunnels currently open in the connection table.",
		}),
		TunnelsTotal: fac.NewCounter(prometheus.CounterOpts{
			Namespace: "bridge",
			Subsystem: "server",
			Name:      "tunnels_opened_total",
			Help:      "Total tunnels successfully opened.",
		}),
		TunnelsRejected: fac.NewCounter(prometheus.CounterOpts{
			Namespace: "bridge",
			Subsystem: "server",
			Name:      "tunnels_rejected_total",
			Help:      "Total POST requests rejected (dial failure or id conflict).",
		}),
		BytesUplink: fac.NewCounter(prometheus.CounterOpts{
			Namespace: "bridge",
			Subsystem: "server",
			Name:      "bytes_uplink_total",
			Help:      "Total bytes written to destination sockets via PUT.",
		}),
		BytesDownlink: fac.NewCounter(prometheus.CounterOpts{
			Namespace: "bridge",
			Subsystem: "server",
			Name:      "bytes_downlink_total",
			Help:      "Total bytes read from destination sockets via GET.",
		}),
		GetLongPolls: fac.NewCounter(prometheus.CounterOpts{
			Namespace: "bridge",
			Subsystem: "server",
			Name:      "get_requests_total",
			Help:      "Total GET requests handled.",
		}),
		GetIdleResponses: fac.NewCounter(prometheus.CounterOpts{
			Namespace: "bridge",
			Subsystem: "server",
			Name:      "get_idle_total",
			Help:      "Total GET requests answered 204 after the idle window.",
		}),
	}
}
