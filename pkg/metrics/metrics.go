package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var Module = fx.Provide(New)

// Metrics holds the storefront collectors on a private registry. All methods
// are safe on a nil receiver so tests can skip metrics entirely.
type Metrics struct {
	registry      *prometheus.Registry
	remoteCalls   *prometheus.CounterVec
	remoteLatency *prometheus.HistogramVec
	commands      *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		remoteCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "maison",
			Name:      "remote_calls_total",
			Help:      "Calls to the remote auth, orders and telegram services.",
		}, []string{"service", "op", "code"}),
		remoteLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "maison",
			Name:      "remote_call_duration_seconds",
			Help:      "Latency of remote service calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "op"}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "maison",
			Name:      "commands_total",
			Help:      "Commands executed by the dispatcher.",
		}, []string{"command", "outcome"}),
	}

	m.registry.MustRegister(m.remoteCalls, m.remoteLatency, m.commands)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRemote records one remote call. code 0 means a transport error.
func (m *Metrics) ObserveRemote(service, op string, code int, took time.Duration) {
	if m == nil {
		return
	}
	m.remoteCalls.WithLabelValues(service, op, strconv.Itoa(code)).Inc()
	m.remoteLatency.WithLabelValues(service, op).Observe(took.Seconds())
}

func (m *Metrics) ObserveCommand(name, outcome string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(name, outcome).Inc()
}
