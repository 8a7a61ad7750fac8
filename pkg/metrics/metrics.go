package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Outcomes          *prometheus.CounterVec
	InterpretLatency  prometheus.Histogram
	TaskMutations     *prometheus.CounterVec
	ActiveSessions    prometheus.Gauge
	WSMessages        *prometheus.CounterVec
	RemindersNotified prometheus.Counter
}

// New creates the instruments on a private registry that also carries the Go
// runtime and process collectors.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_outcomes_total",
			Help:      "Interpreted voice commands by intent and status.",
		}, []string{"intent", "status"}),
		InterpretLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "interpret_duration_seconds",
			Help:      "Time spent interpreting one transcript.",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .05},
		}),
		TaskMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_mutations_total",
			Help:      "Task store mutations by operation.",
		}, []string{"op"}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_ws_sessions",
			Help:      "Number of open transcript websocket sessions.",
		}),
		WSMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ws_messages_total",
			Help:      "WebSocket messages by direction and type.",
		}, []string{"direction", "type"}),
		RemindersNotified: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_notified_total",
			Help:      "Due-soon reminders emitted.",
		}),
	}
}

func (m *Metrics) ObserveOutcome(intent, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.Outcomes.WithLabelValues(intent, status).Inc()
	m.InterpretLatency.Observe(d.Seconds())
}

func (m *Metrics) ObserveTaskMutation(op string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.TaskMutations.WithLabelValues(op).Add(float64(n))
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.ActiveSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.ActiveSessions.Dec()
}

func (m *Metrics) ObserveWSMessage(direction, msgType string) {
	if m == nil {
		return
	}
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}

func (m *Metrics) ObserveReminders(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.RemindersNotified.Add(float64(n))
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
