package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/angoru/dhont/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use. Several
// PrometheusCollectors sharing a registry and namespace share their series.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	runs        *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	seats       *prometheus.CounterVec
	parties     *prometheus.HistogramVec
	tieBreaks   *prometheus.CounterVec
	degenerate  prometheus.Counter
	rejected    *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "dhont" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "dhont"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		const subsystem = "apportioner"

		p.runs = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Total completed apportionment runs by method.",
		}, []string{"method"})

		p.runDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: subsystem,
			Name:      "run_duration_seconds",
			Help:      "Duration of apportionment runs in seconds by method.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs .. ~0.26s
		}, []string{"method"})

		p.seats = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: subsystem,
			Name:      "seats_total",
			Help:      "Total seats distributed by method.",
		}, []string{"method"})

		p.parties = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: subsystem,
			Name:      "parties",
			Help:      "Number of parties per apportionment run by method.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		}, []string{"method"})

		p.tieBreaks = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: subsystem,
			Name:      "tie_breaks_total",
			Help:      "Total rounds decided by the tie-break policy, by policy.",
		}, []string{"policy"})

		p.degenerate = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: subsystem,
			Name:      "degenerate_inputs_total",
			Help:      "Total runs where every eligible party had zero votes.",
		})

		p.rejected = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: subsystem,
			Name:      "rejected_inputs_total",
			Help:      "Total inputs rejected before computation, by reason.",
		}, []string{"reason"})

		p.runs = register(p.reg, p.runs)
		p.runDuration = register(p.reg, p.runDuration)
		p.seats = register(p.reg, p.seats)
		p.parties = register(p.reg, p.parties)
		p.tieBreaks = register(p.reg, p.tieBreaks)
		p.degenerate = register(p.reg, p.degenerate)
		p.rejected = register(p.reg, p.rejected)
	})
}

// register adds c to reg. When an identical collector is already registered,
// for example by another PrometheusCollector with the same namespace, the
// existing one is returned so both record into the same series. Any other
// registration error leaves c unregistered; recording still works but the
// series is not exported.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}

	return c
}

// RecordApportionment records a completed run.
func (p *PrometheusCollector) RecordApportionment(method string, seats, parties int, duration float64) {
	p.ensureRegistered()
	p.runs.WithLabelValues(method).Inc()
	p.runDuration.WithLabelValues(method).Observe(duration)
	p.seats.WithLabelValues(method).Add(float64(seats))
	p.parties.WithLabelValues(method).Observe(float64(parties))
}

// RecordTieBreak increments the tie-break counter for policy.
func (p *PrometheusCollector) RecordTieBreak(policy string) {
	p.ensureRegistered()
	p.tieBreaks.WithLabelValues(policy).Inc()
}

// RecordDegenerate increments the degenerate input counter.
func (p *PrometheusCollector) RecordDegenerate() {
	p.ensureRegistered()
	p.degenerate.Inc()
}

// RecordRejected increments the rejected input counter for reason.
func (p *PrometheusCollector) RecordRejected(reason string) {
	p.ensureRegistered()
	p.rejected.WithLabelValues(reason).Inc()
}
