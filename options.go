package dhont

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/angoru/dhont/internal/logging"
	"github.com/angoru/dhont/internal/metrics"
)

// Option configures an apportioner with optional dependencies.
type Option func(*apportionerOptions)

// apportionerOptions holds optional apportioner configuration.
type apportionerOptions struct {
	config  *Config
	metrics MetricsCollector
	logger  Logger
}

// WithConfig sets the configuration used by ApportionMap.
//
// New takes its configuration as an argument; this option is ignored there.
func WithConfig(cfg Config) Option {
	return func(o *apportionerOptions) {
		o.config = &cfg
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New and ApportionMap
//
// Example:
//
//	collector := dhont.NewPrometheusMetrics(prometheus.DefaultRegisterer, "elections")
//	a, err := dhont.New[string, int](&cfg, dhont.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *apportionerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New and ApportionMap
//
// Example:
//
//	a, err := dhont.New[string, int](&cfg, dhont.WithLogger(dhont.NewSlogLogger(slog.Default())))
func WithLogger(logger Logger) Option {
	return func(o *apportionerOptions) {
		o.logger = logger
	}
}

// NewSlogLogger adapts a *slog.Logger to the Logger interface.
func NewSlogLogger(logger *slog.Logger) Logger {
	return logging.NewSlog(logger)
}

// NewTextLogger creates a Logger writing slog text records at level to w
// (os.Stderr if nil). Records carry component=dhont.
func NewTextLogger(w io.Writer, level slog.Level) Logger {
	return logging.NewText(w, level)
}

// NewPrometheusMetrics creates a Prometheus-backed MetricsCollector.
//
// Parameters:
//   - reg: Registerer for the collectors (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("dhont" if empty)
//
// Returns:
//   - MetricsCollector: Collector registering its metrics on first use
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}

func (o *apportionerOptions) apply(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
}
