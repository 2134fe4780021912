package divisor

import "github.com/angoru/dhont/types"

// Option configures a DHondt apportioner.
type Option func(*settings)

type settings struct {
	tieBreak         types.TieBreak
	lotSeed          uint64
	threshold        float64
	rejectDegenerate bool
	logger           types.Logger
	metrics          types.MetricsCollector
}

// WithTieBreak sets the policy for rounds where quotients and votes are both equal.
func WithTieBreak(policy types.TieBreak) Option {
	return func(s *settings) {
		s.tieBreak = policy
	}
}

// WithLotSeed sets the seed of the drawing of lots used by types.TieBreakLot.
func WithLotSeed(seed uint64) Option {
	return func(s *settings) {
		s.lotSeed = seed
	}
}

// WithThreshold sets the electoral threshold as a fraction of total votes.
//
// Parties whose share is strictly below the threshold take no part in the
// rounds and end with zero seats. Valid range is [0, 1); 0 disables it.
func WithThreshold(fraction float64) Option {
	return func(s *settings) {
		s.threshold = fraction
	}
}

// WithRejectDegenerate makes Apportion fail with types.ErrDegenerateInput when
// every eligible party has zero votes, instead of flagging the allocation.
func WithRejectDegenerate(reject bool) Option {
	return func(s *settings) {
		s.rejectDegenerate = reject
	}
}

// WithLogger sets the logger used for run diagnostics and configuration warnings.
func WithLogger(logger types.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(s *settings) {
		s.metrics = metrics
	}
}
