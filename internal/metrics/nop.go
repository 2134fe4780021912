// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/angoru/dhont/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the default collector of every apportioner.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordApportionment discards the run metric.
func (n *NopMetrics) RecordApportionment(_ /* method */ string, _ /* seats */, _ /* parties */ int, _ /* duration */ float64) {
	// No-op
}

// RecordTieBreak discards the tie-break metric.
func (n *NopMetrics) RecordTieBreak(_ /* policy */ string) {
	// No-op
}

// RecordDegenerate discards the degenerate input metric.
func (n *NopMetrics) RecordDegenerate() {
	// No-op
}

// RecordRejected discards the rejected input metric.
func (n *NopMetrics) RecordRejected(_ /* reason */ string) {
	// No-op
}
