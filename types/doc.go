// Package types provides core type definitions and interfaces for the dhont library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root dhont package and the algorithm and adapter packages.
//
// Key types:
//   - Party: Identifier and vote count competing for seats
//   - Allocation: Seats per party plus the round-by-round seat sequence
//   - TieBreak: Policy applied when quotients and votes are equal
//   - Apportioner: Seat apportionment contract
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
