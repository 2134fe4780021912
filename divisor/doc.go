// Package divisor implements the D'Hondt highest-averages seat apportionment.
//
// Each round every eligible party's votes are divided by its current divisor
// (starting at 1). The party with the largest quotient wins the seat and its
// divisor grows by one. After as many rounds as there are seats, the rounds
// won per party are the result.
//
// # Tie Handling
//
// Quotients are compared exactly (cross multiplication, 128-bit for integer
// votes). When two quotients are equal the party with more votes wins. When
// votes are equal too, the configured types.TieBreak policy decides:
//
//   - TieBreakLatest: the party later in the input slice wins (default)
//   - TieBreakEarliest: the party earlier in the input slice wins
//   - TieBreakLot: a seeded xxh3 draw over the party ID decides
//
// # Degenerate Input
//
// When every eligible party has zero votes all quotients are zero in every
// round, so every seat goes to the same party through the tie-break policy.
// The run still completes and the Allocation is flagged Degenerate, unless
// WithRejectDegenerate is set, in which case types.ErrDegenerateInput is
// returned.
//
// # State
//
// A DHondt value holds only configuration. Every Apportion call owns a fresh
// Table, so concurrent calls never share mutable state.
package divisor
