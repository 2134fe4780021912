package dhont

import "github.com/angoru/dhont/types"

// Re-export types from the types package.
//
// The aliases let callers use dhont.Party, dhont.Logger, etc. while the
// divisor and internal packages depend only on types, avoiding import cycles.
type (
	Party[K comparable, V Number] = types.Party[K, V]
	Allocation[K comparable]      = types.Allocation[K]
	Round[K comparable]           = types.Round[K]
	TieBreak                      = types.TieBreak
)

// Re-export interfaces from the types package for convenience.
type (
	Number                              = types.Number
	Apportioner[K comparable, V Number] = types.Apportioner[K, V]
	Logger                              = types.Logger
	MetricsCollector                    = types.MetricsCollector
)

// Re-export TieBreak constants from the types package.
const (
	TieBreakLatest   = types.TieBreakLatest
	TieBreakEarliest = types.TieBreakEarliest
	TieBreakLot      = types.TieBreakLot
)

// ParseTieBreak parses a tie-break policy name ("latest", "earliest", "lot").
func ParseTieBreak(s string) (TieBreak, error) {
	return types.ParseTieBreak(s)
}
