package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TieBreak selects the winner among parties whose quotients and votes are
// both equal in a round.
//
// A quotient tie between parties with different votes is always won by the
// party with more votes; TieBreak only applies when that comparison is also
// a tie.
type TieBreak int

const (
	// TieBreakLatest awards the seat to the party that comes later in the
	// input order. This matches the historical behavior of the method's
	// reference implementation.
	TieBreakLatest TieBreak = iota

	// TieBreakEarliest awards the seat to the party that comes earlier in the
	// input order.
	TieBreakEarliest

	// TieBreakLot draws lots: each party gets a seeded hash of its ID and the
	// highest draw wins. Input order decides only on a hash collision.
	TieBreakLot
)

// String returns the configuration name of the policy.
func (t TieBreak) String() string {
	switch t {
	case TieBreakLatest:
		return "latest"
	case TieBreakEarliest:
		return "earliest"
	case TieBreakLot:
		return "lot"
	default:
		return "unknown"
	}
}

// Valid reports whether t is a known policy.
func (t TieBreak) Valid() bool {
	return t >= TieBreakLatest && t <= TieBreakLot
}

// ParseTieBreak parses a policy name as produced by TieBreak.String.
//
// Parameters:
//   - s: Policy name, case-insensitive ("latest", "earliest", "lot")
//
// Returns:
//   - TieBreak: Parsed policy
//   - error: ErrUnknownTieBreak (wrapped) for unknown names
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "latest", "":
		return TieBreakLatest, nil
	case "earliest":
		return TieBreakEarliest, nil
	case "lot":
		return TieBreakLot, nil
	default:
		return TieBreakLatest, fmt.Errorf("%w: %q", ErrUnknownTieBreak, s)
	}
}

// MarshalYAML encodes the policy by name.
func (t TieBreak) MarshalYAML() (any, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTieBreak, int(t))
	}

	return t.String(), nil
}

// UnmarshalYAML decodes the policy from its name.
func (t *TieBreak) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseTieBreak(s)
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}
