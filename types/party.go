package types

// Number is the set of vote count types accepted by an Apportioner.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Party is a list competing for seats.
//
// The position of a Party within the input slice is its traversal order,
// which is what positional tie-break policies compare.
type Party[K comparable, V Number] struct {
	// ID identifies the party. It must be unique within one apportionment.
	ID K `json:"id" yaml:"id"`

	// Votes is the non-negative vote count of the party.
	Votes V `json:"votes" yaml:"votes"`
}

// Round records the outcome of one seat-assignment round.
//
// Rounds are immutable once appended to an Allocation.
type Round[K comparable] struct {
	// Seat is the 1-based seat number decided in this round.
	Seat int `json:"seat"`

	// Party is the winner of the seat.
	Party K `json:"party"`

	// Quotient is votes / divisor of the winner at the time it won.
	Quotient float64 `json:"quotient"`

	// Divisor is the divisor the winner's quotient was computed with.
	Divisor int `json:"divisor"`

	// Tied reports whether another party had the same quotient and the same
	// votes, so the configured TieBreak policy decided the round.
	Tied bool `json:"tied"`
}

// Allocation is the result of one apportionment run.
type Allocation[K comparable] struct {
	// Seats maps every input party to the number of seats it won (0 included).
	Seats map[K]int `json:"seats"`

	// Rounds is the seat-assignment sequence, one entry per seat, in order.
	Rounds []Round[K] `json:"rounds"`

	// Excluded lists parties that fell below the electoral threshold, in input order.
	Excluded []K `json:"excluded,omitempty"`

	// Degenerate is set when every eligible party had zero votes, so each
	// seat was decided purely by the tie-break policy.
	Degenerate bool `json:"degenerate"`
}

// TotalSeats returns the sum of awarded seats.
func (a Allocation[K]) TotalSeats() int {
	total := 0
	for _, n := range a.Seats {
		total += n
	}

	return total
}

// TiedRounds returns how many rounds were decided by the tie-break policy.
func (a Allocation[K]) TiedRounds() int {
	n := 0
	for _, r := range a.Rounds {
		if r.Tied {
			n++
		}
	}

	return n
}
