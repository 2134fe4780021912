package divisor

import (
	"fmt"
	"math"
	"time"

	"github.com/angoru/dhont/internal/logger"
	"github.com/angoru/dhont/internal/metrics"
	"github.com/angoru/dhont/types"
)

// MethodDHondt is the method label used in logs and metrics.
const MethodDHondt = "dhondt"

// DHondt apportions seats with the D'Hondt highest-averages method.
//
// A DHondt value is immutable after construction and safe for concurrent use.
type DHondt[K comparable, V types.Number] struct {
	settings
}

var _ types.Apportioner[string, int] = (*DHondt[string, int])(nil)

// NewDHondt creates a new D'Hondt apportioner.
//
// Parameters:
//   - opts: Optional configuration (WithTieBreak, WithLotSeed, WithThreshold, WithRejectDegenerate, WithLogger, WithMetrics)
//
// Returns:
//   - *DHondt[K, V]: Initialized apportioner ready for use
//
// Example:
//
//	a := divisor.NewDHondt[string, int](divisor.WithTieBreak(types.TieBreakEarliest))
//	alloc, err := a.Apportion(5, []types.Party[string, int]{
//	    {ID: "A", Votes: 340000},
//	    {ID: "B", Votes: 280000},
//	})
func NewDHondt[K comparable, V types.Number](opts ...Option) *DHondt[K, V] {
	d := &DHondt[K, V]{settings: settings{
		tieBreak: types.TieBreakLatest,
		logger:   logger.NewNop(),
		metrics:  metrics.NewNop(),
	}}

	for _, opt := range opts {
		if opt != nil {
			opt(&d.settings)
		}
	}

	d.normalizeConfig()

	return d
}

func (d *DHondt[K, V]) normalizeConfig() {
	if d.logger == nil {
		d.logger = logger.NewNop()
	}
	if d.metrics == nil {
		d.metrics = metrics.NewNop()
	}

	if !d.tieBreak.Valid() {
		d.logger.Warn("unknown tie-break policy, using default",
			"provided", int(d.tieBreak),
			"default", types.TieBreakLatest.String(),
		)
		d.tieBreak = types.TieBreakLatest
	}

	if math.IsNaN(d.threshold) || d.threshold < 0 || d.threshold >= 1 {
		d.logger.Warn("threshold out of range [0, 1), disabling it",
			"provided", d.threshold,
		)
		d.threshold = 0
	}
}

// TieBreak returns the effective tie-break policy.
func (d *DHondt[K, V]) TieBreak() types.TieBreak {
	return d.tieBreak
}

// Threshold returns the effective electoral threshold.
func (d *DHondt[K, V]) Threshold() float64 {
	return d.threshold
}

// Apportion allocates seats among parties.
//
// The algorithm:
//  1. Validate the whole input (seats, party set, votes, unique IDs)
//  2. Drop parties below the electoral threshold, if one is set
//  3. Start every eligible party at divisor 1
//  4. For each seat, award it to the highest quotient (see SelectWinner) and
//     increment the winner's divisor
//  5. Tally the rounds per party
//
// The caller's slice is never reordered or modified.
//
// Parameters:
//   - seats: Number of seats to distribute (must be > 0)
//   - parties: Competing parties in traversal order
//
// Returns:
//   - types.Allocation[K]: Seats per party (all parties present) and the seat sequence
//   - error: types.ErrInvalidInput (wrapped) on rejected input, types.ErrDegenerateInput when rejecting degenerate input
func (d *DHondt[K, V]) Apportion(seats int, parties []types.Party[K, V]) (types.Allocation[K], error) {
	start := time.Now()

	if err := d.validate(seats, parties); err != nil {
		return types.Allocation[K]{}, err
	}

	eligible, excluded := d.applyThreshold(parties)
	if len(eligible) == 0 {
		d.metrics.RecordRejected("no_eligible_parties")

		return types.Allocation[K]{}, fmt.Errorf("%w: threshold %g", types.ErrNoEligibleParties, d.threshold)
	}
	if len(excluded) > 0 {
		d.logger.Debug("parties below threshold excluded",
			"threshold", d.threshold,
			"excluded", len(excluded),
		)
	}

	degenerate := allZero(eligible)
	if degenerate {
		if d.rejectDegenerate {
			d.metrics.RecordRejected("degenerate")

			return types.Allocation[K]{}, fmt.Errorf("%w: %d eligible parties", types.ErrDegenerateInput, len(eligible))
		}

		d.metrics.RecordDegenerate()
		d.logger.Warn("all eligible votes are zero, seats follow the tie-break policy only",
			"seats", seats,
			"parties", len(eligible),
			"tie_break", d.tieBreak.String(),
		)
	}

	alloc := types.Allocation[K]{
		Seats:      make(map[K]int, len(parties)),
		Rounds:     make([]types.Round[K], 0, seats),
		Excluded:   excluded,
		Degenerate: degenerate,
	}
	for _, p := range parties {
		alloc.Seats[p.ID] = 0
	}

	table := NewTable(eligible)
	for seat := 1; seat <= seats; seat++ {
		idx, tied := SelectWinner(eligible, table, d.tieBreak, d.lotSeed)
		winner := eligible[idx]
		div := table.Of(winner.ID)

		alloc.Rounds = append(alloc.Rounds, types.Round[K]{
			Seat:     seat,
			Party:    winner.ID,
			Quotient: float64(winner.Votes) / float64(div),
			Divisor:  div,
			Tied:     tied,
		})
		alloc.Seats[winner.ID]++
		table.Increment(winner.ID)

		if tied {
			d.metrics.RecordTieBreak(d.tieBreak.String())
		}
	}

	d.metrics.RecordApportionment(MethodDHondt, seats, len(parties), time.Since(start).Seconds())
	d.logger.Debug("apportionment completed",
		"method", MethodDHondt,
		"seats", seats,
		"parties", len(parties),
		"tied_rounds", alloc.TiedRounds(),
	)

	return alloc, nil
}

func (d *DHondt[K, V]) validate(seats int, parties []types.Party[K, V]) error {
	if seats <= 0 {
		d.metrics.RecordRejected("seats")

		return fmt.Errorf("%w: got %d", types.ErrInvalidSeats, seats)
	}
	if len(parties) == 0 {
		d.metrics.RecordRejected("no_parties")

		return types.ErrNoParties
	}

	seen := make(map[K]struct{}, len(parties))
	for _, p := range parties {
		f := float64(p.Votes)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			d.metrics.RecordRejected("non_finite_votes")

			return fmt.Errorf("%w: party %v has %v", types.ErrNonFiniteVotes, p.ID, p.Votes)
		}
		if p.Votes < 0 {
			d.metrics.RecordRejected("negative_votes")

			return fmt.Errorf("%w: party %v has %v", types.ErrNegativeVotes, p.ID, p.Votes)
		}
		if !selfEqual(p.ID) {
			d.metrics.RecordRejected("invalid_party_id")

			return fmt.Errorf("%w: %v", types.ErrInvalidPartyID, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			d.metrics.RecordRejected("duplicate_party")

			return fmt.Errorf("%w: %v", types.ErrDuplicateParty, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}

// selfEqual is false for identifiers holding a NaN. Map keys that are not
// equal to themselves are inserted anew on every write.
func selfEqual[K comparable](id K) bool {
	return id == id //nolint:staticcheck // NaN check for any comparable K
}

// applyThreshold splits parties into those taking part in the rounds and the
// IDs of those below the threshold, both in input order.
func (d *DHondt[K, V]) applyThreshold(parties []types.Party[K, V]) ([]types.Party[K, V], []K) {
	if d.threshold == 0 {
		return parties, nil
	}

	total := 0.0
	for _, p := range parties {
		total += float64(p.Votes)
	}
	if total == 0 {
		return parties, nil
	}

	cutoff := d.threshold * total
	eligible := make([]types.Party[K, V], 0, len(parties))
	var excluded []K
	for _, p := range parties {
		if float64(p.Votes) < cutoff {
			excluded = append(excluded, p.ID)

			continue
		}
		eligible = append(eligible, p)
	}

	return eligible, excluded
}

func allZero[K comparable, V types.Number](parties []types.Party[K, V]) bool {
	for _, p := range parties {
		if p.Votes != 0 {
			return false
		}
	}

	return true
}
