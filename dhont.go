package dhont

import (
	"cmp"
	"maps"
	"slices"

	"github.com/angoru/dhont/divisor"
	"github.com/angoru/dhont/internal/logger"
)

// New creates a D'Hondt apportioner from a configuration.
//
// Parameters:
//   - cfg: Configuration (DefaultConfig if nil)
//   - opts: Optional dependencies (WithLogger, WithMetrics)
//
// Returns:
//   - *divisor.DHondt[K, V]: Apportioner safe for concurrent use
//   - error: ErrInvalidConfig (wrapped) if cfg is invalid
//
// Example:
//
//	cfg := dhont.Config{TieBreak: dhont.TieBreakEarliest}
//	a, err := dhont.New[string, int](&cfg)
//	if err != nil { /* handle */ }
//	alloc, err := a.Apportion(5, parties)
func New[K comparable, V Number](cfg *Config, opts ...Option) (*divisor.DHondt[K, V], error) {
	if cfg == nil {
		defaults := DefaultConfig()
		cfg = &defaults
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &apportionerOptions{}
	options.apply(opts)

	var log Logger = logger.NewNop()
	if options.logger != nil {
		log = options.logger
	}
	cfg.ValidateWithWarnings(log)

	return divisor.NewDHondt[K, V](
		divisor.WithTieBreak(cfg.TieBreak),
		divisor.WithLotSeed(cfg.LotSeed),
		divisor.WithThreshold(cfg.Threshold),
		divisor.WithRejectDegenerate(cfg.RejectDegenerate),
		divisor.WithLogger(log),
		divisor.WithMetrics(options.metrics),
	), nil
}

// PartiesFromMap converts a vote map into a party slice ordered by ascending ID.
//
// Map iteration order is random in Go; ordering by ID makes positional
// tie-break policies reproducible for map input.
func PartiesFromMap[K cmp.Ordered, V Number](votes map[K]V) []Party[K, V] {
	parties := make([]Party[K, V], 0, len(votes))
	for _, id := range slices.Sorted(maps.Keys(votes)) {
		parties = append(parties, Party[K, V]{ID: id, Votes: votes[id]})
	}

	return parties
}

// ApportionMap allocates seats from a party → votes map with the D'Hondt method.
//
// Parties are taken in ascending ID order (see PartiesFromMap), so with the
// default policy a tie on equal votes goes to the greater ID.
//
// Parameters:
//   - seats: Number of seats to distribute (must be > 0)
//   - votes: Party ID → vote count (non-empty, non-negative)
//   - opts: Optional WithConfig, WithLogger, WithMetrics
//
// Returns:
//   - map[K]int: Party ID → seats, every input party present
//   - error: ErrInvalidInput (wrapped), ErrDegenerateInput or ErrInvalidConfig
//
// Example:
//
//	seats, err := dhont.ApportionMap(5, map[string]int{"A": 340000, "B": 280000, "C": 160000})
//	// seats == map[A:2 B:2 C:1]
func ApportionMap[K cmp.Ordered, V Number](seats int, votes map[K]V, opts ...Option) (map[K]int, error) {
	options := &apportionerOptions{}
	options.apply(opts)

	a, err := New[K, V](options.config, opts...)
	if err != nil {
		return nil, err
	}

	alloc, err := a.Apportion(seats, PartiesFromMap(votes))
	if err != nil {
		return nil, err
	}

	return alloc.Seats, nil
}
