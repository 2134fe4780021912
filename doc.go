// Package dhont allocates a fixed number of indivisible seats among parties
// proportionally to their votes, using the D'Hondt highest-averages method.
//
// Every seat is decided in a round: each party's votes are divided by its
// divisor (1 + seats already won) and the largest quotient wins the seat.
// After as many rounds as seats, the rounds won per party are the result.
//
// # Quick Start
//
//	seats, err := dhont.ApportionMap(5, map[string]int{
//	    "A": 340000, "B": 280000, "C": 160000, "D": 60000, "E": 15000,
//	})
//	// seats: A=2 B=2 C=1 D=0 E=0
//
// For full control over party order and the seat-by-seat record, build an
// apportioner and pass an ordered party slice:
//
//	cfg := dhont.DefaultConfig()
//	a, err := dhont.New[string, int](&cfg, dhont.WithLogger(dhont.NewSlogLogger(slog.Default())))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	alloc, err := a.Apportion(5, []dhont.Party[string, int]{
//	    {ID: "A", Votes: 340000},
//	    {ID: "B", Votes: 280000},
//	})
//	for _, r := range alloc.Rounds {
//	    fmt.Println(r.Seat, r.Party, r.Quotient)
//	}
//
// # Ties
//
// Equal quotients go to the party with more votes. Equal quotients with
// equal votes are decided by Config.TieBreak: "latest" (the later party in
// input order, the default), "earliest", or "lot" (a seeded, reproducible
// drawing of lots). Rounds decided this way are marked Tied.
//
// # Errors
//
// Invalid input (non-positive seats, no parties, negative or non-finite
// votes, duplicate IDs) is rejected before any round with an error wrapping
// ErrInvalidInput. When every party has zero votes, the allocation is an
// artifact of the tie-break policy: it is flagged Degenerate, or rejected
// with ErrDegenerateInput when Config.RejectDegenerate is set.
//
// # Observability
//
// Logging goes through the Logger interface (see NewSlogLogger) and metrics
// through MetricsCollector (see NewPrometheusMetrics). Both default to no-ops.
package dhont
