package divisor

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/angoru/dhont/internal/logger"
	"github.com/angoru/dhont/internal/metrics"
	"github.com/angoru/dhont/types"
)

func classicParties() []types.Party[string, int] {
	return []types.Party[string, int]{
		{ID: "A", Votes: 340000},
		{ID: "B", Votes: 280000},
		{ID: "C", Votes: 160000},
		{ID: "D", Votes: 60000},
		{ID: "E", Votes: 15000},
	}
}

func roundWinners[K comparable](a types.Allocation[K]) []K {
	out := make([]K, len(a.Rounds))
	for i, r := range a.Rounds {
		out[i] = r.Party
	}

	return out
}

func TestDHondt_Apportion(t *testing.T) {
	t.Parallel()

	t.Run("classic worked example", func(t *testing.T) {
		a := NewDHondt[string, int]()

		alloc, err := a.Apportion(5, classicParties())

		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 2, "B": 2, "C": 1, "D": 0, "E": 0}, alloc.Seats)
		require.Equal(t, []string{"A", "B", "A", "C", "B"}, roundWinners(alloc))
		require.False(t, alloc.Degenerate)
		require.Empty(t, alloc.Excluded)
	})

	t.Run("records the seat sequence", func(t *testing.T) {
		a := NewDHondt[string, int]()

		alloc, err := a.Apportion(5, classicParties())
		require.NoError(t, err)

		want := []types.Round[string]{
			{Seat: 1, Party: "A", Quotient: 340000, Divisor: 1},
			{Seat: 2, Party: "B", Quotient: 280000, Divisor: 1},
			{Seat: 3, Party: "A", Quotient: 170000, Divisor: 2},
			{Seat: 4, Party: "C", Quotient: 160000, Divisor: 1},
			{Seat: 5, Party: "B", Quotient: 140000, Divisor: 2},
		}
		if diff := cmp.Diff(want, alloc.Rounds); diff != "" {
			t.Fatalf("rounds mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single seat tie on equal votes", func(t *testing.T) {
		parties := []types.Party[string, int]{{ID: "A", Votes: 10}, {ID: "B", Votes: 10}}

		latest, err := NewDHondt[string, int]().Apportion(1, parties)
		require.NoError(t, err)
		require.Equal(t, 1, latest.TotalSeats())
		require.Equal(t, map[string]int{"A": 0, "B": 1}, latest.Seats)
		require.True(t, latest.Rounds[0].Tied)

		earliest, err := NewDHondt[string, int](WithTieBreak(types.TieBreakEarliest)).Apportion(1, parties)
		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 1, "B": 0}, earliest.Seats)

		lot, err := NewDHondt[string, int](WithTieBreak(types.TieBreakLot), WithLotSeed(99)).Apportion(1, parties)
		require.NoError(t, err)
		require.Equal(t, 1, lot.TotalSeats())
		require.True(t, lot.Rounds[0].Tied)
	})

	t.Run("single party takes every seat", func(t *testing.T) {
		alloc, err := NewDHondt[string, int]().Apportion(3, []types.Party[string, int]{{ID: "A", Votes: 100}})

		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 3}, alloc.Seats)
		require.Len(t, alloc.Rounds, 3)
	})

	t.Run("dominant party follows the round definition", func(t *testing.T) {
		// A's tenth quotient is 1000/10 = 100, still above B's 1.
		alloc, err := NewDHondt[string, int]().Apportion(10, []types.Party[string, int]{{ID: "A", Votes: 1000}, {ID: "B", Votes: 1}})

		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 10, "B": 0}, alloc.Seats)
		require.InDelta(t, 100.0, alloc.Rounds[9].Quotient, 0)
		require.Equal(t, 10, alloc.Rounds[9].Divisor)
	})

	t.Run("small party wins once the dominant quotient drops below it", func(t *testing.T) {
		// A: 1000, 500, 333.3, 250, 200, 166.7, 142.9, 125, 111.1, 100, 90.9 ...
		alloc, err := NewDHondt[string, int]().Apportion(11, []types.Party[string, int]{{ID: "A", Votes: 1000}, {ID: "B", Votes: 95}})

		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 10, "B": 1}, alloc.Seats)
		require.Equal(t, "B", alloc.Rounds[10].Party)
	})

	t.Run("quotient tie goes to more votes regardless of order", func(t *testing.T) {
		for _, parties := range [][]types.Party[string, int]{
			{{ID: "A", Votes: 100}, {ID: "B", Votes: 50}},
			{{ID: "B", Votes: 50}, {ID: "A", Votes: 100}},
		} {
			alloc, err := NewDHondt[string, int](WithTieBreak(types.TieBreakEarliest)).Apportion(2, parties)
			require.NoError(t, err)
			require.Equal(t, map[string]int{"A": 2, "B": 0}, alloc.Seats)
			require.Zero(t, alloc.TiedRounds())
		}
	})

	t.Run("exact comparison for large integer votes", func(t *testing.T) {
		parties := []types.Party[string, int64]{{ID: "A", Votes: 1<<62 - 1}, {ID: "B", Votes: 1 << 61}}

		alloc, err := NewDHondt[string, int64]().Apportion(2, parties)

		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 1, "B": 1}, alloc.Seats)
	})

	t.Run("real-valued votes", func(t *testing.T) {
		parties := []types.Party[string, float64]{{ID: "A", Votes: 1.5}, {ID: "B", Votes: 0.75}, {ID: "C", Votes: 0.4}}

		alloc, err := NewDHondt[string, float64]().Apportion(3, parties)

		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 2, "B": 1, "C": 0}, alloc.Seats)
	})

	t.Run("integer party identifiers", func(t *testing.T) {
		parties := []types.Party[int, uint32]{{ID: 7, Votes: 600}, {ID: 3, Votes: 400}}

		alloc, err := NewDHondt[int, uint32]().Apportion(5, parties)

		require.NoError(t, err)
		require.Equal(t, map[int]int{7: 3, 3: 2}, alloc.Seats)
	})

	t.Run("does not modify the input", func(t *testing.T) {
		parties := classicParties()

		_, err := NewDHondt[string, int](WithThreshold(0.05)).Apportion(5, parties)

		require.NoError(t, err)
		require.Equal(t, classicParties(), parties)
	})
}

func TestDHondt_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seats   int
		parties []types.Party[string, float64]
		wantErr error
	}{
		{
			name:    "zero seats",
			seats:   0,
			parties: []types.Party[string, float64]{{ID: "A", Votes: 1}},
			wantErr: types.ErrInvalidSeats,
		},
		{
			name:    "negative seats",
			seats:   -3,
			parties: []types.Party[string, float64]{{ID: "A", Votes: 1}},
			wantErr: types.ErrInvalidSeats,
		},
		{
			name:    "no parties",
			seats:   5,
			parties: nil,
			wantErr: types.ErrNoParties,
		},
		{
			name:    "negative votes",
			seats:   5,
			parties: []types.Party[string, float64]{{ID: "A", Votes: 1}, {ID: "B", Votes: -1}},
			wantErr: types.ErrNegativeVotes,
		},
		{
			name:    "NaN votes",
			seats:   5,
			parties: []types.Party[string, float64]{{ID: "A", Votes: math.NaN()}},
			wantErr: types.ErrNonFiniteVotes,
		},
		{
			name:    "infinite votes",
			seats:   5,
			parties: []types.Party[string, float64]{{ID: "A", Votes: math.Inf(1)}},
			wantErr: types.ErrNonFiniteVotes,
		},
		{
			name:    "duplicate party",
			seats:   5,
			parties: []types.Party[string, float64]{{ID: "A", Votes: 1}, {ID: "A", Votes: 2}},
			wantErr: types.ErrDuplicateParty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc, err := NewDHondt[string, float64]().Apportion(tt.seats, tt.parties)

			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, types.ErrInvalidInput)
			require.Nil(t, alloc.Seats)
			require.Nil(t, alloc.Rounds)
		})
	}

	t.Run("NaN party ID", func(t *testing.T) {
		parties := []types.Party[float64, int]{{ID: math.NaN(), Votes: 10}, {ID: 1, Votes: 6}}

		alloc, err := NewDHondt[float64, int]().Apportion(3, parties)

		require.ErrorIs(t, err, types.ErrInvalidPartyID)
		require.ErrorIs(t, err, types.ErrInvalidInput)
		require.Nil(t, alloc.Seats)
	})

	t.Run("two NaN party IDs", func(t *testing.T) {
		parties := []types.Party[float64, int]{{ID: math.NaN(), Votes: 10}, {ID: math.NaN(), Votes: 6}}

		_, err := NewDHondt[float64, int]().Apportion(3, parties)

		require.ErrorIs(t, err, types.ErrInvalidPartyID)
	})

	t.Run("float IDs other than NaN are accepted", func(t *testing.T) {
		parties := []types.Party[float64, int]{{ID: 0.5, Votes: 10}, {ID: 1, Votes: 6}}

		alloc, err := NewDHondt[float64, int]().Apportion(3, parties)

		require.NoError(t, err)
		require.Equal(t, map[float64]int{0.5: 2, 1: 1}, alloc.Seats)
	})
}

func TestDHondt_Threshold(t *testing.T) {
	t.Parallel()

	t.Run("excludes parties below the threshold", func(t *testing.T) {
		// Total 855000: 5% is 42750, so only E is below.
		alloc, err := NewDHondt[string, int](WithThreshold(0.05)).Apportion(5, classicParties())

		require.NoError(t, err)
		require.Equal(t, []string{"E"}, alloc.Excluded)
		require.Equal(t, map[string]int{"A": 2, "B": 2, "C": 1, "D": 0, "E": 0}, alloc.Seats)
	})

	t.Run("excluded parties cannot win seats", func(t *testing.T) {
		parties := []types.Party[string, int]{{ID: "A", Votes: 900}, {ID: "B", Votes: 100}}

		without, err := NewDHondt[string, int]().Apportion(10, parties)
		require.NoError(t, err)
		require.Equal(t, 1, without.Seats["B"])

		with, err := NewDHondt[string, int](WithThreshold(0.2)).Apportion(10, parties)
		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 10, "B": 0}, with.Seats)
		require.Equal(t, []string{"B"}, with.Excluded)
	})

	t.Run("share equal to the threshold is eligible", func(t *testing.T) {
		parties := []types.Party[string, int]{{ID: "A", Votes: 75}, {ID: "B", Votes: 25}}

		alloc, err := NewDHondt[string, int](WithThreshold(0.25)).Apportion(4, parties)

		require.NoError(t, err)
		require.Empty(t, alloc.Excluded)
		require.Equal(t, map[string]int{"A": 3, "B": 1}, alloc.Seats)
	})

	t.Run("nobody reaches the threshold", func(t *testing.T) {
		parties := []types.Party[string, int]{{ID: "A", Votes: 1}, {ID: "B", Votes: 1}, {ID: "C", Votes: 1}}

		_, err := NewDHondt[string, int](WithThreshold(0.5)).Apportion(3, parties)

		require.ErrorIs(t, err, types.ErrNoEligibleParties)
		require.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("out of range threshold is disabled", func(t *testing.T) {
		log := logger.NewTest(t)

		for _, th := range []float64{-0.1, 1, 3, math.NaN()} {
			a := NewDHondt[string, int](WithThreshold(th), WithLogger(log))
			require.Zero(t, a.Threshold())
		}
		require.Len(t, log.Entries("WARN"), 4)
	})
}

func TestDHondt_Degenerate(t *testing.T) {
	t.Parallel()

	zero := []types.Party[string, int]{{ID: "A", Votes: 0}, {ID: "B", Votes: 0}, {ID: "C", Votes: 0}}

	t.Run("flags the allocation and warns", func(t *testing.T) {
		log := logger.NewTest(t)

		alloc, err := NewDHondt[string, int](WithLogger(log)).Apportion(3, zero)

		require.NoError(t, err)
		require.True(t, alloc.Degenerate)
		require.Equal(t, map[string]int{"A": 0, "B": 0, "C": 3}, alloc.Seats)
		require.Equal(t, 3, alloc.TiedRounds())
		require.Len(t, log.Entries("WARN"), 1)
	})

	t.Run("follows the tie-break policy", func(t *testing.T) {
		alloc, err := NewDHondt[string, int](WithTieBreak(types.TieBreakEarliest)).Apportion(3, zero)

		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 3, "B": 0, "C": 0}, alloc.Seats)
	})

	t.Run("can be rejected", func(t *testing.T) {
		alloc, err := NewDHondt[string, int](WithRejectDegenerate(true)).Apportion(3, zero)

		require.ErrorIs(t, err, types.ErrDegenerateInput)
		require.False(t, types.IsInvalidInput(err))
		require.Nil(t, alloc.Seats)
	})

	t.Run("a single non-zero party is not degenerate", func(t *testing.T) {
		parties := []types.Party[string, int]{{ID: "A", Votes: 0}, {ID: "B", Votes: 1}}

		alloc, err := NewDHondt[string, int](WithRejectDegenerate(true)).Apportion(2, parties)

		require.NoError(t, err)
		require.False(t, alloc.Degenerate)
		require.Equal(t, map[string]int{"A": 0, "B": 2}, alloc.Seats)
	})
}

func TestNewDHondt_Options(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		a := NewDHondt[string, int]()

		require.Equal(t, types.TieBreakLatest, a.TieBreak())
		require.Zero(t, a.Threshold())
		require.NotNil(t, a.logger)
		require.NotNil(t, a.metrics)
	})

	t.Run("nil options and dependencies are ignored", func(t *testing.T) {
		a := NewDHondt[string, int](nil, WithLogger(nil), WithMetrics(nil))

		require.NotNil(t, a.logger)
		require.NotNil(t, a.metrics)
	})

	t.Run("unknown tie-break falls back to latest", func(t *testing.T) {
		log := logger.NewTest(t)
		a := NewDHondt[string, int](WithTieBreak(types.TieBreak(17)), WithLogger(log))

		require.Equal(t, types.TieBreakLatest, a.TieBreak())
		require.Len(t, log.Entries("WARN"), 1)
	})
}

func TestDHondt_Observability(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	collector := metrics.NewPrometheus(reg, "test")
	log := logger.NewTest(t)
	a := NewDHondt[string, int](WithMetrics(collector), WithLogger(log))

	_, err := a.Apportion(5, classicParties())
	require.NoError(t, err)
	_, err = a.Apportion(2, []types.Party[string, int]{{ID: "A", Votes: 10}, {ID: "B", Votes: 10}})
	require.NoError(t, err)
	_, err = a.Apportion(0, classicParties())
	require.Error(t, err)
	_, err = a.Apportion(1, []types.Party[string, int]{{ID: "A", Votes: 0}})
	require.NoError(t, err)

	expected := `
# HELP test_apportioner_runs_total Total completed apportionment runs by method.
# TYPE test_apportioner_runs_total counter
test_apportioner_runs_total{method="dhondt"} 3
# HELP test_apportioner_seats_total Total seats distributed by method.
# TYPE test_apportioner_seats_total counter
test_apportioner_seats_total{method="dhondt"} 8
# HELP test_apportioner_tie_breaks_total Total rounds decided by the tie-break policy, by policy.
# TYPE test_apportioner_tie_breaks_total counter
test_apportioner_tie_breaks_total{policy="latest"} 1
# HELP test_apportioner_degenerate_inputs_total Total runs where every eligible party had zero votes.
# TYPE test_apportioner_degenerate_inputs_total counter
test_apportioner_degenerate_inputs_total 1
# HELP test_apportioner_rejected_inputs_total Total inputs rejected before computation, by reason.
# TYPE test_apportioner_rejected_inputs_total counter
test_apportioner_rejected_inputs_total{reason="seats"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"test_apportioner_runs_total",
		"test_apportioner_seats_total",
		"test_apportioner_tie_breaks_total",
		"test_apportioner_degenerate_inputs_total",
		"test_apportioner_rejected_inputs_total",
	))

	require.Len(t, log.Entries("DEBUG"), 3)
	require.Len(t, log.Entries("WARN"), 1)
}

func TestDHondt_ConcurrentRuns(t *testing.T) {
	t.Parallel()

	a := NewDHondt[string, int](WithMetrics(metrics.NewPrometheus(prometheus.NewRegistry(), "")))
	want, err := a.Apportion(5, classicParties())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]types.Allocation[string], 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = a.Apportion(5, classicParties())
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("concurrent run differs (-want +got):\n%s", diff)
		}
	}
}
