package divisor

import (
	"cmp"
	"fmt"
	"math/bits"

	"github.com/zeebo/xxh3"

	"github.com/angoru/dhont/types"
)

// SelectWinner decides one round: it returns the index in parties of the
// party with the highest quotient votes/divisor under table.
//
// Quotient ties go to the party with more votes; if votes are equal as well,
// policy decides and tied is reported as true. SelectWinner neither mutates
// parties nor table.
//
// Parameters:
//   - parties: Eligible parties in traversal order (non-empty, non-negative finite votes)
//   - table: Current divisors
//   - policy: Tie-break policy for equal quotients with equal votes
//   - seed: Seed of the drawing of lots (TieBreakLot only)
//
// Returns:
//   - winner: Index of the winning party, -1 if parties is empty
//   - tied: Whether the tie-break policy decided the round
func SelectWinner[K comparable, V types.Number](parties []types.Party[K, V], table Table[K], policy types.TieBreak, seed uint64) (winner int, tied bool) {
	if len(parties) == 0 {
		return -1, false
	}

	integral := isIntegral[V]()
	winner = 0

	for i := 1; i < len(parties); i++ {
		best, cand := parties[winner], parties[i]

		c := compareQuotients(cand.Votes, table.Of(cand.ID), best.Votes, table.Of(best.ID), integral)
		if c == 0 {
			c = cmp.Compare(cand.Votes, best.Votes)
		}

		switch {
		case c > 0:
			winner, tied = i, false
		case c == 0:
			tied = true
			if breakTie(cand.ID, best.ID, policy, seed) {
				winner = i
			}
		}
	}

	return winner, tied
}

// breakTie reports whether the later party cand beats the earlier party best.
func breakTie[K comparable](cand, best K, policy types.TieBreak, seed uint64) bool {
	switch policy {
	case types.TieBreakEarliest:
		return false
	case types.TieBreakLot:
		return lotDraw(cand, seed) > lotDraw(best, seed)
	default:
		return true
	}
}

// lotDraw is the deterministic "ballot drawn from the urn" for id.
func lotDraw[K comparable](id K, seed uint64) uint64 {
	return xxh3.HashStringSeed(fmt.Sprint(id), seed)
}

// compareQuotients compares va/da with vb/db without dividing.
//
// Integer votes are compared with exact 128-bit products. Float votes use
// float64 products, exact as long as votes*divisor stays within 2^53.
func compareQuotients[V types.Number](va V, da int, vb V, db int, integral bool) int {
	if integral {
		ahi, alo := bits.Mul64(uint64(va), uint64(db))
		bhi, blo := bits.Mul64(uint64(vb), uint64(da))
		if c := cmp.Compare(ahi, bhi); c != 0 {
			return c
		}

		return cmp.Compare(alo, blo)
	}

	return cmp.Compare(float64(va)*float64(db), float64(vb)*float64(da))
}

// isIntegral reports whether V is an integer type.
func isIntegral[V types.Number]() bool {
	var half V = 1
	half /= 2

	return half == 0
}
