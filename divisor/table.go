package divisor

import "github.com/angoru/dhont/types"

// Table is the divisor state of one apportionment run: party ID → divisor.
//
// Divisors start at 1 and only ever grow by one per won seat.
type Table[K comparable] map[K]int

// NewTable creates a table with divisor 1 for every party.
//
// Parameters:
//   - parties: Parties taking part in the rounds
//
// Returns:
//   - Table[K]: Fresh divisor table
func NewTable[K comparable, V types.Number](parties []types.Party[K, V]) Table[K] {
	t := make(Table[K], len(parties))
	for _, p := range parties {
		t[p.ID] = 1
	}

	return t
}

// Of returns the current divisor of id. Unknown parties report 1.
func (t Table[K]) Of(id K) int {
	if d, ok := t[id]; ok {
		return d
	}

	return 1
}

// Increment records a won seat for id.
func (t Table[K]) Increment(id K) {
	t[id] = t.Of(id) + 1
}
