package types

// Apportioner distributes a fixed number of indivisible seats among parties
// proportionally to their votes.
//
// Implementations should:
//   - Be deterministic (same input → same output)
//   - Never mutate or reorder the caller's party slice
//   - Keep no state between calls (safe for concurrent use)
//   - Validate the whole input before computing any round
type Apportioner[K comparable, V Number] interface {
	// Apportion allocates seats among parties.
	//
	// Parameters:
	//   - seats: Number of seats to distribute (must be > 0)
	//   - parties: Competing parties in traversal order (non-empty, unique IDs)
	//
	// Returns:
	//   - Allocation[K]: Seats per party and the round-by-round sequence
	//   - error: ErrInvalidInput (wrapped) or ErrDegenerateInput
	Apportion(seats int, parties []Party[K, V]) (Allocation[K], error)
}
