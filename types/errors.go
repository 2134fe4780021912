package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the dhont library.
//
// These errors provide type-safe error checking using errors.Is().
// Specific input errors wrap ErrInvalidInput, so callers can match either the
// category or the precise cause:
//
//	errors.Is(err, types.ErrInvalidInput) // any rejected input
//	errors.Is(err, types.ErrNoParties)    // empty party set only

// Input errors - returned before any round is computed. No partial result is returned.
var (
	// ErrInvalidInput is the category of every rejected apportionment input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSeats is returned when the seat count is not positive.
	ErrInvalidSeats = fmt.Errorf("%w: seat count must be positive", ErrInvalidInput)

	// ErrNoParties is returned when the party set is empty.
	ErrNoParties = fmt.Errorf("%w: no parties", ErrInvalidInput)

	// ErrNegativeVotes is returned when a party has a negative vote count.
	ErrNegativeVotes = fmt.Errorf("%w: negative vote count", ErrInvalidInput)

	// ErrNonFiniteVotes is returned when a party has a NaN or infinite vote count.
	ErrNonFiniteVotes = fmt.Errorf("%w: non-finite vote count", ErrInvalidInput)

	// ErrDuplicateParty is returned when two parties share an identifier.
	ErrDuplicateParty = fmt.Errorf("%w: duplicate party", ErrInvalidInput)

	// ErrInvalidPartyID is returned for an identifier that is not equal to
	// itself, such as a floating point NaN. Such a party cannot be looked up
	// in the divisor table or the result.
	ErrInvalidPartyID = fmt.Errorf("%w: party identifier not equal to itself", ErrInvalidInput)

	// ErrNoEligibleParties is returned when the electoral threshold excludes every party.
	ErrNoEligibleParties = fmt.Errorf("%w: no party reaches the threshold", ErrInvalidInput)
)

// Outcome errors.
var (
	// ErrDegenerateInput is returned, when degenerate inputs are rejected, for
	// inputs where every eligible party has zero votes. The seats would be
	// decided by the tie-break policy alone.
	ErrDegenerateInput = errors.New("degenerate input: all eligible votes are zero")
)

// Configuration errors.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownTieBreak is returned for an unrecognized tie-break policy.
	ErrUnknownTieBreak = fmt.Errorf("%w: unknown tie-break policy", ErrInvalidConfig)
)

// IsInvalidInput reports whether err was caused by rejected apportionment input.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if err wraps ErrInvalidInput
func IsInvalidInput(err error) bool {
	return err != nil && errors.Is(err, ErrInvalidInput)
}
