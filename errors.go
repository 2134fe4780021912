package dhont

import "github.com/angoru/dhont/types"

// Sentinel errors returned by the apportioner, re-exported from the types package.
var (
	// ErrInvalidInput is the category of every rejected apportionment input.
	ErrInvalidInput = types.ErrInvalidInput

	// ErrInvalidSeats is returned when the seat count is not positive.
	ErrInvalidSeats = types.ErrInvalidSeats

	// ErrNoParties is returned when the party set is empty.
	ErrNoParties = types.ErrNoParties

	// ErrNegativeVotes is returned when a party has a negative vote count.
	ErrNegativeVotes = types.ErrNegativeVotes

	// ErrNonFiniteVotes is returned when a party has a NaN or infinite vote count.
	ErrNonFiniteVotes = types.ErrNonFiniteVotes

	// ErrDuplicateParty is returned when two parties share an identifier.
	ErrDuplicateParty = types.ErrDuplicateParty

	// ErrInvalidPartyID is returned for an identifier that is not equal to itself (NaN).
	ErrInvalidPartyID = types.ErrInvalidPartyID

	// ErrNoEligibleParties is returned when the electoral threshold excludes every party.
	ErrNoEligibleParties = types.ErrNoEligibleParties

	// ErrDegenerateInput is returned, when configured to reject them, for all-zero votes.
	ErrDegenerateInput = types.ErrDegenerateInput

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrUnknownTieBreak is returned for an unrecognized tie-break policy.
	ErrUnknownTieBreak = types.ErrUnknownTieBreak
)
