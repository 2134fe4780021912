package types

// MetricsCollector defines methods for recording apportionment metrics.
//
// Implementations should be non-blocking and must be safe for concurrent use,
// since independent apportionment runs may record at the same time.
type MetricsCollector interface {
	// RecordApportionment records a completed apportionment run.
	//
	// Parameters:
	//   - method: Apportionment method name (e.g., "dhondt")
	//   - seats: Number of seats distributed
	//   - parties: Number of input parties
	//   - duration: Time taken in seconds
	RecordApportionment(method string, seats, parties int, duration float64)

	// RecordTieBreak records a round decided by the tie-break policy.
	//
	// Parameters:
	//   - policy: Tie-break policy name ("latest", "earliest", "lot")
	RecordTieBreak(policy string)

	// RecordDegenerate records a run where every eligible party had zero votes.
	RecordDegenerate()

	// RecordRejected records an input rejected before computation.
	//
	// Parameters:
	//   - reason: Short rejection reason ("seats", "no_parties", "negative_votes", ...)
	RecordRejected(reason string)
}
