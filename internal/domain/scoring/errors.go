package scoring

import "errors"

var (
	// ErrInvalidInput covers malformed or out-of-range scoring inputs:
	// scores outside [0,100], unknown freshness buckets, importance
	// weights outside 1..5, and required skills missing from the catalog.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoRequirements is returned when a match percentage is requested
	// for a job or role that declares no required skills.
	ErrNoRequirements = errors.New("no required skills declared")
)
