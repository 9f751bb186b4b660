package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Freshness step scores per recency band. Months are approximated as
// elapsed days / 30, not calendar months.
const (
	FreshnessCurrent = 100.0
	FreshnessRecent  = 80.0
	FreshnessStale   = 50.0
	FreshnessOld     = 20.0

	// DefaultFreshness is the one sanctioned fallback for records that
	// have no last-used date at all. Only aggregation paths (gap
	// analysis, dashboard recompute) may use it; the SCI calculator
	// itself rejects a missing date.
	DefaultFreshness = 50.0
)

const daysPerMonth = 30

// Qualitative freshness bands as submitted by the bucket-driven call
// pattern. The last two bands both decay to the floor score.
const (
	BucketUnderMonth  = "<1 month"
	Bucket1To6Months  = "1-6 months"
	Bucket6To12Months = "6-12 months"
	Bucket1To2Years   = "1-2 years"
	BucketOver2Years  = ">2 years"
)

// FreshnessFromDate derives the recency score from a concrete last-used
// timestamp. Elapsed days use ceil so that any non-zero interval counts
// as at least one day. A zero lastUsed is rejected rather than
// defaulted, so bad input surfaces at the caller.
func FreshnessFromDate(now, lastUsed time.Time) (float64, error) {
	if lastUsed.IsZero() {
		return 0, fmt.Errorf("%w: last used date is required", ErrInvalidInput)
	}

	elapsed := now.Sub(lastUsed)
	if elapsed < 0 {
		elapsed = 0
	}
	days := int(math.Ceil(elapsed.Hours() / 24))

	switch {
	case days < 1*daysPerMonth:
		return FreshnessCurrent, nil
	case days < 6*daysPerMonth:
		return FreshnessRecent, nil
	case days < 12*daysPerMonth:
		return FreshnessStale, nil
	default:
		return FreshnessOld, nil
	}
}

// FreshnessFromBucket maps a qualitative recency band to its score.
// ">1 year" is accepted as a legacy alias for the two year-plus bands.
func FreshnessFromBucket(bucket string) (float64, error) {
	switch strings.TrimSpace(bucket) {
	case BucketUnderMonth:
		return FreshnessCurrent, nil
	case Bucket1To6Months:
		return FreshnessRecent, nil
	case Bucket6To12Months:
		return FreshnessStale, nil
	case Bucket1To2Years, BucketOver2Years, ">1 year":
		return FreshnessOld, nil
	default:
		return 0, fmt.Errorf("%w: unknown freshness bucket %q", ErrInvalidInput, bucket)
	}
}

// FreshnessOrDefault is the single place where a record without a
// last-used date falls back to DefaultFreshness. Aggregation callers
// (gap analysis, nightly recompute) use this; direct SCI computation
// from request input does not.
func FreshnessOrDefault(now time.Time, lastUsed *time.Time) float64 {
	if lastUsed == nil || lastUsed.IsZero() {
		return DefaultFreshness
	}
	f, err := FreshnessFromDate(now, *lastUsed)
	if err != nil {
		return DefaultFreshness
	}
	return f
}
