package scoring

import (
	"errors"
	"testing"
	"time"
)

func TestFreshnessFromDate_Bands(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ago  time.Duration
		want float64
	}{
		{"same day", 2 * time.Hour, FreshnessCurrent},
		{"ten days", 10 * 24 * time.Hour, FreshnessCurrent},
		{"just under a month", 29 * 24 * time.Hour, FreshnessCurrent},
		{"one month", 30 * 24 * time.Hour, FreshnessRecent},
		{"five months", 150 * 24 * time.Hour, FreshnessRecent},
		{"six months", 180 * 24 * time.Hour, FreshnessStale},
		{"eleven months", 330 * 24 * time.Hour, FreshnessStale},
		{"a year", 360 * 24 * time.Hour, FreshnessOld},
		{"three years", 3 * 360 * 24 * time.Hour, FreshnessOld},
	}

	for _, tc := range cases {
		got, err := FreshnessFromDate(now, now.Add(-tc.ago))
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %.0f, got %.0f", tc.name, tc.want, got)
		}
	}
}

func TestFreshnessFromDate_CeilOfPartialDays(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// 29 days and 18 hours rounds up to 30 elapsed days.
	got, err := FreshnessFromDate(now, now.Add(-(29*24+18)*time.Hour))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != FreshnessRecent {
		t.Fatalf("expected ceil to push into the 80 band, got %.0f", got)
	}
}

func TestFreshnessFromDate_ZeroDateRejected(t *testing.T) {
	_, err := FreshnessFromDate(time.Now(), time.Time{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFreshnessFromDate_FutureDateIsCurrent(t *testing.T) {
	now := time.Now()
	got, err := FreshnessFromDate(now, now.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != FreshnessCurrent {
		t.Fatalf("expected %v, got %.0f", FreshnessCurrent, got)
	}
}

func TestFreshnessFromBucket(t *testing.T) {
	cases := []struct {
		bucket string
		want   float64
	}{
		{BucketUnderMonth, FreshnessCurrent},
		{Bucket1To6Months, FreshnessRecent},
		{Bucket6To12Months, FreshnessStale},
		{Bucket1To2Years, FreshnessOld},
		{BucketOver2Years, FreshnessOld},
		{">1 year", FreshnessOld},
	}
	for _, tc := range cases {
		got, err := FreshnessFromBucket(tc.bucket)
		if err != nil {
			t.Fatalf("%q: unexpected err: %v", tc.bucket, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %.0f, got %.0f", tc.bucket, tc.want, got)
		}
	}
}

func TestFreshnessFromBucket_Unknown(t *testing.T) {
	_, err := FreshnessFromBucket("last week")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFreshnessOrDefault(t *testing.T) {
	now := time.Now()

	if got := FreshnessOrDefault(now, nil); got != DefaultFreshness {
		t.Fatalf("nil date: expected default %.0f, got %.0f", DefaultFreshness, got)
	}

	recent := now.Add(-24 * time.Hour)
	if got := FreshnessOrDefault(now, &recent); got != FreshnessCurrent {
		t.Fatalf("recent date: expected %.0f, got %.0f", FreshnessCurrent, got)
	}
}
