package scoring

import (
	"errors"
	"testing"
)

func TestComputeSCI_ReferenceScenario(t *testing.T) {
	// skill 70, fresh (used 10 days ago), proof 60:
	// 70*0.4 + 100*0.35 + 60*0.25 = 28 + 35 + 15 = 78.00
	res, err := ComputeSCI(70, 100, 60)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Score != 78.00 {
		t.Fatalf("expected 78.00, got %.2f", res.Score)
	}
	if res.Breakdown.SkillContribution != 28 {
		t.Fatalf("expected skill contribution 28, got %.2f", res.Breakdown.SkillContribution)
	}
	if res.Breakdown.FreshnessContribution != 35 {
		t.Fatalf("expected freshness contribution 35, got %.2f", res.Breakdown.FreshnessContribution)
	}
	if res.Breakdown.ProofContribution != 15 {
		t.Fatalf("expected proof contribution 15, got %.2f", res.Breakdown.ProofContribution)
	}
}

func TestComputeSCI_Extremes(t *testing.T) {
	res, err := ComputeSCI(100, 100, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Score != 100 {
		t.Fatalf("full marks: expected 100, got %.2f", res.Score)
	}

	// Only freshness contributes when the other inputs are zero.
	res, err = ComputeSCI(0, FreshnessOld, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Score != 7 {
		t.Fatalf("expected 20*0.35 = 7, got %.2f", res.Score)
	}

	res, err = ComputeSCI(0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Score != 0 {
		t.Fatalf("expected 0, got %.2f", res.Score)
	}
}

func TestComputeSCI_BoundedForAllInputs(t *testing.T) {
	freshness := []float64{FreshnessCurrent, FreshnessRecent, FreshnessStale, FreshnessOld, DefaultFreshness}
	for skill := 0.0; skill <= 100; skill += 12.5 {
		for proof := 0.0; proof <= 100; proof += 12.5 {
			for _, f := range freshness {
				res, err := ComputeSCI(skill, f, proof)
				if err != nil {
					t.Fatalf("unexpected err at (%v,%v,%v): %v", skill, f, proof, err)
				}
				if res.Score < 0 || res.Score > 100 {
					t.Fatalf("sci out of range at (%v,%v,%v): %.2f", skill, f, proof, res.Score)
				}
			}
		}
	}
}

func TestComputeSCI_Monotonic(t *testing.T) {
	base, err := ComputeSCI(50, 50, 50)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	bumps := []struct {
		name                 string
		skill, fresh, proof float64
	}{
		{"assessment up", 60, 50, 50},
		{"freshness up", 50, 80, 50},
		{"scenario up", 50, 50, 60},
	}
	for _, b := range bumps {
		res, err := ComputeSCI(b.skill, b.fresh, b.proof)
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", b.name, err)
		}
		if res.Score < base.Score {
			t.Fatalf("%s: sci decreased from %.2f to %.2f", b.name, base.Score, res.Score)
		}
	}
}

func TestComputeSCI_RejectsOutOfRange(t *testing.T) {
	cases := [][3]float64{
		{-1, 50, 50},
		{101, 50, 50},
		{50, -0.5, 50},
		{50, 100.5, 50},
		{50, 50, -10},
		{50, 50, 200},
	}
	for _, c := range cases {
		if _, err := ComputeSCI(c[0], c[1], c[2]); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("inputs %v: expected ErrInvalidInput, got %v", c, err)
		}
	}
}
