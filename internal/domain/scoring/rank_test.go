package scoring

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestMatchPercentage_ReferenceScenario(t *testing.T) {
	skillA := uuid.New()
	skillB := uuid.New()

	required := []RequiredSkill{
		{SkillID: skillA, SkillName: "SkillA", MinimumSCI: 50, Importance: 5},
		{SkillID: skillB, SkillName: "SkillB", MinimumSCI: 80, Importance: 1},
	}
	candidate := map[uuid.UUID]float64{skillA: 60, skillB: 40}

	gaps, err := AnalyzeGap(candidate, required)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	pct, err := MatchPercentage(gaps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// (5 + 0.5) / 6 * 100 = 91.67, rounds to 92.
	if pct != 92 {
		t.Fatalf("expected 92, got %d", pct)
	}
}

func TestMatchPercentage_Extremes(t *testing.T) {
	id1, id2 := uuid.New(), uuid.New()
	required := []RequiredSkill{
		{SkillID: id1, MinimumSCI: 50, Importance: 3},
		{SkillID: id2, MinimumSCI: 70, Importance: 2},
	}

	allMeets := map[uuid.UUID]float64{id1: 90, id2: 70}
	gaps, _ := AnalyzeGap(allMeets, required)
	pct, err := MatchPercentage(gaps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pct != 100 {
		t.Fatalf("meets everything: expected 100, got %d", pct)
	}

	gaps, _ = AnalyzeGap(map[uuid.UUID]float64{}, required)
	pct, err = MatchPercentage(gaps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pct != 0 {
		t.Fatalf("missing everything: expected 0, got %d", pct)
	}
}

func TestMatchPercentage_NoRequirements(t *testing.T) {
	if _, err := MatchPercentage(nil); !errors.Is(err, ErrNoRequirements) {
		t.Fatalf("expected ErrNoRequirements, got %v", err)
	}
}

func TestRankCandidates_NoRequirements(t *testing.T) {
	if _, err := RankCandidates(nil, nil); !errors.Is(err, ErrNoRequirements) {
		t.Fatalf("expected ErrNoRequirements, got %v", err)
	}
}

func TestRankCandidates_OrderAndTieBreak(t *testing.T) {
	skill := uuid.New()
	required := []RequiredSkill{{SkillID: skill, SkillName: "Go", MinimumSCI: 50, Importance: 5}}

	strong := uuid.MustParse("99999999-9999-9999-9999-999999999999")
	tieHigh := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	tieLow := uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	weak := uuid.MustParse("cccccccc-cccc-cccc-cccc-cccccccccccc")

	candidates := map[uuid.UUID]map[uuid.UUID]float64{
		weak:    {skill: 10},
		tieLow:  {skill: 75},
		strong:  {skill: 90},
		tieHigh: {skill: 80},
	}

	ranked, err := RankCandidates(required, candidates)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ranked) != 4 {
		t.Fatalf("expected 4 candidates, got %d", len(ranked))
	}

	// strong, tieHigh and tieLow all meet (100%); the 100% tie breaks
	// on candidate id ascending since meets-counts are equal.
	if ranked[0].CandidateID != strong && ranked[0].CandidateID != tieHigh {
		// strong's id (99...) sorts before tieHigh's (aa...).
		t.Fatalf("unexpected leader %s", ranked[0].CandidateID)
	}
	if ranked[0].CandidateID != strong {
		t.Fatalf("expected id-ascending tie-break to put %s first, got %s", strong, ranked[0].CandidateID)
	}
	if ranked[1].CandidateID != tieHigh || ranked[2].CandidateID != tieLow {
		t.Fatalf("unexpected tie order: %s, %s", ranked[1].CandidateID, ranked[2].CandidateID)
	}
	if ranked[3].CandidateID != weak {
		t.Fatalf("expected weak candidate last, got %s", ranked[3].CandidateID)
	}
	if ranked[3].MatchPercentage != 20 {
		t.Fatalf("weak candidate: expected 10/50*100 = 20, got %d", ranked[3].MatchPercentage)
	}
}

func TestRankCandidates_MeetsCountBreaksPercentageTie(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()
	required := []RequiredSkill{
		{SkillID: s1, MinimumSCI: 80, Importance: 1},
		{SkillID: s2, MinimumSCI: 80, Importance: 1},
	}

	// Both score 50%: one meets a single skill outright, the other is
	// halfway on both.
	oneMeets := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")
	twoHalves := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	candidates := map[uuid.UUID]map[uuid.UUID]float64{
		oneMeets:  {s1: 80},
		twoHalves: {s1: 40, s2: 40},
	}

	ranked, err := RankCandidates(required, candidates)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ranked[0].MatchPercentage != ranked[1].MatchPercentage {
		t.Fatalf("expected a percentage tie, got %d vs %d", ranked[0].MatchPercentage, ranked[1].MatchPercentage)
	}
	if ranked[0].CandidateID != oneMeets {
		t.Fatalf("expected the candidate with more met skills first")
	}
}

func TestReadinessBands(t *testing.T) {
	cases := []struct {
		pct  int
		want Readiness
	}{
		{100, ReadinessReady},
		{80, ReadinessReady},
		{79, ReadinessConsider},
		{60, ReadinessConsider},
		{59, ReadinessNotReady},
		{0, ReadinessNotReady},
	}
	for _, tc := range cases {
		if got := ReadinessFor(tc.pct); got != tc.want {
			t.Fatalf("pct %d: expected %s, got %s", tc.pct, tc.want, got)
		}
	}
}

func TestScoreLabel(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "excellent"},
		{80, "excellent"},
		{60, "good"},
		{40, "needs_work"},
		{39.9, "critical"},
	}
	for _, tc := range cases {
		if got := ScoreLabel(tc.score); got != tc.want {
			t.Fatalf("score %.1f: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}
