package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// RankedCandidate is one candidate's scored position for a job.
type RankedCandidate struct {
	CandidateID     uuid.UUID
	MatchPercentage int
	MeetsCount      int
	Breakdown       []GapResult
}

// MatchPercentage aggregates a gap analysis into the importance-weighted
// percentage of required-skill credit earned. Zero requirements is a
// job misconfiguration, not a zero score.
func MatchPercentage(gaps []GapResult) (int, error) {
	if len(gaps) == 0 {
		return 0, ErrNoRequirements
	}

	var score, maxScore float64
	for _, g := range gaps {
		score += g.Score
		maxScore += g.MaxScore
	}
	if maxScore == 0 {
		return 0, ErrNoRequirements
	}

	pct := int(math.Round(score / maxScore * 100))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct, nil
}

// ScoreCandidate runs the gap analysis and aggregation for a single
// candidate. Safe to call concurrently across candidates.
func ScoreCandidate(candidateID uuid.UUID, skills map[uuid.UUID]float64, required []RequiredSkill) (RankedCandidate, error) {
	gaps, err := AnalyzeGap(skills, required)
	if err != nil {
		return RankedCandidate{}, err
	}

	pct, err := MatchPercentage(gaps)
	if err != nil {
		return RankedCandidate{}, err
	}

	meets := 0
	for _, g := range gaps {
		if g.Status == StatusMeets {
			meets++
		}
	}

	return RankedCandidate{
		CandidateID:     candidateID,
		MatchPercentage: pct,
		MeetsCount:      meets,
		Breakdown:       gaps,
	}, nil
}

// SortRanked orders candidates deterministically: match percentage
// descending, then meets-count descending, then candidate id ascending.
// Equal-percentage ties are common with small skill sets, so the
// tie-break is explicit rather than map iteration order.
func SortRanked(ranked []RankedCandidate) {
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.MatchPercentage != b.MatchPercentage {
			return a.MatchPercentage > b.MatchPercentage
		}
		if a.MeetsCount != b.MeetsCount {
			return a.MeetsCount > b.MeetsCount
		}
		return strings.Compare(a.CandidateID.String(), b.CandidateID.String()) < 0
	})
}

// RankCandidates scores and orders every candidate for one set of job
// requirements. The per-candidate work is independent; callers that
// rank many candidates may parallelize ScoreCandidate and finish with
// SortRanked themselves.
func RankCandidates(required []RequiredSkill, candidates map[uuid.UUID]map[uuid.UUID]float64) ([]RankedCandidate, error) {
	if len(required) == 0 {
		return nil, ErrNoRequirements
	}

	ranked := make([]RankedCandidate, 0, len(candidates))
	for id, skills := range candidates {
		rc, err := ScoreCandidate(id, skills, required)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, rc)
	}

	SortRanked(ranked)
	return ranked, nil
}
