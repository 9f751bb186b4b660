package scoring

import (
	"fmt"

	"github.com/google/uuid"
)

type GapStatus string

const (
	StatusMeets   GapStatus = "meets"
	StatusBelow   GapStatus = "below"
	StatusMissing GapStatus = "missing"
)

// RequiredSkill is one (skill, minimum SCI, importance) requirement of
// a role or job, in the author's declared order.
type RequiredSkill struct {
	SkillID    uuid.UUID
	SkillName  string
	MinimumSCI float64
	Importance int
}

// GapResult classifies a single required skill against a candidate's
// SCI. MaxScore equals the importance weight, so a 5-star requirement
// is worth five times a 1-star one in the aggregate.
type GapResult struct {
	SkillID      uuid.UUID
	SkillName    string
	Status       GapStatus
	CandidateSCI float64
	MinimumSCI   float64
	Importance   int
	Score        float64
	MaxScore     float64
}

// AnalyzeGap scores each required skill against the candidate's SCIs.
// Output order preserves the declared requirement order; sorting is the
// ranker's job. Skills the candidate has beyond the requirements never
// appear and never affect the result.
func AnalyzeGap(candidate map[uuid.UUID]float64, required []RequiredSkill) ([]GapResult, error) {
	out := make([]GapResult, 0, len(required))

	for _, req := range required {
		if req.SkillID == uuid.Nil {
			return nil, fmt.Errorf("%w: required skill without a skill id", ErrInvalidInput)
		}
		if req.Importance < 1 || req.Importance > 5 {
			return nil, fmt.Errorf("%w: importance %d for skill %s outside 1..5", ErrInvalidInput, req.Importance, req.SkillName)
		}
		if req.MinimumSCI < 0 || req.MinimumSCI > 100 {
			return nil, fmt.Errorf("%w: minimum sci %.2f for skill %s outside [0,100]", ErrInvalidInput, req.MinimumSCI, req.SkillName)
		}

		maxScore := float64(req.Importance)
		res := GapResult{
			SkillID:    req.SkillID,
			SkillName:  req.SkillName,
			MinimumSCI: req.MinimumSCI,
			Importance: req.Importance,
			MaxScore:   maxScore,
		}

		sci, ok := candidate[req.SkillID]
		switch {
		case !ok:
			// No record at all is always missing, never below.
			res.Status = StatusMissing
			res.Score = 0
		case sci >= req.MinimumSCI:
			res.Status = StatusMeets
			res.CandidateSCI = sci
			res.Score = maxScore
		default:
			// Partial credit proportional to how close the candidate
			// is to the bar, so near-misses rank above far-misses.
			res.Status = StatusBelow
			res.CandidateSCI = sci
			res.Score = sci / req.MinimumSCI * maxScore
		}

		out = append(out, res)
	}

	return out, nil
}
