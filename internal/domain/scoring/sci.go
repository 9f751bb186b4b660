package scoring

import (
	"fmt"
	"math"
)

// SCI weights. Fixed; must sum to 1.0 so a full-marks input yields
// exactly 100.
const (
	WeightAssessment = 0.40
	WeightFreshness  = 0.35
	WeightScenario   = 0.25
)

// Formula is returned alongside every computed SCI so no score is ever
// an unexplainable number.
const Formula = "sci = assessment*0.40 + freshness*0.35 + scenario*0.25"

// Breakdown exposes the three weighted contributions behind a SCI.
type Breakdown struct {
	SkillLevel            float64
	SkillContribution     float64
	FreshnessScore        float64
	FreshnessContribution float64
	ProofScore            float64
	ProofContribution     float64
}

// SCIResult is a fully computed Skill Confidence Index. Score is the
// raw two-decimal value; display layers round further to integers.
type SCIResult struct {
	Score     float64
	Breakdown Breakdown
}

// ComputeSCI combines an assessment score, a freshness score and a
// scenario/practical score into a single 0-100 index. All three inputs
// must already be resolved to numbers in [0,100]; freshness bucket or
// date mapping happens at the caller.
func ComputeSCI(skillLevel, freshness, proofScore float64) (SCIResult, error) {
	if err := validateScore("assessment score", skillLevel); err != nil {
		return SCIResult{}, err
	}
	if err := validateScore("freshness score", freshness); err != nil {
		return SCIResult{}, err
	}
	if err := validateScore("scenario score", proofScore); err != nil {
		return SCIResult{}, err
	}

	skillPart := skillLevel * WeightAssessment
	freshPart := freshness * WeightFreshness
	proofPart := proofScore * WeightScenario

	score := Round2(skillPart + freshPart + proofPart)
	score = Clamp(score)

	return SCIResult{
		Score: score,
		Breakdown: Breakdown{
			SkillLevel:            skillLevel,
			SkillContribution:     Round2(skillPart),
			FreshnessScore:        freshness,
			FreshnessContribution: Round2(freshPart),
			ProofScore:            proofScore,
			ProofContribution:     Round2(proofPart),
		},
	}, nil
}

func validateScore(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is not a number", ErrInvalidInput, name)
	}
	if v < 0 || v > 100 {
		return fmt.Errorf("%w: %s %.2f outside [0,100]", ErrInvalidInput, name, v)
	}
	return nil
}

// Round2 rounds to two decimal places, the precision SCI values are
// stored and compared at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp bounds a score to [0,100] so rounding can never push a value
// past the scale.
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
