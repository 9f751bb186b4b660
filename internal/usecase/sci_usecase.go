package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skill-pulse/internal/domain/scoring"
)

// ComputeSCIInput is the fully-specified calculator request. Pointer
// fields distinguish "absent" from "zero" so the modeling decision for
// missing inputs is made here, once, rather than at scattered call
// sites. Exactly one of LastUsedDate or FreshnessBucket supplies the
// recency input; when both are present the date wins.
type ComputeSCIInput struct {
	SkillLevel      *float64
	LastUsedDate    *time.Time
	FreshnessBucket string
	ProofScore      *float64
}

type ComputeSCIOutput struct {
	SCIScore  float64
	Breakdown scoring.Breakdown
	Formula   string
}

type SCIUsecase interface {
	Compute(ctx context.Context, in ComputeSCIInput) (ComputeSCIOutput, error)
}

type SCI struct {
	now func() time.Time
}

func NewSCIUsecase() *SCI {
	return &SCI{now: time.Now}
}

func (u *SCI) Compute(_ context.Context, in ComputeSCIInput) (ComputeSCIOutput, error) {
	if in.SkillLevel == nil {
		return ComputeSCIOutput{}, fmt.Errorf("%w: skill_level is required", ErrInvalidInput)
	}
	if in.ProofScore == nil {
		return ComputeSCIOutput{}, fmt.Errorf("%w: proof_score is required", ErrInvalidInput)
	}

	freshness, err := u.resolveFreshness(in)
	if err != nil {
		return ComputeSCIOutput{}, err
	}

	res, err := scoring.ComputeSCI(*in.SkillLevel, freshness, *in.ProofScore)
	if err != nil {
		return ComputeSCIOutput{}, mapScoringError(err)
	}

	return ComputeSCIOutput{
		SCIScore:  res.Score,
		Breakdown: res.Breakdown,
		Formula:   scoring.Formula,
	}, nil
}

func (u *SCI) resolveFreshness(in ComputeSCIInput) (float64, error) {
	switch {
	case in.LastUsedDate != nil:
		f, err := scoring.FreshnessFromDate(u.now(), *in.LastUsedDate)
		if err != nil {
			return 0, mapScoringError(err)
		}
		return f, nil
	case in.FreshnessBucket != "":
		f, err := scoring.FreshnessFromBucket(in.FreshnessBucket)
		if err != nil {
			return 0, mapScoringError(err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: last_used_date or freshness_bucket is required", ErrInvalidInput)
	}
}

// mapScoringError folds domain scoring errors into the usecase
// taxonomy while keeping the descriptive message for 400 responses.
func mapScoringError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, scoring.ErrInvalidInput) {
		return fmt.Errorf("%w: %s", ErrInvalidInput, trimSentinel(err))
	}
	if errors.Is(err, scoring.ErrNoRequirements) {
		return ErrNoRequirements
	}
	return ErrInternal
}

func trimSentinel(err error) string {
	msg := err.Error()
	const prefix = "invalid input: "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
