package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skill-pulse/internal/domain/scoring"
	"skill-pulse/internal/repository"

	"github.com/google/uuid"
)

type SkillRecordItem struct {
	SkillID         uuid.UUID
	SkillName       string
	AssessmentScore float64
	ScenarioScore   float64
	LastUsedAt      *time.Time
	LastAssessedAt  *time.Time
	SCI             float64
	Label           string
}

type SkillRecordUsecase interface {
	ListMySkills(ctx context.Context, userID uuid.UUID) ([]SkillRecordItem, error)
	UpdateLastUsed(ctx context.Context, userID, skillID uuid.UUID, lastUsed time.Time) (SkillRecordItem, error)
	UpdateScenarioScore(ctx context.Context, userID, skillID uuid.UUID, score float64) (SkillRecordItem, error)
}

type rankingInvalidator interface {
	InvalidateRankings(ctx context.Context) error
}

type SkillRecord struct {
	records repository.SkillRecordRepository
	cache   rankingInvalidator
	now     func() time.Time
}

func NewSkillRecordUsecase(records repository.SkillRecordRepository, cache rankingInvalidator) *SkillRecord {
	return &SkillRecord{records: records, cache: cache, now: time.Now}
}

func (u *SkillRecord) ListMySkills(ctx context.Context, userID uuid.UUID) ([]SkillRecordItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	recs, err := u.records.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SkillRecordItem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toSkillRecordItem(rec))
	}
	return out, nil
}

func (u *SkillRecord) UpdateLastUsed(ctx context.Context, userID, skillID uuid.UUID, lastUsed time.Time) (SkillRecordItem, error) {
	if userID == uuid.Nil {
		return SkillRecordItem{}, ErrUnauthorized
	}
	if skillID == uuid.Nil {
		return SkillRecordItem{}, ErrInvalidInput
	}
	if lastUsed.IsZero() {
		return SkillRecordItem{}, fmt.Errorf("%w: last_used_date is required", ErrInvalidInput)
	}
	if lastUsed.After(u.now()) {
		return SkillRecordItem{}, fmt.Errorf("%w: last_used_date is in the future", ErrInvalidInput)
	}

	rec, err := u.records.FindByUserAndSkill(ctx, userID, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillRecordNotFound) {
			return SkillRecordItem{}, ErrSkillRecordNotFound
		}
		return SkillRecordItem{}, ErrInternal
	}

	rec.LastUsedAt = &lastUsed
	return u.persistRecomputed(ctx, rec)
}

func (u *SkillRecord) UpdateScenarioScore(ctx context.Context, userID, skillID uuid.UUID, score float64) (SkillRecordItem, error) {
	if userID == uuid.Nil {
		return SkillRecordItem{}, ErrUnauthorized
	}
	if skillID == uuid.Nil {
		return SkillRecordItem{}, ErrInvalidInput
	}
	if score < 0 || score > 100 {
		return SkillRecordItem{}, fmt.Errorf("%w: scenario score %.2f outside [0,100]", ErrInvalidInput, score)
	}

	rec, err := u.records.FindByUserAndSkill(ctx, userID, skillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillRecordNotFound) {
			return SkillRecordItem{}, ErrSkillRecordNotFound
		}
		return SkillRecordItem{}, ErrInternal
	}

	rec.ScenarioScore = score
	return u.persistRecomputed(ctx, rec)
}

// persistRecomputed rewrites the derived SCI together with its changed
// inputs so the stored value never goes stale against them.
func (u *SkillRecord) persistRecomputed(ctx context.Context, rec repository.SkillRecord) (SkillRecordItem, error) {
	sci, err := recomputeSCI(u.now(), rec)
	if err != nil {
		return SkillRecordItem{}, err
	}
	rec.SCI = sci

	saved, err := u.records.Upsert(ctx, rec)
	if err != nil {
		return SkillRecordItem{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.InvalidateRankings(ctx)
	}

	return toSkillRecordItem(saved), nil
}

// recomputeSCI derives a record's SCI from its stored inputs. Records
// without a last-used date use the documented aggregation default.
func recomputeSCI(now time.Time, rec repository.SkillRecord) (float64, error) {
	freshness := scoring.FreshnessOrDefault(now, rec.LastUsedAt)
	res, err := scoring.ComputeSCI(rec.AssessmentScore, freshness, rec.ScenarioScore)
	if err != nil {
		return 0, mapScoringError(err)
	}
	return res.Score, nil
}

func toSkillRecordItem(rec repository.SkillRecord) SkillRecordItem {
	return SkillRecordItem{
		SkillID:         rec.SkillID,
		SkillName:       rec.SkillName,
		AssessmentScore: rec.AssessmentScore,
		ScenarioScore:   rec.ScenarioScore,
		LastUsedAt:      rec.LastUsedAt,
		LastAssessedAt:  rec.LastAssessedAt,
		SCI:             rec.SCI,
		Label:           scoring.ScoreLabel(rec.SCI),
	}
}
