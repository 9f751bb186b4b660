package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skill-pulse/internal/repository"

	"github.com/google/uuid"
)

func newTestSkillRecord(records *memRecordRepo, now time.Time) *SkillRecord {
	uc := NewSkillRecordUsecase(records, nil)
	uc.now = func() time.Time { return now }
	return uc
}

func TestUpdateLastUsed_RecomputesSCI(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	records := newMemRecordRepo()
	if _, err := records.Upsert(context.Background(), repository.SkillRecord{
		UserID:          userID,
		SkillID:         skillID,
		AssessmentScore: 80,
		ScenarioScore:   40,
		SCI:             0,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	uc := newTestSkillRecord(records, now)
	lastUsed := now.AddDate(0, 0, -10)
	item, err := uc.UpdateLastUsed(context.Background(), userID, skillID, lastUsed)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// 80*0.40 + 100*0.35 + 40*0.25 = 77.
	if item.SCI != 77 {
		t.Fatalf("expected sci 77, got %.2f", item.SCI)
	}
	if item.LastUsedAt == nil || !item.LastUsedAt.Equal(lastUsed) {
		t.Fatalf("last used not stored: %v", item.LastUsedAt)
	}

	stored, err := records.FindByUserAndSkill(context.Background(), userID, skillID)
	if err != nil {
		t.Fatalf("record missing: %v", err)
	}
	if stored.SCI != 77 {
		t.Fatalf("stored sci stale: %.2f", stored.SCI)
	}
}

func TestUpdateLastUsed_FutureRejected(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	records := newMemRecordRepo()
	seedRecord(t, records, userID, skillID, 50)

	uc := newTestSkillRecord(records, now)
	_, err := uc.UpdateLastUsed(context.Background(), userID, skillID, now.AddDate(0, 1, 0))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateLastUsed_UnknownRecord(t *testing.T) {
	uc := newTestSkillRecord(newMemRecordRepo(), time.Now())
	_, err := uc.UpdateLastUsed(context.Background(), uuid.New(), uuid.New(), time.Now().AddDate(0, 0, -1))
	if !errors.Is(err, ErrSkillRecordNotFound) {
		t.Fatalf("expected ErrSkillRecordNotFound, got %v", err)
	}
}

func TestUpdateScenarioScore_Bounds(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()
	records := newMemRecordRepo()
	seedRecord(t, records, userID, skillID, 50)

	uc := newTestSkillRecord(records, time.Now())
	for _, bad := range []float64{-1, 100.01, 500} {
		if _, err := uc.UpdateScenarioScore(context.Background(), userID, skillID, bad); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("score %.2f: expected ErrInvalidInput, got %v", bad, err)
		}
	}
}

func TestUpdateScenarioScore_NoUsageDateDefaults(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	records := newMemRecordRepo()
	if _, err := records.Upsert(context.Background(), repository.SkillRecord{
		UserID:          userID,
		SkillID:         skillID,
		AssessmentScore: 60,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	uc := newTestSkillRecord(records, now)
	item, err := uc.UpdateScenarioScore(context.Background(), userID, skillID, 80)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// 60*0.40 + 50*0.35 + 80*0.25: missing usage date scores as 50.
	if item.SCI != 61.5 {
		t.Fatalf("expected sci 61.5, got %.2f", item.SCI)
	}
	if item.Label != "good" {
		t.Fatalf("expected label good, got %q", item.Label)
	}
}

func TestListMySkills(t *testing.T) {
	userID := uuid.New()
	records := newMemRecordRepo()
	seedRecord(t, records, userID, uuid.New(), 85)
	seedRecord(t, records, userID, uuid.New(), 30)
	seedRecord(t, records, uuid.New(), uuid.New(), 99) // another user

	uc := newTestSkillRecord(records, time.Now())
	items, err := uc.ListMySkills(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
}
