package scoring

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestAnalyzeGap_Statuses(t *testing.T) {
	skillA := uuid.New()
	skillB := uuid.New()
	skillC := uuid.New()

	required := []RequiredSkill{
		{SkillID: skillA, SkillName: "Go", MinimumSCI: 50, Importance: 5},
		{SkillID: skillB, SkillName: "PostgreSQL", MinimumSCI: 80, Importance: 1},
		{SkillID: skillC, SkillName: "Docker", MinimumSCI: 60, Importance: 3},
	}
	candidate := map[uuid.UUID]float64{
		skillA: 60,
		skillB: 40,
	}

	gaps, err := AnalyzeGap(candidate, required)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(gaps) != 3 {
		t.Fatalf("expected 3 results, got %d", len(gaps))
	}

	if gaps[0].Status != StatusMeets || gaps[0].Score != 5 {
		t.Fatalf("skill A: expected meets with full credit 5, got %s %.2f", gaps[0].Status, gaps[0].Score)
	}
	if gaps[1].Status != StatusBelow {
		t.Fatalf("skill B: expected below, got %s", gaps[1].Status)
	}
	if gaps[1].Score != 0.5 {
		t.Fatalf("skill B: expected partial credit 40/80*1 = 0.5, got %.2f", gaps[1].Score)
	}
	if gaps[2].Status != StatusMissing || gaps[2].Score != 0 {
		t.Fatalf("skill C: expected missing with 0, got %s %.2f", gaps[2].Status, gaps[2].Score)
	}
}

func TestAnalyzeGap_MissingNeverBelow(t *testing.T) {
	req := []RequiredSkill{{SkillID: uuid.New(), SkillName: "Go", MinimumSCI: 1, Importance: 1}}

	gaps, err := AnalyzeGap(map[uuid.UUID]float64{}, req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gaps[0].Status != StatusMissing {
		t.Fatalf("expected missing, got %s", gaps[0].Status)
	}
}

func TestAnalyzeGap_ZeroMinimumAlwaysMeets(t *testing.T) {
	id := uuid.New()
	req := []RequiredSkill{{SkillID: id, SkillName: "Go", MinimumSCI: 0, Importance: 2}}

	gaps, err := AnalyzeGap(map[uuid.UUID]float64{id: 0}, req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gaps[0].Status != StatusMeets || gaps[0].Score != 2 {
		t.Fatalf("expected meets with full credit, got %s %.2f", gaps[0].Status, gaps[0].Score)
	}
}

func TestAnalyzeGap_PreservesDeclaredOrder(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	required := make([]RequiredSkill, 0, len(ids))
	for i, id := range ids {
		required = append(required, RequiredSkill{SkillID: id, MinimumSCI: float64(90 - i*10), Importance: 1 + i})
	}

	gaps, err := AnalyzeGap(map[uuid.UUID]float64{ids[2]: 95}, required)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i, g := range gaps {
		if g.SkillID != ids[i] {
			t.Fatalf("result %d out of declared order", i)
		}
	}
}

func TestAnalyzeGap_Idempotent(t *testing.T) {
	id := uuid.New()
	candidate := map[uuid.UUID]float64{id: 42.5}
	required := []RequiredSkill{{SkillID: id, SkillName: "Go", MinimumSCI: 70, Importance: 4}}

	first, err := AnalyzeGap(candidate, required)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := AnalyzeGap(candidate, required)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different outputs")
	}
}

func TestAnalyzeGap_InvalidImportance(t *testing.T) {
	for _, imp := range []int{0, 6, -1} {
		req := []RequiredSkill{{SkillID: uuid.New(), SkillName: "Go", MinimumSCI: 50, Importance: imp}}
		if _, err := AnalyzeGap(nil, req); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("importance %d: expected ErrInvalidInput, got %v", imp, err)
		}
	}
}

func TestAnalyzeGap_NilSkillID(t *testing.T) {
	req := []RequiredSkill{{SkillID: uuid.Nil, MinimumSCI: 50, Importance: 3}}
	if _, err := AnalyzeGap(nil, req); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
