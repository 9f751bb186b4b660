package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"skill-pulse/internal/domain/scoring"
	"skill-pulse/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	exists     bool
	job        repository.Job
	required   []repository.RequiredSkillRow
	candidates []repository.Candidate
	err        error
}

func (m mockJobRepo) ExistsByID(context.Context, uuid.UUID) (bool, error) {
	return m.exists, m.err
}

func (m mockJobRepo) GetByID(context.Context, uuid.UUID) (repository.Job, error) {
	return m.job, m.err
}

func (m mockJobRepo) FindRequiredSkills(context.Context, uuid.UUID) ([]repository.RequiredSkillRow, error) {
	return m.required, m.err
}

func (m mockJobRepo) ListCandidates(context.Context) ([]repository.Candidate, error) {
	return m.candidates, m.err
}

func TestRankJobCandidates_OrderAndTieBreak(t *testing.T) {
	jobID := uuid.New()
	goID := uuid.New()
	pgID := uuid.New()

	strong := repository.Candidate{ID: uuid.New(), Name: "Strong", Email: "strong@example.com"}
	weak := repository.Candidate{ID: uuid.New(), Name: "Weak", Email: "weak@example.com"}

	jobs := mockJobRepo{
		exists: true,
		required: []repository.RequiredSkillRow{
			{SkillID: goID, SkillName: "Go", MinimumSCI: 70, Importance: 5},
			{SkillID: pgID, SkillName: "PostgreSQL", MinimumSCI: 60, Importance: 4},
		},
		candidates: []repository.Candidate{weak, strong},
	}

	records := newMemRecordRepo()
	seedRecord(t, records, strong.ID, goID, 90)
	seedRecord(t, records, strong.ID, pgID, 80)
	seedRecord(t, records, weak.ID, goID, 35)

	uc := NewRankingUsecase(jobs, records, nil, nil)
	ranked, err := uc.RankJobCandidates(context.Background(), jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(ranked) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(ranked))
	}
	if ranked[0].CandidateID != strong.ID {
		t.Fatalf("expected the strong candidate first")
	}
	if ranked[0].MatchPercentage != 100 {
		t.Fatalf("expected 100%%, got %d", ranked[0].MatchPercentage)
	}
	if ranked[0].Readiness != scoring.ReadinessReady {
		t.Fatalf("expected ready, got %s", ranked[0].Readiness)
	}
	// 5*(35/70) + 0 = 2.5 of 9 -> 28.
	if ranked[1].MatchPercentage != 28 {
		t.Fatalf("expected 28%%, got %d", ranked[1].MatchPercentage)
	}
	if ranked[1].Readiness != scoring.ReadinessNotReady {
		t.Fatalf("expected not_ready, got %s", ranked[1].Readiness)
	}
	if ranked[0].CandidateName != "Strong" || ranked[0].CandidateEmail != "strong@example.com" {
		t.Fatalf("candidate identity not carried: %+v", ranked[0])
	}
}

func TestRankJobCandidates_Deterministic(t *testing.T) {
	jobID := uuid.New()
	skillID := uuid.New()

	candidates := make([]repository.Candidate, 0, 12)
	records := newMemRecordRepo()
	for i := 0; i < 12; i++ {
		c := repository.Candidate{ID: uuid.New(), Name: "c", Email: "c@example.com"}
		candidates = append(candidates, c)
		// Identical scores force the id tie-break on every run.
		seedRecord(t, records, c.ID, skillID, 50)
	}

	jobs := mockJobRepo{
		exists: true,
		required: []repository.RequiredSkillRow{
			{SkillID: skillID, SkillName: "Go", MinimumSCI: 40, Importance: 3},
		},
		candidates: candidates,
	}

	uc := NewRankingUsecase(jobs, records, nil, nil)

	first, err := uc.RankJobCandidates(context.Background(), jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for run := 0; run < 5; run++ {
		again, err := uc.RankJobCandidates(context.Background(), jobID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("ranking order changed between runs")
		}
	}
	for i := 1; i < len(first); i++ {
		if first[i-1].CandidateID.String() > first[i].CandidateID.String() {
			t.Fatalf("equal scores not ordered by candidate id")
		}
	}
}

func TestRankJobCandidates_NoRequirements(t *testing.T) {
	uc := NewRankingUsecase(mockJobRepo{exists: true}, newMemRecordRepo(), nil, nil)
	_, err := uc.RankJobCandidates(context.Background(), uuid.New())
	if !errors.Is(err, ErrNoRequirements) {
		t.Fatalf("expected ErrNoRequirements, got %v", err)
	}
}

func TestRankJobCandidates_UnknownJob(t *testing.T) {
	uc := NewRankingUsecase(mockJobRepo{exists: false}, newMemRecordRepo(), nil, nil)
	_, err := uc.RankJobCandidates(context.Background(), uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestRankedCandidateItem_CachedPayloadUsesSnakeCase(t *testing.T) {
	item := RankedCandidateItem{
		CandidateID:     uuid.New(),
		CandidateName:   "Ada",
		CandidateEmail:  "ada@example.com",
		MatchPercentage: 64,
		Readiness:       scoring.ReadinessConsider,
		SkillBreakdown: []RankedSkillGap{{
			SkillID:      uuid.New(),
			SkillName:    "Go",
			Status:       scoring.StatusMeets,
			CandidateSCI: 82,
			MinimumSCI:   70,
			Importance:   5,
			Score:        5,
			MaxScore:     5,
		}},
	}

	b, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	payload := string(b)

	for _, key := range []string{`"skill_name"`, `"candidate_sci"`, `"minimum_sci"`, `"max_score"`, `"skill_breakdown"`} {
		if !strings.Contains(payload, key) {
			t.Fatalf("expected key %s in cached payload, got %s", key, payload)
		}
	}
	if strings.Contains(payload, `"SkillName"`) || strings.Contains(payload, `"CandidateSCI"`) {
		t.Fatalf("pascal-case field leaked into cached payload: %s", payload)
	}

	var back RankedCandidateItem
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(item, back) {
		t.Fatalf("cache round-trip changed payload:\n got %+v\nwant %+v", back, item)
	}
}
