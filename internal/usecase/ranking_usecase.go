package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"skill-pulse/internal/domain/scoring"
	"skill-pulse/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const rankCandidateConcurrency = 8

// RankedCandidateItem is also the shape cached in Redis, so every field
// down to the breakdown rows carries explicit tags; nothing untagged
// leaks into the stored payload.
type RankedCandidateItem struct {
	CandidateID     uuid.UUID         `json:"candidate_id"`
	CandidateName   string            `json:"candidate_name"`
	CandidateEmail  string            `json:"candidate_email"`
	MatchPercentage int               `json:"match_percentage"`
	Readiness       scoring.Readiness `json:"readiness"`
	SkillBreakdown  []RankedSkillGap  `json:"skill_breakdown"`
}

// RankedSkillGap mirrors scoring.GapResult per requirement.
type RankedSkillGap struct {
	SkillID      uuid.UUID         `json:"skill_id"`
	SkillName    string            `json:"skill_name"`
	Status       scoring.GapStatus `json:"status"`
	CandidateSCI float64           `json:"candidate_sci"`
	MinimumSCI   float64           `json:"minimum_sci"`
	Importance   int               `json:"importance"`
	Score        float64           `json:"score"`
	MaxScore     float64           `json:"max_score"`
}

type RankingUsecase interface {
	RankJobCandidates(ctx context.Context, jobID uuid.UUID) ([]RankedCandidateItem, error)
}

type rankingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Ranking struct {
	jobs    repository.JobRepository
	records repository.SkillRecordRepository
	cache   rankingCache
	logger  *log.Logger
}

func NewRankingUsecase(jobs repository.JobRepository, records repository.SkillRecordRepository, cache rankingCache, logger *log.Logger) *Ranking {
	return &Ranking{jobs: jobs, records: records, cache: cache, logger: logger}
}

// RankJobCandidates scores every candidate against a job's required
// skills. Per-candidate scoring is independent and runs concurrently;
// the final sort is a single-threaded merge once all scores are in.
func (u *Ranking) RankJobCandidates(ctx context.Context, jobID uuid.UUID) ([]RankedCandidateItem, error) {
	if jobID == uuid.Nil {
		return nil, ErrJobNotFound
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrJobNotFound
	}

	cacheKey := rankingCacheKey(jobID)
	if u.cache != nil {
		var cached []RankedCandidateItem
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rows, err := u.jobs.FindRequiredSkills(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	required, err := toRequiredSkills(rows)
	if err != nil {
		return nil, err
	}
	if len(required) == 0 {
		return nil, ErrNoRequirements
	}

	candidates, err := u.jobs.ListCandidates(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	ranked := make([]scoring.RankedCandidate, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rankCandidateConcurrency)
	for i, c := range candidates {
		g.Go(func() error {
			recs, err := u.records.FindByUserID(gctx, c.ID)
			if err != nil {
				return err
			}
			rc, err := scoring.ScoreCandidate(c.ID, sciBySkill(recs), required)
			if err != nil {
				return err
			}
			ranked[i] = rc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, scoring.ErrInvalidInput) {
			return nil, mapScoringError(err)
		}
		return nil, ErrInternal
	}

	scoring.SortRanked(ranked)

	byID := make(map[uuid.UUID]repository.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	out := make([]RankedCandidateItem, 0, len(ranked))
	for _, rc := range ranked {
		c := byID[rc.CandidateID]
		out = append(out, RankedCandidateItem{
			CandidateID:     rc.CandidateID,
			CandidateName:   c.Name,
			CandidateEmail:  c.Email,
			MatchPercentage: rc.MatchPercentage,
			Readiness:       scoring.ReadinessFor(rc.MatchPercentage),
			SkillBreakdown:  toRankedSkillGaps(rc.Breakdown),
		})
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Ranking] Cache write failed job=%s err=%v", jobID, err)
		}
	}

	return out, nil
}

func toRankedSkillGaps(gaps []scoring.GapResult) []RankedSkillGap {
	out := make([]RankedSkillGap, 0, len(gaps))
	for _, g := range gaps {
		out = append(out, RankedSkillGap{
			SkillID:      g.SkillID,
			SkillName:    g.SkillName,
			Status:       g.Status,
			CandidateSCI: g.CandidateSCI,
			MinimumSCI:   g.MinimumSCI,
			Importance:   g.Importance,
			Score:        g.Score,
			MaxScore:     g.MaxScore,
		})
	}
	return out
}

func rankingCacheKey(jobID uuid.UUID) string {
	return fmt.Sprintf("ranking:job:%s", jobID)
}
