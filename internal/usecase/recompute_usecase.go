package usecase

import (
	"context"
	"log"
	"time"

	"skill-pulse/internal/repository"
)

const recomputeLockKey = "sci:recompute:lock"

type RecomputeSummary struct {
	Scanned int
	Updated int
}

type RecomputeUsecase interface {
	RecomputeAll(ctx context.Context) (RecomputeSummary, error)
}

type recomputeLock interface {
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

// Recompute refreshes every stored SCI against the current clock. Run
// nightly so freshness decay shows up without waiting for the next
// record mutation.
type Recompute struct {
	records repository.SkillRecordRepository
	lock    recomputeLock
	cache   rankingInvalidator
	logger  *log.Logger
	now     func() time.Time
}

func NewRecomputeUsecase(records repository.SkillRecordRepository, lock recomputeLock, cache rankingInvalidator, logger *log.Logger) *Recompute {
	return &Recompute{records: records, lock: lock, cache: cache, logger: logger, now: time.Now}
}

func (u *Recompute) RecomputeAll(ctx context.Context) (RecomputeSummary, error) {
	if u.lock != nil {
		ok, err := u.lock.SetIfNotExists(ctx, recomputeLockKey, "1", 10*time.Minute)
		if err == nil && !ok {
			return RecomputeSummary{}, ErrRecomputeInProgress
		}
	}

	recs, err := u.records.FindAll(ctx)
	if err != nil {
		return RecomputeSummary{}, ErrInternal
	}

	now := u.now()
	summary := RecomputeSummary{Scanned: len(recs)}
	for _, rec := range recs {
		sci, err := recomputeSCI(now, rec)
		if err != nil {
			if u.logger != nil {
				u.logger.Printf("[Recompute] Skipping record user=%s skill=%s err=%v", rec.UserID, rec.SkillID, err)
			}
			continue
		}
		if sci == rec.SCI {
			continue
		}
		if err := u.records.UpdateSCI(ctx, rec.UserID, rec.SkillID, sci); err != nil {
			if u.logger != nil {
				u.logger.Printf("[Recompute] Update failed user=%s skill=%s err=%v", rec.UserID, rec.SkillID, err)
			}
			continue
		}
		summary.Updated++
	}

	if summary.Updated > 0 && u.cache != nil {
		_ = u.cache.InvalidateRankings(ctx)
	}
	if u.logger != nil {
		u.logger.Printf("[Recompute] Done scanned=%d updated=%d", summary.Scanned, summary.Updated)
	}
	return summary, nil
}
