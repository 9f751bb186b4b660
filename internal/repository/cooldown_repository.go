package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skill-pulse/internal/database"
	"skill-pulse/internal/domain/assessment"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCooldownNotFound = errors.New("cooldown state not found")

// CooldownRepository persists per (user, skill) retake windows. Claim
// is the concurrency-critical path: two submissions racing for the same
// key must see exactly one winner.
type CooldownRepository interface {
	Find(ctx context.Context, userID, skillID uuid.UUID) (assessment.CooldownState, error)
	Claim(ctx context.Context, userID, skillID uuid.UUID, submittedAt time.Time, window time.Duration) (assessment.CooldownState, bool, error)
}

type PostgresCooldownRepository struct {
	db database.DB
}

func NewPostgresCooldownRepository(db database.DB) *PostgresCooldownRepository {
	return &PostgresCooldownRepository{db: db}
}

func (r *PostgresCooldownRepository) Find(ctx context.Context, userID, skillID uuid.UUID) (assessment.CooldownState, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, skill_id, last_assessed_at, retake_allowed_at
		 FROM cooldown_states
		 WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID,
	)

	var st assessment.CooldownState
	if err := row.Scan(&st.UserID, &st.SkillID, &st.LastAssessedAt, &st.RetakeAllowedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return assessment.CooldownState{}, ErrCooldownNotFound
		}
		return assessment.CooldownState{}, err
	}
	return st, nil
}

// Claim transitions Eligible -> InCooldown as one conditional upsert.
// The WHERE clause on the conflict update makes the check-and-set
// atomic at the database: a second concurrent submission matches zero
// rows and loses the claim.
func (r *PostgresCooldownRepository) Claim(ctx context.Context, userID, skillID uuid.UUID, submittedAt time.Time, window time.Duration) (assessment.CooldownState, bool, error) {
	next := assessment.NewCooldownState(userID, skillID, submittedAt, window)

	affected, err := r.db.Exec(ctx,
		`INSERT INTO cooldown_states (user_id, skill_id, last_assessed_at, retake_allowed_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, skill_id) DO UPDATE SET
		   last_assessed_at  = EXCLUDED.last_assessed_at,
		   retake_allowed_at = EXCLUDED.retake_allowed_at
		 WHERE cooldown_states.retake_allowed_at <= EXCLUDED.last_assessed_at`,
		userID, skillID, next.LastAssessedAt, next.RetakeAllowedAt,
	)
	if err != nil {
		return assessment.CooldownState{}, false, err
	}
	if affected > 0 {
		return next, true, nil
	}

	// Lost the claim; report the standing window so callers can render
	// a countdown.
	current, err := r.Find(ctx, userID, skillID)
	if err != nil {
		return assessment.CooldownState{}, false, err
	}
	return current, false, nil
}
