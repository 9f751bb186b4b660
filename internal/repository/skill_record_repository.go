package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skill-pulse/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSkillRecordNotFound = errors.New("skill record not found")

// SkillRecord is the persisted (user, skill) scoring state. SCI is
// derived from the other fields and rewritten whenever any of them
// changes.
type SkillRecord struct {
	UserID          uuid.UUID
	SkillID         uuid.UUID
	SkillName       string
	AssessmentScore float64
	ScenarioScore   float64
	LastUsedAt      *time.Time
	SCI             float64
	LastAssessedAt  *time.Time
}

type SkillRecordRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]SkillRecord, error)
	FindByUserAndSkill(ctx context.Context, userID, skillID uuid.UUID) (SkillRecord, error)
	Upsert(ctx context.Context, rec SkillRecord) (SkillRecord, error)
	FindAll(ctx context.Context) ([]SkillRecord, error)
	UpdateSCI(ctx context.Context, userID, skillID uuid.UUID, sci float64) error
}

type PostgresSkillRecordRepository struct {
	db database.DB
}

func NewPostgresSkillRecordRepository(db database.DB) *PostgresSkillRecordRepository {
	return &PostgresSkillRecordRepository{db: db}
}

const skillRecordColumns = `sr.user_id, sr.skill_id, s.name,
	 COALESCE(sr.assessment_score, 0), COALESCE(sr.scenario_score, 0),
	 sr.last_used_at, COALESCE(sr.sci, 0), sr.last_assessed_at`

func (r *PostgresSkillRecordRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]SkillRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillRecordColumns+`
		 FROM skill_records sr
		 JOIN skills s ON s.id = sr.skill_id
		 WHERE sr.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSkillRecords(rows)
}

func (r *PostgresSkillRecordRepository) FindByUserAndSkill(ctx context.Context, userID, skillID uuid.UUID) (SkillRecord, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+skillRecordColumns+`
		 FROM skill_records sr
		 JOIN skills s ON s.id = sr.skill_id
		 WHERE sr.user_id = $1 AND sr.skill_id = $2`,
		userID, skillID,
	)

	var rec SkillRecord
	if err := scanSkillRecord(row, &rec); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return SkillRecord{}, ErrSkillRecordNotFound
		}
		return SkillRecord{}, err
	}
	return rec, nil
}

func (r *PostgresSkillRecordRepository) Upsert(ctx context.Context, rec SkillRecord) (SkillRecord, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skill_records (user_id, skill_id, assessment_score, scenario_score, last_used_at, sci, last_assessed_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		 ON CONFLICT (user_id, skill_id) DO UPDATE SET
		   assessment_score = EXCLUDED.assessment_score,
		   scenario_score   = EXCLUDED.scenario_score,
		   last_used_at     = EXCLUDED.last_used_at,
		   sci              = EXCLUDED.sci,
		   last_assessed_at = EXCLUDED.last_assessed_at,
		   updated_at       = now()`,
		rec.UserID, rec.SkillID, rec.AssessmentScore, rec.ScenarioScore, rec.LastUsedAt, rec.SCI, rec.LastAssessedAt,
	)
	if err != nil {
		return SkillRecord{}, err
	}
	return r.FindByUserAndSkill(ctx, rec.UserID, rec.SkillID)
}

func (r *PostgresSkillRecordRepository) FindAll(ctx context.Context) ([]SkillRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillRecordColumns+`
		 FROM skill_records sr
		 JOIN skills s ON s.id = sr.skill_id
		 ORDER BY sr.user_id, s.name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSkillRecords(rows)
}

func (r *PostgresSkillRecordRepository) UpdateSCI(ctx context.Context, userID, skillID uuid.UUID, sci float64) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE skill_records SET sci = $1, updated_at = now() WHERE user_id = $2 AND skill_id = $3`,
		sci, userID, skillID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSkillRecordNotFound
	}
	return nil
}

func collectSkillRecords(rows database.Rows) ([]SkillRecord, error) {
	out := make([]SkillRecord, 0)
	for rows.Next() {
		var rec SkillRecord
		if err := rows.Scan(&rec.UserID, &rec.SkillID, &rec.SkillName, &rec.AssessmentScore, &rec.ScenarioScore, &rec.LastUsedAt, &rec.SCI, &rec.LastAssessedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSkillRecord(row database.Row, rec *SkillRecord) error {
	return row.Scan(&rec.UserID, &rec.SkillID, &rec.SkillName, &rec.AssessmentScore, &rec.ScenarioScore, &rec.LastUsedAt, &rec.SCI, &rec.LastAssessedAt)
}
