package repository

import (
	"context"
	"errors"

	"skill-pulse/internal/database"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

type Job struct {
	ID      uuid.UUID
	Title   string
	Company string
}

// Candidate is a user eligible for ranking against a job: anyone with
// at least one scored skill record.
type Candidate struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type JobRepository interface {
	ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (Job, error)
	FindRequiredSkills(ctx context.Context, jobID uuid.UUID) ([]RequiredSkillRow, error)
	ListCandidates(ctx context.Context) ([]Candidate, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, jobID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (Job, error) {
	row := r.db.QueryRow(ctx, `SELECT id, title, company FROM jobs WHERE id = $1`, jobID)

	var j Job
	if err := row.Scan(&j.ID, &j.Title, &j.Company); err != nil {
		return Job{}, ErrJobNotFound
	}
	return j, nil
}

func (r *PostgresJobRepository) FindRequiredSkills(ctx context.Context, jobID uuid.UUID) ([]RequiredSkillRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT js.skill_id, COALESCE(s.name, ''), js.minimum_sci, js.importance, js.position
		 FROM job_skills js
		 LEFT JOIN skills s ON s.id = js.skill_id
		 WHERE js.job_id = $1
		 ORDER BY js.position ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequiredSkills(rows)
}

func (r *PostgresJobRepository) ListCandidates(ctx context.Context) ([]Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT u.id, u.name, u.email
		 FROM users u
		 JOIN skill_records sr ON sr.user_id = u.id
		 ORDER BY u.id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Candidate, 0)
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
