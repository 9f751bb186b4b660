package repository

import (
	"context"

	"skill-pulse/internal/database"
	"skill-pulse/internal/domain/assessment"

	"github.com/google/uuid"
)

type QuestionRepository interface {
	FindBySkillID(ctx context.Context, skillID uuid.UUID) ([]assessment.Question, error)
}

type PostgresQuestionRepository struct {
	db database.DB
}

func NewPostgresQuestionRepository(db database.DB) *PostgresQuestionRepository {
	return &PostgresQuestionRepository{db: db}
}

func (r *PostgresQuestionRepository) FindBySkillID(ctx context.Context, skillID uuid.UUID) ([]assessment.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, skill_id, prompt, options, correct_index
		 FROM questions
		 WHERE skill_id = $1
		 ORDER BY position ASC`,
		skillID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]assessment.Question, 0)
	for rows.Next() {
		var q assessment.Question
		if err := rows.Scan(&q.ID, &q.SkillID, &q.Prompt, &q.Options, &q.CorrectIndex); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
