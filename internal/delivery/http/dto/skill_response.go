package dto

import (
	"time"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

type SkillRecordResponse struct {
	SkillID         uuid.UUID  `json:"skill_id"`
	SkillName       string     `json:"skill_name"`
	AssessmentScore float64    `json:"assessment_score"`
	ScenarioScore   float64    `json:"scenario_score"`
	LastUsedAt      *time.Time `json:"last_used_at,omitempty"`
	LastAssessedAt  *time.Time `json:"last_assessed_at,omitempty"`
	SCI             float64    `json:"sci"`
	Label           string     `json:"label"`
}
