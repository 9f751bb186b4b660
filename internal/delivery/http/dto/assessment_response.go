package dto

import (
	"time"

	"github.com/google/uuid"
)

type QuestionResponse struct {
	ID      uuid.UUID `json:"id"`
	Prompt  string    `json:"prompt"`
	Options []string  `json:"options"`
}

type CooldownResponse struct {
	Eligible        bool       `json:"eligible"`
	RetakeAllowedAt *time.Time `json:"retake_allowed_at,omitempty"`
}

type SubmissionResponse struct {
	AssessmentScore float64              `json:"assessment_score"`
	SCI             float64              `json:"sci"`
	Breakdown       SCIBreakdownResponse `json:"breakdown"`
	RetakeAllowedAt time.Time            `json:"retake_allowed_at"`
}
