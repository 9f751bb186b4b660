package dto

import "github.com/google/uuid"

type RoleResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type GapResultResponse struct {
	SkillID      uuid.UUID `json:"skill_id"`
	SkillName    string    `json:"skill_name"`
	Status       string    `json:"status"`
	CandidateSCI float64   `json:"candidate_sci"`
	MinimumSCI   float64   `json:"minimum_sci"`
	Importance   int       `json:"importance"`
	Score        float64   `json:"score"`
	MaxScore     float64   `json:"max_score"`
}

type RoleGapResponse struct {
	Role            RoleResponse        `json:"role"`
	MatchPercentage int                 `json:"match_percentage"`
	Readiness       string              `json:"readiness"`
	SkillBreakdown  []GapResultResponse `json:"skill_breakdown"`
	Recommendations []string            `json:"recommendations"`
}
