package dto

import "github.com/google/uuid"

type RankedCandidateResponse struct {
	CandidateID     uuid.UUID           `json:"candidate_id"`
	CandidateName   string              `json:"candidate_name"`
	CandidateEmail  string              `json:"candidate_email"`
	MatchPercentage int                 `json:"match_percentage"`
	Readiness       string              `json:"readiness"`
	SkillBreakdown  []GapResultResponse `json:"skill_breakdown"`
}
