package dto

type SCIBreakdownResponse struct {
	SkillLevel            float64 `json:"skill_level"`
	SkillContribution     float64 `json:"skill_contribution"`
	FreshnessScore        float64 `json:"freshness_score"`
	FreshnessContribution float64 `json:"freshness_contribution"`
	ProofScore            float64 `json:"proof_score"`
	ProofContribution     float64 `json:"proof_contribution"`
}

type ComputeSCIResponse struct {
	SCIScore  float64              `json:"sci_score"`
	Breakdown SCIBreakdownResponse `json:"breakdown"`
	Formula   string               `json:"formula"`
}
