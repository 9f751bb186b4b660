package handler

import (
	"time"

	"skill-pulse/internal/delivery/http/dto"
	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/domain/scoring"
	"skill-pulse/internal/pkg/response"
	"skill-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SCIHandler struct {
	uc usecase.SCIUsecase
}

type computeSCIRequest struct {
	SkillLevel      *float64 `json:"skill_level"`
	LastUsedDate    string   `json:"last_used_date"`
	FreshnessBucket string   `json:"freshness_bucket"`
	ProofScore      *float64 `json:"proof_score"`
}

func NewSCIHandler(uc usecase.SCIUsecase) *SCIHandler {
	return &SCIHandler{uc: uc}
}

func (h *SCIHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/sci")
	grp.Post("/compute", h.Compute)
}

func (h *SCIHandler) Compute(c fiber.Ctx) error {
	var req computeSCIRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.ComputeSCIInput{
		SkillLevel:      req.SkillLevel,
		FreshnessBucket: req.FreshnessBucket,
		ProofScore:      req.ProofScore,
	}
	if req.LastUsedDate != "" {
		parsed, err := parseDate(req.LastUsedDate)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "last_used_date must be an ISO date", nil, err)
		}
		in.LastUsedDate = &parsed
	}

	out, err := h.uc.Compute(c.Context(), in)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.ComputeSCIResponse{
		SCIScore:  out.SCIScore,
		Breakdown: toBreakdownResponse(out.Breakdown),
		Formula:   out.Formula,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

// parseDate accepts a full RFC 3339 timestamp or a bare date.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func toBreakdownResponse(b scoring.Breakdown) dto.SCIBreakdownResponse {
	return dto.SCIBreakdownResponse{
		SkillLevel:            b.SkillLevel,
		SkillContribution:     b.SkillContribution,
		FreshnessScore:        b.FreshnessScore,
		FreshnessContribution: b.FreshnessContribution,
		ProofScore:            b.ProofScore,
		ProofContribution:     b.ProofContribution,
	}
}
