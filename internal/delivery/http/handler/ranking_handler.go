package handler

import (
	"skill-pulse/internal/delivery/http/dto"
	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/pkg/response"
	"skill-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RankingHandler struct {
	uc usecase.RankingUsecase
}

func NewRankingHandler(uc usecase.RankingUsecase) *RankingHandler {
	return &RankingHandler{uc: uc}
}

func (h *RankingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs/:job_id/candidates", h.Candidates)
}

func (h *RankingHandler) Candidates(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ranked, err := h.uc.RankJobCandidates(c.Context(), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.RankedCandidateResponse, 0, len(ranked))
	for _, r := range ranked {
		res = append(res, dto.RankedCandidateResponse{
			CandidateID:     r.CandidateID,
			CandidateName:   r.CandidateName,
			CandidateEmail:  r.CandidateEmail,
			MatchPercentage: r.MatchPercentage,
			Readiness:       string(r.Readiness),
			SkillBreakdown:  toRankedGapResponses(r.SkillBreakdown),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func toRankedGapResponses(gaps []usecase.RankedSkillGap) []dto.GapResultResponse {
	res := make([]dto.GapResultResponse, 0, len(gaps))
	for _, g := range gaps {
		res = append(res, dto.GapResultResponse{
			SkillID:      g.SkillID,
			SkillName:    g.SkillName,
			Status:       string(g.Status),
			CandidateSCI: g.CandidateSCI,
			MinimumSCI:   g.MinimumSCI,
			Importance:   g.Importance,
			Score:        g.Score,
			MaxScore:     g.MaxScore,
		})
	}
	return res
}
