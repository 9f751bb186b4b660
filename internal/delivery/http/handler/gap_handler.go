package handler

import (
	"skill-pulse/internal/delivery/http/dto"
	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/domain/scoring"
	"skill-pulse/internal/pkg/response"
	"skill-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type GapHandler struct {
	uc usecase.GapUsecase
}

func NewGapHandler(uc usecase.GapUsecase) *GapHandler {
	return &GapHandler{uc: uc}
}

func (h *GapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/roles")
	grp.Get("/", h.List)
	grp.Get("/:role_id/gap", h.Analyze)
}

func (h *GapHandler) List(c fiber.Ctx) error {
	roles, err := h.uc.ListRoles(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		res = append(res, dto.RoleResponse{ID: r.ID, Name: r.Name, Description: r.Description})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *GapHandler) Analyze(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	roleID, err := uuid.Parse(c.Params("role_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	gap, err := h.uc.AnalyzeRole(c.Context(), userID, roleID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.RoleGapResponse{
		Role:            dto.RoleResponse{ID: gap.RoleID, Name: gap.RoleName},
		MatchPercentage: gap.MatchPercentage,
		Readiness:       string(gap.Readiness),
		SkillBreakdown:  toGapResultResponses(gap.SkillBreakdown),
		Recommendations: gap.Recommendations,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func toGapResultResponses(gaps []scoring.GapResult) []dto.GapResultResponse {
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
