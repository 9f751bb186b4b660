package handler

import (
	"skill-pulse/internal/delivery/http/dto"
	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/pkg/response"
	"skill-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillRecordHandler struct {
	uc usecase.SkillRecordUsecase
}

type updateLastUsedRequest struct {
	LastUsedDate string `json:"last_used_date"`
}

type updateScenarioRequest struct {
	ScenarioScore *float64 `json:"scenario_score"`
}

func NewSkillRecordHandler(uc usecase.SkillRecordUsecase) *SkillRecordHandler {
	return &SkillRecordHandler{uc: uc}
}

func (h *SkillRecordHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/skills")
	grp.Get("/", h.List)
	grp.Put("/:skill_id/last-used", h.UpdateLastUsed)
	grp.Put("/:skill_id/scenario", h.UpdateScenario)
}

func (h *SkillRecordHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListMySkills(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.SkillRecordResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toSkillRecordResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillRecordHandler) UpdateLastUsed(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	skillID, err := uuid.Parse(c.Params("skill_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateLastUsedRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	lastUsed, err := parseDate(req.LastUsedDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "last_used_date must be an ISO date", nil, err)
	}

	item, err := h.uc.UpdateLastUsed(c.Context(), userID, skillID, lastUsed)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toSkillRecordResponse(item))
}

func (h *SkillRecordHandler) UpdateScenario(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	skillID, err := uuid.Parse(c.Params("skill_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateScenarioRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.ScenarioScore == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "scenario_score is required", nil, nil)
	}

	item, err := h.uc.UpdateScenarioScore(c.Context(), userID, skillID, *req.ScenarioScore)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toSkillRecordResponse(item))
}

func toSkillRecordResponse(it usecase.SkillRecordItem) dto.SkillRecordResponse {
	return dto.SkillRecordResponse{
		SkillID:         it.SkillID,
		SkillName:       it.SkillName,
		AssessmentScore: it.AssessmentScore,
		ScenarioScore:   it.ScenarioScore,
		LastUsedAt:      it.LastUsedAt,
		LastAssessedAt:  it.LastAssessedAt,
		SCI:             it.SCI,
		Label:           it.Label,
	}
}
