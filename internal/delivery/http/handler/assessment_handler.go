package handler

import (
	"skill-pulse/internal/delivery/http/dto"
	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/pkg/response"
	"skill-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssessmentHandler struct {
	uc usecase.AssessmentUsecase
}

type submitAnswer struct {
	QuestionID    uuid.UUID `json:"question_id"`
	SelectedIndex int       `json:"selected_index"`
}

type submitAssessmentRequest struct {
	Answers []submitAnswer `json:"answers"`
}

func NewAssessmentHandler(uc usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/assessments/:skill_id")
	grp.Get("/questions", h.Questions)
	grp.Get("/cooldown", h.Cooldown)
	grp.Post("/submit", h.Submit)
}

func (h *AssessmentHandler) Questions(c fiber.Ctx) error {
	userID, skillID, appErr := h.identify(c)
	if appErr != nil {
		return appErr
	}

	items, err := h.uc.Questions(c.Context(), userID, skillID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.QuestionResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.QuestionResponse{ID: it.ID, Prompt: it.Prompt, Options: it.Options})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AssessmentHandler) Cooldown(c fiber.Ctx) error {
	userID, skillID, appErr := h.identify(c)
	if appErr != nil {
		return appErr
	}

	status, err := h.uc.Cooldown(c.Context(), userID, skillID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.CooldownResponse{Eligible: status.Eligible, RetakeAllowedAt: status.RetakeAllowedAt}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AssessmentHandler) Submit(c fiber.Ctx) error {
	userID, skillID, appErr := h.identify(c)
	if appErr != nil {
		return appErr
	}

	var req submitAssessmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	answers := make([]usecase.AnswerInput, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, usecase.AnswerInput{QuestionID: a.QuestionID, SelectedIndex: a.SelectedIndex})
	}

	result, err := h.uc.Submit(c.Context(), userID, skillID, answers)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.SubmissionResponse{
		AssessmentScore: result.AssessmentScore,
		SCI:             result.SCI,
		Breakdown:       toBreakdownResponse(result.Breakdown),
		RetakeAllowedAt: result.RetakeAllowedAt,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AssessmentHandler) identify(c fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	skillID, err := uuid.Parse(c.Params("skill_id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return userID, skillID, nil
}
