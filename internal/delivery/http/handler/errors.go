package handler

import (
	"errors"
	"time"

	"skill-pulse/internal/delivery/http/middleware"
	"skill-pulse/internal/domain/assessment"
	"skill-pulse/internal/pkg/response"
	"skill-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates the engine's error taxonomy into HTTP
// semantics. Validation and cooldown failures carry actionable
// messages; anything unexpected collapses to a generic 500.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var cooldownErr *assessment.CooldownActiveError
	if errors.As(err, &cooldownErr) {
		return middleware.NewAppError(
			fiber.StatusTooManyRequests,
			"Assessment cooldown active",
			fiber.Map{"retake_allowed_at": cooldownErr.RetakeAllowedAt.Format(time.RFC3339)},
			err,
		)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrNoRequirements):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job has no required skills", nil, err)
	case errors.Is(err, usecase.ErrNoQuestions):
		return middleware.NewAppError(fiber.StatusNotFound, "No questions available for this skill", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrSkillRecordNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill record not found", nil, err)
	case errors.Is(err, usecase.ErrRoleNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Role not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
