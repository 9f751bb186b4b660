package usecase

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")

	ErrInvalidInput        = errors.New("invalid input")
	ErrSkillNotFound       = errors.New("skill not found")
	ErrSkillRecordNotFound = errors.New("skill record not found")
	ErrRoleNotFound        = errors.New("role not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrNoRequirements      = errors.New("job has no required skills")
	ErrNoQuestions         = errors.New("no questions available for skill")

	ErrRecomputeInProgress = errors.New("recompute already in progress")
)
