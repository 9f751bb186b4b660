package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account on the platform. PasswordHash never crosses the
// usecase boundary; services strip it before returning the entity.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
