package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skill-pulse/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

// minPasswordLen applies after trimming, so whitespace padding cannot
// satisfy it.
const minPasswordLen = 8

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// Service owns account creation and credential checks. Token issuance
// lives one layer up; this package never sees a JWT.
type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// Register stores a new account with a bcrypt-hashed password. Emails are
// canonicalized before the uniqueness check so "Ada@x" and "ada@x" count
// as the same account.
func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	name := strings.TrimSpace(in.Name)
	email := canonicalEmail(in.Email)
	switch {
	case name == "" || email == "":
		return user.User{}, ErrInvalidInput
	case len(strings.TrimSpace(in.Password)) < minPasswordLen:
		return user.User{}, ErrInvalidInput
	}

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if taken {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	account := user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, account); err != nil {
		// A concurrent signup can slip between the exists check and the
		// insert; re-check so the caller sees a conflict, not a 500.
		if taken, exErr := s.users.ExistsByEmail(ctx, email); exErr == nil && taken {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	created, err := s.users.GetByID(ctx, account.ID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return withoutHash(created), nil
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := canonicalEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)) != nil {
		return user.User{}, ErrInvalidCredentials
	}
	return withoutHash(account), nil
}

func canonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// withoutHash strips the credential before the entity leaves this package.
func withoutHash(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
