package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carries the identity embedded in both token kinds. Access
// tokens include the email so handlers can log it; refresh tokens do
// not, they only prove the user id.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	TokenType string    `json:"token_type"`

	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (Claims, error)
	IsRefreshToken(claims Claims) bool
}

// HMACService signs both token kinds with HS256, each kind keyed by its
// own secret so a leaked access secret cannot mint refresh tokens.
type HMACService struct {
	access  tokenKind
	refresh tokenKind

	now func() time.Time
}

type tokenKind struct {
	secret []byte
	ttl    time.Duration
}

func (k tokenKind) usable() bool {
	return len(k.secret) > 0 && k.ttl > 0
}

func NewHMACService(accessSecret, refreshSecret string, accessExpiresIn, refreshExpiresIn time.Duration) *HMACService {
	return &HMACService{
		access:  tokenKind{secret: []byte(accessSecret), ttl: accessExpiresIn},
		refresh: tokenKind{secret: []byte(refreshSecret), ttl: refreshExpiresIn},
		now:     time.Now,
	}
}

func (s *HMACService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return s.generate(TokenTypeAccess, userID, email)
}

func (s *HMACService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.generate(TokenTypeRefresh, userID, "")
}

// ValidateToken tries both secrets because callers hand over a bare
// token string with no out-of-band hint of its kind. Expiry reported by
// either attempt wins over "invalid" so clients can distinguish a
// re-login from a tampered token.
func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	var expired bool
	for _, k := range []tokenKind{s.access, s.refresh} {
		claims, err := s.parseWithSecret(tokenString, k.secret)
		if err == nil {
			return claims, nil
		}
		if errors.Is(err, ErrTokenExpired) {
			expired = true
		}
	}
	if expired {
		return Claims{}, ErrTokenExpired
	}
	return Claims{}, ErrTokenInvalid
}

func (s *HMACService) IsRefreshToken(claims Claims) bool {
	return claims.TokenType == TokenTypeRefresh
}

func (s *HMACService) kindFor(tokenType string) (tokenKind, error) {
	switch tokenType {
	case TokenTypeAccess:
		if !s.access.usable() {
			return tokenKind{}, ErrTokenInvalid
		}
		return s.access, nil
	case TokenTypeRefresh:
		if !s.refresh.usable() {
			return tokenKind{}, ErrTokenInvalid
		}
		return s.refresh, nil
	default:
		return tokenKind{}, ErrTokenInvalid
	}
}

func (s *HMACService) generate(tokenType string, userID uuid.UUID, email string) (string, error) {
	kind, err := s.kindFor(tokenType)
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	exp := now.Add(kind.ttl)

	c := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		IssuedAt:  now,
		ExpiredAt: exp,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(exp),
			Subject:   userID.String(),
		},
	}

	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(kind.secret)
}

func (s *HMACService) parseWithSecret(tokenString string, secret []byte) (Claims, error) {
	parser := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var c Claims
	tok, err := parser.ParseWithClaims(tokenString, &c, func(*jwtlib.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	// The custom expiry mirrors RegisteredClaims but survives clients
	// that strip registered fields.
	if !c.ExpiredAt.IsZero() && s.now().UTC().After(c.ExpiredAt.UTC()) {
		return Claims{}, ErrTokenExpired
	}
	if c.TokenType != TokenTypeAccess && c.TokenType != TokenTypeRefresh {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
