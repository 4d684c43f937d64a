package auth

import (
	"errors"
	"time"

	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/domain"
	"go-attendance/internal/shared/clock"

	"github.com/golang-jwt/jwt/v5"
)

const SessionLifetime = 8 * time.Hour

type Claims struct {
	UserID         string  `json:"user_id"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	OrganizationID string  `json:"organization_id"`
	SupervisorID   *string `json:"supervisor_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 session tokens.
type TokenManager struct {
	secret   []byte
	lifetime time.Duration
	clock    clock.Clock
}

func NewTokenManager(secret string, clk clock.Clock) *TokenManager {
	if clk == nil {
		clk = clock.System()
	}
	return &TokenManager{secret: []byte(secret), lifetime: SessionLifetime, clock: clk}
}

func (m *TokenManager) Issue(id domain.Identity) (string, time.Time, error) {
	now := m.clock.Now()
	expiresAt := now.Add(m.lifetime)

	claims := Claims{
		UserID:         id.UserID,
		Email:          id.Email,
		Role:           id.Role.String(),
		OrganizationID: id.OrganizationID,
		SupervisorID:   id.SupervisorID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (m *TokenManager) Parse(token string) (domain.Identity, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, autherrors.ErrTokenExpired
		}
		return domain.Identity{}, autherrors.ErrInvalidToken
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil || claims.UserID == "" {
		return domain.Identity{}, autherrors.ErrInvalidToken
	}

	return domain.Identity{
		UserID:         claims.UserID,
		Email:          claims.Email,
		Role:           role,
		OrganizationID: claims.OrganizationID,
		SupervisorID:   claims.SupervisorID,
	}, nil
}
