package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/domain"
	"go-attendance/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Issuer mints session tokens for authenticated identities.
type Issuer interface {
	Issue(id domain.Identity) (string, time.Time, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Me(ctx context.Context, actor domain.Identity) (AuthResponse, error)
}

type service struct {
	repo   Repository
	tokens Issuer
	logger *zap.Logger
}

func NewService(repo Repository, tokens Issuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	acc, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("login for unknown email")
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}
	if !acc.IsActive {
		return LoginResponse{}, autherrors.ErrAccountDisabled
	}
	if acc.PasswordHash == nil || *acc.PasswordHash == "" {
		return LoginResponse{}, autherrors.ErrAccountNotSetUp
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*acc.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn("login with wrong password", zap.String("user_id", acc.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	id, err := identityOf(acc)
	if err != nil {
		log.Error("account has unknown role", zap.String("user_id", acc.ID.String()), zap.String("role", acc.Role))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(id)
	if err != nil {
		log.Error("issue session token failed", zap.Error(err))
		return LoginResponse{}, err
	}

	log.Info("user logged in", zap.String("user_id", id.UserID), zap.String("role", id.Role.String()))
	return LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
		User:        mapToResponse(acc),
	}, nil
}

func (s *service) Me(ctx context.Context, actor domain.Identity) (AuthResponse, error) {
	if !actor.Authenticated() {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}

	acc, err := s.repo.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrUserNotFound
		}
		return AuthResponse{}, err
	}
	if !acc.IsActive {
		return AuthResponse{}, autherrors.ErrAccountDisabled
	}
	return mapToResponse(acc), nil
}

func identityOf(acc *Account) (domain.Identity, error) {
	role, err := domain.ParseRole(acc.Role)
	if err != nil {
		return domain.Identity{}, err
	}
	id := domain.Identity{
		UserID:         acc.ID.String(),
		Email:          acc.Email,
		Role:           role,
		OrganizationID: acc.OrganizationID.String(),
	}
	if acc.SupervisorID != nil {
		v := acc.SupervisorID.String()
		id.SupervisorID = &v
	}
	return id, nil
}

func mapToResponse(acc *Account) AuthResponse {
	resp := AuthResponse{
		ID:             acc.ID.String(),
		Email:          acc.Email,
		Name:           acc.FullName(),
		Role:           acc.Role,
		OrganizationID: acc.OrganizationID.String(),
		EmailVerified:  acc.EmailVerified,
	}
	if acc.SupervisorID != nil {
		v := acc.SupervisorID.String()
		resp.SupervisorID = &v
	}
	return resp
}
