package organization

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-attendance/internal/domain"
	organizationerrors "go-attendance/internal/organization/errors"
	"go-attendance/internal/shared/contextutil"
	"go-attendance/internal/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Get(ctx context.Context, actor domain.Identity) (OrganizationResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("organization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Register creates the organization and its owner together; the owner's email
// counts as verified because they chose the password themselves.
func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	name := strings.TrimSpace(req.OrganizationName)
	if name == "" {
		return RegisterResponse{}, organizationerrors.ErrMissingRequiredFields
	}
	email := strings.ToLower(strings.TrimSpace(req.OwnerEmail))
	log := contextutil.GetLogger(ctx, s.logger)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("register organization begin tx failed", zap.Error(err))
		return RegisterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	taken, err := qtx.EmailExists(ctx, email)
	if err != nil {
		return RegisterResponse{}, err
	}
	if taken {
		return RegisterResponse{}, organizationerrors.ErrEmailAlreadyRegistered
	}

	org := &Organization{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := qtx.Create(ctx, org); err != nil {
		log.Error("create organization failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	hashStr := string(hash)
	owner := &user.User{
		ID:             uuid.New(),
		Email:          email,
		PasswordHash:   &hashStr,
		Role:           domain.RoleOwner.String(),
		OrganizationID: org.ID,
		IsActive:       true,
		EmailVerified:  true,
	}
	if err := qtx.CreateOwner(ctx, owner); err != nil {
		if isUniqueViolation(err) {
			return RegisterResponse{}, organizationerrors.ErrEmailAlreadyRegistered
		}
		log.Error("create owner failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	if err := qtx.SetOwner(ctx, org.ID, owner.ID); err != nil {
		log.Error("set organization owner failed", zap.Error(err))
		return RegisterResponse{}, err
	}
	org.OwnerID = &owner.ID

	if err := tx.Commit(); err != nil {
		log.Error("register organization commit failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	log.Info("organization registered",
		zap.String("organization_id", org.ID.String()),
		zap.String("owner_id", owner.ID.String()),
	)
	return RegisterResponse{
		Organization: mapToResponse(org),
		Owner: OwnerResponse{
			ID:    owner.ID.String(),
			Email: owner.Email,
			Role:  owner.Role,
		},
	}, nil
}

func (s *service) Get(ctx context.Context, actor domain.Identity) (OrganizationResponse, error) {
	if err := actor.Require(domain.RoleOwner); err != nil {
		return OrganizationResponse{}, err
	}

	org, err := s.repo.FindByID(ctx, actor.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrganizationResponse{}, organizationerrors.ErrOrganizationNotFound
		}
		return OrganizationResponse{}, err
	}
	return mapToResponse(org), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapToResponse(o *Organization) OrganizationResponse {
	resp := OrganizationResponse{
		ID:          o.ID.String(),
		Name:        o.Name,
		Description: o.Description,
	}
	if o.OwnerID != nil {
		v := o.OwnerID.String()
		resp.OwnerID = &v
	}
	if !o.CreatedAt.IsZero() {
		resp.CreatedAt = o.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
