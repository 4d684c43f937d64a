package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-attendance/internal/domain"
	"go-attendance/internal/notification"
	"go-attendance/internal/shared/contextutil"
	usererrors "go-attendance/internal/user/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	EmployeeListKeyPrefix = "employees:supervisor:"
	employeeListTTL       = 10 * time.Minute
	minPasswordLength     = 6
)

func GetEmployeeListKey(supervisorID string) string {
	return EmployeeListKeyPrefix + supervisorID
}

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	CreateSupervisor(ctx context.Context, actor domain.Identity, req CreateSupervisorRequest) (UserResponse, error)
	CreateEmployee(ctx context.Context, actor domain.Identity, req CreateEmployeeRequest) (UserResponse, error)
	ListSupervisors(ctx context.Context, actor domain.Identity) ([]UserResponse, error)
	ListEmployees(ctx context.Context, actor domain.Identity) ([]UserResponse, error)
	GetProfile(ctx context.Context, actor domain.Identity) (UserResponse, error)
	InspectSetupToken(ctx context.Context, token string) (SetupAccountResponse, error)
	SetupPassword(ctx context.Context, req SetupPasswordRequest) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	notifier notification.Notifier
	rdb      *redis.Client
	sf       *singleflight.Group
	baseURL  string
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	notifier notification.Notifier,
	rdb *redis.Client,
	baseURL string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		notifier: notifier,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   l,
	}
}

func (s *service) CreateSupervisor(ctx context.Context, actor domain.Identity, req CreateSupervisorRequest) (UserResponse, error) {
	if err := actor.Require(domain.RoleOwner); err != nil {
		return UserResponse{}, err
	}
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create supervisor requested",
		zap.String("request_id", rid),
		zap.String("owner_id", actor.UserID),
		zap.String("email", req.Email),
	)

	orgID, err := uuid.Parse(actor.OrganizationID)
	if err != nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create supervisor begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := s.ensureEmailFree(ctx, qtx, req.Email); err != nil {
		return UserResponse{}, err
	}

	token, err := newSetupToken()
	if err != nil {
		return UserResponse{}, err
	}

	u := &User{
		ID:             uuid.New(),
		Email:          normalizeEmail(req.Email),
		Role:           domain.RoleSupervisor.String(),
		OrganizationID: orgID,
		IsActive:       true,
		SetupToken:     &token,
	}
	if err := qtx.Create(ctx, u); err != nil {
		s.logger.Error("create supervisor persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	u.Profile = &Profile{
		UserID:      u.ID,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		NIN:         optional(req.NIN),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
	}
	if err := qtx.CreateProfile(ctx, u.Profile); err != nil {
		s.logger.Error("create supervisor profile persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if s.notifier != nil {
		orgName, err := qtx.OrganizationName(ctx, actor.OrganizationID)
		if err != nil {
			return UserResponse{}, err
		}
		msg, err := notification.SupervisorInvite(u.Email, u.Profile.FullName(), orgName, setupLink(s.baseURL, token))
		if err != nil {
			return UserResponse{}, err
		}
		if err := s.notifier.Queue(ctx, tx, msg); err != nil {
			s.logger.Error("create supervisor queue invite failed", zap.String("user_id", u.ID.String()), zap.Error(err))
			return UserResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create supervisor commit failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("create supervisor success",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
		zap.String("organization_id", actor.OrganizationID),
	)
	return mapToResponse(*u), nil
}

func (s *service) CreateEmployee(ctx context.Context, actor domain.Identity, req CreateEmployeeRequest) (UserResponse, error) {
	if err := actor.Require(domain.RoleSupervisor); err != nil {
		return UserResponse{}, err
	}
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("supervisor_id", actor.UserID),
		zap.String("email", req.Email),
	)

	supervisorID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	supervisor, err := qtx.FindByID(ctx, actor.UserID)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	if err := s.ensureEmailFree(ctx, qtx, req.Email); err != nil {
		return UserResponse{}, err
	}

	token, err := newSetupToken()
	if err != nil {
		return UserResponse{}, err
	}

	u := &User{
		ID:             uuid.New(),
		Email:          normalizeEmail(req.Email),
		Role:           domain.RoleEmployee.String(),
		OrganizationID: supervisor.OrganizationID,
		SupervisorID:   &supervisorID,
		IsActive:       true,
		SetupToken:     &token,
	}
	if err := qtx.Create(ctx, u); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	u.Profile = &Profile{
		UserID:                u.ID,
		FirstName:             strings.TrimSpace(req.FirstName),
		LastName:              strings.TrimSpace(req.LastName),
		NIN:                   optional(req.NIN),
		PhoneNumber:           strings.TrimSpace(req.PhoneNumber),
		Address:               strings.TrimSpace(req.Address),
		EmergencyContactName:  strings.TrimSpace(req.EmergencyContactName),
		EmergencyContactPhone: strings.TrimSpace(req.EmergencyContactPhone),
	}
	if err := qtx.CreateProfile(ctx, u.Profile); err != nil {
		s.logger.Error("create employee profile persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if s.notifier != nil {
		supervisorName := supervisor.Profile.FullName()
		if supervisorName == "" {
			supervisorName = supervisor.Email
		}
		msg, err := notification.EmployeeInvite(u.Email, u.Profile.FullName(), supervisorName, setupLink(s.baseURL, token))
		if err != nil {
			return UserResponse{}, err
		}
		if err := s.notifier.Queue(ctx, tx, msg); err != nil {
			s.logger.Error("create employee queue invite failed", zap.String("user_id", u.ID.String()), zap.Error(err))
			return UserResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	s.invalidateEmployeeList(ctx, actor.UserID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
		zap.String("supervisor_id", actor.UserID),
	)
	return mapToResponse(*u), nil
}

func (s *service) ListSupervisors(ctx context.Context, actor domain.Identity) ([]UserResponse, error) {
	if err := actor.Require(domain.RoleOwner); err != nil {
		return nil, err
	}
	users, err := s.repo.FindAllByRole(ctx, actor.OrganizationID, domain.RoleSupervisor)
	if err != nil {
		s.logger.Error("list supervisors failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(users), nil
}

func (s *service) ListEmployees(ctx context.Context, actor domain.Identity) ([]UserResponse, error) {
	if err := actor.Require(domain.RoleSupervisor); err != nil {
		return nil, err
	}
	cacheKey := GetEmployeeListKey(actor.UserID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []UserResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		users, err := s.repo.FindAllBySupervisor(ctx, actor.UserID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		resp := mapToListResponse(users)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, employeeListTTL).Err(); err != nil {
					s.logger.Warn("cache employee list failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("list employees failed", zap.String("supervisor_id", actor.UserID), zap.Error(err))
		return nil, err
	}

	return v.([]UserResponse), nil
}

func (s *service) GetProfile(ctx context.Context, actor domain.Identity) (UserResponse, error) {
	if err := actor.Require(domain.RoleEmployee); err != nil {
		return UserResponse{}, err
	}
	u, err := s.repo.FindByID(ctx, actor.UserID)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) InspectSetupToken(ctx context.Context, token string) (SetupAccountResponse, error) {
	if strings.TrimSpace(token) == "" {
		return SetupAccountResponse{}, usererrors.ErrInvalidSetupToken
	}
	u, err := s.repo.FindBySetupToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SetupAccountResponse{}, usererrors.ErrInvalidSetupToken
		}
		return SetupAccountResponse{}, err
	}

	resp := SetupAccountResponse{Email: u.Email, Role: u.Role}
	if u.Profile != nil {
		resp.FirstName = u.Profile.FirstName
		resp.LastName = u.Profile.LastName
	}
	return resp, nil
}

func (s *service) SetupPassword(ctx context.Context, req SetupPasswordRequest) error {
	if req.Password != req.ConfirmPassword {
		return usererrors.ErrPasswordMismatch
	}
	if len(req.Password) < minPasswordLength {
		return usererrors.ErrPasswordTooShort
	}

	u, err := s.repo.FindBySetupToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrInvalidSetupToken
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	ok, err := s.repo.CompleteSetup(ctx, req.Token, string(hashed))
	if err != nil {
		s.logger.Error("complete account setup failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return err
	}
	if !ok {
		// redeemed concurrently
		return usererrors.ErrInvalidSetupToken
	}

	s.logger.Info("account setup completed", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return nil
}

func (s *service) ensureEmailFree(ctx context.Context, repo Repository, email string) error {
	_, err := repo.FindByEmail(ctx, normalizeEmail(email))
	if err == nil {
		return usererrors.ErrEmailAlreadyRegistered
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *service) invalidateEmployeeList(ctx context.Context, supervisorID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeListKey(supervisorID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee list cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:             u.ID.String(),
		Email:          u.Email,
		Role:           u.Role,
		OrganizationID: u.OrganizationID.String(),
		IsActive:       u.IsActive,
		EmailVerified:  u.EmailVerified,
		CreatedAt:      u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if u.SupervisorID != nil {
		v := u.SupervisorID.String()
		resp.SupervisorID = &v
	}
	if u.Profile != nil {
		resp.Profile = &ProfileResponse{
			FirstName:             u.Profile.FirstName,
			LastName:              u.Profile.LastName,
			FullName:              u.Profile.FullName(),
			NIN:                   u.Profile.NIN,
			PhoneNumber:           u.Profile.PhoneNumber,
			Address:               u.Profile.Address,
			EmergencyContactName:  u.Profile.EmergencyContactName,
			EmergencyContactPhone: u.Profile.EmergencyContactPhone,
		}
	}
	return resp
}

func mapToListResponse(users []User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp
}
