package rbac

import (
	"sort"
	"sync"

	"go-attendance/internal/domain"
	"go-attendance/internal/rbac/infra"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsFor(role domain.Role) ([]domain.PermissionResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{enforcer: enforcer, logger: l}
}

// NewDefaultService builds an enforcer loaded with DefaultPolicy.
func NewDefaultService(logger ...*zap.Logger) (Service, error) {
	enforcer, err := infra.NewEnforcer(infra.ModelText)
	if err != nil {
		return nil, err
	}
	if err := LoadPolicy(enforcer, DefaultPolicy); err != nil {
		return nil, err
	}
	return NewService(enforcer, logger...), nil
}

func LoadPolicy(enforcer *casbin.Enforcer, policy map[domain.Role][]domain.PermissionResponse) error {
	enforcer.ClearPolicy()

	rules := make([][]string, 0)
	for role, perms := range policy {
		for _, p := range perms {
			rules = append(rules, []string{role.String(), p.Resource, p.Action})
		}
	}
	if len(rules) == 0 {
		return nil
	}
	_, err := enforcer.AddPolicies(rules)
	return err
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	if !req.Role.Valid() {
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role.String(), req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role.String()),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role.String()),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsFor(role domain.Role) ([]domain.PermissionResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules, err := s.enforcer.GetPermissionsForUser(role.String())
	if err != nil {
		return nil, err
	}

	perms := make([]domain.PermissionResponse, 0, len(rules))
	for _, r := range rules {
		if len(r) < 3 {
			continue
		}
		perms = append(perms, domain.PermissionResponse{Resource: r[1], Action: r[2]})
	}
	sort.Slice(perms, func(i, j int) bool {
		if perms[i].Resource != perms[j].Resource {
			return perms[i].Resource < perms[j].Resource
		}
		return perms[i].Action < perms[j].Action
	})
	return perms, nil
}
