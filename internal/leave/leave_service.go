package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-attendance/internal/domain"
	leaveerrors "go-attendance/internal/leave/errors"
	"go-attendance/internal/notification"
	"go-attendance/internal/shared/clock"
	"go-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor domain.Identity, req CreateLeaveRequest) (LeaveResponse, error)
	Decide(ctx context.Context, actor domain.Identity, id string, req DecideLeaveRequest) (LeaveResponse, error)
	ListForSupervisor(ctx context.Context, actor domain.Identity, q ListLeaveQuery) ([]LeaveResponse, error)
	ListForEmployee(ctx context.Context, actor domain.Identity) ([]LeaveResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	notifier notification.Notifier
	clock    clock.Clock
	logger   *zap.Logger

	// rejectOverlap refuses a request overlapping a pending or approved one.
	rejectOverlap bool
}

func NewService(
	db *sql.DB,
	repo Repository,
	notifier notification.Notifier,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{
		db:       db,
		repo:     repo,
		notifier: notifier,
		clock:    clk,
		logger:   l,
	}
}

// NewServiceWithOverlapCheck is NewService with overlapping requests refused
// as a conflict. Overlaps are accepted by default.
func NewServiceWithOverlapCheck(
	db *sql.DB,
	repo Repository,
	notifier notification.Notifier,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	svc := NewService(db, repo, notifier, clk, logger...).(*service)
	svc.rejectOverlap = true
	return svc
}

func (s *service) Create(ctx context.Context, actor domain.Identity, req CreateLeaveRequest) (LeaveResponse, error) {
	if err := actor.Require(domain.RoleEmployee); err != nil {
		return LeaveResponse{}, err
	}

	startDate, err := time.Parse(dateLayout, strings.TrimSpace(req.StartDate))
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse(dateLayout, strings.TrimSpace(req.EndDate))
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if startDate.After(endDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidRange
	}
	if startDate.Before(clock.Date(s.clock.Now())) {
		return LeaveResponse{}, leaveerrors.ErrPastDate
	}

	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	employee, err := qtx.FindParty(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		return LeaveResponse{}, err
	}
	if employee.SupervisorID == nil {
		return LeaveResponse{}, leaveerrors.ErrNoSupervisor
	}

	if s.rejectOverlap {
		overlap, err := qtx.HasOverlappingPeriod(ctx, actor.UserID, startDate, endDate)
		if err != nil {
			log.Error("check overlapping leave failed", zap.String("employee_id", actor.UserID), zap.Error(err))
			return LeaveResponse{}, err
		}
		if overlap {
			log.Warn("overlapping leave request rejected",
				zap.String("employee_id", actor.UserID),
				zap.String("start_date", req.StartDate),
				zap.String("end_date", req.EndDate),
			)
			return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
		}
	}

	supervisor, err := qtx.FindParty(ctx, employee.SupervisorID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrNoSupervisor
		}
		return LeaveResponse{}, err
	}

	l := &LeaveRequest{
		ID:           uuid.New(),
		EmployeeID:   employee.ID,
		SupervisorID: supervisor.ID,
		StartDate:    startDate,
		EndDate:      endDate,
		Reason:       strings.TrimSpace(req.Reason),
		Status:       StatusPending,
	}
	if err := qtx.Create(ctx, l); err != nil {
		log.Error("create leave failed", zap.String("employee_id", actor.UserID), zap.Error(err))
		return LeaveResponse{}, err
	}

	msg, err := notification.LeaveRequested(
		supervisor.Email,
		employee.FullName(),
		req.StartDate,
		req.EndDate,
		l.Reason,
	)
	if err != nil {
		return LeaveResponse{}, err
	}
	if err := s.notifier.Queue(ctx, tx, msg); err != nil {
		log.Error("queue leave requested notification failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("leave requested",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", actor.UserID),
		zap.String("supervisor_id", supervisor.ID.String()),
	)
	return mapToResponse(*l), nil
}

func (s *service) Decide(ctx context.Context, actor domain.Identity, id string, req DecideLeaveRequest) (LeaveResponse, error) {
	if err := actor.Require(domain.RoleSupervisor); err != nil {
		return LeaveResponse{}, err
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != StatusApproved && status != StatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidDecision
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.FindForSupervisor(ctx, actor.UserID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrLeaveAlreadyDecided
	}

	now := s.clock.Now()
	var approvedAt *time.Time
	if status == StatusApproved {
		approvedAt = &now
	}

	ok, err := qtx.Decide(ctx, l.ID, status, approvedAt, now)
	if err != nil {
		log.Error("decide leave failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrLeaveAlreadyDecided
	}
	l.Status = status
	l.ApprovedAt = approvedAt
	l.DecidedAt = &now

	employee, err := qtx.FindParty(ctx, l.EmployeeID.String())
	switch {
	case err == nil:
		msg, err := notification.LeaveDecided(
			employee.Email,
			status,
			l.StartDate.Format(dateLayout),
			l.EndDate.Format(dateLayout),
		)
		if err != nil {
			return LeaveResponse{}, err
		}
		if err := s.notifier.Queue(ctx, tx, msg); err != nil {
			log.Error("queue leave decided notification failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// deactivated employees still get their decision, just no email
		log.Warn("leave decided for inactive employee", zap.String("employee_id", l.EmployeeID.String()))
	default:
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("decide leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("leave decided",
		zap.String("leave_id", id),
		zap.String("supervisor_id", actor.UserID),
		zap.String("status", status),
	)
	return mapToResponse(*l), nil
}

func (s *service) ListForSupervisor(ctx context.Context, actor domain.Identity, q ListLeaveQuery) ([]LeaveResponse, error) {
	if err := actor.Require(domain.RoleSupervisor); err != nil {
		return nil, err
	}
	status := strings.ToLower(strings.TrimSpace(q.Status))
	if status != "" && status != StatusPending && status != StatusApproved && status != StatusRejected {
		return nil, leaveerrors.ErrInvalidStatusFilter
	}

	rows, err := s.repo.ListBySupervisor(ctx, actor.UserID, status)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r.LeaveRequest)
		resp[i].EmployeeEmail = r.EmployeeEmail
		resp[i].EmployeeName = Party{
			Email:     r.EmployeeEmail,
			FirstName: r.EmployeeFirstName,
			LastName:  r.EmployeeLastName,
		}.FullName()
	}
	return resp, nil
}

func (s *service) ListForEmployee(ctx context.Context, actor domain.Identity) ([]LeaveResponse, error) {
	if err := actor.Require(domain.RoleEmployee); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByEmployee(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID.String(),
		EmployeeID:   l.EmployeeID.String(),
		SupervisorID: l.SupervisorID.String(),
		StartDate:    l.StartDate.Format(dateLayout),
		EndDate:      l.EndDate.Format(dateLayout),
		Reason:       l.Reason,
		Status:       l.Status,
		ApprovedAt:   formatTime(l.ApprovedAt),
		DecidedAt:    formatTime(l.DecidedAt),
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339),
	}
}
