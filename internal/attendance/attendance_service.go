package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/domain"
	"go-attendance/internal/otp"
	"go-attendance/internal/shared/clock"
	"go-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OTPRedeemer spends a verified one-time code inside the caller's transaction.
type OTPRedeemer interface {
	Redeem(ctx context.Context, tx *sql.Tx, email, code, deviceIP, purpose string) error
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, actor domain.Identity, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, actor domain.Identity, req ClockOutRequest) (AttendanceResponse, error)
	Today(ctx context.Context, actor domain.Identity) ([]TeamMemberStatus, error)
	History(ctx context.Context, actor domain.Identity, q HistoryQuery) ([]AttendanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	otp    OTPRedeemer
	clock  clock.Clock
	policy LatenessPolicy
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	redeemer OTPRedeemer,
	clk clock.Clock,
	policy LatenessPolicy,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	if policy == nil {
		policy = AlwaysPresent
	}
	return &service{
		db:     db,
		repo:   repo,
		otp:    redeemer,
		clock:  clk,
		policy: policy,
		logger: l,
	}
}

func validMethod(m string) bool {
	return m == MethodFingerprint || m == MethodOTP
}

func (s *service) ClockIn(ctx context.Context, actor domain.Identity, req ClockInRequest) (AttendanceResponse, error) {
	if err := actor.Require(domain.RoleSupervisor); err != nil {
		return AttendanceResponse{}, err
	}
	if !validMethod(req.Method) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidMethod
	}
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("clock in begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	emp, err := qtx.FindSupervisedEmployee(ctx, actor.UserID, req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	now := s.clock.Now()
	today := clock.Date(now)

	existing, err := qtx.FindForUpdate(ctx, emp.ID.String(), today)
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if found && existing.ClockInTime != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	if req.Method == MethodOTP {
		if err := s.otp.Redeem(ctx, tx, emp.Email, req.OTPCode, req.DeviceIP, otp.PurposeClockIn); err != nil {
			log.Warn("clock in otp rejected", zap.String("employee_id", req.EmployeeID), zap.Error(err))
			return AttendanceResponse{}, err
		}
	}

	method := req.Method
	rec := &Record{
		ID:             uuid.New(),
		EmployeeID:     emp.ID,
		AttendanceDate: today,
		ClockInTime:    &now,
		ClockInMethod:  &method,
		DeviceIP:       strings.TrimSpace(req.DeviceIP),
		DeviceID:       optional(req.DeviceID),
		Status:         s.policy.Status(now),
	}

	var ok bool
	if found {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
		ok, err = qtx.RecordClockIn(ctx, rec)
	} else {
		ok, err = qtx.Insert(ctx, rec)
	}
	if err != nil {
		log.Error("clock in persist failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return AttendanceResponse{}, err
	}
	if !ok {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	if err := tx.Commit(); err != nil {
		log.Error("clock in commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	log.Info("employee clocked in",
		zap.String("employee_id", req.EmployeeID),
		zap.String("supervisor_id", actor.UserID),
		zap.String("method", method),
		zap.String("status", rec.Status),
	)
	return mapToResponse(*rec), nil
}

func (s *service) ClockOut(ctx context.Context, actor domain.Identity, req ClockOutRequest) (AttendanceResponse, error) {
	if err := actor.Require(domain.RoleSupervisor); err != nil {
		return AttendanceResponse{}, err
	}
	if !validMethod(req.Method) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidMethod
	}
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("clock out begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	emp, err := qtx.FindSupervisedEmployee(ctx, actor.UserID, req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	now := s.clock.Now()
	rec, err := qtx.FindForUpdate(ctx, emp.ID.String(), clock.Date(now))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotClockedIn
		}
		return AttendanceResponse{}, err
	}
	if rec.ClockInTime == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNotClockedIn
	}
	if rec.ClockOutTime != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}
	if !now.After(*rec.ClockInTime) {
		return AttendanceResponse{}, attendanceerrors.ErrClockOutNotAfterClockIn
	}

	if req.Method == MethodOTP {
		if err := s.otp.Redeem(ctx, tx, emp.Email, req.OTPCode, req.DeviceIP, otp.PurposeClockOut); err != nil {
			log.Warn("clock out otp rejected", zap.String("employee_id", req.EmployeeID), zap.Error(err))
			return AttendanceResponse{}, err
		}
	}

	ok, err := qtx.RecordClockOut(ctx, rec.ID, now, req.Method)
	if err != nil {
		log.Error("clock out persist failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return AttendanceResponse{}, err
	}
	if !ok {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	if err := tx.Commit(); err != nil {
		log.Error("clock out commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	method := req.Method
	rec.ClockOutTime = &now
	rec.ClockOutMethod = &method

	log.Info("employee clocked out",
		zap.String("employee_id", req.EmployeeID),
		zap.String("supervisor_id", actor.UserID),
		zap.String("method", method),
	)
	return mapToResponse(*rec), nil
}

func (s *service) Today(ctx context.Context, actor domain.Identity) ([]TeamMemberStatus, error) {
	if err := actor.Require(domain.RoleSupervisor); err != nil {
		return nil, err
	}

	team, err := s.repo.ListSupervisedEmployees(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(team))
	for i, e := range team {
		ids[i] = e.ID
	}
	rows, err := s.repo.FindByEmployeesAndDate(ctx, ids, clock.Date(s.clock.Now()))
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[uuid.UUID]Record, len(rows))
	for _, r := range rows {
		byEmployee[r.EmployeeID] = r
	}

	resp := make([]TeamMemberStatus, len(team))
	for i, e := range team {
		member := TeamMemberStatus{
			EmployeeID: e.ID.String(),
			FullName:   e.FullName(),
			Email:      e.Email,
			State:      StateAbsent,
		}
		if r, ok := byEmployee[e.ID]; ok {
			rec := mapToResponse(r)
			member.Record = &rec
			member.State = stateOf(r)
		}
		resp[i] = member
	}
	return resp, nil
}

func (s *service) History(ctx context.Context, actor domain.Identity, q HistoryQuery) ([]AttendanceResponse, error) {
	if err := actor.Require(domain.RoleEmployee); err != nil {
		return nil, err
	}

	start, err := parseDate(q.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(q.EndDate)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, attendanceerrors.ErrInvalidRange
	}

	rows, err := s.repo.FindByEmployee(ctx, actor.UserID, start, end)
	if err != nil {
		return nil, err
	}

	resp := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func stateOf(r Record) string {
	switch {
	case r.ClockOutTime != nil:
		return StateComplete
	case r.ClockInTime != nil:
		return StateClockedIn
	default:
		return StateAbsent
	}
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}
	return &t, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrEmployeeNotFound
	}
	return err
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}

func mapToResponse(r Record) AttendanceResponse {
	return AttendanceResponse{
		ID:             r.ID.String(),
		EmployeeID:     r.EmployeeID.String(),
		AttendanceDate: r.AttendanceDate.Format(dateLayout),
		ClockInTime:    formatTime(r.ClockInTime),
		ClockOutTime:   formatTime(r.ClockOutTime),
		ClockInMethod:  r.ClockInMethod,
		ClockOutMethod: r.ClockOutMethod,
		DeviceIP:       r.DeviceIP,
		DeviceID:       r.DeviceID,
		Status:         r.Status,
	}
}
