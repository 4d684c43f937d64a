package dashboard

import (
	"context"
	"math"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/domain"
	"go-attendance/internal/leave"
	"go-attendance/internal/shared/clock"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recentLimit = 10
	recentDays  = 7
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Owner(ctx context.Context, actor domain.Identity) (OwnerDashboard, error)
	Employee(ctx context.Context, actor domain.Identity) (EmployeeDashboard, error)
}

type service struct {
	repo   Repository
	clock  clock.Clock
	logger *zap.Logger
}

func NewService(repo Repository, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{repo: repo, clock: clk, logger: l}
}

func (s *service) Owner(ctx context.Context, actor domain.Identity) (OwnerDashboard, error) {
	if err := actor.Require(domain.RoleOwner); err != nil {
		return OwnerDashboard{}, err
	}

	org := actor.OrganizationID
	today := clock.Date(s.clock.Now())

	var (
		stats   OrganizationStats
		todays  []AttendanceRow
		pending []leave.LeaveWithEmployee
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalSupervisors, err = s.repo.CountUsersByRole(gctx, org, domain.RoleSupervisor)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalEmployees, err = s.repo.CountUsersByRole(gctx, org, domain.RoleEmployee)
		return err
	})
	g.Go(func() (err error) {
		stats.PresentToday, err = s.repo.CountPresentOn(gctx, org, today)
		return err
	})
	g.Go(func() (err error) {
		stats.PendingLeaveRequests, err = s.repo.CountPendingLeaves(gctx, org)
		return err
	})
	g.Go(func() (err error) {
		todays, err = s.repo.AttendanceOn(gctx, org, today, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		pending, err = s.repo.PendingLeaves(gctx, org, recentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("owner dashboard query failed", zap.String("organization_id", org), zap.Error(err))
		return OwnerDashboard{}, err
	}

	resp := OwnerDashboard{
		OrganizationStats: stats,
		RecentAttendance:  make([]AttendanceItem, len(todays)),
		PendingLeaves:     make([]LeaveItem, len(pending)),
	}
	for i, r := range todays {
		resp.RecentAttendance[i] = attendanceItem(r.Record)
		resp.RecentAttendance[i].EmployeeName = r.EmployeeName()
	}
	for i, l := range pending {
		resp.PendingLeaves[i] = leaveItem(l.LeaveRequest)
		resp.PendingLeaves[i].EmployeeName = leave.Party{
			Email:     l.EmployeeEmail,
			FirstName: l.EmployeeFirstName,
			LastName:  l.EmployeeLastName,
		}.FullName()
	}
	return resp, nil
}

func (s *service) Employee(ctx context.Context, actor domain.Identity) (EmployeeDashboard, error) {
	if err := actor.Require(domain.RoleEmployee); err != nil {
		return EmployeeDashboard{}, err
	}

	today := clock.Date(s.clock.Now())
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	recentFrom := today.AddDate(0, 0, -recentDays)
	from := monthStart
	if recentFrom.Before(from) {
		from = recentFrom
	}

	var (
		records []attendance.Record
		pending []leave.LeaveRequest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		records, err = s.repo.EmployeeAttendanceBetween(gctx, actor.UserID, from, today)
		return err
	})
	g.Go(func() (err error) {
		pending, err = s.repo.EmployeePendingLeaves(gctx, actor.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("employee dashboard query failed", zap.String("employee_id", actor.UserID), zap.Error(err))
		return EmployeeDashboard{}, err
	}

	present := 0
	recent := make([]AttendanceItem, 0, len(records))
	for _, r := range records {
		if !r.AttendanceDate.Before(monthStart) && r.ClockInTime != nil {
			present++
		}
		if !r.AttendanceDate.Before(recentFrom) {
			recent = append(recent, attendanceItem(r))
		}
	}

	workingDays := WorkingDaysBetween(monthStart, today)
	resp := EmployeeDashboard{
		AttendanceSummary: AttendanceSummary{
			DaysPresentThisMonth: present,
			TotalWorkingDays:     workingDays,
			AttendancePercentage: percentage(present, workingDays),
		},
		RecentAttendance:     recent,
		PendingLeaveRequests: make([]LeaveItem, len(pending)),
	}
	for i, l := range pending {
		resp.PendingLeaveRequests[i] = leaveItem(l)
	}
	return resp, nil
}

// WorkingDaysBetween counts Monday to Friday dates in [from, to].
func WorkingDaysBetween(from, to time.Time) int {
	n := 0
	for d := clock.Date(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			n++
		}
	}
	return n
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}

func attendanceItem(r attendance.Record) AttendanceItem {
	return AttendanceItem{
		ID:           r.ID.String(),
		EmployeeID:   r.EmployeeID.String(),
		Date:         r.AttendanceDate.Format(dateLayout),
		ClockInTime:  formatTime(r.ClockInTime),
		ClockOutTime: formatTime(r.ClockOutTime),
		Status:       r.Status,
	}
}

func leaveItem(l leave.LeaveRequest) LeaveItem {
	return LeaveItem{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
	}
}
