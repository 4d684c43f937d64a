package dashboard

import (
	"context"
	"strings"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/domain"
	"go-attendance/internal/leave"
	"go-attendance/internal/tenant"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// AttendanceRow is an attendance record with the employee's display name.
type AttendanceRow struct {
	attendance.Record
	EmployeeEmail     string `gorm:"column:employee_email"`
	EmployeeFirstName string `gorm:"column:employee_first_name"`
	EmployeeLastName  string `gorm:"column:employee_last_name"`
}

func (r AttendanceRow) EmployeeName() string {
	if name := strings.TrimSpace(r.EmployeeFirstName + " " + r.EmployeeLastName); name != "" {
		return name
	}
	return r.EmployeeEmail
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountUsersByRole(ctx context.Context, organizationID string, role domain.Role) (int64, error)
	CountPresentOn(ctx context.Context, organizationID string, date time.Time) (int64, error)
	CountPendingLeaves(ctx context.Context, organizationID string) (int64, error)
	AttendanceOn(ctx context.Context, organizationID string, date time.Time, limit int) ([]AttendanceRow, error)
	PendingLeaves(ctx context.Context, organizationID string, limit int) ([]leave.LeaveWithEmployee, error)
	EmployeeAttendanceBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error)
	EmployeePendingLeaves(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountUsersByRole(ctx context.Context, organizationID string, role domain.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("users").
		Scopes(tenant.Scope(organizationID)).
		Where("role = ? AND is_active = ?", role.String(), true).
		Count(&count).Error
	return count, err
}

func (r *repository) attendanceInOrganization(ctx context.Context, organizationID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("attendance_records AS a").
		Joins("JOIN users AS u ON u.id = a.employee_id").
		Where("u.organization_id = ?", organizationID)
}

func (r *repository) CountPresentOn(ctx context.Context, organizationID string, date time.Time) (int64, error) {
	var count int64
	err := r.attendanceInOrganization(ctx, organizationID).
		Where("a.attendance_date = ?", date.Format(dateLayout)).
		Where("a.clock_in_time IS NOT NULL").
		Count(&count).Error
	return count, err
}

func (r *repository) AttendanceOn(ctx context.Context, organizationID string, date time.Time, limit int) ([]AttendanceRow, error) {
	var rows []AttendanceRow
	err := r.attendanceInOrganization(ctx, organizationID).
		Select("a.*, u.email AS employee_email, p.first_name AS employee_first_name, p.last_name AS employee_last_name").
		Joins("LEFT JOIN employee_profiles AS p ON p.user_id = a.employee_id").
		Where("a.attendance_date = ?", date.Format(dateLayout)).
		Order("a.clock_in_time DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) pendingLeavesInOrganization(ctx context.Context, organizationID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("leave_requests AS l").
		Joins("JOIN users AS u ON u.id = l.employee_id").
		Where("u.organization_id = ?", organizationID).
		Where("l.status = ?", leave.StatusPending)
}

func (r *repository) CountPendingLeaves(ctx context.Context, organizationID string) (int64, error) {
	var count int64
	err := r.pendingLeavesInOrganization(ctx, organizationID).Count(&count).Error
	return count, err
}

func (r *repository) PendingLeaves(ctx context.Context, organizationID string, limit int) ([]leave.LeaveWithEmployee, error) {
	var rows []leave.LeaveWithEmployee
	err := r.pendingLeavesInOrganization(ctx, organizationID).
		Select("l.*, u.email AS employee_email, p.first_name AS employee_first_name, p.last_name AS employee_last_name").
		Joins("LEFT JOIN employee_profiles AS p ON p.user_id = l.employee_id").
		Order("l.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) EmployeeAttendanceBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	var rows []attendance.Record
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", from.Format(dateLayout), to.Format(dateLayout)).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) EmployeePendingLeaves(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var rows []leave.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ?", employeeID, leave.StatusPending).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}
