package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-attendance/internal/domain"
	"go-attendance/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindSupervisedEmployee(ctx context.Context, supervisorID, employeeID string) (*EmployeeRef, error)
	ListSupervisedEmployees(ctx context.Context, supervisorID string) ([]EmployeeRef, error)
	FindForUpdate(ctx context.Context, employeeID string, date time.Time) (*Record, error)
	Insert(ctx context.Context, r *Record) (bool, error)
	RecordClockIn(ctx context.Context, r *Record) (bool, error)
	RecordClockOut(ctx context.Context, id uuid.UUID, at time.Time, method string) (bool, error)
	FindByEmployeesAndDate(ctx context.Context, employeeIDs []uuid.UUID, date time.Time) ([]Record, error)
	FindByEmployee(ctx context.Context, employeeID string, start, end *time.Time) ([]Record, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) employees(ctx context.Context, supervisorID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("users AS u").
		Select("u.id, u.email, p.first_name, p.last_name").
		Joins("LEFT JOIN employee_profiles AS p ON p.user_id = u.id").
		Where("u.supervisor_id = ?", supervisorID).
		Where("u.role = ?", domain.RoleEmployee.String()).
		Where("u.is_active = ?", true)
}

func (r *repository) FindSupervisedEmployee(ctx context.Context, supervisorID, employeeID string) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.employees(ctx, supervisorID).
		Where("u.id = ?", employeeID).
		Take(&ref).Error
	return &ref, err
}

func (r *repository) ListSupervisedEmployees(ctx context.Context, supervisorID string) ([]EmployeeRef, error) {
	var refs []EmployeeRef
	err := r.employees(ctx, supervisorID).
		Order("p.first_name ASC, p.last_name ASC").
		Scan(&refs).Error
	return refs, err
}

// FindForUpdate locks today's row so clock-in and clock-out for the same
// employee serialize.
func (r *repository) FindForUpdate(ctx context.Context, employeeID string, date time.Time) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date.Format(dateLayout)).
		First(&rec).Error
	return &rec, err
}

// Insert reports false when a row for the same employee and date already
// exists, which happens when a concurrent clock-in won.
func (r *repository) Insert(ctx context.Context, rec *Record) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "attendance_date"}},
			DoNothing: true,
		}).
		Create(rec)
	return res.RowsAffected == 1, res.Error
}

func (r *repository) RecordClockIn(ctx context.Context, rec *Record) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("id = ? AND clock_in_time IS NULL", rec.ID).
		Updates(map[string]any{
			"clock_in_time":   rec.ClockInTime,
			"clock_in_method": rec.ClockInMethod,
			"device_ip":       rec.DeviceIP,
			"device_id":       rec.DeviceID,
			"status":          rec.Status,
		})
	return res.RowsAffected == 1, res.Error
}

func (r *repository) RecordClockOut(ctx context.Context, id uuid.UUID, at time.Time, method string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("id = ?", id).
		Where("clock_in_time IS NOT NULL AND clock_out_time IS NULL").
		Updates(map[string]any{
			"clock_out_time":   at,
			"clock_out_method": method,
		})
	return res.RowsAffected == 1, res.Error
}

func (r *repository) FindByEmployeesAndDate(ctx context.Context, employeeIDs []uuid.UUID, date time.Time) ([]Record, error) {
	var rows []Record
	if len(employeeIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Where("employee_id IN ?", employeeIDs).
		Where("attendance_date = ?", date.Format(dateLayout)).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, start, end *time.Time) ([]Record, error) {
	var rows []Record
	q := r.db.WithContext(ctx).Where("employee_id = ?", employeeID)
	if start != nil {
		q = q.Where("attendance_date >= ?", start.Format(dateLayout))
	}
	if end != nil {
		q = q.Where("attendance_date <= ?", end.Format(dateLayout))
	}
	err := q.Order("attendance_date DESC").Find(&rows).Error
	return rows, err
}
