package leave

import (
	"context"
	"database/sql"
	"time"

	"go-attendance/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindParty(ctx context.Context, userID string) (*Party, error)
	Create(ctx context.Context, l *LeaveRequest) error
	HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)
	FindForSupervisor(ctx context.Context, supervisorID, id string) (*LeaveRequest, error)
	Decide(ctx context.Context, id uuid.UUID, status string, approvedAt *time.Time, decidedAt time.Time) (bool, error)
	ListBySupervisor(ctx context.Context, supervisorID, status string) ([]LeaveWithEmployee, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
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

func (r *repository) FindParty(ctx context.Context, userID string) (*Party, error) {
	var p Party
	err := r.db.WithContext(ctx).
		Table("users AS u").
		Select("u.id, u.email, u.supervisor_id, p.first_name, p.last_name").
		Joins("LEFT JOIN employee_profiles AS p ON p.user_id = u.id").
		Where("u.id = ?", userID).
		Where("u.is_active = ?", true).
		Take(&p).Error
	return &p, err
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status <> ?", StatusRejected).
		Where("NOT (end_date < ? OR start_date > ?)", startDate.Format(dateLayout), endDate.Format(dateLayout)).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindForSupervisor(ctx context.Context, supervisorID, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("supervisor_id = ?", supervisorID).
		First(&l, "id = ?", id).Error
	return &l, err
}

// Decide moves a pending request to its final status. It reports false when
// the request was no longer pending.
func (r *repository) Decide(ctx context.Context, id uuid.UUID, status string, approvedAt *time.Time, decidedAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]any{
			"status":      status,
			"approved_at": approvedAt,
			"decided_at":  decidedAt,
			"updated_at":  decidedAt,
		})
	return res.RowsAffected == 1, res.Error
}

func (r *repository) ListBySupervisor(ctx context.Context, supervisorID, status string) ([]LeaveWithEmployee, error) {
	var rows []LeaveWithEmployee
	q := r.db.WithContext(ctx).
		Table("leave_requests AS l").
		Select("l.*, u.email AS employee_email, p.first_name AS employee_first_name, p.last_name AS employee_last_name").
		Joins("JOIN users AS u ON u.id = l.employee_id").
		Joins("LEFT JOIN employee_profiles AS p ON p.user_id = l.employee_id").
		Where("l.supervisor_id = ?", supervisorID)
	if status != "" {
		q = q.Where("l.status = ?", status)
	}
	err := q.Order("l.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
