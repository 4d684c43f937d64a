package leave

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// LeaveRequest moves pending -> approved | rejected exactly once.
// ApprovedAt is only ever set together with StatusApproved.
type LeaveRequest struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index:idx_leave_requests_employee_dates"`
	SupervisorID uuid.UUID  `gorm:"column:supervisor_id;type:uuid;not null;index:idx_leave_requests_supervisor_status"`
	StartDate    time.Time  `gorm:"column:start_date;type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate      time.Time  `gorm:"column:end_date;type:date;not null;index:idx_leave_requests_employee_dates"`
	Reason       string     `gorm:"column:reason;type:text;not null"`
	Status       string     `gorm:"column:status;type:varchar(20);not null;default:pending;index:idx_leave_requests_supervisor_status"`
	ApprovedAt   *time.Time `gorm:"column:approved_at;type:timestamptz"`
	DecidedAt    *time.Time `gorm:"column:decided_at;type:timestamptz"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// Party is a user on either side of a leave request.
type Party struct {
	ID           uuid.UUID  `gorm:"column:id"`
	Email        string     `gorm:"column:email"`
	FirstName    string     `gorm:"column:first_name"`
	LastName     string     `gorm:"column:last_name"`
	SupervisorID *uuid.UUID `gorm:"column:supervisor_id"`
}

func (p Party) FullName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.Email
	}
	return name
}

// LeaveWithEmployee is a leave request joined with the requester's identity.
type LeaveWithEmployee struct {
	LeaveRequest
	EmployeeEmail     string `gorm:"column:employee_email"`
	EmployeeFirstName string `gorm:"column:employee_first_name"`
	EmployeeLastName  string `gorm:"column:employee_last_name"`
}
