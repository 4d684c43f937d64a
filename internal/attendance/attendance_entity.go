package attendance

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MethodFingerprint = "fingerprint"
	MethodOTP         = "otp"

	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
)

// Record is one employee's attendance for one calendar day.
// (employee_id, attendance_date) is unique.
type Record struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2"`
	ClockInTime    *time.Time `gorm:"column:clock_in_time;type:timestamptz"`
	ClockOutTime   *time.Time `gorm:"column:clock_out_time;type:timestamptz"`
	ClockInMethod  *string    `gorm:"column:clock_in_method;type:varchar(20)"`
	ClockOutMethod *string    `gorm:"column:clock_out_method;type:varchar(20)"`
	DeviceIP       string     `gorm:"column:device_ip;type:varchar(64)"`
	DeviceID       *string    `gorm:"column:device_id;type:varchar(100)"`
	Status         string     `gorm:"column:status;type:varchar(20);not null;default:present"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (Record) TableName() string {
	return "attendance_records"
}

// EmployeeRef is the slice of the credential store attendance needs.
type EmployeeRef struct {
	ID        uuid.UUID `gorm:"column:id"`
	Email     string    `gorm:"column:email"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
}

func (e EmployeeRef) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
