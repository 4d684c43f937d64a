package otp

import (
	"time"

	"github.com/google/uuid"
)

const (
	PurposeClockIn  = "clock_in"
	PurposeClockOut = "clock_out"
)

// Entry is one issued code. Used flips on verification; ConsumedAt records
// the single clock action the verified code was spent on.
type Entry struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email       string     `gorm:"column:email;type:varchar(255);not null;index:idx_otp_entries_email_code"`
	DeviceIP    string     `gorm:"column:device_ip;type:varchar(64);not null;index:idx_otp_entries_device_created"`
	Code        string     `gorm:"column:code;type:varchar(10);not null;index:idx_otp_entries_email_code"`
	ExpiresAt   time.Time  `gorm:"column:expires_at;type:timestamptz;not null"`
	Used        bool       `gorm:"column:used;not null;default:false"`
	VerifiedAt  *time.Time `gorm:"column:verified_at;type:timestamptz"`
	ConsumedAt  *time.Time `gorm:"column:consumed_at;type:timestamptz"`
	ConsumedFor *string    `gorm:"column:consumed_for;type:varchar(20)"`
	CreatedAt   time.Time  `gorm:"column:created_at;type:timestamptz;index:idx_otp_entries_device_created"`
}

func (Entry) TableName() string {
	return "otp_entries"
}
