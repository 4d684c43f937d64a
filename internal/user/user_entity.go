package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email          string     `gorm:"column:email;type:varchar(120);not null;uniqueIndex:uq_users_email"`
	PasswordHash   *string    `gorm:"column:password_hash;type:varchar(255)"`
	Role           string     `gorm:"column:role;type:varchar(20);not null"`
	OrganizationID uuid.UUID  `gorm:"column:organization_id;type:uuid;not null;index"`
	SupervisorID   *uuid.UUID `gorm:"column:supervisor_id;type:uuid;index"`
	IsActive       bool       `gorm:"column:is_active;not null;default:true"`
	EmailVerified  bool       `gorm:"column:email_verified;not null;default:false"`
	SetupToken     *string    `gorm:"column:setup_token;type:varchar(100);uniqueIndex:uq_users_setup_token"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	Profile *Profile `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}

// Profile holds personal data for supervisors and employees. Owners have none.
type Profile struct {
	UserID                uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	FirstName             string    `gorm:"column:first_name;type:varchar(50);not null"`
	LastName              string    `gorm:"column:last_name;type:varchar(50);not null"`
	NIN                   *string   `gorm:"column:nin;type:varchar(20);uniqueIndex:uq_employee_profiles_nin"`
	PhoneNumber           string    `gorm:"column:phone_number;type:varchar(20)"`
	Address               string    `gorm:"column:address;type:text"`
	EmergencyContactName  string    `gorm:"column:emergency_contact_name;type:varchar(100)"`
	EmergencyContactPhone string    `gorm:"column:emergency_contact_phone;type:varchar(20)"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Profile) TableName() string {
	return "employee_profiles"
}

func (p *Profile) FullName() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
