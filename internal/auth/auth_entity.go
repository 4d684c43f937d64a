package auth

import (
	"strings"

	"github.com/google/uuid"
)

// Account is the login view of a user row joined with its profile.
type Account struct {
	ID             uuid.UUID  `gorm:"column:id"`
	Email          string     `gorm:"column:email"`
	PasswordHash   *string    `gorm:"column:password_hash"`
	Role           string     `gorm:"column:role"`
	OrganizationID uuid.UUID  `gorm:"column:organization_id"`
	SupervisorID   *uuid.UUID `gorm:"column:supervisor_id"`
	IsActive       bool       `gorm:"column:is_active"`
	EmailVerified  bool       `gorm:"column:email_verified"`
	FirstName      string     `gorm:"column:first_name"`
	LastName       string     `gorm:"column:last_name"`
}

func (a Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
