package domain

import (
	"slices"

	"go-attendance/internal/shared/apperror"
)

// Identity is what a verified session token asserts about its bearer.
type Identity struct {
	UserID         string
	Email          string
	Role           Role
	OrganizationID string
	// SupervisorID is set for employees only.
	SupervisorID *string
}

func (i Identity) Authenticated() bool {
	return i.UserID != "" && i.Role.Valid()
}

// Require fails with Unauthenticated for an empty identity and AccessDenied
// when the role is not one of allowed.
func (i Identity) Require(allowed ...Role) error {
	if !i.Authenticated() {
		return apperror.ErrUnauthorized
	}
	if !slices.Contains(allowed, i.Role) {
		return apperror.ErrForbidden
	}
	return nil
}
