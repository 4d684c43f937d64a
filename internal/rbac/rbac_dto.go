package rbac

import "go-attendance/internal/domain"

type PermissionsResponse struct {
	Role        string                      `json:"role"`
	Permissions []domain.PermissionResponse `json:"permissions"`
}
