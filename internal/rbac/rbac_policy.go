package rbac

import "go-attendance/internal/domain"

// DefaultPolicy is the complete role to permission matrix.
var DefaultPolicy = map[domain.Role][]domain.PermissionResponse{
	domain.RoleOwner: {
		{Resource: "organization", Action: "read"},
		{Resource: "supervisor", Action: "create"},
		{Resource: "supervisor", Action: "read"},
		{Resource: "dashboard", Action: "read_org"},
	},
	domain.RoleSupervisor: {
		{Resource: "employee", Action: "create"},
		{Resource: "employee", Action: "read"},
		{Resource: "attendance", Action: "clock"},
		{Resource: "attendance", Action: "read_team"},
		{Resource: "leave", Action: "read_team"},
		{Resource: "leave", Action: "decide"},
	},
	domain.RoleEmployee: {
		{Resource: "profile", Action: "read"},
		{Resource: "attendance", Action: "read_own"},
		{Resource: "leave", Action: "create"},
		{Resource: "leave", Action: "read_own"},
		{Resource: "dashboard", Action: "read_own"},
	},
}
