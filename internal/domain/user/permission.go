package user

type Permission string

const (
	// Payroll
	PermissionPayrollViewOwn Permission = "payroll.view_own"
	PermissionPayrollViewAll Permission = "payroll.view_all"

	// Reports
	PermissionReportsView   Permission = "reports.view"
	PermissionReportsExport Permission = "reports.export"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermissionPayrollViewOwn,
		PermissionPayrollViewAll,
		PermissionReportsView,
		PermissionReportsExport,
	},
	RoleManager: {
		// Manager can read reports but not take the workbook out
		PermissionPayrollViewOwn,
		PermissionPayrollViewAll,
		PermissionReportsView,
	},
	RoleEmployee: {
		PermissionPayrollViewOwn,
	},
	RolePending: {
		// Pending role has no permissions
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
