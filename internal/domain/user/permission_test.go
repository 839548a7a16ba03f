package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleOwner, PermissionReportsExport))
	assert.True(t, HasPermission(RoleManager, PermissionReportsView))
	assert.False(t, HasPermission(RoleManager, PermissionReportsExport))
	assert.False(t, HasPermission(RoleEmployee, PermissionReportsView))
	assert.False(t, HasPermission(RolePending, PermissionPayrollViewOwn))
	assert.False(t, HasPermission(Role("auditor"), PermissionReportsView))
}
