package models

// Permission is an entry of the fixed permission enumeration. PermissionFullAccess
// short-circuits every other check.
type Permission string

const (
	PermissionFullAccess        Permission = "full_access"
	PermissionManagePositions   Permission = "manage_positions"
	PermissionViewEmployeeData  Permission = "view_employee_data"
	PermissionManageEmployees   Permission = "manage_employees"
	PermissionManageDepartments Permission = "manage_departments"
	PermissionPrintDocuments    Permission = "print_documents"
	PermissionManageLiability   Permission = "manage_liability"
)

var knownPermissions = map[Permission]struct{}{
	PermissionFullAccess:        {},
	PermissionManagePositions:   {},
	PermissionViewEmployeeData:  {},
	PermissionManageEmployees:   {},
	PermissionManageDepartments: {},
	PermissionPrintDocuments:    {},
	PermissionManageLiability:   {},
}

// IsKnown reports whether p belongs to the enumeration.
func (p Permission) IsKnown() bool {
	_, ok := knownPermissions[p]
	return ok
}

// HasPermission reports whether the permission set grants the required
// permission. full_access grants everything, including strings outside the
// enumeration; membership of unknown strings in stored sets is prevented at the
// granting boundary instead (ValidatePermissions).
func HasPermission(permissions PermissionList, required Permission) bool {
	for _, p := range permissions {
		if p == PermissionFullAccess || p == required {
			return true
		}
	}
	return false
}

// ValidatePermissions reports the first permission outside the enumeration, if
// any. Used when granting permission sets to users.
func ValidatePermissions(permissions PermissionList) (Permission, bool) {
	for _, p := range permissions {
		if !p.IsKnown() {
			return p, false
		}
	}
	return "", true
}
