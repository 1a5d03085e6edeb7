package models

import "fmt"

// Role is the authorization level of a user account.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Roles lists every role in display order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleEmployee}
}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) IsAdmin() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleManager, RoleEmployee:
		return false
	default:
		return false
	}
}

// CanManage reports whether the role may approve timesheets.
func (r Role) CanManage() bool {
	switch r {
	case RoleAdmin, RoleManager:
		return true
	case RoleEmployee:
		return false
	default:
		return false
	}
}
