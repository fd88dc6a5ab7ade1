package enum

import "strings"

// Role is a normalized user role. The backend historically returned the
// role in several spellings ("Owner", "ADMIN", "owner"); ParseRole maps
// all of them onto this enum once, at the auth boundary, so nothing
// downstream compares raw strings.
type Role string

const (
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
)

// ParseRole normalizes a raw role string to a Role. Unknown or empty
// values fall back to staff, the least privileged role.
func ParseRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "owner", "admin", "super-admin", "superadmin":
		return RoleOwner
	case "staff", "employee", "user":
		return RoleStaff
	}
	return RoleStaff
}

// IsValid reports whether the role is a known value
func (r Role) IsValid() bool {
	return r == RoleOwner || r == RoleStaff
}

func (r Role) String() string {
	return string(r)
}
