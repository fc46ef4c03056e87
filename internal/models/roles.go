package models

// Role is a capability granted to a user account.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleSuperUser Role = "superUser"
)

// ValidRoles lists every role an account may carry.
var ValidRoles = []Role{RoleAdmin, RoleUser, RoleSuperUser}

// IsValidRole reports whether s names a known role.
func IsValidRole(s string) bool {
	for _, r := range ValidRoles {
		if string(r) == s {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the user's role set intersects the required set.
// An empty required set grants nothing.
func HasAnyRole(userRoles []string, required ...Role) bool {
	for _, have := range userRoles {
		for _, want := range required {
			if have == string(want) {
				return true
			}
		}
	}
	return false
}
