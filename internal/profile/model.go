package profile

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization role stored on a profile.
type Role string

const (
	RoleUser      Role = "user"
	RoleSuperUser Role = "super-user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleSuperUser
}

// User is a profile row joined with its auth identity.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
}

// IsSuperUser reports whether the user holds the super-user role.
func (u *User) IsSuperUser() bool {
	return u != nil && u.Role == RoleSuperUser
}

// HasRole reports whether the user holds any of the given roles.
// An empty role list always matches.
func (u *User) HasRole(roles ...Role) bool {
	if u == nil {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// Patch holds fields merged into a User in place. Nil fields are left untouched.
type Patch struct {
	Name  *string
	Email *string
}

// Apply returns a copy of u with the patch merged in.
func (u User) Apply(p Patch) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}
