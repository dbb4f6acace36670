package domain

import "time"

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"
	UserRoleUser   UserRole = "user"
)

// User represents an account. PasswordHash is a bcrypt hash and never leaves
// the auth layer.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []UserRole `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole returns true if the user holds the given role
func (u *User) HasRole(role UserRole) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasPermission checks the user's roles against the role permission table
func (u *User) HasPermission(permission PermissionType) bool {
	for _, role := range u.Roles {
		for _, p := range RolePermissions[role] {
			if p == permission {
				return true
			}
		}
	}
	return false
}

// IsAdmin returns true if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.HasRole(UserRoleAdmin)
}
