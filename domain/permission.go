package domain

// PermissionType names an override capability that acts on any article
// regardless of ownership. Ownership itself is not a permission; the policy
// checks it directly.
type PermissionType string

const (
	PermissionEditAnyArticle   PermissionType = "edit_any_article"
	PermissionDeleteAnyArticle PermissionType = "delete_any_article"
)

// IsValid returns true if the permission is a known value
func (p PermissionType) IsValid() bool {
	switch p {
	case PermissionEditAnyArticle, PermissionDeleteAnyArticle:
		return true
	}
	return false
}

// RolePermissions assigns override permissions to roles. Seeded statically;
// the regular user role carries no overrides and relies on ownership alone.
var RolePermissions = map[UserRole][]PermissionType{
	UserRoleAdmin: {
		PermissionEditAnyArticle,
		PermissionDeleteAnyArticle,
	},
	UserRoleEditor: {
		PermissionEditAnyArticle,
	},
	UserRoleUser: {},
}
