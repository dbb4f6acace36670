package port

//go:generate mockgen -source=permission_port.go -destination=../mocks/mock_permission_port.go -package=mocks

import (
	"context"

	"tech-share/domain"
)

// PermissionService decides whether a user may act on a given article.
// Ownership and role overrides are evaluated together; an unknown permission
// type is a programming error and returns domain.ErrUnknownPermission.
type PermissionService interface {
	CanUserPerformAction(ctx context.Context, userID int64, permission domain.PermissionType, article *domain.Article) (bool, error)
}
