package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tech-share/domain"
	"tech-share/port"
)

// PermissionGateway implements port.PermissionService. It acts as an
// anti-corruption layer between the use cases and the role model: use cases
// ask about abstract actions, the gateway resolves them against the user's
// roles and the article policy.
type PermissionGateway struct {
	userRepo port.UserRepository
	policy   *domain.ArticlePolicy
	logger   *slog.Logger
}

// NewPermissionGateway creates a new PermissionGateway instance
func NewPermissionGateway(userRepo port.UserRepository, logger *slog.Logger) *PermissionGateway {
	return &PermissionGateway{
		userRepo: userRepo,
		policy:   domain.NewArticlePolicy(),
		logger:   logger.With("component", "permission_gateway"),
	}
}

// CanUserPerformAction reports whether the user may perform the given action
// on the article. Ownership always grants access; otherwise the user needs
// the matching role-based override. A user that cannot be loaded is simply
// denied.
func (g *PermissionGateway) CanUserPerformAction(ctx context.Context, userID int64, permission domain.PermissionType, article *domain.Article) (bool, error) {
	if !permission.IsValid() {
		return false, fmt.Errorf("%w: %s", domain.ErrUnknownPermission, permission)
	}

	user, err := g.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			g.logger.Warn("permission check for unknown user", "user_id", userID)
			return false, nil
		}
		return false, fmt.Errorf("load user for permission check: %w", err)
	}

	var allowed bool
	switch permission {
	case domain.PermissionEditAnyArticle:
		allowed = g.policy.CanUpdate(user, article)
	case domain.PermissionDeleteAnyArticle:
		allowed = g.policy.CanDelete(user, article)
	}

	if !allowed {
		g.logger.Info("permission denied",
			"user_id", userID,
			"permission", permission,
			"article_id", article.ID)
	}

	return allowed, nil
}
