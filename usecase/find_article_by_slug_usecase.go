package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"tech-share/domain"
	"tech-share/port"
)

// FindArticleBySlugUsecase loads a single article by its slug. Published
// articles are returned without consulting the permission service; drafts are
// gated by the view rule.
type FindArticleBySlugUsecase struct {
	articleRepo       port.ArticleRepository
	permissionService port.PermissionService
	logger            *slog.Logger
}

// NewFindArticleBySlugUsecase wires dependencies for slug lookups.
func NewFindArticleBySlugUsecase(articleRepo port.ArticleRepository, permissionService port.PermissionService, logger *slog.Logger) *FindArticleBySlugUsecase {
	return &FindArticleBySlugUsecase{
		articleRepo:       articleRepo,
		permissionService: permissionService,
		logger:            logger,
	}
}

// Execute returns the article for the slug, enforcing draft visibility for
// the requesting user.
func (uc *FindArticleBySlugUsecase) Execute(ctx context.Context, slug string, userID int64) (*domain.Article, error) {
	article, err := uc.articleRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if article.IsPublished() {
		// The counter is best effort; a failed bump must not break the read.
		if err := uc.articleRepo.IncrementViewCount(ctx, slug); err != nil {
			uc.logger.Warn("failed to increment view count", "slug", slug, "error", err)
		}
		return article, nil
	}

	canView, err := uc.permissionService.CanUserPerformAction(ctx, userID, domain.PermissionEditAnyArticle, article)
	if err != nil {
		return nil, fmt.Errorf("evaluate view permission: %w", err)
	}
	if !canView {
		return nil, domain.ErrForbidden
	}

	return article, nil
}
