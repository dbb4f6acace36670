package usecase

import (
	"context"
	"fmt"

	"tech-share/domain"
	"tech-share/port"
)

// DeleteArticleUsecase removes an article after a delete permission check.
type DeleteArticleUsecase struct {
	articleRepo       port.ArticleRepository
	permissionService port.PermissionService
	txManager         port.TransactionManager
}

// NewDeleteArticleUsecase wires dependencies for article deletion.
func NewDeleteArticleUsecase(articleRepo port.ArticleRepository, permissionService port.PermissionService, txManager port.TransactionManager) *DeleteArticleUsecase {
	return &DeleteArticleUsecase{
		articleRepo:       articleRepo,
		permissionService: permissionService,
		txManager:         txManager,
	}
}

// Execute loads the article, checks the delete permission and removes it
// atomically. The load precedes the permission check, so a missing article
// surfaces as not-found rather than forbidden.
func (uc *DeleteArticleUsecase) Execute(ctx context.Context, id int64, userID int64) error {
	return uc.txManager.Run(ctx, func(ctx context.Context) error {
		article, err := uc.articleRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		allowed, err := uc.permissionService.CanUserPerformAction(ctx, userID, domain.PermissionDeleteAnyArticle, article)
		if err != nil {
			return fmt.Errorf("evaluate delete permission: %w", err)
		}
		if !allowed {
			return domain.ErrForbidden
		}

		return uc.articleRepo.Delete(ctx, article.ID)
	})
}
