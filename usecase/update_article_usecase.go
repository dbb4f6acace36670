package usecase

import (
	"context"
	"fmt"

	"tech-share/domain"
	"tech-share/port"
)

// UpdateArticleUsecase edits an existing article. Ownership is immutable: the
// updated revision always keeps the stored record's user and view count.
type UpdateArticleUsecase struct {
	articleRepo       port.ArticleRepository
	permissionService port.PermissionService
	txManager         port.TransactionManager
}

// NewUpdateArticleUsecase wires dependencies for article updates.
func NewUpdateArticleUsecase(articleRepo port.ArticleRepository, permissionService port.PermissionService, txManager port.TransactionManager) *UpdateArticleUsecase {
	return &UpdateArticleUsecase{
		articleRepo:       articleRepo,
		permissionService: permissionService,
		txManager:         txManager,
	}
}

// Execute loads the current revision, checks the edit permission, verifies a
// changed slug for uniqueness and persists the new revision atomically. Slug
// nil keeps the current slug.
func (uc *UpdateArticleUsecase) Execute(ctx context.Context, input port.UpdateArticleInput) (*domain.Article, error) {
	if input.Title == "" {
		return nil, domain.NewValidationError("title", "title is required")
	}
	if !input.Status.IsValid() {
		return nil, domain.NewValidationError("status", "status must be draft or published")
	}

	var updated *domain.Article
	err := uc.txManager.Run(ctx, func(ctx context.Context) error {
		current, err := uc.articleRepo.FindByID(ctx, input.ID)
		if err != nil {
			return err
		}

		allowed, err := uc.permissionService.CanUserPerformAction(ctx, input.UserID, domain.PermissionEditAnyArticle, current)
		if err != nil {
			return fmt.Errorf("evaluate edit permission: %w", err)
		}
		if !allowed {
			return domain.ErrForbidden
		}

		// Uniqueness only matters when the slug actually changes.
		if input.Slug != nil && *input.Slug != current.Slug {
			exists, err := uc.articleRepo.ExistsBySlug(ctx, *input.Slug)
			if err != nil {
				return fmt.Errorf("check slug existence: %w", err)
			}
			if exists {
				return domain.ErrDuplicateSlug()
			}
		}

		slug := current.Slug
		if input.Slug != nil {
			slug = *input.Slug
		}

		next := &domain.Article{
			ID:        current.ID,
			UserID:    current.UserID,
			Title:     input.Title,
			Slug:      slug,
			Content:   input.Content,
			Status:    input.Status,
			ViewCount: current.ViewCount,
			CreatedAt: current.CreatedAt,
		}

		updated, err = uc.articleRepo.Update(ctx, next)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
