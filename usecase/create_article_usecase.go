package usecase

import (
	"context"

	"tech-share/domain"
	"tech-share/port"
)

// CreateArticleUsecase creates a new article for the authenticated user. No
// permission check is involved; anyone may publish as themselves.
type CreateArticleUsecase struct {
	articleRepo  port.ArticleRepository
	slugResolver *SlugResolver
	txManager    port.TransactionManager
}

// NewCreateArticleUsecase wires dependencies for article creation.
func NewCreateArticleUsecase(articleRepo port.ArticleRepository, slugResolver *SlugResolver, txManager port.TransactionManager) *CreateArticleUsecase {
	return &CreateArticleUsecase{
		articleRepo:  articleRepo,
		slugResolver: slugResolver,
		txManager:    txManager,
	}
}

// Execute resolves the slug, builds the article and persists it atomically.
// The returned article carries the repository-assigned ID and timestamps.
func (uc *CreateArticleUsecase) Execute(ctx context.Context, input port.CreateArticleInput) (*domain.Article, error) {
	if input.Title == "" {
		return nil, domain.NewValidationError("title", "title is required")
	}
	if !input.Status.IsValid() {
		return nil, domain.NewValidationError("status", "status must be draft or published")
	}

	var created *domain.Article
	err := uc.txManager.Run(ctx, func(ctx context.Context) error {
		slug, err := uc.slugResolver.Resolve(ctx, input.Slug)
		if err != nil {
			return err
		}

		article := &domain.Article{
			UserID:    input.UserID,
			Title:     input.Title,
			Slug:      slug,
			Content:   input.Content,
			Status:    input.Status,
			ViewCount: 0,
		}

		created, err = uc.articleRepo.Save(ctx, article)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
