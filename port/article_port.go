package port

//go:generate mockgen -source=article_port.go -destination=../mocks/mock_article_port.go -package=mocks

import (
	"context"

	"tech-share/domain"
)

// ArticleRepository defines article data access. Implementations must honor
// the transaction bound to the context by the TransactionManager.
type ArticleRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Article, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Article, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	// Save inserts a new article and returns it with the assigned ID and
	// timestamps.
	Save(ctx context.Context, article *domain.Article) (*domain.Article, error)
	// Update replaces the stored article; returns domain.ErrArticleNotFound
	// if the ID no longer exists.
	Update(ctx context.Context, article *domain.Article) (*domain.Article, error)
	// Delete removes the article; returns domain.ErrArticleNotFound if the
	// ID does not exist.
	Delete(ctx context.Context, id int64) error
	// Paginate returns one page ordered by creation time descending. Status
	// and userID are optional filters; nil means no filter.
	Paginate(ctx context.Context, page, perPage int, status *domain.ArticleStatus, userID *int64) (*domain.ArticlePage, error)
	// IncrementViewCount bumps the stored view counter for a slug.
	IncrementViewCount(ctx context.Context, slug string) error
}

// CreateArticleUsecase creates a new article for an authenticated user
type CreateArticleUsecase interface {
	Execute(ctx context.Context, input CreateArticleInput) (*domain.Article, error)
}

// UpdateArticleUsecase edits an existing article after a permission check
type UpdateArticleUsecase interface {
	Execute(ctx context.Context, input UpdateArticleInput) (*domain.Article, error)
}

// DeleteArticleUsecase removes an article after a permission check
type DeleteArticleUsecase interface {
	Execute(ctx context.Context, id int64, userID int64) error
}

// FindArticleBySlugUsecase loads a single article, enforcing draft visibility
type FindArticleBySlugUsecase interface {
	Execute(ctx context.Context, slug string, userID int64) (*domain.Article, error)
}

// FetchArticlesUsecase lists published articles, newest first
type FetchArticlesUsecase interface {
	Execute(ctx context.Context, page, perPage int) (*domain.ArticlePage, error)
}

// FetchMyArticlesUsecase lists the requesting user's own articles
type FetchMyArticlesUsecase interface {
	Execute(ctx context.Context, userID int64, page, perPage int, status *domain.ArticleStatus) (*domain.ArticlePage, error)
}

// CreateArticleInput captures the parameters for article creation. Slug is
// optional; nil requests an auto-generated one.
type CreateArticleInput struct {
	UserID  int64
	Title   string
	Content string
	Status  domain.ArticleStatus
	Slug    *string
}

// UpdateArticleInput captures the parameters for an article update. Slug nil
// means "keep the current slug".
type UpdateArticleInput struct {
	ID      int64
	UserID  int64
	Title   string
	Content string
	Status  domain.ArticleStatus
	Slug    *string
}
