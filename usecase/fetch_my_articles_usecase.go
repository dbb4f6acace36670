package usecase

import (
	"context"

	"tech-share/domain"
	"tech-share/port"
)

// FetchMyArticlesUsecase lists the requesting user's own articles, drafts
// included. The caller owns every result, so no visibility check applies.
type FetchMyArticlesUsecase struct {
	articleRepo port.ArticleRepository
}

// NewFetchMyArticlesUsecase wires dependencies for the personal listing.
func NewFetchMyArticlesUsecase(articleRepo port.ArticleRepository) *FetchMyArticlesUsecase {
	return &FetchMyArticlesUsecase{articleRepo: articleRepo}
}

// Execute returns one page of the user's articles, optionally filtered by
// status. A nil status returns drafts and published articles alike.
func (uc *FetchMyArticlesUsecase) Execute(ctx context.Context, userID int64, page, perPage int, status *domain.ArticleStatus) (*domain.ArticlePage, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = domain.DefaultPerPage
	}

	return uc.articleRepo.Paginate(ctx, page, perPage, status, &userID)
}
