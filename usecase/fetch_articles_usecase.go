package usecase

import (
	"context"

	"tech-share/domain"
	"tech-share/port"
)

// FetchArticlesUsecase lists published articles for the public timeline,
// newest first.
type FetchArticlesUsecase struct {
	articleRepo port.ArticleRepository
}

// NewFetchArticlesUsecase wires dependencies for the timeline listing.
func NewFetchArticlesUsecase(articleRepo port.ArticleRepository) *FetchArticlesUsecase {
	return &FetchArticlesUsecase{articleRepo: articleRepo}
}

// Execute returns one page of published articles.
func (uc *FetchArticlesUsecase) Execute(ctx context.Context, page, perPage int) (*domain.ArticlePage, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = domain.DefaultPerPage
	}

	published := domain.ArticleStatusPublished
	return uc.articleRepo.Paginate(ctx, page, perPage, &published, nil)
}
