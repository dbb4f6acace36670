package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tech-share/domain"
	"tech-share/port"
)

const uniqueViolationCode = "23505"

// ArticleRepository implements port.ArticleRepository for PostgreSQL
type ArticleRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewArticleRepository creates a new PostgreSQL article repository
func NewArticleRepository(db DatabaseIface, logger *slog.Logger) port.ArticleRepository {
	return &ArticleRepository{
		db:     db,
		logger: logger.With("component", "article_repository"),
	}
}

const articleColumns = `id, user_id, title, slug, content, status, view_count, created_at, updated_at`

// FindByID retrieves an article by its primary key
func (r *ArticleRepository) FindByID(ctx context.Context, id int64) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	article, err := r.scanArticle(querierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to find article by id: %w", err)
	}

	return article, nil
}

// FindBySlug retrieves an article by its slug
func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1`

	article, err := r.scanArticle(querierFrom(ctx, r.db).QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to find article by slug: %w", err)
	}

	return article, nil
}

// ExistsBySlug reports whether any article already uses the slug
func (r *ArticleRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)`

	var exists bool
	if err := querierFrom(ctx, r.db).QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}

// Save inserts a new article and returns it with the assigned ID and
// timestamps. A concurrent insert of the same slug surfaces as the duplicate
// slug validation error via the unique constraint.
func (r *ArticleRepository) Save(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	query := `
		INSERT INTO articles (user_id, title, slug, content, status, view_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, created_at, updated_at`

	now := time.Now()
	saved := *article
	err := querierFrom(ctx, r.db).QueryRow(ctx, query,
		article.UserID,
		article.Title,
		article.Slug,
		article.Content,
		string(article.Status),
		article.ViewCount,
		now,
	).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		if isSlugConflict(err) {
			return nil, domain.ErrDuplicateSlug()
		}
		return nil, fmt.Errorf("failed to save article: %w", err)
	}

	r.logger.Info("article saved", "article_id", saved.ID, "slug", saved.Slug)
	return &saved, nil
}

// Update replaces the stored article's mutable fields
func (r *ArticleRepository) Update(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	query := `
		UPDATE articles
		SET title = $2, slug = $3, content = $4, status = $5, updated_at = $6
		WHERE id = $1
		RETURNING updated_at`

	updated := *article
	err := querierFrom(ctx, r.db).QueryRow(ctx, query,
		article.ID,
		article.Title,
		article.Slug,
		article.Content,
		string(article.Status),
		time.Now(),
	).Scan(&updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		if isSlugConflict(err) {
			return nil, domain.ErrDuplicateSlug()
		}
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	r.logger.Info("article updated", "article_id", updated.ID, "slug", updated.Slug)
	return &updated, nil
}

// Delete removes the article
func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM articles WHERE id = $1`

	tag, err := querierFrom(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}

	r.logger.Info("article deleted", "article_id", id)
	return nil
}

// Paginate returns one page of articles, newest first. Status and userID are
// optional filters; nil means no filter.
func (r *ArticleRepository) Paginate(ctx context.Context, page, perPage int, status *domain.ArticleStatus, userID *int64) (*domain.ArticlePage, error) {
	where := `WHERE ($1::text IS NULL OR status = $1) AND ($2::bigint IS NULL OR user_id = $2)`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	q := querierFrom(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM articles ` + where
	if err := q.QueryRow(ctx, countQuery, statusArg, userID).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	query := `SELECT ` + articleColumns + ` FROM articles ` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`

	rows, err := q.Query(ctx, query, statusArg, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0, perPage)
	for rows.Next() {
		article, err := r.scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read article rows: %w", err)
	}

	return &domain.ArticlePage{
		Articles: articles,
		Page:     page,
		PerPage:  perPage,
		Total:    total,
	}, nil
}

// IncrementViewCount bumps the stored view counter for a slug
func (r *ArticleRepository) IncrementViewCount(ctx context.Context, slug string) error {
	query := `UPDATE articles SET view_count = view_count + 1 WHERE slug = $1`

	if _, err := querierFrom(ctx, r.db).Exec(ctx, query, slug); err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}

	return nil
}

func (r *ArticleRepository) scanArticle(row pgx.Row) (*domain.Article, error) {
	var article domain.Article
	var status string
	err := row.Scan(
		&article.ID,
		&article.UserID,
		&article.Title,
		&article.Slug,
		&article.Content,
		&status,
		&article.ViewCount,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	article.Status = domain.ArticleStatus(status)
	return &article, nil
}

func isSlugConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
