package domain

import "time"

// ArticleStatus represents the publication state of an article
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

// ParseArticleStatus converts a string into an ArticleStatus
func ParseArticleStatus(s string) (ArticleStatus, bool) {
	switch ArticleStatus(s) {
	case ArticleStatusDraft, ArticleStatusPublished:
		return ArticleStatus(s), true
	}
	return "", false
}

// IsValid returns true if the status is a known value
func (s ArticleStatus) IsValid() bool {
	_, ok := ParseArticleStatus(string(s))
	return ok
}

// Article represents a single article revision. ID is zero until the
// repository assigns one on first save. UserID never changes after creation;
// updates build a new Article preserving it from the stored record.
type Article struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user_id"`
	Title     string        `json:"title"`
	Slug      string        `json:"slug"`
	Content   string        `json:"content"`
	Status    ArticleStatus `json:"status"`
	ViewCount int           `json:"view_count"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// IsPublished returns true if the article is visible to everyone
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}

// IsOwnedBy returns true if the given user owns the article
func (a *Article) IsOwnedBy(userID int64) bool {
	return a.UserID == userID
}

// ArticlePage is one page of a paginated article listing
type ArticlePage struct {
	Articles []Article `json:"articles"`
	Page     int       `json:"page"`
	PerPage  int       `json:"per_page"`
	Total    int64     `json:"total"`
}

// TotalPages returns the number of pages in the listing
func (p *ArticlePage) TotalPages() int {
	if p.PerPage <= 0 {
		return 0
	}
	pages := p.Total / int64(p.PerPage)
	if p.Total%int64(p.PerPage) != 0 {
		pages++
	}
	return int(pages)
}

// DefaultPerPage is the page size used when the caller does not specify one
const DefaultPerPage = 10
