package domain

// ArticlePolicy holds the authorization rules for articles. Each check takes
// the acting user and the loaded article; ownership wins first, then the
// role-granted override permission.
type ArticlePolicy struct{}

// NewArticlePolicy creates a new article policy
func NewArticlePolicy() *ArticlePolicy {
	return &ArticlePolicy{}
}

// CanUpdate reports whether the user may edit the article
func (p *ArticlePolicy) CanUpdate(user *User, article *Article) bool {
	if article.IsOwnedBy(user.ID) {
		return true
	}
	return user.HasPermission(PermissionEditAnyArticle)
}

// CanDelete reports whether the user may delete the article
func (p *ArticlePolicy) CanDelete(user *User, article *Article) bool {
	if article.IsOwnedBy(user.ID) {
		return true
	}
	return user.HasPermission(PermissionDeleteAnyArticle)
}

// CanView reports whether the user may read the article. Published articles
// are visible to any authenticated user; drafts only to the owner or to a
// holder of the edit override.
func (p *ArticlePolicy) CanView(user *User, article *Article) bool {
	if article.IsPublished() {
		return true
	}
	return p.CanUpdate(user, article)
}
