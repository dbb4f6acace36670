package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tech-share/domain"
)

func TestArticlePolicy_CanUpdate(t *testing.T) {
	policy := domain.NewArticlePolicy()

	tests := []struct {
		name    string
		user    *domain.User
		article *domain.Article
		want    bool
	}{
		{
			name:    "owner can update own article",
			user:    &domain.User{ID: 1, Roles: []domain.UserRole{domain.UserRoleUser}},
			article: &domain.Article{ID: 10, UserID: 1},
			want:    true,
		},
		{
			name:    "admin can update another user's article",
			user:    &domain.User{ID: 2, Roles: []domain.UserRole{domain.UserRoleAdmin}},
			article: &domain.Article{ID: 10, UserID: 1},
			want:    true,
		},
		{
			name:    "editor can update another user's article",
			user:    &domain.User{ID: 2, Roles: []domain.UserRole{domain.UserRoleEditor}},
			article: &domain.Article{ID: 10, UserID: 1},
			want:    true,
		},
		{
			name:    "stranger without override cannot update",
			user:    &domain.User{ID: 2, Roles: []domain.UserRole{domain.UserRoleUser}},
			article: &domain.Article{ID: 10, UserID: 1},
			want:    false,
		},
		{
			name:    "user with no roles cannot update foreign article",
			user:    &domain.User{ID: 2},
			article: &domain.Article{ID: 10, UserID: 1},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanUpdate(tt.user, tt.article))
		})
	}
}

func TestArticlePolicy_CanDelete(t *testing.T) {
	policy := domain.NewArticlePolicy()

	tests := []struct {
		name    string
		user    *domain.User
		article *domain.Article
		want    bool
	}{
		{
			name:    "owner can delete own article",
			user:    &domain.User{ID: 1, Roles: []domain.UserRole{domain.UserRoleUser}},
			article: &domain.Article{ID: 10, UserID: 1},
			want:    true,
		},
		{
			name:    "admin can delete another user's article",
			user:    &domain.User{ID: 2, Roles: []domain.UserRole{domain.UserRoleAdmin}},
			article: &domain.Article{ID: 10, UserID: 1},
			want:    true,
		},
		{
			name:    "editor holds only the edit override, not delete",
			user:    &domain.User{ID: 2, Roles: []domain.UserRole{domain.UserRoleEditor}},
			article: &domain.Article{ID: 10, UserID: 1},
			want:    false,
		},
		{
			name:    "stranger without override cannot delete",
			user:    &domain.User{ID: 2, Roles: []domain.UserRole{domain.UserRoleUser}},
			article: &domain.Article{ID: 10, UserID: 1},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanDelete(tt.user, tt.article))
		})
	}
}

func TestArticlePolicy_CanView(t *testing.T) {
	policy := domain.NewArticlePolicy()

	tests := []struct {
		name    string
		user    *domain.User
		article *domain.Article
		want    bool
	}{
		{
			name:    "anyone can view a published article",
			user:    &domain.User{ID: 99, Roles: []domain.UserRole{domain.UserRoleUser}},
			article: &domain.Article{ID: 10, UserID: 1, Status: domain.ArticleStatusPublished},
			want:    true,
		},
		{
			name:    "owner can view own draft",
			user:    &domain.User{ID: 1, Roles: []domain.UserRole{domain.UserRoleUser}},
			article: &domain.Article{ID: 10, UserID: 1, Status: domain.ArticleStatusDraft},
			want:    true,
		},
		{
			name:    "admin can view another user's draft",
			user:    &domain.User{ID: 2, Roles: []domain.UserRole{domain.UserRoleAdmin}},
			article: &domain.Article{ID: 10, UserID: 1, Status: domain.ArticleStatusDraft},
			want:    true,
		},
		{
			name:    "stranger cannot view another user's draft",
			user:    &domain.User{ID: 2, Roles: []domain.UserRole{domain.UserRoleUser}},
			article: &domain.Article{ID: 10, UserID: 1, Status: domain.ArticleStatusDraft},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanView(tt.user, tt.article))
		})
	}
}
