package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tech-share/domain"
	"tech-share/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestPermissionGateway_CanUserPerformAction(t *testing.T) {
	article := &domain.Article{
		ID:     10,
		UserID: 1,
		Slug:   "someSlug",
		Status: domain.ArticleStatusDraft,
	}

	tests := []struct {
		name       string
		userID     int64
		roles      []domain.UserRole
		permission domain.PermissionType
		want       bool
	}{
		{
			name:       "owner may edit without any role",
			userID:     1,
			roles:      []domain.UserRole{domain.UserRoleUser},
			permission: domain.PermissionEditAnyArticle,
			want:       true,
		},
		{
			name:       "owner may delete without any role",
			userID:     1,
			roles:      []domain.UserRole{domain.UserRoleUser},
			permission: domain.PermissionDeleteAnyArticle,
			want:       true,
		},
		{
			name:       "admin may edit someone else's article",
			userID:     99,
			roles:      []domain.UserRole{domain.UserRoleAdmin},
			permission: domain.PermissionEditAnyArticle,
			want:       true,
		},
		{
			name:       "admin may delete someone else's article",
			userID:     99,
			roles:      []domain.UserRole{domain.UserRoleAdmin},
			permission: domain.PermissionDeleteAnyArticle,
			want:       true,
		},
		{
			name:       "editor may edit but not delete",
			userID:     7,
			roles:      []domain.UserRole{domain.UserRoleEditor},
			permission: domain.PermissionEditAnyArticle,
			want:       true,
		},
		{
			name:       "editor cannot delete someone else's article",
			userID:     7,
			roles:      []domain.UserRole{domain.UserRoleEditor},
			permission: domain.PermissionDeleteAnyArticle,
			want:       false,
		},
		{
			name:       "regular user cannot touch someone else's article",
			userID:     2,
			roles:      []domain.UserRole{domain.UserRoleUser},
			permission: domain.PermissionEditAnyArticle,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			userRepo.EXPECT().FindByID(gomock.Any(), tt.userID).Return(&domain.User{
				ID:    tt.userID,
				Roles: tt.roles,
			}, nil)

			g := NewPermissionGateway(userRepo, discardLogger())
			got, err := g.CanUserPerformAction(context.Background(), tt.userID, tt.permission, article)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPermissionGateway_CanUserPerformAction_UnknownUserIsDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, domain.ErrUserNotFound)

	g := NewPermissionGateway(userRepo, discardLogger())
	got, err := g.CanUserPerformAction(context.Background(), 404, domain.PermissionEditAnyArticle, &domain.Article{ID: 10, UserID: 1})

	require.NoError(t, err)
	assert.False(t, got)
}

func TestPermissionGateway_CanUserPerformAction_UnknownPermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)

	g := NewPermissionGateway(userRepo, discardLogger())
	_, err := g.CanUserPerformAction(context.Background(), 1, domain.PermissionType("publish_any_article"), &domain.Article{ID: 10, UserID: 1})

	assert.ErrorIs(t, err, domain.ErrUnknownPermission)
}

func TestPermissionGateway_CanUserPerformAction_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, errors.New("connection refused"))

	g := NewPermissionGateway(userRepo, discardLogger())
	_, err := g.CanUserPerformAction(context.Background(), 1, domain.PermissionEditAnyArticle, &domain.Article{ID: 10, UserID: 1})

	assert.Error(t, err)
}
