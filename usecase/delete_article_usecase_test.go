package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tech-share/domain"
	"tech-share/mocks"
)

func TestDeleteArticleUsecase_Execute(t *testing.T) {
	tests := []struct {
		name    string
		userID  int64
		allowed bool
		wantErr error
	}{
		{
			name:    "owner deletes own article",
			userID:  1,
			allowed: true,
		},
		{
			name:    "admin deletes someone else's article",
			userID:  99,
			allowed: true,
		},
		{
			name:    "stranger without override is rejected",
			userID:  2,
			allowed: false,
			wantErr: domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockArticleRepository(ctrl)
			perms := mocks.NewMockPermissionService(ctrl)
			tx := mocks.NewMockTransactionManager(ctrl)
			passthroughTx(tx)

			article := storedArticle()
			repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(article, nil)
			perms.EXPECT().
				CanUserPerformAction(gomock.Any(), tt.userID, domain.PermissionDeleteAnyArticle, article).
				Return(tt.allowed, nil)
			if tt.allowed {
				repo.EXPECT().Delete(gomock.Any(), int64(10)).Return(nil)
			}

			uc := NewDeleteArticleUsecase(repo, perms, tx)
			err := uc.Execute(context.Background(), 10, tt.userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDeleteArticleUsecase_Execute_NotFoundBeforePermissionCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockArticleRepository(ctrl)
	perms := mocks.NewMockPermissionService(ctrl)
	tx := mocks.NewMockTransactionManager(ctrl)
	passthroughTx(tx)

	repo.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, domain.ErrArticleNotFound)
	// No permission evaluation for a missing article.

	uc := NewDeleteArticleUsecase(repo, perms, tx)
	err := uc.Execute(context.Background(), 404, 1)

	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}
