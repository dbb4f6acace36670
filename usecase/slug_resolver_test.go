package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tech-share/domain"
	"tech-share/mocks"
)

func TestSlugResolver_Resolve_UserSuppliedSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockArticleRepository(ctrl)
	repo.EXPECT().ExistsBySlug(gomock.Any(), "user-chosen").Return(false, nil)

	resolver := NewSlugResolver(repo)
	slug, err := resolver.Resolve(context.Background(), strPtr("user-chosen"))

	require.NoError(t, err)
	assert.Equal(t, "user-chosen", slug)
}

func TestSlugResolver_Resolve_DuplicateUserSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockArticleRepository(ctrl)
	repo.EXPECT().ExistsBySlug(gomock.Any(), "taken").Return(true, nil)

	resolver := NewSlugResolver(repo)
	_, err := resolver.Resolve(context.Background(), strPtr("taken"))

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "slug", validationErr.Field)
}

func TestSlugResolver_Resolve_GeneratesSlugWhenAbsent(t *testing.T) {
	tests := []struct {
		name      string
		requested *string
	}{
		{name: "nil slug", requested: nil},
		{name: "empty slug", requested: strPtr("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockArticleRepository(ctrl)
			repo.EXPECT().ExistsBySlug(gomock.Any(), gomock.Any()).Return(false, nil)

			resolver := NewSlugResolver(repo)
			slug, err := resolver.Resolve(context.Background(), tt.requested)

			require.NoError(t, err)
			assert.Len(t, slug, domain.SlugLength)
			assert.True(t, domain.IsValidSlug(slug))
		})
	}
}

func TestSlugResolver_Resolve_RetriesUntilUnique(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Two collisions followed by a free slug: exactly three checks.
	repo := mocks.NewMockArticleRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().ExistsBySlug(gomock.Any(), gomock.Any()).Return(true, nil),
		repo.EXPECT().ExistsBySlug(gomock.Any(), gomock.Any()).Return(true, nil),
		repo.EXPECT().ExistsBySlug(gomock.Any(), gomock.Any()).Return(false, nil),
	)

	resolver := NewSlugResolver(repo)
	slug, err := resolver.Resolve(context.Background(), nil)

	require.NoError(t, err)
	assert.Len(t, slug, domain.SlugLength)
}

func TestSlugResolver_Resolve_ExhaustsAfterTenAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockArticleRepository(ctrl)
	repo.EXPECT().ExistsBySlug(gomock.Any(), gomock.Any()).Return(true, nil).Times(10)

	resolver := NewSlugResolver(repo)
	_, err := resolver.Resolve(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrSlugGenerationExhausted)
}

func TestSlugResolver_Resolve_OracleFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockArticleRepository(ctrl)
	repo.EXPECT().ExistsBySlug(gomock.Any(), gomock.Any()).Return(false, errors.New("connection lost"))

	resolver := NewSlugResolver(repo)
	_, err := resolver.Resolve(context.Background(), nil)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSlugGenerationExhausted)
}

func strPtr(s string) *string {
	return &s
}
