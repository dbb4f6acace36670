package usecase

import (
	"context"
	"fmt"

	"tech-share/domain"
	"tech-share/port"
)

// maxSlugAttempts bounds the auto-generation loop. Ten consecutive random
// collisions means the slug space is effectively exhausted or the generator
// is broken; that failure is internal, not a validation error.
const maxSlugAttempts = 10

// SlugResolver decides the slug for a new article: a user-supplied slug is
// checked for uniqueness as-is, an absent one is auto-generated.
//
// The existence check races with concurrent inserts; the unique constraint at
// the storage layer is authoritative and the repository translates its
// violation into the same duplicate-slug validation error.
type SlugResolver struct {
	articleRepo port.ArticleRepository
}

// NewSlugResolver wires the uniqueness oracle for slug resolution.
func NewSlugResolver(articleRepo port.ArticleRepository) *SlugResolver {
	return &SlugResolver{articleRepo: articleRepo}
}

// Resolve returns the slug to use for a new article. requested nil or empty
// requests auto-generation.
func (r *SlugResolver) Resolve(ctx context.Context, requested *string) (string, error) {
	if requested != nil && *requested != "" {
		exists, err := r.articleRepo.ExistsBySlug(ctx, *requested)
		if err != nil {
			return "", fmt.Errorf("check slug existence: %w", err)
		}
		if exists {
			return "", domain.ErrDuplicateSlug()
		}
		return *requested, nil
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := domain.NewRandomSlug(domain.SlugLength)
		if err != nil {
			return "", fmt.Errorf("generate slug: %w", err)
		}

		exists, err := r.articleRepo.ExistsBySlug(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("check slug existence: %w", err)
		}
		if !exists {
			return slug, nil
		}
	}

	return "", domain.ErrSlugGenerationExhausted
}
