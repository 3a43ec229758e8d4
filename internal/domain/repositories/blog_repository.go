package repositories

import (
	"context"

	"github.com/zatekoja/clinicsite/internal/domain/entities"
)

// BlogFilter narrows a blog post listing
type BlogFilter struct {
	PublishedOnly bool
	FeaturedOnly  bool
	Category      string
	Limit         int
}

// BlogRepository defines blog post storage. Implementations return
// NOT_PROVISIONED errors when the table does not exist.
type BlogRepository interface {
	List(ctx context.Context, filter BlogFilter) ([]*entities.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*entities.BlogPost, error)
	GetByID(ctx context.Context, id string) (*entities.BlogPost, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, post *entities.BlogPost) (*entities.BlogPost, error)
	Update(ctx context.Context, id string, patch entities.BlogPostPatch) (*entities.BlogPost, error)
	Delete(ctx context.Context, id string) (bool, error)
}
