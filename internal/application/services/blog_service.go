package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
	"github.com/zatekoja/clinicsite/internal/infrastructure/observability"
)

// maxSlugProbes bounds the uniqueness search for a slug
const maxSlugProbes = 1000

// BlogPostInput is the payload for creating a blog post
type BlogPostInput struct {
	Title         string        `json:"title" validate:"required,max=300"`
	Slug          string        `json:"slug,omitempty" validate:"omitempty,max=300"`
	Excerpt       string        `json:"excerpt,omitempty"`
	Content       string        `json:"content" validate:"required"`
	Format        ContentFormat `json:"format,omitempty" validate:"omitempty,oneof=html markdown"`
	FeaturedImage string        `json:"featured_image,omitempty" validate:"omitempty,url"`
	AuthorName    string        `json:"author_name,omitempty"`
	AuthorTitle   string        `json:"author_title,omitempty"`
	Category      string        `json:"category,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
	IsPublished   bool          `json:"is_published"`
	IsFeatured    bool          `json:"is_featured"`
}

// BlogPostUpdate is a partial update plus the format of any new content
type BlogPostUpdate struct {
	entities.BlogPostPatch
	Format ContentFormat `json:"format,omitempty" validate:"omitempty,oneof=html markdown"`
}

// BlogService manages blog posts. A nil repository means the relational
// store is not configured; every read is then empty.
type BlogService struct {
	repo repositories.BlogRepository
	accessor
}

// NewBlogService creates a new blog service
func NewBlogService(repo repositories.BlogRepository, logger *zerolog.Logger, metrics *observability.Metrics) *BlogService {
	return &BlogService{
		repo:     repo,
		accessor: newAccessor("blog", logger, metrics),
	}
}

// List returns posts newest first
func (s *BlogService) List(ctx context.Context, filter repositories.BlogFilter) []*entities.BlogPost {
	if s.repo == nil {
		return []*entities.BlogPost{}
	}
	defer s.observe(ctx, "list", time.Now())

	posts, err := s.repo.List(ctx, filter)
	if err != nil {
		s.report(ctx, "list", err)
		return []*entities.BlogPost{}
	}
	return posts
}

// GetBySlug returns the post with slug, or nil
func (s *BlogService) GetBySlug(ctx context.Context, slug string) *entities.BlogPost {
	if s.repo == nil {
		return nil
	}
	defer s.observe(ctx, "get_by_slug", time.Now())

	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		s.report(ctx, "get_by_slug", err)
		return nil
	}
	return post
}

// GetByID returns the post with id, or nil
func (s *BlogService) GetByID(ctx context.Context, id string) *entities.BlogPost {
	if s.repo == nil {
		return nil
	}
	defer s.observe(ctx, "get_by_id", time.Now())

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.report(ctx, "get_by_id", err)
		return nil
	}
	return post
}

// Create stores a new post and returns it, or nil when it could not be stored.
// Content is sanitized, the slug (given or generated from the title) is made
// unique and a missing excerpt is derived from the content.
func (s *BlogService) Create(ctx context.Context, input BlogPostInput) *entities.BlogPost {
	if s.repo == nil {
		return nil
	}

	content, err := RenderContent(input.Content, input.Format)
	if err != nil {
		s.report(ctx, "create", err)
		return nil
	}

	var slug string
	if base := Slugify(input.Slug); base != "" {
		slug = s.uniqueSlug(ctx, base)
	} else {
		slug = s.GenerateSlug(ctx, input.Title)
	}

	excerpt := strings.TrimSpace(input.Excerpt)
	if excerpt == "" {
		excerpt = DeriveExcerpt(content)
	}

	now := time.Now().UTC()
	post := &entities.BlogPost{
		ID:            uuid.New().String(),
		Title:         strings.TrimSpace(input.Title),
		Slug:          slug,
		Excerpt:       excerpt,
		Content:       content,
		FeaturedImage: input.FeaturedImage,
		AuthorName:    input.AuthorName,
		AuthorTitle:   input.AuthorTitle,
		Category:      input.Category,
		Tags:          input.Tags,
		IsPublished:   input.IsPublished,
		IsFeatured:    input.IsFeatured,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if post.IsPublished {
		post.PublishedAt = &now
	}

	defer s.observe(ctx, "create", time.Now())
	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.report(ctx, "create", err)
		return nil
	}
	return created
}

// Update applies update to the post with id and returns the result, or nil.
// Publishing a post that was never published stamps its publish time. A slug
// with nothing left after slugifying leaves the current slug in place.
func (s *BlogService) Update(ctx context.Context, id string, update BlogPostUpdate) *entities.BlogPost {
	if s.repo == nil {
		return nil
	}

	patch := update.BlogPostPatch
	if patch.Content != nil {
		content, err := RenderContent(*patch.Content, update.Format)
		if err != nil {
			s.report(ctx, "update", err)
			return nil
		}
		patch.Content = &content
	}
	if patch.Slug != nil {
		if slug := Slugify(*patch.Slug); slug != "" {
			patch.Slug = &slug
		} else {
			patch.Slug = nil
		}
	}

	if patch.IsPublished != nil && *patch.IsPublished && patch.PublishedAt == nil {
		existing := s.GetByID(ctx, id)
		if existing == nil {
			return nil
		}
		if existing.PublishedAt == nil {
			now := time.Now().UTC()
			patch.PublishedAt = &now
		}
	}

	defer s.observe(ctx, "update", time.Now())
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.report(ctx, "update", err)
		return nil
	}
	return updated
}

// Delete removes the post with id and reports whether it existed
func (s *BlogService) Delete(ctx context.Context, id string) bool {
	if s.repo == nil {
		return false
	}
	defer s.observe(ctx, "delete", time.Now())

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.report(ctx, "delete", err)
		return false
	}
	return deleted
}

// GenerateSlug returns an unused slug for title: the slugified title, or the
// first of title-1, title-2, ... not yet taken. When uniqueness cannot be
// checked the base slug is returned as is.
func (s *BlogService) GenerateSlug(ctx context.Context, title string) string {
	base := Slugify(title)
	if base == "" {
		base = "post"
	}
	return s.uniqueSlug(ctx, base)
}

// uniqueSlug probes base, base-1, base-2, ... and returns the first one not
// taken. Once maxSlugProbes suffixes are taken it returns base with a random
// suffix, unprobed.
func (s *BlogService) uniqueSlug(ctx context.Context, base string) string {
	if s.repo == nil {
		return base
	}

	candidate := base
	for i := 1; i <= maxSlugProbes; i++ {
		exists, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			s.report(ctx, "generate_slug", err)
			return base
		}
		if !exists {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return fmt.Sprintf("%s-%s", base, uuid.New().String()[:8])
}
