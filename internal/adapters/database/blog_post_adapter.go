package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
	"github.com/zatekoja/clinicsite/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/clinicsite/pkg/errors"
)

const blogPostsTable = "blog_posts"

var blogPostColumns = []interface{}{
	"id", "title", "slug", "excerpt", "content", "featured_image",
	"author_name", "author_title", "category", "tags",
	"is_published", "is_featured", "published_at", "created_at", "updated_at",
}

// BlogPostAdapter implements BlogRepository on Postgres
type BlogPostAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewBlogPostAdapter creates a new blog post adapter
func NewBlogPostAdapter(client *postgres.Client) repositories.BlogRepository {
	return &BlogPostAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List retrieves blog posts, newest first
func (a *BlogPostAdapter) List(ctx context.Context, filter repositories.BlogFilter) ([]*entities.BlogPost, error) {
	ds := a.db.Select(blogPostColumns...).From(blogPostsTable)

	if filter.PublishedOnly {
		ds = ds.Where(goqu.Ex{"is_published": true})
	}
	if filter.FeaturedOnly {
		ds = ds.Where(goqu.Ex{"is_featured": true})
	}
	if filter.Category != "" {
		ds = ds.Where(goqu.Ex{"category": filter.Category})
	}

	ds = ds.Order(goqu.I("created_at").Desc())

	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build blog list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryError("failed to list blog posts", blogPostsTable, err)
	}
	defer rows.Close()

	posts := []*entities.BlogPost{}
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan blog post", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("failed to list blog posts", blogPostsTable, err)
	}

	return posts, nil
}

// GetBySlug retrieves a blog post by slug
func (a *BlogPostAdapter) GetBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	return a.getOne(ctx, "slug", slug)
}

// GetByID retrieves a blog post by ID
func (a *BlogPostAdapter) GetByID(ctx context.Context, id string) (*entities.BlogPost, error) {
	return a.getOne(ctx, "id", id)
}

func (a *BlogPostAdapter) getOne(ctx context.Context, field, value string) (*entities.BlogPost, error) {
	query, args, err := a.db.Select(blogPostColumns...).
		From(blogPostsTable).
		Where(goqu.Ex{field: value}).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build blog query", err)
	}

	post, err := scanBlogPost(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("blog post with %s %s not found", field, value))
	}
	if err != nil {
		return nil, queryError("failed to get blog post", blogPostsTable, err)
	}

	return post, nil
}

// SlugExists reports whether any post already uses slug
func (a *BlogPostAdapter) SlugExists(ctx context.Context, slug string) (bool, error) {
	query, args, err := a.db.Select(goqu.COUNT(goqu.Star())).
		From(blogPostsTable).
		Where(goqu.Ex{"slug": slug}).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build slug query", err)
	}

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, queryError("failed to check blog slug", blogPostsTable, err)
	}

	return count > 0, nil
}

// Create inserts a blog post and returns the stored row
func (a *BlogPostAdapter) Create(ctx context.Context, post *entities.BlogPost) (*entities.BlogPost, error) {
	if post == nil {
		return nil, apperrors.NewInternalError("blog post is nil", fmt.Errorf("blog post is nil"))
	}

	record := goqu.Record{
		"id":             post.ID,
		"title":          post.Title,
		"slug":           post.Slug,
		"excerpt":        nullString(post.Excerpt),
		"content":        post.Content,
		"featured_image": nullString(post.FeaturedImage),
		"author_name":    nullString(post.AuthorName),
		"author_title":   nullString(post.AuthorTitle),
		"category":       nullString(post.Category),
		"tags":           pq.Array(orEmpty(post.Tags)),
		"is_published":   post.IsPublished,
		"is_featured":    post.IsFeatured,
		"published_at":   nullTime(post.PublishedAt),
		"created_at":     post.CreatedAt,
		"updated_at":     post.UpdatedAt,
	}

	query, args, err := a.db.Insert(blogPostsTable).
		Rows(record).
		Returning(blogPostColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build blog insert query", err)
	}

	created, err := scanBlogPost(a.client.DB().QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, queryError("failed to create blog post", blogPostsTable, err)
	}

	return created, nil
}

// Update applies the non-nil fields of patch and returns the stored row
func (a *BlogPostAdapter) Update(ctx context.Context, id string, patch entities.BlogPostPatch) (*entities.BlogPost, error) {
	record := goqu.Record{"updated_at": time.Now().UTC()}

	setString(record, "title", patch.Title)
	setString(record, "slug", patch.Slug)
	setNullString(record, "excerpt", patch.Excerpt)
	setString(record, "content", patch.Content)
	setNullString(record, "featured_image", patch.FeaturedImage)
	setNullString(record, "author_name", patch.AuthorName)
	setNullString(record, "author_title", patch.AuthorTitle)
	setNullString(record, "category", patch.Category)
	if patch.Tags != nil {
		record["tags"] = pq.Array(patch.Tags)
	}
	if patch.IsPublished != nil {
		record["is_published"] = *patch.IsPublished
	}
	if patch.IsFeatured != nil {
		record["is_featured"] = *patch.IsFeatured
	}
	if patch.PublishedAt != nil {
		record["published_at"] = *patch.PublishedAt
	}

	query, args, err := a.db.Update(blogPostsTable).
		Set(record).
		Where(goqu.Ex{"id": id}).
		Returning(blogPostColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build blog update query", err)
	}

	updated, err := scanBlogPost(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("blog post with id %s not found", id))
	}
	if err != nil {
		return nil, queryError("failed to update blog post", blogPostsTable, err)
	}

	return updated, nil
}

// Delete permanently removes a blog post
func (a *BlogPostAdapter) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := a.db.Delete(blogPostsTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build blog delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return false, queryError("failed to delete blog post", blogPostsTable, err)
	}

	return affected(result)
}

func scanBlogPost(row rowScanner) (*entities.BlogPost, error) {
	post := &entities.BlogPost{}
	var excerpt, featuredImage, authorName, authorTitle, category sql.NullString
	var publishedAt sql.NullTime

	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&excerpt,
		&post.Content,
		&featuredImage,
		&authorName,
		&authorTitle,
		&category,
		pq.Array(&post.Tags),
		&post.IsPublished,
		&post.IsFeatured,
		&publishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	post.Excerpt = excerpt.String
	post.FeaturedImage = featuredImage.String
	post.AuthorName = authorName.String
	post.AuthorTitle = authorTitle.String
	post.Category = category.String
	post.Tags = orEmpty(post.Tags)
	if publishedAt.Valid {
		t := publishedAt.Time
		post.PublishedAt = &t
	}

	return post, nil
}
