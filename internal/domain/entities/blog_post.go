package entities

import "time"

// BlogPost is an article in the site's blog
type BlogPost struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Slug          string     `json:"slug" db:"slug"`
	Excerpt       string     `json:"excerpt" db:"excerpt"`
	Content       string     `json:"content" db:"content"` // sanitized HTML
	FeaturedImage string     `json:"featured_image,omitempty" db:"featured_image"`
	AuthorName    string     `json:"author_name,omitempty" db:"author_name"`
	AuthorTitle   string     `json:"author_title,omitempty" db:"author_title"`
	Category      string     `json:"category,omitempty" db:"category"`
	Tags          []string   `json:"tags" db:"tags"`
	IsPublished   bool       `json:"is_published" db:"is_published"`
	IsFeatured    bool       `json:"is_featured" db:"is_featured"`
	PublishedAt   *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// BlogPostPatch carries a partial update; nil fields are left untouched
type BlogPostPatch struct {
	Title         *string    `json:"title,omitempty"`
	Slug          *string    `json:"slug,omitempty"`
	Excerpt       *string    `json:"excerpt,omitempty"`
	Content       *string    `json:"content,omitempty"`
	FeaturedImage *string    `json:"featured_image,omitempty"`
	AuthorName    *string    `json:"author_name,omitempty"`
	AuthorTitle   *string    `json:"author_title,omitempty"`
	Category      *string    `json:"category,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	IsPublished   *bool      `json:"is_published,omitempty"`
	IsFeatured    *bool      `json:"is_featured,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
}
