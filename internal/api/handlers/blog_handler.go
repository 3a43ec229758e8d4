package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/zatekoja/clinicsite/internal/application/services"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
)

const maxBlogListLimit = 100

// BlogService defines the blog operations used by the handler
type BlogService interface {
	List(ctx context.Context, filter repositories.BlogFilter) []*entities.BlogPost
	GetBySlug(ctx context.Context, slug string) *entities.BlogPost
	Create(ctx context.Context, input services.BlogPostInput) *entities.BlogPost
	Update(ctx context.Context, id string, update services.BlogPostUpdate) *entities.BlogPost
	Delete(ctx context.Context, id string) bool
	GenerateSlug(ctx context.Context, title string) string
}

// BlogHandler handles public blog reads and admin blog writes
type BlogHandler struct {
	service BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(service BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// ListPosts handles GET /api/blog. Only published posts are returned.
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	filter, ok := blogFilterFromQuery(w, r)
	if !ok {
		return
	}
	filter.PublishedOnly = true

	respondWithJSON(w, http.StatusOK, h.service.List(r.Context(), filter))
}

// ListAllPosts handles GET /api/admin/blog, drafts included
func (h *BlogHandler) ListAllPosts(w http.ResponseWriter, r *http.Request) {
	filter, ok := blogFilterFromQuery(w, r)
	if !ok {
		return
	}

	respondWithJSON(w, http.StatusOK, h.service.List(r.Context(), filter))
}

// GetPost handles GET /api/blog/{slug}
func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		respondWithError(w, http.StatusBadRequest, "slug is required")
		return
	}

	post := h.service.GetBySlug(r.Context(), slug)
	if post == nil || !post.IsPublished {
		respondWithError(w, http.StatusNotFound, "blog post not found")
		return
	}

	respondWithJSON(w, http.StatusOK, post)
}

// CreatePost handles POST /api/admin/blog
func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var input services.BlogPostInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	post := h.service.Create(r.Context(), input)
	if post == nil {
		respondWithError(w, http.StatusInternalServerError, "failed to create blog post")
		return
	}

	respondWithJSON(w, http.StatusCreated, post)
}

// UpdatePost handles PATCH /api/admin/blog/{id}
func (h *BlogHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "id is required")
		return
	}

	var update services.BlogPostUpdate
	if !decodeAndValidate(w, r, &update) {
		return
	}
	if !checkSlug(w, update.Slug) {
		return
	}

	post := h.service.Update(r.Context(), id, update)
	if post == nil {
		respondWithError(w, http.StatusNotFound, "blog post not found")
		return
	}

	respondWithJSON(w, http.StatusOK, post)
}

// DeletePost handles DELETE /api/admin/blog/{id}
func (h *BlogHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.service.Delete(r.Context(), id) {
		respondWithError(w, http.StatusNotFound, "blog post not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GenerateSlug handles GET /api/admin/blog/slug?title=
func (h *BlogHandler) GenerateSlug(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		respondWithError(w, http.StatusBadRequest, "title query parameter is required")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"slug": h.service.GenerateSlug(r.Context(), title),
	})
}

func blogFilterFromQuery(w http.ResponseWriter, r *http.Request) (repositories.BlogFilter, bool) {
	query := r.URL.Query()
	filter := repositories.BlogFilter{
		Category: strings.TrimSpace(query.Get("category")),
	}
	filter.FeaturedOnly, _ = queryBool(r, "featured")

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return filter, false
		}
		if limit > maxBlogListLimit {
			limit = maxBlogListLimit
		}
		filter.Limit = limit
	}

	return filter, true
}
